package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"ocrcorpus/internal/config"
	"ocrcorpus/internal/locale"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose roots all live in a unique temp directory.
// Nothing is created on disk unless an option asks for it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.FontDir = filepath.Join(base, "fonts")
	cfgVal.Paths.GamedataDir = filepath.Join(base, "gamedata")
	cfgVal.Paths.OutputDir = filepath.Join(base, "output")
	cfgVal.Paths.RawKeysDir = filepath.Join(base, "raw_keys")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLocale sets the configured client locale.
func WithLocale(loc locale.Locale) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Corpus.Locale = string(loc)
	}
}

// WithBaseline writes the baseline key list for the configured locale.
func WithBaseline(contents string) ConfigOption {
	return func(b *configBuilder) {
		layout := b.cfg.LayoutFor(locale.Locale(b.cfg.Corpus.Locale))
		WriteText(b.t, layout.Baseline, contents)
	}
}

// WithGoFont installs the Go Regular TrueType font as the locale's font
// subset. It covers Latin, Greek and Cyrillic but no CJK.
func WithGoFont() ConfigOption {
	return func(b *configBuilder) {
		layout := b.cfg.LayoutFor(locale.Locale(b.cfg.Corpus.Locale))
		if err := os.MkdirAll(layout.FontDir, 0o755); err != nil {
			b.t.Fatalf("mkdir font dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(layout.FontDir, "Go-Regular.ttf"), goregular.TTF, 0o644); err != nil {
			b.t.Fatalf("write font: %v", err)
		}
	}
}

// WithTable writes a game table file for the configured locale.
func WithTable(name, contents string) ConfigOption {
	return func(b *configBuilder) {
		layout := b.cfg.LayoutFor(locale.Locale(b.cfg.Corpus.Locale))
		WriteText(b.t, filepath.Join(layout.DataDir, name), contents)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
