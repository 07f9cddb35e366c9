package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"ocrcorpus/internal/config"
	"ocrcorpus/internal/locale"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	workDir := t.TempDir()
	t.Chdir(workDir)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "ocrcorpus", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Paths.FontDir != filepath.Join(workDir, "fonts", "SubsetOTF") {
		t.Fatalf("unexpected font dir: %q", cfg.Paths.FontDir)
	}
	if cfg.Paths.GamedataDir != filepath.Join(workDir, "ArknightsGameData") {
		t.Fatalf("unexpected gamedata dir: %q", cfg.Paths.GamedataDir)
	}
	if cfg.Paths.OutputDir != filepath.Join(workDir, "output") {
		t.Fatalf("unexpected output dir: %q", cfg.Paths.OutputDir)
	}
	if cfg.Paths.RawKeysDir != filepath.Join(workDir, "raw_keys") {
		t.Fatalf("unexpected raw keys dir: %q", cfg.Paths.RawKeysDir)
	}
	if cfg.Paths.LogDir != "" {
		t.Fatalf("expected empty log dir, got %q", cfg.Paths.LogDir)
	}
	if cfg.Corpus.Locale != "zh_CN" {
		t.Fatalf("unexpected default locale %q", cfg.Corpus.Locale)
	}
	if cfg.Corpus.ShortThreshold != 7 {
		t.Fatalf("unexpected short threshold %d", cfg.Corpus.ShortThreshold)
	}
	if !cfg.Corpus.UpdateBaseline {
		t.Fatal("expected baseline updates enabled by default")
	}
	if strings.Join(cfg.Corpus.FontExtensions, ",") != ".otf,.ttf" {
		t.Fatalf("unexpected font extensions %v", cfg.Corpus.FontExtensions)
	}
}

func TestLoadProjectFileWhenNoUserConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	workDir := t.TempDir()
	t.Chdir(workDir)

	body := "[corpus]\nlocale = \"ja_JP\"\n"
	if err := os.WriteFile(filepath.Join(workDir, "ocrcorpus.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != filepath.Join(workDir, "ocrcorpus.toml") {
		t.Fatalf("expected project config, got %q (exists=%v)", resolved, exists)
	}
	if cfg.Corpus.Locale != "ja_JP" {
		t.Fatalf("expected locale from project file, got %q", cfg.Corpus.Locale)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "ocrcorpus.toml")

	type payload struct {
		Paths struct {
			FontDir string `toml:"font_dir"`
			LogDir  string `toml:"log_dir"`
		} `toml:"paths"`
		Corpus struct {
			Locale         string   `toml:"locale"`
			FontExtensions []string `toml:"font_extensions"`
			DataExtension  string   `toml:"data_extension"`
			ShortThreshold int      `toml:"short_threshold"`
			UpdateBaseline bool     `toml:"update_baseline"`
		} `toml:"corpus"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.FontDir = filepath.Join(tempDir, "fonts")
	custom.Paths.LogDir = filepath.Join(tempDir, "logs")
	custom.Corpus.Locale = "ko_KR"
	custom.Corpus.FontExtensions = []string{"OTF", ".otf", "ttc"}
	custom.Corpus.DataExtension = "JSON"
	custom.Corpus.ShortThreshold = 5
	custom.Corpus.UpdateBaseline = false
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Corpus.Locale != "ko_KR" {
		t.Fatalf("expected locale ko_KR, got %q", cfg.Corpus.Locale)
	}
	if strings.Join(cfg.Corpus.FontExtensions, ",") != ".otf,.ttc" {
		t.Fatalf("expected normalized font extensions, got %v", cfg.Corpus.FontExtensions)
	}
	if cfg.Corpus.DataExtension != ".json" {
		t.Fatalf("expected normalized data extension, got %q", cfg.Corpus.DataExtension)
	}
	if cfg.Corpus.ShortThreshold != 5 {
		t.Fatalf("expected short threshold 5, got %d", cfg.Corpus.ShortThreshold)
	}
	if cfg.Corpus.UpdateBaseline {
		t.Fatal("expected baseline updates disabled")
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json log format, got %q", cfg.Logging.Format)
	}
	if cfg.Paths.LogDir != filepath.Join(tempDir, "logs") {
		t.Fatalf("unexpected log dir %q", cfg.Paths.LogDir)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(configPath, []byte("[corpus]\nlocal = \"zh_CN\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path, ""); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to be read")
	}
	if cfg.Corpus.Locale != "zh_CN" || cfg.Corpus.ShortThreshold != 7 {
		t.Fatalf("sample disagrees with defaults: %+v", cfg.Corpus)
	}
	if !strings.Contains(string(contents), "raw_keys_dir") {
		t.Fatalf("sample config missing raw_keys_dir: %s", contents)
	}
}

func TestCreateSampleForLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path, locale.Locale("ko_KR")); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if cfg.Corpus.Locale != "ko_KR" {
		t.Fatalf("expected sample locale ko_KR, got %q", cfg.Corpus.Locale)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	valid := func() config.Config {
		cfg := config.Default()
		if err := cfg.Normalize(); err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		return cfg
	}

	cfg := valid()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	cfg = valid()
	cfg.Corpus.Locale = "fr_FR"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported locale")
	}

	cfg = valid()
	cfg.Corpus.ShortThreshold = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative threshold")
	}

	cfg = valid()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}

	cfg = valid()
	cfg.Logging.Level = "trace"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log level")
	}
}

func TestLayoutFor(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.FontDir = "/fonts"
	cfg.Paths.GamedataDir = "/data"
	cfg.Paths.RawKeysDir = "/keys"
	cfg.Paths.OutputDir = "/out"

	layout := cfg.LayoutFor(locale.Locale("zh_TW"))
	if layout.FontDir != filepath.Join("/fonts", "TW") {
		t.Fatalf("unexpected font dir %q", layout.FontDir)
	}
	if layout.DataDir != filepath.Join("/data", "zh_TW", "gamedata", "excel") {
		t.Fatalf("unexpected data dir %q", layout.DataDir)
	}
	if layout.Baseline != filepath.Join("/keys", "zh_TW.txt") {
		t.Fatalf("unexpected baseline %q", layout.Baseline)
	}
	if layout.Output != filepath.Join("/out", "zh_TW") {
		t.Fatalf("unexpected output %q", layout.Output)
	}
}
