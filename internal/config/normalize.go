package config

import (
	"fmt"
	"strings"
)

// Normalize expands paths and fills zero values with defaults. Load calls it;
// callers that mutate a Config (CLI flag overrides) call it again.
func (c *Config) Normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCorpus()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	fields := []struct {
		name     string
		value    *string
		fallback string
	}{
		{"paths.font_dir", &c.Paths.FontDir, defaultFontDir},
		{"paths.gamedata_dir", &c.Paths.GamedataDir, defaultGamedataDir},
		{"paths.output_dir", &c.Paths.OutputDir, defaultOutputDir},
		{"paths.raw_keys_dir", &c.Paths.RawKeysDir, defaultRawKeysDir},
		{"paths.log_dir", &c.Paths.LogDir, ""},
	}
	for _, field := range fields {
		if strings.TrimSpace(*field.value) == "" {
			*field.value = field.fallback
		}
		expanded, err := expandPath(strings.TrimSpace(*field.value))
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}
	return nil
}

func (c *Config) normalizeCorpus() {
	c.Corpus.Locale = strings.TrimSpace(c.Corpus.Locale)
	if c.Corpus.Locale == "" {
		c.Corpus.Locale = defaultLocale
	}

	exts := make([]string, 0, len(c.Corpus.FontExtensions))
	seen := make(map[string]struct{}, len(c.Corpus.FontExtensions))
	for _, ext := range c.Corpus.FontExtensions {
		normalized := normalizeExtension(ext)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	if len(exts) == 0 {
		exts = append(exts, defaultFontExtensions...)
	}
	c.Corpus.FontExtensions = exts

	c.Corpus.DataExtension = normalizeExtension(c.Corpus.DataExtension)
	if c.Corpus.DataExtension == "" {
		c.Corpus.DataExtension = defaultDataExtension
	}
	if c.Corpus.ShortThreshold == 0 {
		c.Corpus.ShortThreshold = defaultShortThreshold
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// normalizeExtension lowercases and ensures a leading dot: "OTF" -> ".otf".
func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
