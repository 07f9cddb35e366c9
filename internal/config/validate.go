package config

import (
	"errors"
	"fmt"

	"ocrcorpus/internal/locale"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, err := locale.Parse(c.Corpus.Locale); err != nil {
		return fmt.Errorf("corpus.locale: %w", err)
	}
	if c.Corpus.ShortThreshold <= 0 {
		return errors.New("corpus.short_threshold must be positive")
	}
	if len(c.Corpus.FontExtensions) == 0 {
		return errors.New("corpus.font_extensions must list at least one extension")
	}
	if c.Corpus.DataExtension == "" {
		return errors.New("corpus.data_extension must be set")
	}
	for name, value := range map[string]string{
		"paths.font_dir":     c.Paths.FontDir,
		"paths.gamedata_dir": c.Paths.GamedataDir,
		"paths.output_dir":   c.Paths.OutputDir,
		"paths.raw_keys_dir": c.Paths.RawKeysDir,
	} {
		if value == "" {
			return fmt.Errorf("%s must be set", name)
		}
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
