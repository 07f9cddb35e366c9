package config

import (
	"path/filepath"

	"ocrcorpus/internal/locale"
)

// Layout is the set of concrete paths one wording run reads and writes.
type Layout struct {
	Locale   locale.Locale
	FontDir  string
	DataDir  string
	Baseline string
	Output   string
}

// LayoutFor derives the per-locale paths from the configured roots. Font
// subsets are grouped by region suffix, game tables by client.
func (c *Config) LayoutFor(loc locale.Locale) Layout {
	return Layout{
		Locale:   loc,
		FontDir:  filepath.Join(c.Paths.FontDir, loc.FontSuffix()),
		DataDir:  filepath.Join(c.Paths.GamedataDir, string(loc), "gamedata", "excel"),
		Baseline: filepath.Join(c.Paths.RawKeysDir, string(loc)+".txt"),
		Output:   filepath.Join(c.Paths.OutputDir, string(loc)),
	}
}

// Layout resolves the configured locale. It assumes Validate has passed.
func (c *Config) Layout() (Layout, error) {
	loc, err := locale.Parse(c.Corpus.Locale)
	if err != nil {
		return Layout{}, err
	}
	return c.LayoutFor(loc), nil
}
