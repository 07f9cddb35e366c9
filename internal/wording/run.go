package wording

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ocrcorpus/internal/config"
	"ocrcorpus/internal/glyphmap"
	"ocrcorpus/internal/keyset"
	"ocrcorpus/internal/logging"
)

// Report summarizes one end-to-end wording run.
type Report struct {
	RunID    string        `json:"run_id"`
	Locale   string        `json:"locale"`
	FontPath string        `json:"font_path"`
	Glyphs   int           `json:"glyphs"`
	DataDir  string        `json:"data_dir"`
	Stats    Stats         `json:"stats"`
	Result   Result        `json:"result"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// Run executes the whole pipeline for the configured locale: lock and read
// the baseline, load the font's glyph map, mine the game tables and write the
// artifacts. The baseline is opened first so a missing alphabet fails before
// any table is read.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Report, error) {
	started := time.Now()
	layout, err := cfg.Layout()
	if err != nil {
		return Report{}, err
	}

	report := Report{
		RunID:   uuid.NewString(),
		Locale:  string(layout.Locale),
		DataDir: layout.DataDir,
	}
	logger = logging.NewComponentLogger(logger, "wording").With(
		logging.String(logging.FieldRunID, report.RunID),
		logging.String(logging.FieldLocale, report.Locale),
	)

	openBaseline := keyset.OpenReadOnly
	if cfg.Corpus.UpdateBaseline {
		openBaseline = keyset.Open
	}
	baseline, err := openBaseline(layout.Baseline)
	if err != nil {
		return report, err
	}
	defer func() {
		if err := baseline.Close(); err != nil {
			logger.Warn("release baseline lock", logging.Error(err))
		}
	}()

	glyphs, fontPath, err := glyphmap.Load(layout.FontDir, cfg.Corpus.FontExtensions)
	if err != nil {
		return report, fmt.Errorf("load glyph map: %w", err)
	}
	report.FontPath = fontPath
	report.Glyphs = glyphs.Len()
	if fontPath == "" {
		logger.Warn("no font found; every line will be filtered out",
			logging.String("font_dir", layout.FontDir),
			logging.Alert("empty_glyph_map"),
		)
	} else {
		logger.Info("glyph map loaded",
			logging.String("font", fontPath),
			logging.Int("glyphs", glyphs.Len()),
		)
	}

	corpus, stats, err := NewBuilder(glyphs, cfg.Corpus.DataExtension, logger).Build(ctx, layout.DataDir)
	if err != nil {
		return report, err
	}
	report.Stats = stats
	logger.Info("game tables mined",
		logging.String("data_dir", layout.DataDir),
		logging.Int("files", stats.Files),
		logging.Int("lines", stats.Lines),
		logging.Int("entries", stats.Entries),
	)

	result, err := Finalize(corpus, baseline, FinalizeOptions{
		OutputDir:      layout.Output,
		ShortThreshold: cfg.Corpus.ShortThreshold,
		UpdateBaseline: cfg.Corpus.UpdateBaseline,
	})
	if err != nil {
		return report, err
	}
	report.Result = result
	report.Elapsed = time.Since(started)
	logger.Info("corpus written",
		logging.String("output_dir", result.OutputDir),
		logging.Int("entries", result.Entries),
		logging.Int("short", result.Short),
		logging.Int("long", result.Long),
		logging.Int("keys_added", len([]rune(result.KeysAdded))),
		logging.Bool("baseline_updated", result.BaselineUpdated),
		logging.Duration("elapsed", report.Elapsed),
	)
	return report, nil
}
