package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ocrcorpus/internal/config"
	"ocrcorpus/internal/locale"
	"ocrcorpus/internal/logging"
	"ocrcorpus/internal/wording"
)

type wordingFlags struct {
	lang             string
	outputDir        string
	gamedataDir      string
	fontDir          string
	keysDir          string
	noUpdateBaseline bool
	jsonOut          bool
}

func newWordingCommand(ctx *commandContext) *cobra.Command {
	var flags wordingFlags

	cmd := &cobra.Command{
		Use:   "wording",
		Short: "Mine glyph-filtered wording and key lists from game tables",
		Long: "Extract every renderable line from the locale's game tables, write\n" +
			"wording.txt, short/long splits and keys.txt, and extend the baseline\n" +
			"key list with newly observed characters.",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg, err := applyWordingFlags(cmd, *base, flags)
			if err != nil {
				return err
			}

			logger, closeLog, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			report, err := wording.Run(cmd.Context(), cfg, logger)
			if err != nil {
				logger.Error("wording run failed", logging.Error(err), logging.String(logging.FieldLocale, cfg.Corpus.Locale))
				return err
			}

			if flags.jsonOut {
				return writeJSON(cmd, report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Metric", "Value"}, summaryRows(report), []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.lang, "lang", "l", "", "Client locale ("+strings.Join(locale.Names(), ", ")+")")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "Output root directory")
	cmd.Flags().StringVarP(&flags.gamedataDir, "gamedata-dir", "g", "", "Game data checkout root")
	cmd.Flags().StringVarP(&flags.fontDir, "font-dir", "f", "", "Font subset root directory")
	cmd.Flags().StringVarP(&flags.keysDir, "keys-dir", "k", "", "Directory holding baseline <locale>.txt key lists")
	cmd.Flags().BoolVar(&flags.noUpdateBaseline, "no-update-baseline", false, "Write keys.txt without extending the baseline key list")
	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "Output the run report as JSON")
	return cmd
}

// applyWordingFlags overlays explicitly set flags on a copy of cfg and
// re-validates the result.
func applyWordingFlags(cmd *cobra.Command, cfg config.Config, flags wordingFlags) (*config.Config, error) {
	set := cmd.Flags().Changed
	if set("lang") {
		cfg.Corpus.Locale = flags.lang
	}
	if set("output-dir") {
		cfg.Paths.OutputDir = flags.outputDir
	}
	if set("gamedata-dir") {
		cfg.Paths.GamedataDir = flags.gamedataDir
	}
	if set("font-dir") {
		cfg.Paths.FontDir = flags.fontDir
	}
	if set("keys-dir") {
		cfg.Paths.RawKeysDir = flags.keysDir
	}
	if flags.noUpdateBaseline {
		cfg.Corpus.UpdateBaseline = false
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func summaryRows(report wording.Report) [][]string {
	font := report.FontPath
	if font == "" {
		font = "(none found)"
	}
	added := []rune(report.Result.KeysAdded)
	return [][]string{
		{"Locale", report.Locale},
		{"Font", font},
		{"Glyphs", strconv.Itoa(report.Glyphs)},
		{"Tables read", strconv.Itoa(report.Stats.Files)},
		{"Lines scanned", strconv.Itoa(report.Stats.Lines)},
		{"Mined entries", strconv.Itoa(report.Stats.Entries)},
		{"Corpus entries", strconv.Itoa(report.Result.Entries)},
		{"Short entries", strconv.Itoa(report.Result.Short)},
		{"Long entries", strconv.Itoa(report.Result.Long)},
		{"Keys observed", strconv.Itoa(report.Result.KeysObserved)},
		{"Keys added", strconv.Itoa(len(added))},
		{"Baseline updated", yesNo(report.Result.BaselineUpdated)},
		{"Output", report.Result.OutputDir},
		{"Elapsed", report.Elapsed.Round(time.Millisecond).String()},
	}
}
