package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ocrcorpus/internal/config"
	"ocrcorpus/internal/locale"
	"ocrcorpus/internal/preflight"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

type configInitFlags struct {
	path      string
	locale    string
	overwrite bool
}

func newConfigInitCommand() *cobra.Command {
	var flags configInitFlags

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := locale.Parse(flags.locale)
			if err != nil {
				return err
			}
			target, err := initTarget(flags.path)
			if err != nil {
				return err
			}
			if !flags.overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("check config path: %w", err)
				}
			}
			if err := config.CreateSample(target, loc); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s sample configuration to %s\n", loc, target)
			fmt.Fprintln(out, "Point paths.gamedata_dir and paths.font_dir at your checkouts, then run `ocrcorpus wording`.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.path, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().StringVarP(&flags.locale, "locale", "l", string(locale.Default), "Client locale preselected in the sample")
	cmd.Flags().BoolVar(&flags.overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

// initTarget resolves --path, falling back to the per-user config location.
func initTarget(path string) (string, error) {
	if path = strings.TrimSpace(path); path == "" {
		target, err := config.DefaultConfigPath()
		if err != nil {
			return "", fmt.Errorf("determine default config path: %w", err)
		}
		return target, nil
	}
	target, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return target, nil
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file and check the resolved layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			layout, err := cfg.Layout()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if _, err := os.Stat(ctx.configPath); err != nil {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintf(out, "Locale: %s (%s)\n", layout.Locale, layout.Locale.DisplayName())

			results := preflight.RunAll(layout, cfg.Corpus.UpdateBaseline)
			rows := make([][]string, 0, len(results))
			for _, result := range results {
				rows = append(rows, []string{result.Name, result.Path, yesNo(result.Passed), result.Detail})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Check", "Path", "OK", "Detail"}, rows, nil))

			if failed := preflight.Failed(results); strict && len(failed) > 0 {
				return fmt.Errorf("%d preflight check(s) failed", len(failed))
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any layout check does not pass")
	return cmd
}
