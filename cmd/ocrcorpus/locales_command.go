package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ocrcorpus/internal/locale"
)

type localeRow struct {
	Locale     string `json:"locale"`
	Tag        string `json:"tag"`
	Name       string `json:"name"`
	FontSubset string `json:"font_subset"`
}

func newLocalesCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "locales",
		Short:       "List supported client locales",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]localeRow, 0, len(locale.Supported()))
			for _, loc := range locale.Supported() {
				tag, err := loc.Tag()
				if err != nil {
					return err
				}
				rows = append(rows, localeRow{
					Locale:     loc.String(),
					Tag:        tag.String(),
					Name:       loc.DisplayName(),
					FontSubset: loc.FontSuffix(),
				})
			}
			if jsonOut {
				return writeJSON(cmd, rows)
			}

			table := make([][]string, 0, len(rows))
			for _, row := range rows {
				table = append(table, []string{row.Locale, row.Tag, row.Name, row.FontSubset})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Locale", "Tag", "Name", "Font subset"}, table, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
