package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/rhyrak/schedule-extractor/internal/csvio"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		delimiter string
		output    string
		escape    bool
	)
	cmd := &cobra.Command{
		Use:   "convert <file.csv|file.yaml>",
		Short: "Format every entry of a CSV or YAML sheet",
		Long: "Read transcribed entries from a CSV sheet (header row: zone_code, week, batch, date,\n" +
			"time_slot, equipment, or_number, deadline) or a YAML list and print one seed line per entry.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}

			delim := a.cfg.Comma()
			if cmd.Flags().Changed("delimiter") {
				if utf8.RuneCountInString(delimiter) != 1 {
					return fmt.Errorf("delimiter must be a single character, got %q", delimiter)
				}
				delim, _ = utf8.DecodeRuneInString(delimiter)
			}
			if !cmd.Flags().Changed("output") {
				output = a.cfg.Output
			}

			entries, err := csvio.LoadFile(args[0], delim)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("file", args[0]).Int("entries", len(entries)).Msg("loaded entries")

			f := a.formatter(cmd, escape)
			if output == "" {
				return f.WriteAll(cmd.OutOrStdout(), entries)
			}

			outPath, err := csvio.ExportEntries(entries, f, output)
			if err != nil {
				return err
			}
			a.logger.Info().Str("output", outPath).Int("entries", len(entries)).Msg("exported entries")
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ",", "CSV field delimiter")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write lines to this file instead of stdout")
	cmd.Flags().BoolVar(&escape, "escape", false, "Escape quotes and backslashes inside values")
	return cmd
}
