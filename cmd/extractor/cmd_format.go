package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhyrak/schedule-extractor/pkg/model"
)

func newFormatCmd(a *app) *cobra.Command {
	var (
		entry  model.Entry
		escape bool
	)
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format a single entry",
		Long:  "Format one schedule entry given field by field. Values are not validated.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			line := a.formatter(cmd, escape).Format(entry)
			a.logger.Debug().Str("zone", entry.ZoneCode).Int("week", entry.Week).Msg("formatted entry")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}

	cmd.Flags().StringVar(&entry.ZoneCode, "zone", "", "Zone code, e.g. MTR-01")
	cmd.Flags().IntVar(&entry.Week, "week", 0, "Week number")
	cmd.Flags().StringVar(&entry.Batch, "batch", "", "Batch label")
	cmd.Flags().StringVar(&entry.Date, "date", "", "Date as written on the schedule")
	cmd.Flags().StringVar(&entry.TimeSlot, "slot", "", "Time slot, e.g. SLOT_2300")
	cmd.Flags().StringVar(&entry.EquipmentNumber, "equipment", "", "Equipment number")
	cmd.Flags().StringVar(&entry.ORNumber, "or", "", "OR number")
	cmd.Flags().StringVar(&entry.Deadline, "deadline", "", "Deadline as written on the schedule")
	cmd.Flags().BoolVar(&escape, "escape", false, "Escape quotes and backslashes inside values")
	return cmd
}
