package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovsov/healthwise-cli/internal/domain"
)

func newLogCmd(app *app) *cobra.Command {
	var date string
	var heartRate int
	var spo2 int
	var stress int
	var sleepHours float64

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a day's health metrics (today unless --date is given)",
		Long:  "log upserts one day's metrics into the active account's history: recording the same date again overwrites that day instead of duplicating it.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.accounts.CurrentSession(cmd.Context())
			if err != nil {
				return err
			}

			entry := domain.HealthEntry{
				HeartRate:  heartRate,
				SpO2:       spo2,
				Stress:     stress,
				SleepHours: sleepHours,
			}
			if date != "" {
				parsed, err := domain.ParseDate(date)
				if err != nil {
					return err
				}
				entry.Date = parsed
			}

			history, err := app.history.Record(cmd.Context(), profile.Username, entry)
			if err != nil {
				return err
			}

			saved, _ := history.At(entryDateOrToday(entry, app))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s: %d bpm, SpO2 %d%%, stress %d, sleep %.1fh (%d days total)\n",
				saved.Date, saved.HeartRate, saved.SpO2, saved.Stress, saved.SleepHours, len(history))
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Calendar day YYYY-MM-DD (defaults to today)")
	cmd.Flags().IntVar(&heartRate, "heart-rate", 0, "Resting heart rate in bpm")
	cmd.Flags().IntVar(&spo2, "spo2", 0, "Blood oxygen saturation in percent")
	cmd.Flags().IntVar(&stress, "stress", 0, "Stress level 1-100")
	cmd.Flags().Float64Var(&sleepHours, "sleep", 0, "Sleep duration in hours")
	_ = cmd.MarkFlagRequired("heart-rate")
	_ = cmd.MarkFlagRequired("spo2")
	_ = cmd.MarkFlagRequired("stress")
	_ = cmd.MarkFlagRequired("sleep")

	return cmd
}

func entryDateOrToday(entry domain.HealthEntry, app *app) domain.Date {
	if entry.Date != "" {
		return entry.Date
	}

	return domain.NewDate(app.now())
}
