package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovsov/healthwise-cli/internal/adapters/render/report"
)

func newDashboardCmd(app *app) *cobra.Command {
	var trendDays int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the trend dashboard over the recorded history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.accounts.CurrentSession(cmd.Context())
			if err != nil {
				return err
			}

			history, err := app.history.History(cmd.Context(), profile.Username)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.Dashboard(history, report.DashboardOptions{TrendDays: trendDays}))
			return err
		},
	}

	cmd.Flags().IntVar(&trendDays, "days", 0, "Trailing days shown in trend rows (default 14)")

	return cmd
}
