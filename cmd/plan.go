package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovsov/healthwise-cli/internal/adapters/render/report"
	"github.com/ovsov/healthwise-cli/internal/domain"
)

func newPlanCmd(app *app) *cobra.Command {
	var preferences string
	var showThinking bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate an AI diet plan from the latest recorded entry",
		Long:  "plan sends the latest health entry plus your dietary preferences to the DeepSeek API and prints the returned one-day plan. The command blocks for the single in-flight request; there is no retry.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.accounts.CurrentSession(cmd.Context())
			if err != nil {
				return err
			}

			var plan domain.DietPlan
			generate := func(ctx context.Context) error {
				var genErr error
				plan, genErr = app.plans.Generate(ctx, profile.Username, preferences)
				return genErr
			}

			if err := runPlanSpinner(cmd.Context(), cmd.OutOrStdout(), generate); err != nil {
				// Session-level failures keep their specific message; the
				// network path collapses to one user-facing hint.
				if errors.Is(err, domain.ErrMissingCredential) || errors.Is(err, domain.ErrMissingData) {
					return err
				}
				return fmt.Errorf("could not generate a diet plan; check your network connection or API key: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.Plan(plan, report.PlanOptions{ShowThinking: showThinking}))
			return err
		},
	}

	cmd.Flags().StringVar(&preferences, "preferences", "", "Free-text dietary preferences (take precedence over metrics)")
	cmd.Flags().BoolVar(&showThinking, "thinking", false, "Include the model's reasoning narrative")

	return cmd
}
