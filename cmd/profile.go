package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovsov/healthwise-cli/internal/domain"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or update the active account's profile",
	}

	cmd.AddCommand(newProfileShowCmd(app), newProfileUpdateCmd(app))

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.accounts.CurrentSession(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "username: %s\n", profile.Username)
			fmt.Fprintf(out, "name:     %s\n", orUnset(profile.Name))
			if profile.Age > 0 {
				fmt.Fprintf(out, "age:      %d\n", profile.Age)
			} else {
				fmt.Fprintln(out, "age:      (unset)")
			}
			fmt.Fprintf(out, "gender:   %s\n", orUnset(string(profile.Gender)))
			fmt.Fprintf(out, "email:    %s\n", orUnset(profile.Email))

			return nil
		},
	}
}

func newProfileUpdateCmd(app *app) *cobra.Command {
	var name string
	var age int
	var gender string
	var email string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Patch profile fields (only the given flags change)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var patch domain.ProfilePatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("age") {
				patch.Age = &age
			}
			if cmd.Flags().Changed("gender") {
				parsed, err := domain.ParseGender(gender)
				if err != nil {
					return err
				}
				patch.Gender = &parsed
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}

			if patch.IsZero() {
				return fmt.Errorf("nothing to update: pass at least one of --name, --age, --gender, --email")
			}

			profile, err := app.accounts.UpdateProfile(cmd.Context(), patch)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Profile updated for %s\n", profile.Username)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().IntVar(&age, "age", 0, "Age in years")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender (male|female|other)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")

	return cmd
}

func orUnset(value string) string {
	if value == "" {
		return "(unset)"
	}

	return value
}
