package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovsov/healthwise-cli/internal/application"
	"github.com/ovsov/healthwise-cli/internal/domain"
)

func newRegisterCmd(app *app) *cobra.Command {
	var username string
	var password string
	var name string
	var age int
	var gender string
	var email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedGender, err := domain.ParseGender(gender)
			if err != nil {
				return err
			}

			profile, err := app.accounts.Register(cmd.Context(), application.Registration{
				Username: username,
				Password: password,
				Name:     name,
				Age:      age,
				Gender:   parsedGender,
				Email:    email,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s\n", profile.Username)
			return err
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Unique username")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().IntVar(&age, "age", 0, "Age in years (0 leaves it unset)")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender (male|female|other)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
