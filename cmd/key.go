package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ovsov/healthwise-cli/internal/application"
)

func newKeyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the DeepSeek API key",
	}

	cmd.AddCommand(newKeySetCmd(app), newKeyShowCmd(app), newKeyRemoveCmd(app))

	return cmd
}

func newKeySetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the API key for plan generation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("API key value is empty")
			}

			if err := app.secretStore.Put(cmd.Context(), application.CredentialKey, value); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "API key stored")
			return err
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "API key value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newKeyShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored API key, masked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := app.secretStore.Get(cmd.Context(), application.CredentialKey)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), maskKey(value))
			return err
		},
	}
}

func newKeyRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Delete the stored API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secretStore.Delete(cmd.Context(), application.CredentialKey); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "API key removed")
			return err
		},
	}
}

func maskKey(value string) string {
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}

	return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
}
