package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hw",
		Short:         "HealthWise CLI (hw): track daily health metrics and generate diet plans",
		Long:          "hw (HealthWise CLI) records daily physiological metrics per account, shows trend dashboards, and requests AI-generated one-day diet plans from the DeepSeek API.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newProfileCmd(app),
		newLogCmd(app),
		newDashboardCmd(app),
		newPlanCmd(app),
		newKeyCmd(app),
	)

	return rootCmd
}
