package cmd

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "onboard",
		Short:         "Agent onboarding: sign-in choice, starter skills and first-run welcome",
		Long:          "onboard walks a first-time user through choosing a model/auth provider, stores the credential, enables the starter skill set, and prepares the welcome message injected on the first chat turn.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace|debug|info|warn|error)")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.configureLogger(cmd.ErrOrStderr(), logLevel)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newAuthCmd(app),
		newSkillsCmd(app),
		newWelcomeCmd(app),
	)

	return rootCmd
}
