package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newWelcomeCmd(app *app) *cobra.Command {
	var newSession bool

	cmd := &cobra.Command{
		Use:   "welcome [message]",
		Short: "Print the first-turn context sent to the agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := app.service.FirstTurnContext(cmd.Context(), strings.Join(args, " "), newSession)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&newSession, "new-session", true, "Treat the message as the first turn of a new session")

	return cmd
}
