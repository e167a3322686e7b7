package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Inspect authentication choices",
	}

	cmd.AddCommand(newAuthChoicesCmd(app))

	return cmd
}

func newAuthChoicesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "choices",
		Short: "List providers and their auth choices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			groups, _, err := app.service.AuthChoiceGroups(cmd.Context(), false)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(groups)
			}

			out := cmd.OutOrStdout()
			for _, group := range groups {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", group.ID, group.Label, group.Hint)
				if !group.HasOptions() {
					_, _ = fmt.Fprintln(out, "  (no auth methods)")
					continue
				}
				for _, option := range group.Options {
					_, _ = fmt.Fprintf(out, "  %s\t%s\n", option.Value, option.Label)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
