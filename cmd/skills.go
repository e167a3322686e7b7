package cmd

import (
	"encoding/json"
	"fmt"

	summaryadapter "github.com/bnema/agent-onboard/internal/adapters/render/summary"
	"github.com/spf13/cobra"
)

func newSkillsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Inspect skills",
	}

	cmd.AddCommand(newSkillsListCmd(app))

	return cmd
}

func newSkillsListCmd(app *app) *cobra.Command {
	var all bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List included skills for the current config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := app.service.SkillStatuses(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(statuses)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), summaryadapter.RenderSkillList(statuses, all))
			return err
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include skills that are not enabled")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
