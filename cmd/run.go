package cmd

import (
	"fmt"

	summaryadapter "github.com/bnema/agent-onboard/internal/adapters/render/summary"
	"github.com/bnema/agent-onboard/internal/application"
	"github.com/bnema/agent-onboard/internal/domain"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var quickstart bool
	var allowSkip bool
	var authChoice string
	var allSkills bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the onboarding wizard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompter := app.prompter(cmd.InOrStdin(), cmd.OutOrStdout())

			result, err := app.service.Onboard(cmd.Context(), prompter, application.OnboardOptions{
				Quickstart: quickstart,
				AllowSkip:  allowSkip,
				Choice:     domain.AuthChoice(authChoice),
			})
			if err != nil {
				return err
			}

			rendered, err := app.summaryRenderer(result, summaryadapter.RenderOptions{
				ConfigPath:    app.configPath,
				ShowAllSkills: allSkills,
			})
			if err != nil {
				return fmt.Errorf("render summary: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&quickstart, "quickstart", false, "Offer the top providers first, with a 'More options...' escape")
	cmd.Flags().BoolVar(&allowSkip, "allow-skip", false, "Allow skipping sign-in")
	cmd.Flags().StringVar(&authChoice, "auth-choice", "", "Use this auth choice instead of prompting (see 'onboard auth choices')")
	cmd.Flags().BoolVar(&allSkills, "all-skills", false, "List skills that were not included")

	return cmd
}
