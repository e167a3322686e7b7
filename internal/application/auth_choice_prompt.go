package application

import (
	"context"

	"github.com/bnema/agent-onboard/internal/domain"
	"github.com/bnema/agent-onboard/internal/ports"
)

const (
	authChoiceBackValue = "__back"
	authChoiceMoreValue = "__more__"

	quickstartMessage    = "How do you want to sign in?"
	providerMessage      = "Model/auth provider"
	allProvidersMessage  = "All providers"
	noAuthMethodsMessage = "No auth methods available for that provider."
	noAuthMethodsTitle   = "Model/auth choice"
)

type quickstartOverride struct {
	label string
	hint  string
}

var quickstartOverrides = map[string]quickstartOverride{
	"openai":    {label: "OpenAI", hint: "Recommended — sign in with your ChatGPT account"},
	"anthropic": {label: "Anthropic", hint: "Sign in with your Claude account"},
	"google":    {label: "Google Gemini", hint: "Use your Google account"},
}

type AuthChoicePromptParams struct {
	Groups     []domain.AuthGroup
	SkipOption *domain.AuthOption
	Quickstart bool
}

// PromptAuthChoiceGrouped asks for a provider and then one of its auth methods.
// It returns domain.AuthChoiceSkip or a concrete method value. Prompter errors
// are returned unchanged.
func PromptAuthChoiceGrouped(ctx context.Context, prompter ports.Prompter, params AuthChoicePromptParams) (domain.AuthChoice, error) {
	available := make([]domain.AuthGroup, 0, len(params.Groups))
	for _, group := range params.Groups {
		if group.HasOptions() {
			available = append(available, group)
		}
	}

	showFullList := false
	if params.Quickstart {
		quickstart := make([]domain.AuthGroup, 0, len(QuickstartAuthGroupIDs))
		for _, group := range available {
			if _, ok := QuickstartAuthGroupIDs[group.ID]; ok {
				quickstart = append(quickstart, group)
			}
		}

		options := make([]ports.SelectOption, 0, len(quickstart)+2)
		for _, group := range quickstart {
			option := ports.SelectOption{Value: group.ID, Label: group.Label, Hint: group.Hint}
			if override, ok := quickstartOverrides[group.ID]; ok {
				option.Label = override.label
				option.Hint = override.hint
			}
			options = append(options, option)
		}
		options = append(options, ports.SelectOption{Value: authChoiceMoreValue, Label: "More options..."})
		options = appendSkipOption(options, params.SkipOption)

		selection, err := prompter.Select(ctx, ports.SelectRequest{Message: quickstartMessage, Options: options})
		if err != nil {
			return "", err
		}
		if domain.AuthChoice(selection).IsSkip() {
			return domain.AuthChoiceSkip, nil
		}
		if selection != authChoiceMoreValue {
			if group, ok := findGroup(quickstart, selection); ok && group.HasOptions() {
				// The first listed method is the simplest one.
				return group.Options[0].Value, nil
			}
		}
		showFullList = true
	}

	message := providerMessage
	if showFullList {
		message = allProvidersMessage
	}

	providerOptions := make([]ports.SelectOption, 0, len(available)+1)
	for _, group := range available {
		providerOptions = append(providerOptions, ports.SelectOption{Value: group.ID, Label: group.Label, Hint: group.Hint})
	}
	providerOptions = appendSkipOption(providerOptions, params.SkipOption)

	for {
		selection, err := prompter.Select(ctx, ports.SelectRequest{Message: message, Options: providerOptions})
		if err != nil {
			return "", err
		}
		if domain.AuthChoice(selection).IsSkip() {
			return domain.AuthChoiceSkip, nil
		}

		group, ok := findGroup(available, selection)
		if !ok || !group.HasOptions() {
			if err := prompter.Note(ctx, noAuthMethodsMessage, noAuthMethodsTitle); err != nil {
				return "", err
			}
			continue
		}

		if len(group.Options) == 1 {
			return group.Options[0].Value, nil
		}

		methodOptions := make([]ports.SelectOption, 0, len(group.Options)+1)
		for _, option := range group.Options {
			methodOptions = append(methodOptions, ports.SelectOption{Value: string(option.Value), Label: option.Label, Hint: option.Hint})
		}
		methodOptions = append(methodOptions, ports.SelectOption{Value: authChoiceBackValue, Label: "Back"})

		method, err := prompter.Select(ctx, ports.SelectRequest{Message: group.Label + " auth method", Options: methodOptions})
		if err != nil {
			return "", err
		}
		if method == authChoiceBackValue {
			continue
		}

		return domain.AuthChoice(method), nil
	}
}

func appendSkipOption(options []ports.SelectOption, skip *domain.AuthOption) []ports.SelectOption {
	if skip == nil {
		return options
	}

	return append(options, ports.SelectOption{Value: string(skip.Value), Label: skip.Label, Hint: skip.Hint})
}

func findGroup(groups []domain.AuthGroup, id string) (domain.AuthGroup, bool) {
	for _, group := range groups {
		if group.ID == id {
			return group, true
		}
	}

	return domain.AuthGroup{}, false
}
