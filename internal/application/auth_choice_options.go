package application

import (
	"fmt"

	"github.com/bnema/agent-onboard/internal/domain"
)

// QuickstartAuthGroupIDs lists the providers offered on the quickstart menu.
var QuickstartAuthGroupIDs = map[string]struct{}{
	"openai":    {},
	"anthropic": {},
	"google":    {},
}

type authMethodSpec struct {
	choice       domain.AuthChoice
	label        string
	hint         string
	method       domain.AuthMethod
	envVar       string
	loginCommand string
}

type providerSpec struct {
	id      string
	label   string
	hint    string
	methods []authMethodSpec
}

var providerCatalog = []providerSpec{
	{
		id:    "openai",
		label: "OpenAI",
		hint:  "ChatGPT sign-in or API key",
		methods: []authMethodSpec{
			{choice: "openai-codex", label: "ChatGPT account (OAuth)", hint: "Sign in with your ChatGPT plan", method: domain.AuthMethodOAuth, loginCommand: "codex login"},
			{choice: "openai-api-key", label: "OpenAI API key", method: domain.AuthMethodAPIKey, envVar: "OPENAI_API_KEY"},
		},
	},
	{
		id:    "anthropic",
		label: "Anthropic",
		hint:  "Claude setup-token or API key",
		methods: []authMethodSpec{
			{choice: "anthropic-setup-token", label: "Claude setup-token", hint: "Run `claude setup-token` and paste the result", method: domain.AuthMethodToken, loginCommand: "claude setup-token"},
			{choice: "anthropic-api-key", label: "Anthropic API key", method: domain.AuthMethodAPIKey, envVar: "ANTHROPIC_API_KEY"},
		},
	},
	{
		id:    "google",
		label: "Google",
		hint:  "Gemini CLI OAuth or API key",
		methods: []authMethodSpec{
			{choice: "google-gemini-cli", label: "Gemini CLI OAuth", hint: "Uses your Google account", method: domain.AuthMethodOAuth, loginCommand: "gemini"},
			{choice: "gemini-api-key", label: "Gemini API key", method: domain.AuthMethodAPIKey, envVar: "GEMINI_API_KEY"},
		},
	},
	{
		id:    "openrouter",
		label: "OpenRouter",
		hint:  "API key",
		methods: []authMethodSpec{
			{choice: "openrouter-api-key", label: "OpenRouter API key", method: domain.AuthMethodAPIKey, envVar: "OPENROUTER_API_KEY"},
		},
	},
	{
		id:    "xai",
		label: "xAI (Grok)",
		hint:  "API key",
		methods: []authMethodSpec{
			{choice: "xai-api-key", label: "xAI API key", method: domain.AuthMethodAPIKey, envVar: "XAI_API_KEY"},
		},
	},
	{
		id:    "moonshot",
		label: "Moonshot AI",
		hint:  "Kimi K2 API key",
		methods: []authMethodSpec{
			{choice: "moonshot-api-key", label: "Moonshot API key", method: domain.AuthMethodAPIKey, envVar: "MOONSHOT_API_KEY"},
		},
	},
	{
		id:    "ollama",
		label: "Ollama",
		hint:  "Local models, no sign-in needed",
	},
}

var skipAuthOption = domain.AuthOption{Value: domain.AuthChoiceSkip, Label: "Skip for now"}

// AuthChoiceInfo describes a concrete auth choice from the provider catalog.
type AuthChoiceInfo struct {
	Provider      string
	ProviderLabel string
	Choice        domain.AuthChoice
	Label         string
	Method        domain.AuthMethod
	EnvVar        string
	LoginCommand  string
}

// SecretKey is the secret-store key holding this choice's credential.
func (i AuthChoiceInfo) SecretKey() string {
	return fmt.Sprintf("%s/%s", i.Provider, i.Method)
}

// BuildAuthChoiceGroups returns every catalog provider in display order, with
// hints marking providers that already have a stored profile. The skip option
// is returned only when includeSkip is set.
func BuildAuthChoiceGroups(profiles []domain.AuthProfile, includeSkip bool) ([]domain.AuthGroup, *domain.AuthOption) {
	configured := make(map[string]struct{}, len(profiles))
	for _, profile := range profiles {
		configured[profile.Provider] = struct{}{}
	}

	groups := make([]domain.AuthGroup, 0, len(providerCatalog))
	for _, provider := range providerCatalog {
		group := domain.AuthGroup{
			ID:      provider.id,
			Label:   provider.label,
			Hint:    provider.hint,
			Options: make([]domain.AuthOption, 0, len(provider.methods)),
		}
		if _, ok := configured[provider.id]; ok {
			group.Hint = configuredHint(group.Hint)
		}
		for _, method := range provider.methods {
			group.Options = append(group.Options, domain.AuthOption{
				Value: method.choice,
				Label: method.label,
				Hint:  method.hint,
			})
		}
		groups = append(groups, group)
	}

	if !includeSkip {
		return groups, nil
	}

	skip := skipAuthOption
	return groups, &skip
}

// ResolveAuthChoice looks a concrete choice up in the provider catalog.
func ResolveAuthChoice(choice domain.AuthChoice) (AuthChoiceInfo, error) {
	for _, provider := range providerCatalog {
		for _, method := range provider.methods {
			if method.choice != choice {
				continue
			}
			return AuthChoiceInfo{
				Provider:      provider.id,
				ProviderLabel: provider.label,
				Choice:        method.choice,
				Label:         method.label,
				Method:        method.method,
				EnvVar:        method.envVar,
				LoginCommand:  method.loginCommand,
			}, nil
		}
	}

	return AuthChoiceInfo{}, fmt.Errorf("%w %q", domain.ErrUnknownAuthChoice, choice)
}

func configuredHint(hint string) string {
	if hint == "" {
		return "configured"
	}

	return hint + " (configured)"
}
