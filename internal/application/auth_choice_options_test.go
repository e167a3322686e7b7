package application

import (
	"testing"

	"github.com/bnema/agent-onboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAuthChoiceGroupsKeepsCatalogOrderAndUniqueness(t *testing.T) {
	t.Parallel()

	groups, skip := BuildAuthChoiceGroups(nil, false)
	assert.Nil(t, skip)

	ids := make(map[string]struct{}, len(groups))
	for _, group := range groups {
		_, dup := ids[group.ID]
		require.False(t, dup, "duplicate group id %q", group.ID)
		ids[group.ID] = struct{}{}

		values := make(map[domain.AuthChoice]struct{}, len(group.Options))
		for _, option := range group.Options {
			_, dup := values[option.Value]
			require.False(t, dup, "duplicate option %q in %q", option.Value, group.ID)
			values[option.Value] = struct{}{}
		}
	}

	assert.Equal(t, "openai", groups[0].ID)
	assert.Equal(t, domain.AuthChoice("openai-codex"), groups[0].Options[0].Value)
	assert.Contains(t, ids, "ollama")
	for id := range QuickstartAuthGroupIDs {
		assert.Contains(t, ids, id)
	}
}

func TestBuildAuthChoiceGroupsIncludesSkipWhenRequested(t *testing.T) {
	t.Parallel()

	_, skip := BuildAuthChoiceGroups(nil, true)
	require.NotNil(t, skip)
	assert.Equal(t, domain.AuthChoiceSkip, skip.Value)
}

func TestBuildAuthChoiceGroupsMarksConfiguredProviders(t *testing.T) {
	t.Parallel()

	groups, _ := BuildAuthChoiceGroups([]domain.AuthProfile{{Provider: "anthropic"}}, false)

	for _, group := range groups {
		switch group.ID {
		case "anthropic":
			assert.Equal(t, "Claude setup-token or API key (configured)", group.Hint)
		case "openai":
			assert.NotContains(t, group.Hint, "configured")
		}
	}
}

func TestResolveAuthChoice(t *testing.T) {
	t.Parallel()

	info, err := ResolveAuthChoice("gemini-api-key")
	require.NoError(t, err)
	assert.Equal(t, "google", info.Provider)
	assert.Equal(t, domain.AuthMethodAPIKey, info.Method)
	assert.Equal(t, "GEMINI_API_KEY", info.EnvVar)
	assert.Equal(t, "google/api_key", info.SecretKey())

	info, err = ResolveAuthChoice("openai-codex")
	require.NoError(t, err)
	assert.Equal(t, domain.AuthMethodOAuth, info.Method)
	assert.NotEmpty(t, info.LoginCommand)

	_, err = ResolveAuthChoice("skip")
	require.ErrorIs(t, err, domain.ErrUnknownAuthChoice)

	_, err = ResolveAuthChoice("__back")
	require.ErrorIs(t, err, domain.ErrUnknownAuthChoice)
}
