package summary

import (
	"testing"

	"github.com/bnema/agent-onboard/internal/application"
	"github.com/bnema/agent-onboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSkills() []application.SkillStatus {
	return []application.SkillStatus{
		{Skill: domain.Skill{Key: "weather"}, Starter: true, Included: true},
		{Skill: domain.Skill{Key: "canvas"}, Starter: true, Included: true},
		{Skill: domain.Skill{Key: "github"}, Starter: true, Missing: []string{"bin:gh"}},
	}
}

func TestRenderAPIKeyProfile(t *testing.T) {
	output, err := Render(application.OnboardResult{
		Choice: "openai-api-key",
		Profile: &domain.AuthProfile{
			Provider:  "openai",
			Choice:    "openai-api-key",
			Method:    domain.AuthMethodAPIKey,
			SecretRef: "openai/api_key",
		},
		Skills: sampleSkills(),
	}, RenderOptions{ConfigPath: "/tmp/onboard.toml"})

	require.NoError(t, err)
	assert.Contains(t, output, "Onboarding complete")
	assert.Contains(t, output, "config: /tmp/onboard.toml")
	assert.Contains(t, output, "auth: openai-api-key")
	assert.Contains(t, output, "provider: openai (API key)")
	assert.Contains(t, output, "credential: stored as openai/api_key")
	assert.Contains(t, output, "skills: 2 included")
	assert.Contains(t, output, "✓ weather")
	assert.NotContains(t, output, "github")
}

func TestRenderSkippedAuth(t *testing.T) {
	output, err := Render(application.OnboardResult{Choice: domain.AuthChoiceSkip}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "auth: skipped")
	assert.Contains(t, output, "skills: 0 included")
	assert.Contains(t, output, "none")
}

func TestRenderEnvCredentialAndOAuthPending(t *testing.T) {
	tests := []struct {
		name    string
		profile domain.AuthProfile
		want    string
	}{
		{
			name:    "env",
			profile: domain.AuthProfile{Provider: "xai", Method: domain.AuthMethodAPIKey, SecretRef: "env:XAI_API_KEY"},
			want:    "credential: from $XAI_API_KEY",
		},
		{
			name:    "oauth",
			profile: domain.AuthProfile{Provider: "openai", Method: domain.AuthMethodOAuth},
			want:    "credential: pending sign-in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := tt.profile
			output, err := Render(application.OnboardResult{Choice: "x", Profile: &profile}, RenderOptions{})
			require.NoError(t, err)
			assert.Contains(t, output, tt.want)
		})
	}
}

func TestRenderSkillListAllShowsMissingRequirements(t *testing.T) {
	output := RenderSkillList(sampleSkills(), true)

	assert.Contains(t, output, "skills: 2 included")
	assert.Contains(t, output, "· github (missing bin:gh)")
}
