package domain

import "time"

type Config struct {
	Auth        AuthConfig
	Skills      SkillsConfig
	OnboardedAt time.Time
}

type AuthConfig struct {
	Choice   AuthChoice
	Profiles []AuthProfile
}

type SkillsConfig struct {
	// StarterSet auto-includes starter skills whose requirements are met.
	StarterSet bool
	Enabled    []string
	Disabled   []string
}

// ProfileFor returns the stored profile for provider, if any.
func (c AuthConfig) ProfileFor(provider string) (AuthProfile, bool) {
	for _, profile := range c.Profiles {
		if profile.Provider == provider {
			return profile, true
		}
	}

	return AuthProfile{}, false
}

// UpsertProfile replaces the profile for the same provider or appends it.
func (c *AuthConfig) UpsertProfile(profile AuthProfile) {
	if c == nil {
		return
	}

	for i := range c.Profiles {
		if c.Profiles[i].Provider == profile.Provider {
			c.Profiles[i] = profile
			return
		}
	}

	c.Profiles = append(c.Profiles, profile)
}

func (c Config) IsOnboarded() bool {
	return !c.OnboardedAt.IsZero()
}
