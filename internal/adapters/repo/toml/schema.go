package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int          `toml:"version"`
	OnboardedAt string       `toml:"onboarded_at,omitempty"`
	Auth        authSchema   `toml:"auth"`
	Skills      skillsSchema `toml:"skills"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type authSchema struct {
	Choice   string          `toml:"choice"`
	Profiles []profileSchema `toml:"profiles,omitempty"`
}

type profileSchema struct {
	Provider  string `toml:"provider"`
	Choice    string `toml:"choice"`
	Method    string `toml:"method"`
	SecretRef string `toml:"secret_ref,omitempty"`
}

type skillsSchema struct {
	StarterSet bool     `toml:"starter_set"`
	Enabled    []string `toml:"enabled,omitempty"`
	Disabled   []string `toml:"disabled,omitempty"`
}
