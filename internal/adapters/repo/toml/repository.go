package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/agent-onboard/internal/domain"
	"github.com/bnema/agent-onboard/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName       = "config"
	configType       = "toml"
	onboardPathKey   = "onboard.path"
	onboardFileMode  = 0o600
	onboardDirMode   = 0o700
	onboardConfigDir = ".agent-onboard"
	onboardFile      = "onboard.toml"
	tempFilePattern  = ".onboard-*.toml.tmp"
)

type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ConfigRepository = (*Repository)(nil)

// NewRepository reads optional settings from ~/.agent-onboard/config.toml and
// resolves the onboarding file from the onboard.path key.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, onboardConfigDir))
	cfg.SetDefault(onboardPathKey, filepath.Join(homeDir, onboardConfigDir, onboardFile))

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	path := cfg.GetString(onboardPathKey)
	if path == "" {
		return nil, errors.New("onboard path is empty")
	}
	path, err = normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Load(ctx context.Context) (domain.Config, error) {
	if err := ctx.Err(); err != nil {
		return domain.Config{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, found, err := r.readSchema()
	if err != nil {
		return domain.Config{}, err
	}
	if !found {
		return domain.Config{}, domain.ErrConfigNotFound
	}

	return fromSchema(file), nil
}

func (r *Repository) Save(ctx context.Context, config domain.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(config))
}

func (r *Repository) readSchema() (fileSchema, bool, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, false, nil
		}
		return fileSchema{}, false, fmt.Errorf("read onboard file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, false, fmt.Errorf("decode onboard file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, false, err
	}
	file.applyDefaults()

	return file, true, nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve onboard path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), onboardDirMode); err != nil {
		return fmt.Errorf("create onboard directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode onboard file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp onboard file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp onboard file: %w", err)
	}

	if err := tempFile.Chmod(onboardFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp onboard file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp onboard file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace onboard file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.path, onboardFileMode); err != nil {
		return fmt.Errorf("chmod onboard file: %w", err)
	}

	return nil
}

func toSchema(config domain.Config) fileSchema {
	profiles := make([]profileSchema, 0, len(config.Auth.Profiles))
	for _, profile := range config.Auth.Profiles {
		profiles = append(profiles, profileSchema{
			Provider:  profile.Provider,
			Choice:    string(profile.Choice),
			Method:    string(profile.Method),
			SecretRef: profile.SecretRef,
		})
	}

	return fileSchema{
		Version:     currentSchemaVersion,
		OnboardedAt: formatTime(config.OnboardedAt),
		Auth: authSchema{
			Choice:   string(config.Auth.Choice),
			Profiles: profiles,
		},
		Skills: skillsSchema{
			StarterSet: config.Skills.StarterSet,
			Enabled:    config.Skills.Enabled,
			Disabled:   config.Skills.Disabled,
		},
	}
}

func fromSchema(file fileSchema) domain.Config {
	var profiles []domain.AuthProfile
	for _, profile := range file.Auth.Profiles {
		profiles = append(profiles, domain.AuthProfile{
			Provider:  profile.Provider,
			Choice:    domain.AuthChoice(profile.Choice),
			Method:    domain.AuthMethod(profile.Method),
			SecretRef: profile.SecretRef,
		})
	}

	return domain.Config{
		Auth: domain.AuthConfig{
			Choice:   domain.AuthChoice(file.Auth.Choice),
			Profiles: profiles,
		},
		Skills: domain.SkillsConfig{
			StarterSet: file.Skills.StarterSet,
			Enabled:    file.Skills.Enabled,
			Disabled:   file.Skills.Disabled,
		},
		OnboardedAt: parseTime(file.OnboardedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
