package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/agent-onboard/internal/domain"
	"github.com/bnema/agent-onboard/internal/ports"
	"github.com/sirupsen/logrus"
)

var ErrEmptyAPIKey = errors.New("api key is empty")

const envSecretRefPrefix = "env:"

type Service struct {
	repo   ports.ConfigRepository
	store  ports.SecretStore
	clock  ports.Clock
	env    Environment
	logger logrus.FieldLogger
}

func NewService(repo ports.ConfigRepository, store ports.SecretStore, clock ports.Clock, env Environment, logger logrus.FieldLogger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	return &Service{
		repo:   repo,
		store:  store,
		clock:  clock,
		env:    env.withDefaults(),
		logger: logger,
	}
}

type OnboardOptions struct {
	Quickstart bool
	AllowSkip  bool
	// Choice bypasses the auth prompt when set.
	Choice domain.AuthChoice
}

type OnboardResult struct {
	Choice  domain.AuthChoice
	Profile *domain.AuthProfile
	Config  domain.Config
	Skills  []SkillStatus
}

// LoadConfig returns the stored config, or a zero config when none exists yet.
func (s *Service) LoadConfig(ctx context.Context) (domain.Config, error) {
	config, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrConfigNotFound) {
			return domain.Config{}, nil
		}
		return domain.Config{}, fmt.Errorf("load config: %w", err)
	}

	return config, nil
}

func (s *Service) AuthChoiceGroups(ctx context.Context, includeSkip bool) ([]domain.AuthGroup, *domain.AuthOption, error) {
	config, err := s.LoadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	groups, skip := BuildAuthChoiceGroups(config.Auth.Profiles, includeSkip)
	return groups, skip, nil
}

// Onboard runs the wizard: auth choice, credential capture, starter skills, save.
func (s *Service) Onboard(ctx context.Context, prompter ports.Prompter, opts OnboardOptions) (OnboardResult, error) {
	config, err := s.LoadConfig(ctx)
	if err != nil {
		return OnboardResult{}, err
	}

	choice, err := s.resolveChoice(ctx, prompter, config, opts)
	if err != nil {
		return OnboardResult{}, err
	}
	s.logger.WithField("choice", choice).Debug("auth choice resolved")

	result := OnboardResult{Choice: choice}
	config.Auth.Choice = choice

	var written *secretWrite
	var replacedRef string
	if !choice.IsSkip() {
		previous, hadPrevious := config.Auth.ProfileFor(providerOf(choice))
		profile, write, err := s.captureCredential(ctx, prompter, choice)
		if err != nil {
			return OnboardResult{}, err
		}
		written = write
		if hadPrevious && isStoredSecretRef(previous.SecretRef) && previous.SecretRef != profile.SecretRef {
			replacedRef = previous.SecretRef
		}
		config.Auth.UpsertProfile(profile)
		result.Profile = &profile
	}

	config = ApplyDefaultStarterSkills(config)
	if !config.IsOnboarded() {
		config.OnboardedAt = s.clock.Now().UTC()
	}

	if err := s.repo.Save(ctx, config); err != nil {
		if written != nil {
			if rollbackErr := s.rollbackSecret(ctx, *written); rollbackErr != nil {
				return OnboardResult{}, fmt.Errorf("save config and rollback stored secret: %w", errors.Join(err, rollbackErr))
			}
		}
		return OnboardResult{}, fmt.Errorf("save config: %w", err)
	}
	s.logger.WithField("starter_set", config.Skills.StarterSet).Debug("onboarding config saved")

	if replacedRef != "" {
		// The saved config no longer references replacedRef.
		if err := s.store.Delete(ctx, replacedRef); err != nil {
			s.logger.WithError(err).WithField("secret_ref", replacedRef).Warn("remove replaced credential")
		}
	}

	result.Config = config
	result.Skills = SkillStatuses(config.Skills, s.env)
	return result, nil
}

// SkillStatuses reports every known skill against the stored config.
func (s *Service) SkillStatuses(ctx context.Context) ([]SkillStatus, error) {
	config, err := s.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}

	return SkillStatuses(config.Skills, s.env), nil
}

// FirstTurnContext returns message with the welcome instruction prepended when it applies.
func (s *Service) FirstTurnContext(ctx context.Context, message string, newSession bool) (string, error) {
	config, err := s.LoadConfig(ctx)
	if err != nil {
		return "", err
	}

	return PrependSystemEvents(WelcomeEvents(config, newSession), message), nil
}

func (s *Service) resolveChoice(ctx context.Context, prompter ports.Prompter, config domain.Config, opts OnboardOptions) (domain.AuthChoice, error) {
	if opts.Choice != "" {
		if opts.Choice.IsSkip() {
			if !opts.AllowSkip {
				return "", fmt.Errorf("auth choice %q requires --allow-skip", opts.Choice)
			}
			return domain.AuthChoiceSkip, nil
		}
		if _, err := ResolveAuthChoice(opts.Choice); err != nil {
			return "", err
		}
		return opts.Choice, nil
	}

	groups, skip := BuildAuthChoiceGroups(config.Auth.Profiles, opts.AllowSkip)
	return PromptAuthChoiceGrouped(ctx, prompter, AuthChoicePromptParams{
		Groups:     groups,
		SkipOption: skip,
		Quickstart: opts.Quickstart,
	})
}

func (s *Service) captureCredential(ctx context.Context, prompter ports.Prompter, choice domain.AuthChoice) (domain.AuthProfile, *secretWrite, error) {
	info, err := ResolveAuthChoice(choice)
	if err != nil {
		return domain.AuthProfile{}, nil, err
	}

	profile := domain.AuthProfile{
		Provider: info.Provider,
		Choice:   info.Choice,
		Method:   info.Method,
	}

	if info.Method != domain.AuthMethodAPIKey {
		message := fmt.Sprintf("Finish signing in with `%s`.", info.LoginCommand)
		if err := prompter.Note(ctx, message, info.ProviderLabel+" sign-in"); err != nil {
			return domain.AuthProfile{}, nil, err
		}
		return profile, nil, nil
	}

	if info.EnvVar != "" {
		if value, ok := s.env.LookupEnv(info.EnvVar); ok && strings.TrimSpace(value) != "" {
			if err := prompter.Note(ctx, fmt.Sprintf("Using %s from the environment.", info.EnvVar), info.Label); err != nil {
				return domain.AuthProfile{}, nil, err
			}
			profile.SecretRef = envSecretRefPrefix + info.EnvVar
			return profile, nil, nil
		}
	}

	apiKey, err := prompter.Text(ctx, ports.TextRequest{
		Message:     fmt.Sprintf("Enter %s", info.Label),
		Placeholder: info.EnvVar,
		Mask:        true,
	})
	if err != nil {
		return domain.AuthProfile{}, nil, err
	}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return domain.AuthProfile{}, nil, fmt.Errorf("%s: %w", info.Label, ErrEmptyAPIKey)
	}

	write := secretWrite{key: info.SecretKey()}
	previous, err := s.store.Get(ctx, write.key)
	switch {
	case err == nil:
		write.previous = previous
		write.hadPrevious = true
	case !errors.Is(err, domain.ErrSecretNotFound):
		return domain.AuthProfile{}, nil, fmt.Errorf("read existing api key: %w", err)
	}

	if err := s.store.Put(ctx, write.key, apiKey); err != nil {
		return domain.AuthProfile{}, nil, fmt.Errorf("store api key: %w", err)
	}
	profile.SecretRef = write.key
	s.logger.WithField("provider", info.Provider).Debug("api key stored")

	return profile, &write, nil
}

// secretWrite records what a credential key held before it was overwritten.
type secretWrite struct {
	key         string
	previous    string
	hadPrevious bool
}

func (s *Service) rollbackSecret(ctx context.Context, write secretWrite) error {
	if write.hadPrevious {
		return s.store.Put(ctx, write.key, write.previous)
	}

	return s.store.Delete(ctx, write.key)
}

func providerOf(choice domain.AuthChoice) string {
	info, err := ResolveAuthChoice(choice)
	if err != nil {
		return ""
	}

	return info.Provider
}

func isStoredSecretRef(ref string) bool {
	return ref != "" && !strings.HasPrefix(ref, envSecretRefPrefix)
}
