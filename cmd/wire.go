package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/agent-onboard/internal/adapters/prompter/line"
	"github.com/bnema/agent-onboard/internal/adapters/prompter/tui"
	summaryadapter "github.com/bnema/agent-onboard/internal/adapters/render/summary"
	tomlrepo "github.com/bnema/agent-onboard/internal/adapters/repo/toml"
	filestore "github.com/bnema/agent-onboard/internal/adapters/secrets/file"
	"github.com/bnema/agent-onboard/internal/application"
	"github.com/bnema/agent-onboard/internal/ports"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const logLevelKey = "log.level"

type app struct {
	service         *application.Service
	settings        *viper.Viper
	logger          *logrus.Logger
	configPath      string
	summaryRenderer func(application.OnboardResult, summaryadapter.RenderOptions) (string, error)
	isTerminal      func(io.Reader) bool
}

func wireApp() (*app, error) {
	settings := viper.New()
	settings.SetEnvPrefix("ONBOARD")
	settings.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	settings.AutomaticEnv()
	settings.SetDefault(logLevelKey, logrus.WarnLevel.String())

	repo, err := tomlrepo.NewRepository(settings)
	if err != nil {
		return nil, fmt.Errorf("wire config repository: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	store := filestore.NewStore(envOrDefault("ONBOARD_CREDENTIALS_DIR", filepath.Join(homeDir, ".agent-onboard", "credentials")))

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &app{
		service:         application.NewService(repo, store, ports.SystemClock{}, application.SystemEnvironment(), logger),
		settings:        settings,
		logger:          logger,
		configPath:      repo.Path(),
		summaryRenderer: summaryadapter.Render,
		isTerminal:      isTerminal,
	}, nil
}

// configureLogger applies the --log-level flag, falling back to log.level from settings.
func (a *app) configureLogger(out io.Writer, flagLevel string) error {
	raw := flagLevel
	if raw == "" {
		raw = a.settings.GetString(logLevelKey)
	}

	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	a.logger.SetOutput(out)
	a.logger.SetLevel(level)
	return nil
}

func (a *app) prompter(in io.Reader, out io.Writer) ports.Prompter {
	if a.isTerminal(in) {
		a.logger.Debug("using terminal prompter")
		return tui.NewPrompter(in, out)
	}

	a.logger.Debug("stdin is not a terminal, using line prompter")
	return line.NewPrompter(in, out)
}

func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd())) //nolint:gosec // fd conversion is safe on all supported platforms
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
