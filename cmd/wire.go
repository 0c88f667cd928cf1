package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/avd-sessions-cli/internal/adapters/arm"
	tomljournal "github.com/bnema/avd-sessions-cli/internal/adapters/journal/toml"
	reportadapter "github.com/bnema/avd-sessions-cli/internal/adapters/render/report"
	"github.com/bnema/avd-sessions-cli/internal/application"
	"github.com/bnema/avd-sessions-cli/internal/domain"
	"github.com/bnema/avd-sessions-cli/internal/ports"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type app struct {
	service        *application.DisconnectService
	reportRenderer func(domain.RunSummary) (string, error)
}

func wireApp() (*app, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if level, err := log.ParseLevel(settings.GetString("log.level")); err == nil {
		log.SetLevel(level)
	}

	journal, err := tomljournal.NewJournal(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire run journal: %w", err)
	}

	client := arm.NewClient(arm.Config{
		BaseURL:        settings.GetString("api.base_url"),
		SubscriptionID: settings.GetString("subscription_id"),
		Token:          os.Getenv("AVDS_ARM_TOKEN"),
		APIVersion:     settings.GetString("api.version"),
	})

	return &app{
		service:        application.NewDisconnectService(client, journal, ports.SystemClock{}),
		reportRenderer: reportadapter.Render,
	}, nil
}

// loadSettings resolves ~/.avds/config.toml with env overrides. The
// bearer token is deliberately env-only and never read from the file.
func loadSettings() (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".avds"))

	v.SetDefault("api.base_url", arm.DefaultBaseURL)
	v.SetDefault("api.version", arm.DefaultAPIVersion)

	_ = v.BindEnv("subscription_id", "AVDS_SUBSCRIPTION_ID")
	_ = v.BindEnv("api.base_url", "AVDS_ARM_BASE_URL")
	_ = v.BindEnv("api.version", "AVDS_ARM_API_VERSION")
	_ = v.BindEnv("log.level", "AVDS_LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return v, nil
}
