package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environments the client can be pointed at.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Settings holds the static client configuration. Values come from defaults,
// an optional boatid.yaml file, and BOATID_* environment variables, in
// increasing order of precedence.
type Settings struct {
	Environment    string
	DevBaseURL     string
	ProdBaseURL    string
	RequestTimeout time.Duration
	DefaultFields  []string
	PerPage        int
	ShellPort      string
}

// Load reads the client settings. A missing config file is not an error;
// defaults and environment variables are enough to run.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigName("boatid")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/boatid")

	v.SetEnvPrefix("BOATID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("environment", EnvDevelopment)
	v.SetDefault("api.development_url", "http://localhost:8000/api/v1")
	v.SetDefault("api.production_url", "https://api.tidewater.app/api/v1")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("identify.fields", []string{"make", "model", "description", "boat_type"})
	v.SetDefault("list.per_page", 10)
	v.SetDefault("shell.port", "8787")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	settings := &Settings{
		Environment:    v.GetString("environment"),
		DevBaseURL:     v.GetString("api.development_url"),
		ProdBaseURL:    v.GetString("api.production_url"),
		RequestTimeout: v.GetDuration("api.timeout"),
		DefaultFields:  v.GetStringSlice("identify.fields"),
		PerPage:        v.GetInt("list.per_page"),
		ShellPort:      v.GetString("shell.port"),
	}

	if settings.Environment != EnvDevelopment && settings.Environment != EnvProduction {
		return nil, fmt.Errorf("unknown environment: %s", settings.Environment)
	}

	return settings, nil
}

// BaseURL resolves the API base URL for the configured environment.
func (s *Settings) BaseURL() string {
	if s.Environment == EnvProduction {
		return s.ProdBaseURL
	}
	return s.DevBaseURL
}
