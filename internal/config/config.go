// Package config builds the process-wide Settings struct once at startup.
// Precedence: environment (NBX_ prefix, plus OPENAI_API_KEY for the
// credential) over config file over built-in defaults. A .env file in the
// working directory is folded into the environment first.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	environmentPrefix       = "NBX"
	apiKeyEnvironmentName   = "OPENAI_API_KEY"
	defaultModel            = "gpt-4o-mini"
	defaultTemperature      = 0.3
	defaultMaxTokens        = 1000
	defaultConfigName       = "nb-explainify"
	settingAPIKey           = "api_key"
	settingBaseURL          = "base_url"
	settingModel            = "model"
	settingTemperature      = "temperature"
	settingMaxTokens        = "max_tokens"
	settingFormatterCommand = "formatter_command"
)

// ConfigError is a fatal construction-time problem, raised before any
// pass runs.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "config: " + e.Reason }

// Settings carries everything the gateway and formatter need. It is
// constructed once and passed by reference; there is no ambient global
// state.
type Settings struct {
	APIKey           string
	BaseURL          string
	Model            string
	Temperature      float64
	MaxTokens        int
	FormatterCommand []string
}

// Load resolves Settings from .env, the environment, and an optional yaml
// config file. An explicit configPath must exist; the default config file
// is optional.
func Load(configPath string) (Settings, error) {
	// Same behavior as the original dotenv loading: silently skip a
	// missing .env.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(settingModel, defaultModel)
	v.SetDefault(settingTemperature, defaultTemperature)
	v.SetDefault(settingMaxTokens, defaultMaxTokens)
	v.SetDefault(settingFormatterCommand, []string{"black", "-q", "-"})

	v.SetEnvPrefix(environmentPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(settingAPIKey, environmentPrefix+"_API_KEY", apiKeyEnvironmentName); err != nil {
		return Settings{}, err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Settings{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	settings := Settings{
		APIKey:           v.GetString(settingAPIKey),
		BaseURL:          v.GetString(settingBaseURL),
		Model:            v.GetString(settingModel),
		Temperature:      v.GetFloat64(settingTemperature),
		MaxTokens:        v.GetInt(settingMaxTokens),
		FormatterCommand: v.GetStringSlice(settingFormatterCommand),
	}
	return settings, nil
}

// Validate checks the fields a generation run cannot start without.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.APIKey) == "" {
		return &ConfigError{Reason: apiKeyEnvironmentName + " must be set (environment or .env file)"}
	}
	if strings.TrimSpace(s.Model) == "" {
		return &ConfigError{Reason: "model must not be empty"}
	}
	return nil
}
