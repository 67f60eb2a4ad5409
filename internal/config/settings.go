package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rgehrsitz/eisim/internal/i18n"
	"github.com/spf13/viper"
)

// DefaultSettingsName is the settings file looked up in the working
// directory when no path is given.
const DefaultSettingsName = "eisim"

// Settings are the application settings shared by the binaries.
type Settings struct {
	Language       string `mapstructure:"language"`
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
	RegulatoryFile string `mapstructure:"regulatory_file"`
	APIAddress     string `mapstructure:"api_address"`
}

// LoadSettings reads settings from path, or from an optional eisim.yaml in
// the working directory when path is empty. EISIM_* environment variables
// override file values.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("language", i18n.DefaultLanguage)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("regulatory_file", "")
	v.SetDefault("api_address", ":8080")

	v.SetEnvPrefix("EISIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(DefaultSettingsName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read settings: %w", err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	settings.Language = i18n.MatchLanguage(settings.Language)
	return &settings, nil
}

// Validate checks the log level and format.
func (s *Settings) Validate() error {
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", s.LogLevel)
	}
	switch s.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", s.LogFormat)
	}
	return nil
}
