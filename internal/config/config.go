package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Journal Journal `mapstructure:"journal"`
	AI      AI      `mapstructure:"ai"`
	Logger  Logger  `mapstructure:"logger"`
}

// Journal holds the configuration for the journal itself.
type Journal struct {
	Language  string `mapstructure:"language"` // "en" or "pt"
	ExportDir string `mapstructure:"export_dir"`
}

// AI holds the configuration for the coaching-comment API.
type AI struct {
	ApiKey         string  `mapstructure:"api_key"`
	BaseURL        string  `mapstructure:"base_url"`
	Model          string  `mapstructure:"model"`
	Enabled        bool    `mapstructure:"enabled"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")

	// Allow environment variables to override config file,
	// e.g. AI_API_KEY overrides ai.api_key.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("journal.language", "pt")
	viper.SetDefault("journal.export_dir", ".")
	viper.SetDefault("ai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("ai.model", "gpt-4o-mini")
	viper.SetDefault("ai.enabled", true)
	viper.SetDefault("ai.rate_limit", 1) // requests per second
	viper.SetDefault("ai.rate_limit_burst", 1)
	viper.SetDefault("ai.timeout_seconds", 30)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")

	err = viper.ReadInConfig()
	if err != nil {
		// A missing config file is fine, defaults and env cover it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
