// Package config provides configuration for the assistant.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Model settings
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
	LLMTimeoutMs int    `mapstructure:"LLM_TIMEOUT_MS"`

	// Catalog and conversation settings
	SlotDaysAhead       int  `mapstructure:"SLOT_DAYS_AHEAD"`
	SessionHistoryLimit int  `mapstructure:"SESSION_HISTORY_LIMIT"`
	ChatRawToolResults  bool `mapstructure:"CHAT_RAW_TOOL_RESULTS"`
}

// LLMTimeout returns the model call timeout as a duration.
func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutMs) * time.Millisecond
}

// IsProduction checks if the environment is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads config values from a config file, environment variables, or
// defaults.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("LLM_TIMEOUT_MS", 60000)
	viper.SetDefault("SLOT_DAYS_AHEAD", 14)
	viper.SetDefault("SESSION_HISTORY_LIMIT", 20)
	viper.SetDefault("CHAT_RAW_TOOL_RESULTS", true)

	// A config file is optional; environment variables and defaults cover
	// every key.
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
