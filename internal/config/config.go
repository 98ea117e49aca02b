package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/tanviarora/aurum/internal/auth"
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Display DisplayConfig `mapstructure:"display"`
	MockAPI MockAPIConfig `mapstructure:"mock_api"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type AuthConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
}

type DisplayConfig struct {
	PageSize int `mapstructure:"page_size"`
}

type MockAPIConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load reads configuration from config.yaml and environment variables.
// Everything has a default, so a missing config file is not an error:
// out of the box the console points at the local development backend.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.aurum/")
	v.AddConfigPath("/etc/aurum/")

	v.SetEnvPrefix("AURUM")
	v.AutomaticEnv()

	v.SetDefault("api.base_url", "http://localhost:5000/api")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("auth.credentials_file", auth.DefaultPath())
	v.SetDefault("display.page_size", 10)
	v.SetDefault("mock_api.addr", ":5000")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
