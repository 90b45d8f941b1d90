package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Notifier NotifierConfig `mapstructure:"notifier"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DatabaseConfig holds database settings
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// SyncConfig holds ingestion settings
type SyncConfig struct {
	Interval string `mapstructure:"interval"` // duration string, e.g. "5m"
}

// NotifierConfig holds reminder delivery settings
type NotifierConfig struct {
	Token   string `mapstructure:"token"`   // bot token used to post reminders
	Channel string `mapstructure:"channel"` // channel or DM the reminders go to
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Load reads configuration from an optional config file, .env, and the
// environment. Environment variables use the COLLECTOR_ prefix, e.g.
// COLLECTOR_NOTIFIER_TOKEN.
func Load(cfgFile string) (*Config, error) {
	// .env is optional; missing is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("database.path", "./schedules.db")
	v.SetDefault("sync.interval", "5m")
	// Empty defaults register the keys so environment overrides are seen by
	// Unmarshal.
	v.SetDefault("notifier.token", "")
	v.SetDefault("notifier.channel", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stdout")

	v.SetEnvPrefix("COLLECTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
