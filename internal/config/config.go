package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/knightly/knightly/internal/status"
)

const (
	defaultCelebrationSeconds = 3
	defaultBarWidth           = 40
)

// Config holds all application configuration
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Status  StatusConfig  `mapstructure:"status"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DataConfig holds where missions and progress live
type DataConfig struct {
	Dir      string `mapstructure:"dir"`      // progress.json and settings.db
	Missions string `mapstructure:"missions"` // optional catalogue file; empty uses the built-in one
}

// StatusConfig holds the status store settings
type StatusConfig struct {
	Key string `mapstructure:"key"`
}

// UIConfig holds dashboard settings
type UIConfig struct {
	CelebrationSeconds int `mapstructure:"celebration_seconds"`
	BarWidth           int `mapstructure:"bar_width"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"` // empty logs to the data dir
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir: defaultDataPath(),
		},
		Status: StatusConfig{
			Key: status.DefaultKey,
		},
		UI: UIConfig{
			CelebrationSeconds: defaultCelebrationSeconds,
			BarWidth:           defaultBarWidth,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// CelebrationDuration is how long the completion overlay stays up.
func (c *Config) CelebrationDuration() time.Duration {
	return time.Duration(c.UI.CelebrationSeconds) * time.Second
}

// ProgressDir returns the directory of the mission progress file.
func (c *Config) ProgressDir() string {
	return c.Data.Dir
}

// LogPath returns the log file, defaulting to knightly.log in the data dir.
func (c *Config) LogPath() string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return filepath.Join(c.Data.Dir, "knightly.log")
}

// SettingsPath returns the path of the status database.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Data.Dir, "settings.db")
}

func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "knightly")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "knightly")
	}
}

func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "knightly")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "knightly")
	}
}

// Load reads configuration from file and environment. An explicit path must
// exist; otherwise a missing config file falls back to defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("data.dir", cfg.Data.Dir)
	v.SetDefault("data.missions", cfg.Data.Missions)
	v.SetDefault("status.key", cfg.Status.Key)
	v.SetDefault("ui.celebration_seconds", cfg.UI.CelebrationSeconds)
	v.SetDefault("ui.bar_width", cfg.UI.BarWidth)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. KNIGHTLY_DATA_DIR
	v.SetEnvPrefix("KNIGHTLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.UI.CelebrationSeconds <= 0 {
		c.UI.CelebrationSeconds = defaultCelebrationSeconds
	}
	if c.UI.BarWidth <= 0 {
		c.UI.BarWidth = defaultBarWidth
	}
	if c.Status.Key == "" {
		c.Status.Key = status.DefaultKey
	}
	if strings.HasPrefix(c.Data.Dir, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			c.Data.Dir = filepath.Join(home, c.Data.Dir[1:])
		}
	}
}
