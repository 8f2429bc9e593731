package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	History HistoryConfig
	UI      UIConfig
	Player  PlayerConfig
}

// HistoryConfig holds leaderboard persistence settings.
type HistoryConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	TopScores int
}

// PlayerConfig holds roster defaults.
type PlayerConfig struct {
	DefaultName string
}

// Load reads configuration from file and env. Env var overrides use prefix
// YAHOOZY_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("history.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "yahoozy", "history"))
	v.SetDefault("ui.top_scores", 10)
	v.SetDefault("player.default_name", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("YAHOOZY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "yahoozy"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("YAHOOZY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.TopScores < 1 {
		c.UI.TopScores = 10
	}
	return c, nil
}
