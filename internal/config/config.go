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
	Database DatabaseConfig
	Board    BoardConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// BoardConfig holds board seeding and presentation settings.
type BoardConfig struct {
	// SeedLanes are the lanes created on a fresh database, in order.
	SeedLanes []string `mapstructure:"seed_lanes"`
	// LaneWidth is the rendered column width in cells.
	LaneWidth int `mapstructure:"lane_width"`
}

// Load reads configuration from file and env. Env var overrides use prefix KANBA_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "kanba", "kanba.db"))
	v.SetDefault("board.seed_lanes", []string{"Todo", "Doing", "Done"})
	v.SetDefault("board.lane_width", 28)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("KANBA_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "kanba"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KANBA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Board.LaneWidth < 12 {
		c.Board.LaneWidth = 12
	}
	return c, nil
}
