package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	DataDir string       `mapstructure:"data_dir"`
	Window  WindowConfig `mapstructure:"window"`
	Import  ImportConfig `mapstructure:"import"`
	Panels  PanelsConfig `mapstructure:"panels"`
}

type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type ImportConfig struct {
	Pattern string `mapstructure:"pattern"`
	Watch   bool   `mapstructure:"watch"`
}

// PanelsConfig remembers the last folder imported into each panel so startup
// can restore both lists without asking again.
type PanelsConfig struct {
	Left  PanelConfig `mapstructure:"left"`
	Right PanelConfig `mapstructure:"right"`
}

type PanelConfig struct {
	Folder string `mapstructure:"folder"`
}

const configFileName = "config.yaml"

// Load reads the configuration from <data_dir>/config.yaml, applying
// defaults and LINKMAN_* environment overrides. A missing or unreadable
// config file is not an error; defaults are used instead.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	defaultDataDir := filepath.Join(homeDir, ".linkman")

	v := viper.New()
	v.SetDefault("data_dir", defaultDataDir)
	v.SetDefault("window.width", 120)
	v.SetDefault("window.height", 40)
	v.SetDefault("import.pattern", "*.url")
	v.SetDefault("import.watch", false)
	v.SetDefault("panels.left.folder", "")
	v.SetDefault("panels.right.folder", "")

	// Environment variable overrides
	v.SetEnvPrefix("LINKMAN")
	v.AutomaticEnv()
	v.BindEnv("data_dir", "LINKMAN_DATA_DIR")
	v.BindEnv("import.pattern", "LINKMAN_IMPORT_PATTERN")
	v.BindEnv("import.watch", "LINKMAN_IMPORT_WATCH")

	// The config file lives inside the data dir, so resolve that first
	// (env override included) before looking for the file.
	dataDir := v.GetString("data_dir")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)

	// Read config file if exists (ignore error if missing or corrupt)
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Ensure data directory exists
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save overwrites <data_dir>/config.yaml wholesale with cfg. A failure is
// returned for the caller to surface as a warning; it never crashes the
// application.
func Save(cfg *Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("data_dir", cfg.DataDir)
	v.Set("window.width", cfg.Window.Width)
	v.Set("window.height", cfg.Window.Height)
	v.Set("import.pattern", cfg.Import.Pattern)
	v.Set("import.watch", cfg.Import.Watch)
	v.Set("panels.left.folder", cfg.Panels.Left.Folder)
	v.Set("panels.right.folder", cfg.Panels.Right.Folder)

	return v.WriteConfigAs(filepath.Join(cfg.DataDir, configFileName))
}

func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "linkman.db")
}
