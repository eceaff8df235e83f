package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level tally configuration.
type Config struct {
	ListenAddr      string   `mapstructure:"listen_addr"`
	DataDir         string   `mapstructure:"data_dir"`
	DatabasePath    string   `mapstructure:"database_path"`
	SessionTTLHours int      `mapstructure:"session_ttl_hours"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	Output          Output   `mapstructure:"output"`
}

// Output defines CLI output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("listen_addr", DefaultListenAddr)
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("database_path", "")
	v.SetDefault("session_ttl_hours", DefaultSessionTTLHours)
	v.SetDefault("cors_origins", DefaultCORSOrigins)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("TALLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Expand paths and derive the database location.
	cfg.DataDir = expandPath(cfg.DataDir)
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(cfg.DataDir, DefaultDBName)
	} else {
		cfg.DatabasePath = expandPath(cfg.DatabasePath)
	}

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
