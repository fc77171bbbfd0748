package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/modcorpus/config.yml.
// Repository config takes precedence over global config for overlapping keys.
type GlobalConfig struct {
	ExportDir   string `yaml:"export_dir,omitempty"`
	SearchQuery string `yaml:"search_query,omitempty"`
	Database    string `yaml:"database,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "modcorpus"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/modcorpus/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.ExportDir != "" {
		cfg.ExportDir = ExpandPath(cfg.ExportDir)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// Resolve merges repository config over global config and fills defaults.
// Missing keys fall back to global values, then to built-in defaults.
func Resolve(repo *Config) Config {
	global, _ := LoadGlobalConfig()

	out := Config{}
	if repo != nil {
		out = *repo
	}

	if out.ExportDir == "" {
		out.ExportDir = global.ExportDir
	}
	if out.SearchQuery == "" {
		out.SearchQuery = global.SearchQuery
	}
	if out.Database == "" {
		out.Database = global.Database
	}
	if out.Database == "" {
		out.Database = DefaultDatabase
	}

	return out
}
