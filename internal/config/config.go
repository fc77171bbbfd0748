// Package config handles repository and global configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents repository configuration stored in .modcorpus/config.json.
type Config struct {
	ExportDir   string `json:"export_dir,omitempty"`   // Default output directory for reports
	SearchQuery string `json:"search_query,omitempty"` // Query the corpus was extracted with
	Database    string `json:"database,omitempty"`     // Source database label for report metadata
	SourceTotal int    `json:"source_total,omitempty"` // Total results the source export reported, recorded at import
}

const (
	ModcorpusDir = ".modcorpus"
	ConfigFile   = "config.json"
	RecordsFile  = "records.jsonl"
	CacheDir     = "cache"
	DBFile       = "records.db"
)

// DefaultDatabase is the source label used when none is configured.
const DefaultDatabase = "DOAJ (Directory of Open Access Journals)"

// ModcorpusPath returns the path to the .modcorpus directory from a root path.
func ModcorpusPath(root string) string {
	return filepath.Join(root, ModcorpusDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, ModcorpusDir, ConfigFile)
}

// RecordsPath returns the path to records.jsonl from a root path.
func RecordsPath(root string) string {
	return filepath.Join(root, ModcorpusDir, RecordsFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, ModcorpusDir, CacheDir)
}

// DBPath returns the path to records.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, ModcorpusDir, CacheDir, DBFile)
}

// IsRepository checks if the given path contains a modcorpus repository.
func IsRepository(root string) bool {
	info, err := os.Stat(ModcorpusPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a modcorpus repository.
// Returns the repository root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a modcorpus repository (no .modcorpus directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the repository at the given root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the repository at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}

// ValidateExportDir checks that the export directory exists and is a directory.
func ValidateExportDir(path string) error {
	if path == "" {
		return nil // Empty is allowed (not yet configured)
	}

	expandedPath := ExpandPath(path)

	info, err := os.Stat(expandedPath)
	if err != nil {
		return fmt.Errorf("path does not exist: %s", expandedPath)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", expandedPath)
	}

	return nil
}
