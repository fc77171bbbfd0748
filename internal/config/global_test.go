package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	ResetGlobalConfigCache()

	want := filepath.Join("/custom/config", GlobalConfigDir, GlobalConfigFile)
	if got := GlobalConfigPath(); got != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", got, want)
	}
}

func TestLoadGlobalConfigMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	ResetGlobalConfigCache()

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg.ExportDir != "" || cfg.SearchQuery != "" {
		t.Errorf("missing config should be empty, got %+v", cfg)
	}
}

func TestLoadGlobalConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	dir := filepath.Join(configHome, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	content := "search_query: modernism British\ndatabase: DOAJ (Directory of Open Access Journals)\n"
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg.SearchQuery != "modernism British" {
		t.Errorf("SearchQuery = %q", cfg.SearchQuery)
	}
	if cfg.Database != "DOAJ (Directory of Open Access Journals)" {
		t.Errorf("Database = %q", cfg.Database)
	}
}

func TestLoadGlobalConfigMalformed(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	dir := filepath.Join(configHome, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte("::::"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadGlobalConfig(); err == nil {
		t.Error("LoadGlobalConfig() expected error for malformed YAML")
	}
}

func TestResolve(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // No global config
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	// Repo config wins where set, defaults fill the rest
	got := Resolve(&Config{SearchQuery: "modernism British"})
	if got.SearchQuery != "modernism British" {
		t.Errorf("SearchQuery = %q", got.SearchQuery)
	}
	if got.Database != DefaultDatabase {
		t.Errorf("Database = %q, want default", got.Database)
	}

	// Nil repo config still yields defaults
	empty := Resolve(nil)
	if empty.Database != DefaultDatabase {
		t.Errorf("Database = %q, want default", empty.Database)
	}
}
