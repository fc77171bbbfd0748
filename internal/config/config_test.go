package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathFunctions(t *testing.T) {
	root := "/test/repo"

	tests := []struct {
		name string
		fn   func(string) string
		want string
	}{
		{"ModcorpusPath", ModcorpusPath, "/test/repo/.modcorpus"},
		{"ConfigPath", ConfigPath, "/test/repo/.modcorpus/config.json"},
		{"RecordsPath", RecordsPath, "/test/repo/.modcorpus/records.jsonl"},
		{"CachePath", CachePath, "/test/repo/.modcorpus/cache"},
		{"DBPath", DBPath, "/test/repo/.modcorpus/cache/records.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(root)
			if got != tt.want {
				t.Errorf("%s(%q) = %q, want %q", tt.name, root, got, tt.want)
			}
		})
	}
}

func TestIsRepository(t *testing.T) {
	tmpDir := t.TempDir()

	// Not a repository initially
	if IsRepository(tmpDir) {
		t.Error("IsRepository() = true for non-repo directory")
	}

	if err := os.MkdirAll(ModcorpusPath(tmpDir), 0755); err != nil {
		t.Fatal(err)
	}

	if !IsRepository(tmpDir) {
		t.Error("IsRepository() = false after creating .modcorpus")
	}
}

func TestFindRepository(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(ModcorpusPath(tmpDir), 0755); err != nil {
		t.Fatal(err)
	}

	// Found from a nested directory
	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindRepository(nested)
	if err != nil {
		t.Fatalf("FindRepository() error = %v", err)
	}
	// Resolve symlinks for comparison (macOS tmpdir is a symlink)
	wantResolved, _ := filepath.EvalSymlinks(tmpDir)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("FindRepository() = %q, want %q", got, tmpDir)
	}

	// Not found outside
	outside := t.TempDir()
	if _, err := FindRepository(outside); err == nil {
		t.Error("FindRepository() expected error outside a repository")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(ModcorpusPath(tmpDir), 0755); err != nil {
		t.Fatal(err)
	}

	want := &Config{
		ExportDir:   "./analysis",
		SearchQuery: "modernism British",
		Database:    "DOAJ (Directory of Open Access Journals)",
	}
	if err := want.Save(tmpDir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadMissingConfig(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load() expected error for missing config")
	}
}

func TestValidateExportDir(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty is allowed", "", false},
		{"existing directory", tmpDir, false},
		{"missing path", filepath.Join(tmpDir, "nope"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExportDir(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExportDir(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}

	// A file is not a directory
	filePath := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateExportDir(filePath); err == nil {
		t.Error("ValidateExportDir() expected error for a file path")
	}
}
