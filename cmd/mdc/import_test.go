package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/modcorpus/modcorpus/internal/config"
	"github.com/modcorpus/modcorpus/internal/storage"
)

// setupTestRepo creates an initialized repository in a temp directory and
// points MDC_ROOT at it.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		t.Fatalf("creating cache dir: %v", err)
	}
	if err := os.WriteFile(config.RecordsPath(root), nil, 0644); err != nil {
		t.Fatalf("creating records.jsonl: %v", err)
	}
	cfg := &config.Config{}
	if err := cfg.Save(root); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("MDC_ROOT", root)
	return root
}

func TestImportPersistsSourceTotal(t *testing.T) {
	root := setupTestRepo(t)

	export := `{
		"total": 84,
		"results": [
			{
				"id": "r1",
				"bibjson": {
					"title": "Eliot and The Waste Land",
					"year": "2018"
				}
			},
			{
				"id": "r2",
				"bibjson": {
					"title": "Wilde and aestheticism"
				}
			}
		]
	}`
	exportPath := filepath.Join(root, "search.json")
	if err := os.WriteFile(exportPath, []byte(export), 0644); err != nil {
		t.Fatalf("writing export: %v", err)
	}

	importFormat = "doaj"
	importDryRun = false
	if err := runImport(importCmd, []string{exportPath}); err != nil {
		t.Fatalf("runImport() error = %v", err)
	}

	recs, err := storage.ReadAll(config.RecordsPath(root))
	if err != nil {
		t.Fatalf("reading records: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("imported %d records, want 2", len(recs))
	}

	// The export claims 84 total while only 2 were analyzed; the reported
	// total must survive the import for report metadata.
	cfg, err := config.Load(root)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.SourceTotal != 84 {
		t.Errorf("SourceTotal = %d, want 84", cfg.SourceTotal)
	}
}
