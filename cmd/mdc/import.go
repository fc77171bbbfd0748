package main

import (
	"fmt"
	"os"

	"github.com/modcorpus/modcorpus/internal/classify"
	"github.com/modcorpus/modcorpus/internal/config"
	"github.com/modcorpus/modcorpus/internal/doaj"
	"github.com/modcorpus/modcorpus/internal/record"
	"github.com/modcorpus/modcorpus/internal/storage"
	"github.com/spf13/cobra"
)

var (
	importFormat string
	importDryRun bool
)

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "", "Import format (doaj)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Show what would be imported without writing")
	importCmd.MarkFlagRequired("format")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import and classify records from a search export",
	Long: `Import records from a search export, classifying each one by era
and medium as it is ingested.

Usage:
  mdc import --format doaj search.json
  mdc import --format doaj search.json --dry-run

Supported formats:
  doaj  - DOAJ article search export (JSON)`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// ImportResult represents the result of an import operation.
type ImportResult struct {
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	Total    int `json:"total"`
}

// DryRunResult represents the result of a dry-run import.
type DryRunResult struct {
	WouldImport int            `json:"would_import"`
	WouldUpdate int            `json:"would_update"`
	Details     []ImportDetail `json:"details,omitempty"`
}

// ImportDetail describes a single import action.
type ImportDetail struct {
	ID     string `json:"id"`
	Action string `json:"action"` // import, update
	Title  string `json:"title"`
	Era    string `json:"era"`
	Medium string `json:"medium"`
}

func runImport(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	if importFormat != "doaj" {
		exitWithError(ExitError, "unknown format: %s", importFormat)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError(ExitError, "reading file: %v", err)
	}

	newRecs, exportTotal, err := doaj.Parse(data)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	newRecs = classify.ApplyAll(newRecs)

	// Load existing records and merge by ID
	recordsPath := config.RecordsPath(repoRoot)
	existing, err := storage.ReadAll(recordsPath)
	if err != nil {
		exitWithError(ExitError, "reading existing records: %v", err)
	}

	existingIdx := make(map[string]int, len(existing))
	for i, rec := range existing {
		existingIdx[rec.ID] = i
	}

	var imported, updated int
	var details []ImportDetail

	merged := make([]record.Record, len(existing))
	copy(merged, existing)

	for _, rec := range newRecs {
		action := "import"
		if i, ok := existingIdx[rec.ID]; ok {
			merged[i] = rec
			updated++
			action = "update"
		} else {
			existingIdx[rec.ID] = len(merged)
			merged = append(merged, rec)
			imported++
		}
		if importDryRun {
			details = append(details, ImportDetail{
				ID:     rec.ID,
				Action: action,
				Title:  truncateString(rec.Title, ImportTitleMaxLen),
				Era:    rec.Era,
				Medium: rec.Medium,
			})
		}
	}

	if importDryRun {
		if humanOutput {
			fmt.Printf("Would import %d new, update %d existing:\n\n", imported, updated)
			for _, d := range details {
				fmt.Printf("  %-7s %s\n", d.Action, d.Title)
				fmt.Printf("          %s / %s\n", d.Era, d.Medium)
			}
		} else {
			outputJSON(DryRunResult{WouldImport: imported, WouldUpdate: updated, Details: details})
		}
		return nil
	}

	if err := storage.WriteAll(recordsPath, merged); err != nil {
		exitWithError(ExitError, "writing records: %v", err)
	}

	// Record the export's reported total so report metadata can distinguish
	// it from the number of records analyzed.
	if exportTotal > 0 {
		cfg := mustLoadConfig(repoRoot)
		cfg.SourceTotal = exportTotal
		if err := cfg.Save(repoRoot); err != nil {
			exitWithError(ExitError, "writing config: %v", err)
		}
	}

	// Rebuild the query cache
	if err := os.MkdirAll(config.CachePath(repoRoot), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}
	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	total, err := db.RebuildFromJSONL(recordsPath)
	if err != nil {
		exitWithError(ExitError, "rebuilding cache: %v", err)
	}

	if humanOutput {
		fmt.Printf("Imported %d new records, updated %d (%d total)\n", imported, updated, total)
	} else {
		outputJSON(ImportResult{Imported: imported, Updated: updated, Total: total})
	}

	return nil
}
