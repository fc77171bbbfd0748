package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modcorpus/modcorpus/internal/config"
	"github.com/modcorpus/modcorpus/internal/export"
	"github.com/modcorpus/modcorpus/internal/report"
	"github.com/modcorpus/modcorpus/internal/storage"
	"github.com/spf13/cobra"
)

var (
	reportOut           string
	reportCSV           bool
	reportComprehensive bool
	reportEraFiles      bool
	reportReadme        bool
)

func init() {
	reportCmd.Flags().StringVar(&reportOut, "out", "", "Output directory (default: configured export_dir or cwd)")
	reportCmd.Flags().BoolVar(&reportCSV, "csv", false, "Write the analysis CSV")
	reportCmd.Flags().BoolVar(&reportComprehensive, "comprehensive", false, "Write the comprehensive JSON document")
	reportCmd.Flags().BoolVar(&reportEraFiles, "era-files", false, "Write per-era JSON files")
	reportCmd.Flags().BoolVar(&reportReadme, "readme", false, "Write the dataset README")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render analysis-ready reports from the classified corpus",
	Long: `Render the classified corpus into analysis-ready output files:

  analysis.csv         flattened tabular projection for statistical tools
  comprehensive.json   complete dataset with metadata and summary statistics
  era_*.json           one file per modernist era
  README.md            documentation of the generated dataset

With no selection flags, all four outputs are written.

Examples:
  mdc report
  mdc report --csv --out ./analysis
  mdc report --comprehensive --era-files`,
	RunE: runReport,
}

// ReportResult is the response for the report command.
type ReportResult struct {
	Status string   `json:"status"`
	Files  []string `json:"files"`
}

func runReport(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := config.Resolve(mustLoadConfig(repoRoot))

	// No selection flags means everything
	all := !reportCSV && !reportComprehensive && !reportEraFiles && !reportReadme

	outDir := reportOut
	if outDir == "" {
		outDir = cfg.ExportDir
	}
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		exitWithError(ExitError, "creating output directory: %v", err)
	}

	recs, err := storage.ReadAll(config.RecordsPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "reading records: %v", err)
	}
	if len(recs) == 0 {
		exitWithError(ExitDataError, "no records in repository; run 'mdc import' first")
	}

	rpt := report.Build(recs)
	meta := export.Meta{
		SearchQuery: cfg.SearchQuery,
		Database:    cfg.Database,
		TotalInDB:   cfg.SourceTotal,
	}

	var written []string

	if all || reportCSV {
		path := filepath.Join(outDir, "analysis.csv")
		if err := writeCSVFile(path, rpt.Rows); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		written = append(written, path)
	}

	if all || reportComprehensive {
		path := filepath.Join(outDir, "comprehensive.json")
		doc := export.BuildComprehensive(recs, rpt, meta)
		if err := writeJSONFile(path, doc); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		written = append(written, path)
	}

	if all || reportEraFiles {
		for _, doc := range export.EraFiles(rpt) {
			path := filepath.Join(outDir, doc.Name)
			if err := writeJSONFile(path, doc); err != nil {
				exitWithError(ExitError, "%v", err)
			}
			written = append(written, path)
		}
	}

	if all || reportReadme {
		path := filepath.Join(outDir, "README.md")
		if err := writeReadmeFile(path, rpt, meta); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		written = append(written, path)
	}

	if humanOutput {
		fmt.Printf("Wrote %d files:\n", len(written))
		for _, path := range written {
			fmt.Printf("  %s\n", path)
		}
	} else {
		outputJSON(ReportResult{Status: "written", Files: written})
	}

	return nil
}

func writeCSVFile(path string, rows []report.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeJSONFile(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeReadmeFile(path string, rpt report.Report, meta export.Meta) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := export.RenderReadme(f, rpt, meta); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
