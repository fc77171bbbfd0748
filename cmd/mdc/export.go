package main

import (
	"fmt"
	"strings"

	"github.com/modcorpus/modcorpus/internal/export"
	"github.com/modcorpus/modcorpus/internal/record"
	"github.com/spf13/cobra"
)

var (
	exportBibtex bool
	exportKeys   string
)

func init() {
	exportCmd.Flags().BoolVar(&exportBibtex, "bibtex", false, "Export to BibTeX format")
	exportCmd.Flags().StringVar(&exportKeys, "keys", "", "Export only specified IDs (comma-separated)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records to BibTeX format",
	Long: `Export records to BibTeX format.

Examples:
  mdc export --bibtex
  mdc export --bibtex --keys 00003c514f8c,0000c7b5ab99
  mdc export --bibtex > corpus.bib`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	if !exportBibtex {
		exitWithError(ExitError, "--bibtex flag is required")
	}

	repoRoot := mustFindRepository()
	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	var recs []record.Record

	if exportKeys != "" {
		for _, key := range strings.Split(exportKeys, ",") {
			key = strings.TrimSpace(key)
			rec, err := db.GetByID(key)
			if err != nil {
				exitWithError(ExitError, "getting record %s: %v", key, err)
			}
			if rec == nil {
				exitWithError(ExitDataError, "unknown key: %s", key)
			}
			recs = append(recs, *rec)
		}
	} else {
		var err error
		recs, err = db.ListAll(0)
		if err != nil {
			exitWithError(ExitError, "listing records: %v", err)
		}
	}

	// BibTeX is always text output, never JSON
	fmt.Print(export.ToBibTeXList(recs))

	return nil
}
