package main

import (
	"fmt"

	"github.com/modcorpus/modcorpus/internal/pdf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi <file.pdf>",
	Short: "Extract a DOI from a local PDF and find its record",
	Long: `Extract a DOI from the first pages of a local PDF file and look up
the matching record in the repository.

Example:
  mdc doi downloads/woolf_essay.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runDOI,
}

// DOIResult is the response for the doi command.
type DOIResult struct {
	DOI      string `json:"doi"`
	RecordID string `json:"record_id,omitempty"`
	Title    string `json:"title,omitempty"`
}

func runDOI(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	doi, err := pdf.ExtractDOI(args[0])
	if err != nil {
		exitWithError(ExitError, "reading PDF: %v", err)
	}
	if doi == "" {
		exitWithError(ExitDataError, "no DOI found in %s", args[0])
	}

	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	result := DOIResult{DOI: doi}
	rec, err := db.GetByDOI(doi)
	if err != nil {
		exitWithError(ExitError, "looking up DOI: %v", err)
	}
	if rec != nil {
		result.RecordID = rec.ID
		result.Title = rec.Title
	}

	if humanOutput {
		fmt.Printf("DOI: %s\n", doi)
		if rec != nil {
			fmt.Printf("Record: %s\n", rec.ID)
			fmt.Printf("Title:  %s\n", truncateString(rec.Title, SearchTitleMaxLen))
		} else {
			fmt.Println("No matching record in repository")
		}
	} else {
		outputJSON(result)
	}

	return nil
}
