package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a single record by ID",
	Long: `Get a single record by its DOAJ identifier.

Example:
  mdc get 00003c514f8c4a6fb14d9eb0012ae54e`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	id := args[0]
	rec, err := db.GetByID(id)
	if err != nil {
		exitWithError(ExitError, "getting record: %v", err)
	}
	if rec == nil {
		exitWithError(ExitDataError, "record not found: %s", id)
	}

	if humanOutput {
		fmt.Printf("%s\n", rec.Title)
		fmt.Printf("  %s (%s)\n", formatAuthorsShort(rec.Authors, 3), rec.Year)
		fmt.Printf("  %s — %s, %s\n", rec.Journal, rec.Publisher, rec.Country)
		fmt.Printf("  era:    %s\n", rec.Era)
		fmt.Printf("  medium: %s\n", rec.Medium)
		if rec.DOI != "" {
			fmt.Printf("  doi:    %s\n", rec.DOI)
		}
		if len(rec.Keywords) > 0 {
			fmt.Printf("  keywords: %s\n", strings.Join(rec.Keywords, ", "))
		}
	} else {
		outputJSON(rec)
	}

	return nil
}
