package main

import (
	"fmt"

	"github.com/modcorpus/modcorpus/internal/record"
	"github.com/spf13/cobra"
)

var (
	searchField string
	searchLimit int
)

func init() {
	searchCmd.Flags().StringVar(&searchField, "field", "", "Restrict search to a field (title, author, keyword)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over the record cache",
	Long: `Search records by title, abstract, author, or keyword text.

Examples:
  mdc search "stream of consciousness"
  mdc search woolf --field author
  mdc search imagism --field keyword --limit 10`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	var recs []record.Record
	var err error

	if searchField != "" {
		recs, err = db.SearchField(searchField, args[0], searchLimit)
	} else {
		recs, err = db.Search(args[0], searchLimit)
	}
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	if humanOutput {
		if len(recs) == 0 {
			fmt.Println("No matches")
		} else {
			fmt.Printf("%d matches:\n\n", len(recs))
			printRecordsHuman(recs)
		}
	} else {
		if recs == nil {
			recs = []record.Record{}
		}
		outputJSON(recs)
	}

	return nil
}
