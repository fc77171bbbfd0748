package main

import (
	"fmt"

	"github.com/modcorpus/modcorpus/internal/record"
	"github.com/modcorpus/modcorpus/internal/storage"
	"github.com/spf13/cobra"
)

var (
	listEra    string
	listMedium string
	listLimit  int
)

func init() {
	listCmd.Flags().StringVar(&listEra, "era", "", "Filter by era label")
	listCmd.Flags().StringVar(&listMedium, "medium", "", "Filter by medium label")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List classified records",
	Long: `List classified records in the repository, optionally filtered by label.

Examples:
  mdc list
  mdc list --limit 100
  mdc list --era "High Modernism (1910s-1920s)"
  mdc list --medium "Academic Journal"`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	var recs []record.Record
	var err error

	if listEra != "" || listMedium != "" {
		recs, err = db.ListFiltered(storage.ListFilters{Era: listEra, Medium: listMedium}, listLimit)
	} else {
		recs, err = db.ListAll(listLimit)
	}
	if err != nil {
		exitWithError(ExitError, "listing records: %v", err)
	}

	total, _ := db.Count()

	if humanOutput {
		if len(recs) == 0 {
			fmt.Println("No records in repository")
		} else {
			if listLimit > 0 && listLimit < total {
				fmt.Printf("%d records (showing first %d):\n\n", total, len(recs))
			} else {
				fmt.Printf("%d records:\n\n", len(recs))
			}
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
