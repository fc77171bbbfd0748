package main

import (
	"fmt"

	"github.com/modcorpus/modcorpus/internal/classify"
	"github.com/modcorpus/modcorpus/internal/config"
	"github.com/modcorpus/modcorpus/internal/report"
	"github.com/modcorpus/modcorpus/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summary statistics over the classified corpus",
	Long: `Print summary statistics: era and medium distributions, numeric
year range, distinct countries and journals, and DOI/full-text coverage.

Non-numeric year values (empty, "n.d.") are excluded from the year range.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	recs, err := storage.ReadAll(config.RecordsPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "reading records: %v", err)
	}

	rpt := report.Build(recs)

	if humanOutput {
		printSummaryHuman(rpt.Summary)
	} else {
		outputJSON(rpt.Summary)
	}

	return nil
}

func printSummaryHuman(s report.Summary) {
	fmt.Printf("%d records\n\n", s.Total)

	fmt.Println("By era:")
	for _, era := range classify.Eras {
		if n := s.EraDistribution[string(era)]; n > 0 {
			fmt.Printf("  %-32s %d\n", era, n)
		}
	}

	fmt.Println("\nBy medium:")
	for _, medium := range classify.Mediums {
		if n := s.MediumDistribution[string(medium)]; n > 0 {
			fmt.Printf("  %-32s %d\n", medium, n)
		}
	}

	fmt.Println()
	if s.YearRange != nil {
		fmt.Printf("Year range:       %d-%d\n", s.YearRange.Earliest, s.YearRange.Latest)
	} else {
		fmt.Println("Year range:       (no numeric years)")
	}
	fmt.Printf("Countries:        %d\n", s.CountriesRepresented)
	fmt.Printf("Journals:         %d\n", s.JournalsRepresented)
	fmt.Printf("With DOI:         %d\n", s.WithDOI)
	fmt.Printf("With full text:   %d\n", s.WithFullText)
}
