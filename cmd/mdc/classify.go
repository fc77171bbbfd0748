package main

import (
	"fmt"
	"os"

	"github.com/modcorpus/modcorpus/internal/classify"
	"github.com/modcorpus/modcorpus/internal/doaj"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify <file>",
	Short: "Classify a DOAJ export without importing it",
	Long: `Classify every record in a DOAJ search export and print the
assigned era and medium labels. No repository is required and nothing
is written; classification is a pure function of each record's text.

Example:
  mdc classify search.json
  mdc classify search.json --human`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

// ClassifyResult is the response for the classify command.
type ClassifyResult struct {
	Total              int              `json:"total"`
	EraDistribution    map[string]int   `json:"era_distribution"`
	MediumDistribution map[string]int   `json:"medium_distribution"`
	Records            []ClassifiedItem `json:"records"`
}

// ClassifiedItem is one record's labels in the classify output.
type ClassifiedItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Era    string `json:"era"`
	Medium string `json:"medium"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError(ExitError, "reading file: %v", err)
	}

	recs, _, err := doaj.Parse(data)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	result := ClassifyResult{
		Total:              len(recs),
		EraDistribution:    make(map[string]int),
		MediumDistribution: make(map[string]int),
		Records:            make([]ClassifiedItem, 0, len(recs)),
	}

	for _, rec := range recs {
		era, medium := classify.Classify(rec)
		result.EraDistribution[string(era)]++
		result.MediumDistribution[string(medium)]++
		result.Records = append(result.Records, ClassifiedItem{
			ID:     rec.ID,
			Title:  truncateString(rec.Title, SearchTitleMaxLen),
			Era:    string(era),
			Medium: string(medium),
		})
	}

	if humanOutput {
		fmt.Printf("Classified %d records\n\n", result.Total)
		fmt.Println("By era:")
		for _, era := range classify.Eras {
			if n := result.EraDistribution[string(era)]; n > 0 {
				fmt.Printf("  %-32s %d\n", era, n)
			}
		}
		fmt.Println("\nBy medium:")
		for _, medium := range classify.Mediums {
			if n := result.MediumDistribution[string(medium)]; n > 0 {
				fmt.Printf("  %-32s %d\n", medium, n)
			}
		}
	} else {
		outputJSON(result)
	}

	return nil
}
