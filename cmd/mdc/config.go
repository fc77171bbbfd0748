package main

import (
	"fmt"

	"github.com/modcorpus/modcorpus/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set repository configuration values.

Usage:
  mdc config                                  # Show all config
  mdc config export-dir                       # Get specific value
  mdc config export-dir ./analysis            # Set value
  mdc config search-query "modernism British" # Set extraction query

Keys:
  export-dir    Default output directory for reports
  search-query  Query the corpus was extracted with (report metadata)
  database      Source database label (report metadata)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the response for config get commands.
type ConfigResponse struct {
	ExportDir   string `json:"export_dir,omitempty"`
	SearchQuery string `json:"search_query,omitempty"`
	Database    string `json:"database,omitempty"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("export-dir:   %s\n", cfg.ExportDir)
			fmt.Printf("search-query: %s\n", cfg.SearchQuery)
			fmt.Printf("database:     %s\n", cfg.Database)
		} else {
			outputJSON(ConfigResponse{
				ExportDir:   cfg.ExportDir,
				SearchQuery: cfg.SearchQuery,
				Database:    cfg.Database,
			})
		}
		return nil
	}

	key := args[0]

	// One arg: get specific value
	if len(args) == 1 {
		switch key {
		case "export-dir":
			printConfigValue("export_dir", cfg.ExportDir)
		case "search-query":
			printConfigValue("search_query", cfg.SearchQuery)
		case "database":
			printConfigValue("database", cfg.Database)
		default:
			exitWithError(ExitError, "unknown config key: %s", key)
		}
		return nil
	}

	// Two args: set value
	value := args[1]
	switch key {
	case "export-dir":
		if err := config.ValidateExportDir(value); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		cfg.ExportDir = value
	case "search-query":
		cfg.SearchQuery = value
	case "database":
		cfg.Database = value
	default:
		exitWithError(ExitError, "unknown config key: %s", key)
	}

	if err := cfg.Save(repoRoot); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Set %s = %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
	}

	return nil
}

func printConfigValue(jsonKey, value string) {
	if humanOutput {
		fmt.Println(value)
	} else {
		outputJSON(map[string]string{jsonKey: value})
	}
}
