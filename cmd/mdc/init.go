package main

import (
	"fmt"
	"os"

	"github.com/modcorpus/modcorpus/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new modcorpus repository",
	Long: `Initialize a new modcorpus repository in the current directory.

Creates:
  .modcorpus/
  ├── records.jsonl   # Empty file
  ├── config.json     # Default config
  └── cache/          # Empty directory (gitignored)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	// Check if already initialized
	if config.IsRepository(root) {
		exitWithError(ExitError, "directory already contains a modcorpus repository")
	}

	// Create directory structure
	mcDir := config.ModcorpusPath(root)
	if err := os.MkdirAll(mcDir, 0755); err != nil {
		exitWithError(ExitError, "creating .modcorpus directory: %v", err)
	}

	cacheDir := config.CachePath(root)
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	// Create empty records.jsonl
	recordsPath := config.RecordsPath(root)
	recordsFile, err := os.Create(recordsPath)
	if err != nil {
		exitWithError(ExitError, "creating records.jsonl: %v", err)
	}
	recordsFile.Close()

	// Create default config
	cfg := &config.Config{}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "writing config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized modcorpus repository in %s\n", mcDir)
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: mcDir})
	}

	return nil
}
