package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"archlint/internal/storage"
)

var (
	historyFormat string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history [project-root]",
	Short: "List recorded validation runs",
	Long: `List past validation runs recorded with 'archlint validate --save',
newest first.

Examples:
  archlint history
  archlint history --limit=50
  archlint history --format=json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyFormat, "format", "human", "Output format (human, json, yaml)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum runs to list")
	rootCmd.AddCommand(historyCmd)
}

// HistoryResponseCLI contains run history for CLI output
type HistoryResponseCLI struct {
	Runs []storage.RunRecord `json:"runs" yaml:"runs"`
}

func runHistory(cmd *cobra.Command, args []string) {
	projectRoot := projectRootArg(args)

	cfg, err := loadProjectConfig(projectRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg)

	db, err := storage.Open(projectRoot, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	runs, err := db.ListRuns(historyLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing runs: %v\n", err)
		os.Exit(1)
	}

	output, err := FormatResponse(&HistoryResponseCLI{Runs: runs}, OutputFormat(historyFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)
}
