package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"archlint/internal/checks"
	"archlint/internal/logging"
	"archlint/internal/storage"
	"archlint/internal/validate"
)

var (
	validateFormat string
	validateSave   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [project-root]",
	Short: "Validate project structure against architecture rules",
	Long: `Run all configured checks against a project root and report every
violation found: missing required directories and files, test-tree
gaps, and circular module dependencies.

The process exits with status 1 when any issue is found.

Examples:
  archlint validate
  archlint validate ./my-project
  archlint validate --config rules.json ./my-project
  archlint validate --format=json
  archlint validate --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "human", "Output format (human, json, yaml)")
	validateCmd.Flags().BoolVar(&validateSave, "save", false, "Record this run in the project's history database")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	start := time.Now()
	projectRoot := projectRootArg(args)

	cfg, err := loadProjectConfig(projectRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg)

	runner := validate.NewRunner(projectRoot, cfg, logger)
	report, err := runner.Run()
	if err != nil {
		// Invocation-level problem (project root missing): the one
		// fatal condition
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if OutputFormat(validateFormat) == FormatHuman {
		printReportHuman(report)
	} else {
		output, err := FormatResponse(report, OutputFormat(validateFormat))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(output)
	}

	if validateSave {
		saveRun(projectRoot, report, logger)
	}

	logger.Debug("Validation run finished", map[string]interface{}{
		"duration": time.Since(start).Milliseconds(),
	})

	if !report.Passed {
		os.Exit(1)
	}
}

func saveRun(projectRoot string, report *validate.Report, logger *logging.Logger) {
	db, err := storage.Open(projectRoot, logger)
	if err != nil {
		logger.Warn("Failed to open history database", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	defer func() { _ = db.Close() }()

	id, err := db.SaveRun(report)
	if err != nil {
		logger.Warn("Failed to record run", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	fmt.Printf("Run recorded: %s\n", id)
}

var (
	passLabel = color.New(color.FgGreen).SprintFunc()
	failLabel = color.New(color.FgRed).SprintFunc()
	warnLabel = color.New(color.FgYellow).SprintFunc()
)

// printReportHuman renders the per-category PASS/FAIL lines. Checks
// that were not configured print nothing.
func printReportHuman(report *validate.Report) {
	fmt.Printf("Validating project architecture at: %s\n", report.ProjectRoot)
	fmt.Println(strings.Repeat("=", 60))

	for _, result := range report.Results {
		switch result.Status {
		case validate.StatusSkipped:
			continue
		case validate.StatusPass:
			fmt.Printf("  %s %s\n", passLabel("[PASS]"), passMessage(result))
		default:
			for _, issue := range result.Issues {
				label := failLabel("[FAIL]")
				if issue.Severity == checks.SeverityWarn {
					label = warnLabel("[WARN]")
				}
				fmt.Printf("  %s %s\n", label, issue.Message)
			}
		}
	}

	fmt.Println(strings.Repeat("=", 60))
	if report.TotalIssues > 0 {
		fmt.Printf("Found %d issue(s)\n", report.TotalIssues)
	} else {
		fmt.Println("All checks passed")
	}
}

func passMessage(result validate.CheckResult) string {
	switch result.Name {
	case validate.CheckRequiredDirs:
		return fmt.Sprintf("All required directories exist (%d checked)", result.Checked)
	case validate.CheckRequiredFiles:
		return fmt.Sprintf("All required files exist (%d checked)", result.Checked)
	case validate.CheckTestMirror:
		return "Test directory mirrors source structure"
	case validate.CheckCycles:
		return "No circular dependencies detected"
	default:
		return result.Name
	}
}
