// Package validate orchestrates all checks for one validation run and
// aggregates their findings into a Report.
package validate

import (
	"fmt"
	"os"
	"time"

	"archlint/internal/checks"
	"archlint/internal/config"
	"archlint/internal/depgraph"
	"archlint/internal/logging"
)

// CheckStatus summarizes one check's outcome.
type CheckStatus string

const (
	StatusPass    CheckStatus = "pass"
	StatusFail    CheckStatus = "fail"
	StatusWarn    CheckStatus = "warn"
	StatusSkipped CheckStatus = "skipped"
)

// Check names as they appear in reports.
const (
	CheckRequiredDirs  = "required-dirs"
	CheckRequiredFiles = "required-files"
	CheckTestMirror    = "test-mirror"
	CheckCycles        = "circular-dependencies"
)

// CheckResult holds one check's outcome.
type CheckResult struct {
	Name    string         `json:"name" yaml:"name"`
	Status  CheckStatus    `json:"status" yaml:"status"`
	Checked int            `json:"checked" yaml:"checked"`
	Issues  []checks.Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Report aggregates one validation run. A non-zero TotalIssues means
// the run failed; warnings count like failures, matching the exit
// semantics of the report driver.
type Report struct {
	ProjectRoot string        `json:"projectRoot" yaml:"projectRoot"`
	GeneratedAt string        `json:"generatedAt" yaml:"generatedAt"`
	DurationMs  int64         `json:"durationMs" yaml:"durationMs"`
	Results     []CheckResult `json:"results" yaml:"results"`
	TotalIssues int           `json:"totalIssues" yaml:"totalIssues"`
	Passed      bool          `json:"passed" yaml:"passed"`
}

// Issues flattens all issues across results, preserving check order.
func (r *Report) Issues() []checks.Issue {
	var all []checks.Issue
	for _, result := range r.Results {
		all = append(all, result.Issues...)
	}
	return all
}

// Runner owns the state of a single validation run: its config, module
// set, graph, and issues. Distinct Runners never share state, so runs
// against different project roots cannot interfere.
type Runner struct {
	projectRoot string
	cfg         *config.Config
	logger      *logging.Logger
}

// NewRunner creates a runner for one project root.
func NewRunner(projectRoot string, cfg *config.Config, logger *logging.Logger) *Runner {
	return &Runner{
		projectRoot: projectRoot,
		cfg:         cfg,
		logger:      logger,
	}
}

// Run executes every configured check and returns the aggregated
// report. The only error condition is a project root that is not a
// directory; everything a check finds is an Issue inside the report,
// never an error.
func (r *Runner) Run() (*Report, error) {
	info, err := os.Stat(r.projectRoot)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("project root not found: %s", r.projectRoot)
	}

	start := time.Now()
	report := &Report{
		ProjectRoot: r.projectRoot,
		GeneratedAt: start.UTC().Format(time.RFC3339),
	}

	report.add(r.runRequiredDirs())
	report.add(r.runRequiredFiles())
	report.add(r.runTestMirror())
	report.add(r.runCycleCheck())

	report.DurationMs = time.Since(start).Milliseconds()
	report.Passed = report.TotalIssues == 0

	r.logger.Info("Validation completed", map[string]interface{}{
		"projectRoot": r.projectRoot,
		"issues":      report.TotalIssues,
		"passed":      report.Passed,
	})

	return report, nil
}

func (report *Report) add(result CheckResult) {
	report.Results = append(report.Results, result)
	report.TotalIssues += len(result.Issues)
}

func (r *Runner) runRequiredDirs() CheckResult {
	issues := checks.RequiredDirs(r.projectRoot, r.cfg.RequiredDirs)
	return CheckResult{
		Name:    CheckRequiredDirs,
		Status:  statusFor(issues, StatusFail),
		Checked: len(r.cfg.RequiredDirs),
		Issues:  issues,
	}
}

func (r *Runner) runRequiredFiles() CheckResult {
	issues := checks.RequiredFiles(r.projectRoot, r.cfg.RequiredFiles)
	return CheckResult{
		Name:    CheckRequiredFiles,
		Status:  statusFor(issues, StatusFail),
		Checked: len(r.cfg.RequiredFiles),
		Issues:  issues,
	}
}

func (r *Runner) runTestMirror() CheckResult {
	if !r.cfg.TestMirror.Enabled {
		return CheckResult{Name: CheckTestMirror, Status: StatusSkipped}
	}
	issues := checks.TestMirror(r.projectRoot, r.cfg.TestMirror.SrcDir, r.cfg.TestMirror.TestDir)
	return CheckResult{
		Name:   CheckTestMirror,
		Status: statusFor(issues, StatusWarn),
		Issues: issues,
	}
}

// runCycleCheck builds the dependency graph and reports any cycle. A
// missing or unconfigured modules directory skips the check: absence
// of modules is not a violation.
func (r *Runner) runCycleCheck() CheckResult {
	if r.cfg.Modules.Dir == "" {
		return CheckResult{Name: CheckCycles, Status: StatusSkipped}
	}

	builder := depgraph.NewBuilder(r.projectRoot, &r.cfg.Modules, r.logger)
	graph, err := builder.Build(r.cfg.Modules.Dir)
	if err != nil {
		// Build never fails on expected conditions; treat the
		// unexpected as a skip rather than aborting the run.
		r.logger.Warn("Dependency graph build failed", map[string]interface{}{
			"error": err.Error(),
		})
		return CheckResult{Name: CheckCycles, Status: StatusSkipped}
	}

	var issues []checks.Issue
	for _, cycle := range depgraph.FindCycles(graph) {
		issues = append(issues, checks.Issue{
			Category: checks.CategoryCycles,
			Severity: checks.SeverityFail,
			Message:  fmt.Sprintf("Circular dependency detected: %s", cycle),
		})
	}

	return CheckResult{
		Name:    CheckCycles,
		Status:  statusFor(issues, StatusFail),
		Checked: len(graph),
		Issues:  issues,
	}
}

func statusFor(issues []checks.Issue, onIssue CheckStatus) CheckStatus {
	if len(issues) > 0 {
		return onIssue
	}
	return StatusPass
}
