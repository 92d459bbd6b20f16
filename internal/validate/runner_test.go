package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"archlint/internal/checks"
	"archlint/internal/config"
	"archlint/internal/logging"
)

func newRunner(root string, cfg *config.Config) *Runner {
	return NewRunner(root, cfg, logging.NewDiscardLogger())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func resultByName(t *testing.T, report *Report, name string) CheckResult {
	t.Helper()
	for _, result := range report.Results {
		if result.Name == name {
			return result
		}
	}
	t.Fatalf("No result named %q in %+v", name, report.Results)
	return CheckResult{}
}

func TestRunMissingProjectRootIsFatal(t *testing.T) {
	cfg := config.DefaultConfig()
	_, err := newRunner(filepath.Join(t.TempDir(), "nope"), cfg).Run()
	if err == nil {
		t.Fatal("Expected error for missing project root")
	}
	if !strings.Contains(err.Error(), "project root not found") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestRunCleanProject(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"docs/adr", "tests/unit", "tests/integration"} {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	report, err := newRunner(root, config.DefaultConfig()).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !report.Passed || report.TotalIssues != 0 {
		t.Errorf("Expected clean pass, got %d issues: %v",
			report.TotalIssues, checks.Messages(report.Issues()))
	}
	if got := resultByName(t, report, CheckRequiredDirs); got.Status != StatusPass || got.Checked != 3 {
		t.Errorf("Unexpected required-dirs result: %+v", got)
	}
	// Unconfigured checks are skipped, not failed
	if got := resultByName(t, report, CheckTestMirror); got.Status != StatusSkipped {
		t.Errorf("Expected test-mirror skipped, got %s", got.Status)
	}
	if got := resultByName(t, report, CheckCycles); got.Status != StatusSkipped {
		t.Errorf("Expected cycle check skipped, got %s", got.Status)
	}
}

func TestRunReportsMissingStructure(t *testing.T) {
	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.RequiredFiles = []string{"README.md"}

	report, err := newRunner(root, cfg).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// All violations surface in one run: 3 dirs + 1 file
	if report.TotalIssues != 4 {
		t.Errorf("Expected 4 issues, got %d: %v",
			report.TotalIssues, checks.Messages(report.Issues()))
	}
	if report.Passed {
		t.Error("Expected failed report")
	}
}

func TestRunDetectsCircularDependency(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "modules", "a", "main.py"), "import b\n")
	writeFile(t, filepath.Join(root, "src", "modules", "b", "main.py"), "import a\n")

	cfg := config.DefaultConfig()
	cfg.RequiredDirs = nil
	cfg.Modules.Dir = "src/modules"

	report, err := newRunner(root, cfg).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	result := resultByName(t, report, CheckCycles)
	if result.Status != StatusFail {
		t.Fatalf("Expected cycle check failure, got %s", result.Status)
	}
	if len(result.Issues) != 1 {
		t.Fatalf("Expected 1 cycle issue, got %v", checks.Messages(result.Issues))
	}
	want := "Circular dependency detected: a -> b -> a"
	if result.Issues[0].Message != want {
		t.Errorf("Message = %q, want %q", result.Issues[0].Message, want)
	}
	if result.Checked != 2 {
		t.Errorf("Expected 2 modules checked, got %d", result.Checked)
	}
}

func TestRunLinearDependenciesPass(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "modules", "a", "main.py"), "import b\n")
	writeFile(t, filepath.Join(root, "src", "modules", "b", "main.py"), "import c\n")
	writeFile(t, filepath.Join(root, "src", "modules", "c", "main.py"), "x = 1\n")

	cfg := config.DefaultConfig()
	cfg.RequiredDirs = nil
	cfg.Modules.Dir = "src/modules"

	report, err := newRunner(root, cfg).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	result := resultByName(t, report, CheckCycles)
	if result.Status != StatusPass || len(result.Issues) != 0 {
		t.Errorf("Expected clean cycle check, got %+v", result)
	}
}

func TestRunMissingModulesRootPassesVacuously(t *testing.T) {
	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.RequiredDirs = nil
	cfg.Modules.Dir = "src/modules" // configured but absent

	report, err := newRunner(root, cfg).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	result := resultByName(t, report, CheckCycles)
	if result.Status != StatusPass {
		t.Errorf("Expected vacuous pass for absent modules root, got %s", result.Status)
	}
	if report.TotalIssues != 0 {
		t.Errorf("Expected no issues, got %v", checks.Messages(report.Issues()))
	}
}

func TestRunMirrorWarningsCountTowardFailure(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src", "modules", "auth"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "tests", "unit", "modules"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.RequiredDirs = nil
	cfg.TestMirror.Enabled = true

	report, err := newRunner(root, cfg).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	result := resultByName(t, report, CheckTestMirror)
	if result.Status != StatusWarn {
		t.Errorf("Expected warn status, got %s", result.Status)
	}
	if report.Passed {
		t.Error("Warnings still fail the run")
	}
}
