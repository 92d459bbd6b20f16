package checks

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"archlint/internal/paths"
)

// RequiredDirs reports one issue per configured directory that does
// not exist under the project root.
func RequiredDirs(projectRoot string, dirs []string) []Issue {
	var issues []Issue
	for _, dir := range dirs {
		if !isDir(paths.Join(projectRoot, dir)) {
			issues = append(issues, Issue{
				Category: CategoryDirs,
				Severity: SeverityFail,
				Message:  fmt.Sprintf("Missing required directory: %s", dir),
			})
		}
	}
	return issues
}

// RequiredFiles reports one issue per configured file that does not
// exist under the project root.
func RequiredFiles(projectRoot string, files []string) []Issue {
	var issues []Issue
	for _, file := range files {
		if !isFile(paths.Join(projectRoot, file)) {
			issues = append(issues, Issue{
				Category: CategoryFiles,
				Severity: SeverityFail,
				Message:  fmt.Sprintf("Missing required file: %s", file),
			})
		}
	}
	return issues
}

// TestMirror checks that every immediate subdirectory of srcDir has a
// same-named counterpart under testDir. Directory names starting with
// "." or "__" (hidden dirs, __pycache__ and friends) are skipped.
// Mirror gaps are warnings; they still count toward the issue total.
func TestMirror(projectRoot, srcDir, testDir string) []Issue {
	srcPath := paths.Join(projectRoot, srcDir)
	testPath := paths.Join(projectRoot, testDir)

	if !isDir(srcPath) {
		return []Issue{{
			Category: CategoryMirror,
			Severity: SeverityWarn,
			Message:  fmt.Sprintf("Source directory not found: %s", srcDir),
		}}
	}
	if !isDir(testPath) {
		return []Issue{{
			Category: CategoryMirror,
			Severity: SeverityWarn,
			Message:  fmt.Sprintf("Test directory not found: %s", testDir),
		}}
	}

	entries, err := os.ReadDir(srcPath)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "__") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var issues []Issue
	for _, name := range names {
		if !isDir(paths.Join(testPath, name)) {
			issues = append(issues, Issue{
				Category: CategoryMirror,
				Severity: SeverityWarn,
				Message: fmt.Sprintf("Source module '%s/%s' has no test counterpart at '%s/%s'",
					srcDir, name, testDir, name),
			})
		}
	}
	return issues
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
