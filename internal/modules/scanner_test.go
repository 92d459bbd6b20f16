package modules

import (
	"os"
	"path/filepath"
	"testing"

	"archlint/internal/config"
	"archlint/internal/logging"
)

func newTestScanner() *Scanner {
	cfg := config.DefaultConfig()
	return NewScanner(&cfg.Modules, logging.NewDiscardLogger())
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

func TestScanFindsModules(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "modules", "auth", "login.py"), "print('hi')")
	writeFile(t, filepath.Join(root, "src", "modules", "billing", "nested", "charge.ts"), "export {}")

	mods, err := newTestScanner().Scan(root, "src/modules")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(mods) != 2 {
		t.Fatalf("Expected 2 modules, got %d", len(mods))
	}
	// Sorted by name
	if mods[0].Name != "auth" || mods[1].Name != "billing" {
		t.Errorf("Expected [auth billing], got [%s %s]", mods[0].Name, mods[1].Name)
	}
	if len(mods[1].Files) != 1 || mods[1].Files[0] != "src/modules/billing/nested/charge.ts" {
		t.Errorf("Expected recursive file collection, got %v", mods[1].Files)
	}
}

func TestScanSkipsHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "mods", ".git", "hook.py"), "")
	writeFile(t, filepath.Join(root, "mods", "real", "a.go"), "package real")

	mods, err := newTestScanner().Scan(root, "mods")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(mods) != 1 || mods[0].Name != "real" {
		t.Fatalf("Expected only the 'real' module, got %+v", mods)
	}
}

func TestScanIgnoresNonSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "mods", "data", "records.json"), "{}")
	writeFile(t, filepath.Join(root, "mods", "data", "notes.txt"), "")

	mods, err := newTestScanner().Scan(root, "mods")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(mods) != 1 {
		t.Fatalf("Expected 1 module, got %d", len(mods))
	}
	if len(mods[0].Files) != 0 {
		t.Errorf("Expected no source files in data-only module, got %v", mods[0].Files)
	}
}

func TestScanMissingRoot(t *testing.T) {
	mods, err := newTestScanner().Scan(t.TempDir(), "does/not/exist")
	if err != nil {
		t.Fatalf("Scan of missing root should not error, got %v", err)
	}
	if len(mods) != 0 {
		t.Errorf("Expected no modules for missing root, got %d", len(mods))
	}
}

func TestScanSkipsFilesAtModulesRootLevel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "mods", "stray.py"), "")
	writeFile(t, filepath.Join(root, "mods", "auth", "a.py"), "")

	mods, err := newTestScanner().Scan(root, "mods")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(mods) != 1 || mods[0].Name != "auth" {
		t.Fatalf("Expected only directory entries to become modules, got %+v", mods)
	}
}

func TestScanSkipsOversizedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "mods", "big", "huge.py"), "x = 1\n")

	cfg := config.DefaultConfig()
	cfg.Modules.MaxFileSizeBytes = 3
	s := NewScanner(&cfg.Modules, logging.NewDiscardLogger())

	mods, err := s.Scan(root, "mods")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(mods) != 1 || len(mods[0].Files) != 0 {
		t.Errorf("Expected oversized file to be skipped, got %+v", mods)
	}
}
