package modules

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"archlint/internal/config"
	"archlint/internal/logging"
	"archlint/internal/paths"
)

// hiddenPrefix marks directory names excluded from module discovery.
const hiddenPrefix = "."

// Scanner walks a modules root and collects one Module per immediate
// subdirectory. Traversal is read-only; per-file and per-directory
// errors are skipped, never fatal.
type Scanner struct {
	extensions  map[string]bool
	maxFileSize int64
	logger      *logging.Logger
}

// NewScanner creates a scanner using the configured source extensions
// and file-size cap.
func NewScanner(cfg *config.ModulesConfig, logger *logging.Logger) *Scanner {
	exts := make(map[string]bool, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		exts[strings.ToLower(ext)] = true
	}

	return &Scanner{
		extensions:  exts,
		maxFileSize: cfg.MaxFileSizeBytes,
		logger:      logger,
	}
}

// Scan discovers modules under <projectRoot>/<modulesDir>. A missing or
// non-directory modules root yields an empty result, not an error: the
// circular-dependency check is optional infrastructure.
func (s *Scanner) Scan(projectRoot, modulesDir string) ([]*Module, error) {
	modulesPath := filepath.Join(projectRoot, modulesDir)

	info, err := os.Stat(modulesPath)
	if err != nil || !info.IsDir() {
		s.logger.Debug("Modules root not found, skipping scan", map[string]interface{}{
			"path": modulesPath,
		})
		return nil, nil
	}

	entries, err := os.ReadDir(modulesPath)
	if err != nil {
		s.logger.Warn("Failed to read modules root", map[string]interface{}{
			"path":  modulesPath,
			"error": err.Error(),
		})
		return nil, nil
	}

	var result []*Module
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, hiddenPrefix) {
			continue
		}

		mod := &Module{
			Name:     name,
			RootPath: paths.Normalize(filepath.Join(modulesDir, name)),
			Files:    s.collectFiles(projectRoot, filepath.Join(modulesPath, name)),
		}
		result = append(result, mod)
	}

	// Sorted for deterministic graph construction and reporting
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	s.logger.Debug("Module scan completed", map[string]interface{}{
		"modulesDir": modulesDir,
		"modules":    len(result),
	})

	return result, nil
}

// collectFiles walks a module directory and returns the sorted,
// project-relative paths of its source-like files.
func (s *Scanner) collectFiles(projectRoot, moduleDir string) []string {
	var files []string

	_ = filepath.WalkDir(moduleDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, the scan continues
			s.logger.Debug("Skipping unreadable entry", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != moduleDir && strings.HasPrefix(d.Name(), hiddenPrefix) {
				return filepath.SkipDir
			}
			return nil
		}
		if !s.isSourceFile(path) {
			return nil
		}
		if s.maxFileSize > 0 {
			if info, statErr := d.Info(); statErr == nil && info.Size() > s.maxFileSize {
				s.logger.Debug("Skipping file: too large", map[string]interface{}{
					"path": path,
					"size": info.Size(),
				})
				return nil
			}
		}
		files = append(files, paths.RelativeTo(projectRoot, path))
		return nil
	})

	sort.Strings(files)
	return files
}

func (s *Scanner) isSourceFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return s.extensions[ext]
}
