package depgraph

import (
	"os"

	"archlint/internal/config"
	"archlint/internal/logging"
	"archlint/internal/modules"
	"archlint/internal/paths"
)

// Builder constructs the dependency graph for one project. Each Build
// call scans modules fresh; nothing is cached across runs.
type Builder struct {
	projectRoot string
	scanner     *modules.Scanner
	logger      *logging.Logger
}

// NewBuilder creates a graph builder rooted at projectRoot.
func NewBuilder(projectRoot string, cfg *config.ModulesConfig, logger *logging.Logger) *Builder {
	return &Builder{
		projectRoot: projectRoot,
		scanner:     modules.NewScanner(cfg, logger),
		logger:      logger,
	}
}

// Build scans <projectRoot>/<modulesDir> and returns the dependency
// graph over the discovered modules. A missing modules root yields an
// empty graph: the check is simply inapplicable.
//
// Cost is O(modules × files-per-module × modules × patterns), quadratic
// in module count per file. Accepted: module counts are expected in the
// tens, and each file is read once.
func (b *Builder) Build(modulesDir string) (Graph, error) {
	mods, err := b.scanner.Scan(b.projectRoot, modulesDir)
	if err != nil {
		return nil, err
	}

	graph := make(Graph, len(mods))
	if len(mods) == 0 {
		return graph, nil
	}

	matchers := make([]*matcher, len(mods))
	for i, mod := range mods {
		matchers[i] = newMatcher(mod.Name)
		graph[mod.Name] = make(map[string]bool)
	}

	for _, mod := range mods {
		for _, file := range mod.Files {
			data, readErr := os.ReadFile(paths.Join(b.projectRoot, file))
			if readErr != nil {
				// Unreadable files contribute nothing; the scan goes on
				b.logger.Debug("Skipping unreadable file", map[string]interface{}{
					"file":  file,
					"error": readErr.Error(),
				})
				continue
			}
			content := string(data)

			for _, m := range matchers {
				if m.name == mod.Name || graph[mod.Name][m.name] {
					continue
				}
				if m.matches(content) {
					graph.AddEdge(mod.Name, m.name)
				}
			}
		}
	}

	b.logger.Debug("Dependency graph built", map[string]interface{}{
		"modules": len(graph),
		"edges":   graph.EdgeCount(),
	})

	return graph, nil
}
