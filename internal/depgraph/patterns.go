// Package depgraph builds a module-level dependency graph from
// heuristic import matching and detects cycles in it.
//
// The matching is intentionally coarse: a small fixed set of textual
// patterns approximates "this module name appears as the target of an
// import-like statement" across ecosystems at once. It produces false
// positives (a name inside a string, comment, or unrelated identifier)
// and false negatives (exotic import syntax). That trade is the
// contract; this is a best-effort signal, not static analysis.
package depgraph

import (
	"regexp"
)

// referencePatterns compiles the import-like patterns for one module
// name. Three families cover the common ecosystems:
//
//	from ... <name>     (Python-style)
//	import ... <name>   (Python/JS/TS/Java/Kotlin/Go-style)
//	require(... <name>  (CommonJS-style)
//
// Patterns match within a single line; `.*` does not cross newlines.
func referencePatterns(name string) []*regexp.Regexp {
	esc := regexp.QuoteMeta(name)
	return []*regexp.Regexp{
		regexp.MustCompile(`from\s+["']?.*` + esc),
		regexp.MustCompile(`import\s+.*` + esc),
		regexp.MustCompile(`require\s*\(.*` + esc),
	}
}

// matcher holds the precompiled patterns for one candidate module so a
// build scans each file without recompiling regexes.
type matcher struct {
	name     string
	patterns []*regexp.Regexp
}

func newMatcher(name string) *matcher {
	return &matcher{name: name, patterns: referencePatterns(name)}
}

// matches reports whether content appears to reference the module.
// The first matching pattern wins; remaining patterns are not tried.
func (m *matcher) matches(content string) bool {
	for _, re := range m.patterns {
		if re.MatchString(content) {
			return true
		}
	}
	return false
}

// References reports whether the file content appears to reference the
// named module. Callers must not check a module against itself: its own
// internal imports would trivially match.
func References(content, module string) bool {
	return newMatcher(module).matches(content)
}
