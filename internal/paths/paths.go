package paths

import (
	"path/filepath"
	"strings"
)

// Normalize converts a path to forward slashes. All project-relative
// paths stored by the scanner and reported in issues use this form so
// output is identical across platforms.
func Normalize(path string) string {
	return filepath.ToSlash(path)
}

// RelativeTo makes path relative to root and normalizes it. If path
// cannot be made relative, it is returned normalized as-is.
func RelativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return Normalize(path)
	}
	return Normalize(rel)
}

// Join joins a root with a slash-separated relative path using the
// OS path separator.
func Join(root, rel string) string {
	parts := strings.Split(rel, "/")
	return filepath.Join(append([]string{root}, parts...)...)
}
