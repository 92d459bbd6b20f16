// Package modules discovers the logical modules of a project: one
// module per immediate subdirectory of a configured modules root.
// Discovery is recomputed fresh on every validation run and never
// persisted.
package modules

// Module represents one logical module under the modules root.
type Module struct {
	// Name is the module's directory base name.
	Name string `json:"name"`

	// RootPath is the project-relative, slash-separated path to the
	// module's directory.
	RootPath string `json:"rootPath"`

	// Files lists the project-relative, slash-separated paths of every
	// source-like file found beneath the module.
	Files []string `json:"files"`
}

// FileCount returns the number of source-like files in the module.
func (m *Module) FileCount() int {
	return len(m.Files)
}
