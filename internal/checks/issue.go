// Package checks implements the structural validations: required
// directories, required files, and the test-mirror comparison. Each
// violation becomes an Issue; nothing in here is fatal.
package checks

// Category identifies which validation produced an issue.
type Category string

const (
	CategoryDirs   Category = "required-dirs"
	CategoryFiles  Category = "required-files"
	CategoryMirror Category = "test-mirror"
	CategoryCycles Category = "circular-dependencies"
)

// Severity distinguishes hard failures from warnings. Both count
// toward the run's issue total; only the label differs.
type Severity string

const (
	SeverityFail Severity = "fail"
	SeverityWarn Severity = "warn"
)

// Issue is one reported validation failure.
type Issue struct {
	Category Category `json:"category" yaml:"category"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

// Messages extracts the message strings in order.
func Messages(issues []Issue) []string {
	msgs := make([]string, 0, len(issues))
	for _, issue := range issues {
		msgs = append(msgs, issue.Message)
	}
	return msgs
}
