package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"archlint/internal/validate"
)

// RunRecord is one recorded validation run.
type RunRecord struct {
	ID          string `json:"id" yaml:"id"`
	ProjectRoot string `json:"projectRoot" yaml:"projectRoot"`
	CreatedAt   string `json:"createdAt" yaml:"createdAt"`
	Passed      bool   `json:"passed" yaml:"passed"`
	TotalIssues int    `json:"totalIssues" yaml:"totalIssues"`
	DurationMs  int64  `json:"durationMs" yaml:"durationMs"`
}

// SaveRun records a validation report and returns the new run's id.
// The full report is stored as JSON so older runs stay inspectable
// even as the summary columns evolve.
func (db *DB) SaveRun(report *validate.Report) (string, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	id := uuid.NewString()
	err = db.WithTx(func(tx *sql.Tx) error {
		_, execErr := tx.Exec(`
			INSERT INTO runs (id, project_root, created_at, passed, total_issues, duration_ms, report_json)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, report.ProjectRoot, report.GeneratedAt,
			boolToInt(report.Passed), report.TotalIssues, report.DurationMs,
			string(reportJSON))
		return execErr
	})
	if err != nil {
		return "", fmt.Errorf("failed to save run: %w", err)
	}

	db.logger.Debug("Validation run recorded", map[string]interface{}{
		"runId":  id,
		"issues": report.TotalIssues,
	})
	return id, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.conn.Query(`
		SELECT id, project_root, created_at, passed, total_issues, duration_ms
		FROM runs
		ORDER BY created_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var passed int
		if err := rows.Scan(&rec.ID, &rec.ProjectRoot, &rec.CreatedAt,
			&passed, &rec.TotalIssues, &rec.DurationMs); err != nil {
			return nil, err
		}
		rec.Passed = passed != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetRunReport loads the full stored report for one run.
func (db *DB) GetRunReport(id string) (*validate.Report, error) {
	var reportJSON string
	err := db.conn.QueryRow(`SELECT report_json FROM runs WHERE id = ?`, id).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, err
	}

	var report validate.Report
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored report: %w", err)
	}
	return &report, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
