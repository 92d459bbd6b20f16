package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatYAML:
		return formatYAML(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func formatYAML(resp interface{}) (string, error) {
	data, err := yaml.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *GraphResponseCLI:
		return formatGraphHuman(v)
	case *HistoryResponseCLI:
		return formatHistoryHuman(v)
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatGraphHuman(resp *GraphResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Dependency Graph (%s)\n", resp.ModulesDir))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Modules: %d, Edges: %d\n\n", len(resp.Modules), resp.EdgeCount))

	for _, mod := range resp.Modules {
		if len(mod.DependsOn) == 0 {
			b.WriteString(fmt.Sprintf("  %s (no dependencies)\n", mod.Name))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s -> %s\n", mod.Name, strings.Join(mod.DependsOn, ", ")))
	}

	if len(resp.Cycles) > 0 {
		b.WriteString("\nCycles:\n")
		for _, cycle := range resp.Cycles {
			b.WriteString(fmt.Sprintf("  ! %s\n", cycle))
		}
	} else {
		b.WriteString("\nNo circular dependencies detected\n")
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func formatHistoryHuman(resp *HistoryResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString("Validation History\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if len(resp.Runs) == 0 {
		b.WriteString("No recorded runs. Use 'archlint validate --save' to record one.\n")
		return strings.TrimRight(b.String(), "\n"), nil
	}

	for _, run := range resp.Runs {
		status := "PASS"
		if !run.Passed {
			status = "FAIL"
		}
		id := run.ID
		if len(id) > 8 {
			id = id[:8]
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %s  %d issue(s)  %dms\n",
			run.CreatedAt, id, status, run.TotalIssues, run.DurationMs))
	}

	return strings.TrimRight(b.String(), "\n"), nil
}
