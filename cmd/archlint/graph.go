package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"archlint/internal/depgraph"
)

var (
	graphFormat     string
	graphModulesDir string
)

var graphCmd = &cobra.Command{
	Use:   "graph [project-root]",
	Short: "Show the inferred module dependency graph",
	Long: `Build and print the module dependency graph inferred from
import-like statements, along with any cycles found in it.

Examples:
  archlint graph
  archlint graph ./my-project --modules-dir src/modules
  archlint graph --format=json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGraph,
}

func init() {
	graphCmd.Flags().StringVar(&graphFormat, "format", "human", "Output format (human, json, yaml)")
	graphCmd.Flags().StringVar(&graphModulesDir, "modules-dir", "", "Modules directory relative to the project root (default: from config)")
	rootCmd.AddCommand(graphCmd)
}

// GraphResponseCLI contains the dependency graph for CLI output
type GraphResponseCLI struct {
	ModulesDir string           `json:"modulesDir" yaml:"modulesDir"`
	Modules    []GraphModuleCLI `json:"modules" yaml:"modules"`
	EdgeCount  int              `json:"edgeCount" yaml:"edgeCount"`
	Cycles     []string         `json:"cycles,omitempty" yaml:"cycles,omitempty"`
}

type GraphModuleCLI struct {
	Name      string   `json:"name" yaml:"name"`
	DependsOn []string `json:"dependsOn,omitempty" yaml:"dependsOn,omitempty"`
}

func runGraph(cmd *cobra.Command, args []string) {
	projectRoot := projectRootArg(args)

	cfg, err := loadProjectConfig(projectRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg)

	modulesDir := cfg.Modules.Dir
	if graphModulesDir != "" {
		modulesDir = graphModulesDir
	}
	if modulesDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no modules directory configured; set modules.dir or pass --modules-dir")
		os.Exit(1)
	}

	builder := depgraph.NewBuilder(projectRoot, &cfg.Modules, logger)
	graph, err := builder.Build(modulesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building dependency graph: %v\n", err)
		os.Exit(1)
	}

	response := &GraphResponseCLI{
		ModulesDir: modulesDir,
		EdgeCount:  graph.EdgeCount(),
		Cycles:     depgraph.FindCycles(graph),
	}
	for _, name := range graph.Nodes() {
		response.Modules = append(response.Modules, GraphModuleCLI{
			Name:      name,
			DependsOn: graph.Neighbors(name),
		})
	}

	output, err := FormatResponse(response, OutputFormat(graphFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)
}
