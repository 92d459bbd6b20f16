package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"archlint/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [project-root]",
	Short: "Initialize archlint configuration",
	Long:  "Creates a .archlint/ directory with default validation rules in the project root",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	projectRoot := projectRootArg(args)

	info, err := os.Stat(projectRoot)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("project root not found: %s", projectRoot)
	}

	configDir := filepath.Join(projectRoot, config.ConfigDirName)
	configPath := filepath.Join(configDir, "config.json")

	if _, statErr := os.Stat(configPath); statErr == nil && !initForce {
		// Idempotent: already initialized is success
		fmt.Println("archlint already initialized.")
		fmt.Printf("Configuration at: %s\n", configPath)
		fmt.Println("\nRun 'archlint init --force' to overwrite.")
		return nil
	}

	if mkdirErr := os.MkdirAll(configDir, 0755); mkdirErr != nil {
		return fmt.Errorf("failed to create %s directory: %w", config.ConfigDirName, mkdirErr)
	}

	cfg := config.DefaultConfig()
	if saveErr := cfg.Save(projectRoot); saveErr != nil {
		return fmt.Errorf("failed to write config file: %w", saveErr)
	}

	fmt.Println("archlint initialized successfully!")
	fmt.Printf("Configuration written to: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit requiredDirs/requiredFiles to match your architecture")
	fmt.Println("  2. Set modules.dir to enable the circular-dependency check")
	fmt.Println("  3. Run 'archlint validate'")
	return nil
}
