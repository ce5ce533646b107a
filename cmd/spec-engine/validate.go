package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/spec-engine/internal/validate"
	"github.com/pdiddy/spec-engine/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate [project-file]",
	Short: "Validate an analyzed project file",
	Long: `Validate loads a project YAML file, checks every component's
required fields and spec formats, and runs the cross-component power
and interface compatibility checks. Findings print to stdout; --write
persists them back onto the project file's diagnostic lists.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	project, err := loadProject(path)
	if err != nil {
		return err
	}

	applyValidation(project)

	fmt.Printf("Project: %s (%d components)\n\n", project.Name, len(project.Components))

	printFindings("Warnings", project.Warnings)
	printFindings("Compatibility issues", project.CompatibilityIssues)

	for i, c := range project.Components {
		fmt.Printf("Component %d (%s): completeness %.2f\n", i+1, c.Name, validate.Completeness(c))
	}

	if write, _ := cmd.Flags().GetBool("write"); write {
		data, err := yaml.Marshal(project)
		if err != nil {
			return fmt.Errorf("marshaling project: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing project: %w", err)
		}
		fmt.Printf("\nFindings written to %s\n", path)
	}

	if len(project.Warnings)+len(project.CompatibilityIssues) > 0 {
		return fmt.Errorf("validation found %d warning(s) and %d issue(s)",
			len(project.Warnings), len(project.CompatibilityIssues))
	}
	fmt.Println("\nProject OK")
	return nil
}

func printFindings(title string, findings []string) {
	if len(findings) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, f := range findings {
		fmt.Printf("  - %s\n", f)
	}
	fmt.Println()
}

// loadProject reads a project YAML file.
func loadProject(path string) (*types.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project: %w", err)
	}
	var project types.Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}
	return &project, nil
}

func init() {
	validateCmd.Flags().Bool("write", false, "persist validation findings back to the project file")

	rootCmd.AddCommand(validateCmd)
}
