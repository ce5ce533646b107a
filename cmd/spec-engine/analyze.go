// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/spec-engine/internal/analyze"
	"github.com/pdiddy/spec-engine/internal/report"
	"github.com/pdiddy/spec-engine/internal/validate"
	"github.com/pdiddy/spec-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze ingested datasheets into a validated project",
	Long: `Analyze reads datasheet text (and table files) from the data
directory, extracts one typed component per document, assembles them
into a project, validates the result, and writes the project file to
the output directory. Unchanged documents are served from cache on
repeated runs within one invocation.`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	projectName, _ := cmd.Flags().GetString("project")
	cfg := analyzeConfigFromFlags(cmd)

	analyzer, err := analyze.New(cfg)
	if err != nil {
		return err
	}

	project, summary, err := analyzer.AnalyzeAll(projectName, os.Stdout)
	if err != nil {
		return err
	}

	applyValidation(project)

	path, err := analyzer.WriteProject(project)
	if err != nil {
		return err
	}
	fmt.Printf("\nProject written to %s\n", path)
	fmt.Print(report.Summary(project))

	if summary.HasFailures() {
		return fmt.Errorf("%d document(s) failed analysis", summary.Failed)
	}
	return nil
}

// applyValidation runs the validators and stores their findings on the
// project's diagnostic lists. Re-running replaces earlier findings.
func applyValidation(p *types.Project) {
	p.ResetDiagnostics()

	res := validate.Project(p)
	p.Warnings = append(p.Warnings, res.Warnings...)
	p.CompatibilityIssues = append(p.CompatibilityIssues, validate.CheckPowerCompatibility(p)...)
	p.CompatibilityIssues = append(p.CompatibilityIssues, validate.CheckInterfaceAvailability(p)...)
}

func analyzeConfigFromFlags(cmd *cobra.Command) types.AnalyzeConfig {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	cacheSize, _ := cmd.Flags().GetInt("cache-size")
	unscoped, _ := cmd.Flags().GetBool("unscoped-voltage-to-input")

	return types.AnalyzeConfig{
		Extract:   types.ExtractConfig{UnscopedVoltageToInput: unscoped},
		DataDir:   dataDir,
		OutputDir: outputDir,
		CacheSize: cacheSize,
	}
}

func init() {
	analyzeCmd.Flags().String("project", "Component Project", "project name for the assembled build")
	analyzeCmd.Flags().String("data-dir", "data", "base directory for ingested documents (contains datasheets/)")
	analyzeCmd.Flags().String("output-dir", "output", "base directory for analysis output (contains projects/)")
	analyzeCmd.Flags().Int("cache-size", 0, "per-document cache size (0 = default)")
	analyzeCmd.Flags().Bool("unscoped-voltage-to-input", true, "treat a voltage with no input/output context as an input voltage")

	rootCmd.AddCommand(analyzeCmd)
}
