package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/spec-engine/internal/report"
	"github.com/pdiddy/spec-engine/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report [project-file]",
	Short: "Render a project as a BOM or report",
	Long: `Report loads a project YAML file and renders it in the chosen
format: a CSV bill of materials, a Markdown report with diagnostics and
power budget analysis, or a fixed-width table printed to the terminal.
File formats land under the output directory's reports/ subdirectory.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	project, err := loadProject(args[0])
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	cfg := types.ReportConfig{
		OutputDir: outputDir,
		Format:    types.ReportFormat(format),
	}

	switch cfg.Format {
	case types.ReportTable:
		fmt.Print(report.FormatTable(project))
		return nil

	case types.ReportCSV, types.ReportMarkdown:
		path, err := report.Export(project, cfg)
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", path)
		return nil

	default:
		return fmt.Errorf("unsupported format %q: use csv, markdown, or table", format)
	}
}

func init() {
	reportCmd.Flags().String("format", "markdown", "report format: csv, markdown, or table")
	reportCmd.Flags().String("output-dir", "output", "base directory for report output (contains reports/)")

	rootCmd.AddCommand(reportCmd)
}
