// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/spec-engine/pkg/types"
)

const reportsDir = "reports"

// Export writes the project report in the configured format to
// cfg.OutputDir/reports/[slug].[ext] and returns the path (R3.1-R3.3).
// The table format is terminal output, not a file; callers wanting it
// should use FormatTable directly.
func Export(p *types.Project, cfg types.ReportConfig) (string, error) {
	dir := filepath.Join(cfg.OutputDir, reportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}

	switch cfg.Format {
	case types.ReportCSV:
		path := filepath.Join(dir, p.Slug()+".csv")
		f, err := os.Create(path)
		if err != nil {
			return "", fmt.Errorf("creating BOM file: %w", err)
		}
		if err := WriteCSV(p, f); err != nil {
			f.Close()
			return "", err
		}
		return path, f.Close()

	case types.ReportMarkdown:
		path := filepath.Join(dir, p.Slug()+".md")
		if err := os.WriteFile(path, []byte(Markdown(p)), 0o644); err != nil {
			return "", fmt.Errorf("writing report: %w", err)
		}
		return path, nil

	default:
		return "", fmt.Errorf("unsupported report format %q", cfg.Format)
	}
}

// ExportYAML writes the full project record to reports/[slug].yaml.
func ExportYAML(p *types.Project, cfg types.ReportConfig) (string, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return writeExport(p, cfg, ".yaml", data)
}

// ExportJSON writes the full project record to reports/[slug].json.
func ExportJSON(p *types.Project, cfg types.ReportConfig) (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return writeExport(p, cfg, ".json", data)
}

func writeExport(p *types.Project, cfg types.ReportConfig, ext string, data []byte) (string, error) {
	dir := filepath.Join(cfg.OutputDir, reportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}
	path := filepath.Join(dir, p.Slug()+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}
