// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/spec-engine/internal/store"
	"github.com/pdiddy/spec-engine/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the component index (ingest, query, export)",
	Long: `Store manages a local SQLite index built from analyzed project
files. Use subcommands to ingest projects, query components, or export.`,
}

// --- ingest subcommand ---

var storeIngestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest analyzed project files into the component index",
	Long: `Ingest reads project YAML files from the output directory's
projects/ subdirectory, indexes their components into a SQLite database
with FTS5 search, and writes an export file. Unchanged projects are
skipped on subsequent runs.`,
	RunE: runStoreIngest,
}

func runStoreIngest(cmd *cobra.Command, args []string) error {
	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	summary, err := s.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d project(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- query subcommand ---

var storeQueryCmd = &cobra.Command{
	Use:   "query [search terms]",
	Short: "Query the component index with full-text search and filters",
	Long: `Query searches the component index using FTS5 full-text search
over names, part numbers, manufacturers, and spec text, structured
filters (type, project, document), or a combination of both.`,
	RunE: runStoreQuery,
}

func runStoreQuery(cmd *cobra.Command, args []string) error {
	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide search terms, --type, --project, or --document")
	}

	results, err := s.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []store.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-25s  %-10s  %-15s  %-10s  %-10s  %s\n",
		"Rank", "Name", "Type", "Manufacturer", "Voltage", "Current", "Project")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for i, r := range results {
		fmt.Fprintf(os.Stdout, "%-4d  %-25s  %-10s  %-15s  %-10s  %-10s  %s\n",
			i+1,
			clip(r.Name, 25), clip(string(r.Type), 10), clip(r.Manufacturer, 15),
			clip(r.Power.VoltageInput, 10), clip(r.Power.CurrentRating, 10),
			r.ProjectSlug)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the component index to YAML or JSON",
	Long: `Export writes the full component index (or a filtered subset) to
the output directory's index/export.yaml or export.json. Supports the
same filter flags as query for partial exports.`,
	RunE: runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := s.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to index/export.yaml")
	case "json":
		if err := s.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to index/export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func storeConfig(cmd *cobra.Command) types.StoreConfig {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.StoreConfig{
		OutputDir:  outputDir,
		MaxResults: maxResults,
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) store.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	componentType, _ := cmd.Flags().GetString("type")
	project, _ := cmd.Flags().GetString("project")
	document, _ := cmd.Flags().GetString("document")
	limit, _ := cmd.Flags().GetInt("limit")

	return store.QueryOptions{
		Query:      queryText,
		Type:       types.ComponentType(componentType),
		Project:    project,
		Document:   document,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("output-dir", "output", "base directory for analysis output (contains projects/, index/)")
	storeCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	// Query flags.
	storeQueryCmd.Flags().String("query", "", "full-text search query")
	storeQueryCmd.Flags().String("type", "", "filter by component type: motor, sensor, camera, processor, battery, esc, radio, power")
	storeQueryCmd.Flags().String("project", "", "filter by project slug")
	storeQueryCmd.Flags().String("document", "", "filter by source document name")
	storeQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	storeQueryCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	storeExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	storeExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	storeExportCmd.Flags().String("type", "", "filter by component type for partial export")
	storeExportCmd.Flags().String("project", "", "filter by project slug for partial export")
	storeExportCmd.Flags().String("document", "", "filter by source document for partial export")
	storeExportCmd.Flags().Int("limit", 0, "maximum components to export (0 = all)")

	// Wire subcommands.
	storeCmd.AddCommand(storeIngestCmd)
	storeCmd.AddCommand(storeQueryCmd)
	storeCmd.AddCommand(storeExportCmd)

	rootCmd.AddCommand(storeCmd)
}
