// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists analyzed components and builds a retrieval index.
// Implements: prd006-component-store (R1-R3);
//
//	docs/ARCHITECTURE § Component Store.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/spec-engine/pkg/types"
)

const (
	projectsDir = "projects"
	indexDir    = "index"
	dbFile      = "components.db"
)

// Store manages the component index SQLite database.
type Store struct {
	db         *sql.DB
	outputDir  string
	maxResults int
}

// NewStore opens or creates the component database at
// outputDir/index/components.db, creating the schema if needed (R1.2).
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.OutputDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		outputDir:  cfg.OutputDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			slug TEXT PRIMARY KEY,
			name TEXT,
			power_budget TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS components (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			manufacturer TEXT,
			part_number TEXT,
			power TEXT,
			interfaces TEXT,
			specific_specs TEXT,
			source_document TEXT NOT NULL,
			page INTEGER,
			confidence REAL,
			project_slug TEXT NOT NULL REFERENCES projects(slug),
			searchable TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_components_project ON components(project_slug)`,
		`CREATE INDEX IF NOT EXISTS idx_components_type ON components(type)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			project_slug TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='components_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE components_fts USING fts5(searchable, content=components, content_rowid=rowid)`,
			`CREATE TRIGGER components_ai AFTER INSERT ON components BEGIN
				INSERT INTO components_fts(rowid, searchable) VALUES (new.rowid, new.searchable);
			END`,
			`CREATE TRIGGER components_ad AFTER DELETE ON components BEGIN
				INSERT INTO components_fts(components_fts, rowid, searchable) VALUES('delete', old.rowid, old.searchable);
			END`,
			`CREATE TRIGGER components_au AFTER UPDATE ON components BEGIN
				INSERT INTO components_fts(components_fts, rowid, searchable) VALUES('delete', old.rowid, old.searchable);
				INSERT INTO components_fts(rowid, searchable) VALUES (new.rowid, new.searchable);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from a component indexing run (R2.4).
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of project files processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest reads analyzed project YAML files from outputDir/projects/ and
// populates the database. It detects new, changed, and unchanged files
// for incremental updates (R2.1-R2.4). On success it refreshes
// export.yaml.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	projDir := filepath.Join(s.outputDir, projectsDir)

	entries, err := os.ReadDir(projDir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading projects directory %s: %w", projDir, err)
	}

	var summary IngestSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		slug := strings.TrimSuffix(entry.Name(), ".yaml")
		filePath := filepath.Join(projDir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", slug, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		// Unchanged files are skipped (R2.2).
		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM indexing_status WHERE project_slug = ?`, slug,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", slug)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", slug, err)
			summary.Failed++
			continue
		}

		var project types.Project
		if err := yaml.Unmarshal(data, &project); err != nil {
			fmt.Fprintf(w, "failed  %s: parse error: %v\n", slug, err)
			summary.Failed++
			continue
		}

		if err := s.ingestProject(ctx, slug, &project, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", slug, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d components)\n", slug, len(project.Components))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexing %s (%d components)\n", slug, len(project.Components))
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	if summary.Indexed > 0 || summary.Updated > 0 {
		if err := s.ExportYAML(ctx, QueryOptions{}); err != nil {
			fmt.Fprintf(w, "warning: export.yaml write failed: %v\n", err)
		}
	}

	return summary, nil
}

func (s *Store) ingestProject(ctx context.Context, slug string, project *types.Project, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// A re-index replaces the project's components wholesale (R2.3).
	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM components WHERE project_slug = ?`, slug); err != nil {
			return fmt.Errorf("deleting old components: %w", err)
		}
	}

	budgetJSON, _ := json.Marshal(project.TotalPowerBudget)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO projects (slug, name, power_budget) VALUES (?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
			name=excluded.name, power_budget=excluded.power_budget`,
		slug, project.Name, string(budgetJSON),
	)
	if err != nil {
		return fmt.Errorf("upserting project: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO components
			(id, name, type, manufacturer, part_number, power, interfaces,
			 specific_specs, source_document, page, confidence, project_slug, searchable)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range project.Components {
		powerJSON, _ := json.Marshal(c.Power)
		interfacesJSON, _ := json.Marshal(c.Interfaces)
		specsJSON, _ := json.Marshal(c.SpecificSpecs)
		_, err := stmt.ExecContext(ctx,
			componentID(slug, c), c.Name, string(c.Type), c.Manufacturer,
			c.PartNumber, string(powerJSON), string(interfacesJSON),
			string(specsJSON), c.SourceDocument, c.PageNumber, c.Confidence,
			slug, searchable(c),
		)
		if err != nil {
			return fmt.Errorf("inserting component %s: %w", c.Name, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO indexing_status (project_slug, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(project_slug) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		slug, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating indexing status: %w", err)
	}

	return tx.Commit()
}

// componentID builds the stable key for a stored component: one component
// per source document per project.
func componentID(slug string, c types.Component) string {
	return slug + "/" + c.SourceDocument
}

// searchable flattens the component's text fields into the FTS document.
func searchable(c types.Component) string {
	parts := []string{c.Name, string(c.Type), c.Manufacturer, c.PartNumber, c.SourceDocument}
	for k, v := range c.SpecificSpecs {
		parts = append(parts, k, v)
	}
	return strings.Join(parts, " ")
}
