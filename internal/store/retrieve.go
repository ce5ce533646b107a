// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/spec-engine/pkg/types"
)

// QueryOptions holds parameters for component queries (R3).
type QueryOptions struct {
	// Query is the FTS5 full-text search string over names, part numbers,
	// manufacturers, and spec text (R3.1).
	Query string

	// Type filters by component type (R3.2).
	Type types.ComponentType

	// Project filters by project slug (R3.3).
	Project string

	// Document filters by source document name (R3.4).
	Document string

	// MaxResults limits result count. Zero uses store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Type == "" && q.Project == "" && q.Document == ""
}

// QueryResult is a stored component with its project association.
type QueryResult struct {
	types.Component
	ProjectSlug string `json:"project_slug" yaml:"project_slug"`
	ProjectName string `json:"project_name" yaml:"project_name"`
}

// Retrieve queries the component index with optional full-text search and
// structured filters (R3). Results are ranked by relevance for full-text
// queries, or sorted by project, source document for structured-only
// queries.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT c.name, c.type, c.manufacturer, c.part_number, c.power,
				c.interfaces, c.specific_specs, c.source_document, c.page,
				c.confidence, c.project_slug, p.name, components_fts.rank
			FROM components_fts
			JOIN components c ON c.rowid = components_fts.rowid
			LEFT JOIN projects p ON c.project_slug = p.slug
			WHERE components_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT c.name, c.type, c.manufacturer, c.part_number, c.power,
				c.interfaces, c.specific_specs, c.source_document, c.page,
				c.confidence, c.project_slug, p.name, 0 AS rank
			FROM components c
			LEFT JOIN projects p ON c.project_slug = p.slug
			WHERE 1=1`)
	}

	if opts.Type != "" {
		qb.WriteString(` AND c.type = ?`)
		args = append(args, string(opts.Type))
	}

	if opts.Project != "" {
		qb.WriteString(` AND c.project_slug = ?`)
		args = append(args, opts.Project)
	}

	if opts.Document != "" {
		qb.WriteString(` AND c.source_document = ?`)
		args = append(args, opts.Document)
	}

	if useFTS {
		qb.WriteString(` ORDER BY components_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY c.project_slug, c.source_document`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying component index: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr             QueryResult
			componentType  string
			powerJSON      sql.NullString
			interfacesJSON sql.NullString
			specsJSON      sql.NullString
			projectName    sql.NullString
			rank           float64
		)

		if err := rows.Scan(
			&qr.Name, &componentType, &qr.Manufacturer, &qr.PartNumber,
			&powerJSON, &interfacesJSON, &specsJSON,
			&qr.SourceDocument, &qr.PageNumber, &qr.Confidence,
			&qr.ProjectSlug, &projectName, &rank,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		qr.Type = types.ComponentType(componentType)

		if powerJSON.Valid {
			json.Unmarshal([]byte(powerJSON.String), &qr.Power)
		}
		if interfacesJSON.Valid {
			json.Unmarshal([]byte(interfacesJSON.String), &qr.Interfaces)
		}
		if specsJSON.Valid {
			json.Unmarshal([]byte(specsJSON.String), &qr.SpecificSpecs)
		}
		if projectName.Valid {
			qr.ProjectName = projectName.String
		}

		results = append(results, qr)
	}

	return results, rows.Err()
}
