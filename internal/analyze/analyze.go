// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze turns ingested datasheet text and tables into typed
// components and assembles them into a project.
// Implements: prd004-analysis (R1-R5);
//
//	docs/ARCHITECTURE § Analysis.
package analyze

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/spec-engine/internal/extract"
	"github.com/pdiddy/spec-engine/pkg/types"
)

const (
	datasheetsDir = "datasheets"
	projectsDir   = "projects"

	tablesSuffix = ".tables.yaml"
	textSuffix   = ".txt"

	defaultCacheSize = 128
)

// Analyzer runs document analysis with a bounded cache of per-document
// results. The cache key includes the file's modification time, so an
// updated document re-analyzes while unchanged ones are served from memory.
type Analyzer struct {
	cfg   types.AnalyzeConfig
	cache *lru.Cache[string, docResult]
}

// docResult is one document's cached analysis output.
type docResult struct {
	specs     []types.Specification
	component types.Component
}

// New returns an Analyzer for the given configuration.
func New(cfg types.AnalyzeConfig) (*Analyzer, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, docResult](size)
	if err != nil {
		return nil, fmt.Errorf("creating document cache: %w", err)
	}
	return &Analyzer{cfg: cfg, cache: cache}, nil
}

// BatchSummary holds counts from a batch analysis run (R5.3).
type BatchSummary struct {
	Analyzed int
	Cached   int
	Failed   int
}

// Total returns the number of documents processed.
func (s BatchSummary) Total() int {
	return s.Analyzed + s.Cached + s.Failed
}

// HasFailures reports whether any documents failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// AnalyzeAll walks cfg.DataDir/datasheets/ for document text files, analyzes
// each into a component, and accumulates them into a project named
// projectName, in directory order (discovery order). Per-document failures
// are reported to w and counted, not fatal (R5.1, R5.2). The project's
// power budget is estimated after all components are in.
func (a *Analyzer) AnalyzeAll(projectName string, w io.Writer) (*types.Project, BatchSummary, error) {
	docsDir := filepath.Join(a.cfg.DataDir, datasheetsDir)

	entries, err := os.ReadDir(docsDir)
	if err != nil {
		return nil, BatchSummary{}, fmt.Errorf("reading datasheets directory %s: %w", docsDir, err)
	}

	project := types.NewProject(projectName)
	var summary BatchSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), textSuffix) {
			continue
		}

		docName := strings.TrimSuffix(entry.Name(), textSuffix)
		docPath := filepath.Join(docsDir, entry.Name())

		result, fromCache, err := a.analyzeFile(docName, docPath)
		if err != nil {
			fmt.Fprintf(w, "failed   %s: %v\n", docName, err)
			summary.Failed++
			continue
		}

		project.AddComponent(result.component)
		if fromCache {
			fmt.Fprintf(w, "cached   %s\n", docName)
			summary.Cached++
		} else {
			fmt.Fprintf(w, "analyzed %s (%d pages, %d specs)\n",
				docName, len(result.specs), len(result.component.SpecificSpecs))
			summary.Analyzed++
		}
	}

	project.TotalPowerBudget = EstimateBudget(project)

	fmt.Fprintf(w, "\nanalyzed: %d, cached: %d, failed: %d\n",
		summary.Analyzed, summary.Cached, summary.Failed)

	return project, summary, nil
}

// analyzeFile loads one document's text (and table sidecar, when present)
// and runs the analysis, consulting the cache first.
func (a *Analyzer) analyzeFile(docName, docPath string) (docResult, bool, error) {
	info, err := os.Stat(docPath)
	if err != nil {
		return docResult{}, false, fmt.Errorf("stat %s: %w", docPath, err)
	}
	key := docPath + "|" + info.ModTime().UTC().String()

	if cached, ok := a.cache.Get(key); ok {
		return cached, true, nil
	}

	content, err := os.ReadFile(docPath)
	if err != nil {
		return docResult{}, false, fmt.Errorf("reading %s: %w", docPath, err)
	}

	tables, err := loadTables(strings.TrimSuffix(docPath, textSuffix) + tablesSuffix)
	if err != nil {
		return docResult{}, false, err
	}

	specs, component := a.AnalyzeDocument(docName, string(content), tables)
	result := docResult{specs: specs, component: component}
	a.cache.Add(key, result)
	return result, false, nil
}

// loadTables reads a document's table sidecar: a YAML file holding the
// document's tables as row-major grids of strings. A missing sidecar is
// valid, empty input.
func loadTables(path string) ([][][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading tables %s: %w", path, err)
	}
	var tables [][][]string
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("parsing tables %s: %w", path, err)
	}
	return tables, nil
}

// AnalyzeDocument extracts one component from a document's full text and
// tables, plus the per-page Specification records (R1-R4). Pages are split
// on "<!-- page N -->" markers inserted by the ingestion collaborator;
// unmarked text is a single page 1.
func (a *Analyzer) AnalyzeDocument(docName, content string, tables [][][]string) ([]types.Specification, types.Component) {
	pages := splitPages(content)

	specs := make([]types.Specification, 0, len(pages))
	for i, pg := range pages {
		spec := types.Specification{
			DocumentName:      docName,
			PageNumber:        pg.number,
			RawText:           pg.text,
			ExtractedValues:   extract.ExtractAllSpecs(pg.text),
			ComponentMentions: extract.ComponentMentions(pg.text),
		}
		if i == 0 {
			spec.Tables = tables
		}
		specs = append(specs, spec)
	}

	component := a.buildComponent(docName, content, tables, pages)
	return specs, component
}

// buildComponent assembles a Component from the document-wide text and
// tables. The document name is the fallback when no model/part declaration
// is present; provenance always records the document (R2).
func (a *Analyzer) buildComponent(docName, content string, tables [][][]string, pages []page) types.Component {
	specificSpecs := extract.ExtractAllSpecs(content)
	for _, table := range tables {
		for k, v := range extract.ParseTableSpecs(table) {
			specificSpecs[k] = v
		}
	}
	if len(specificSpecs) == 0 {
		specificSpecs = nil
	}

	partNumber := extract.ExtractComponentName(content)
	name := partNumber
	if name == "" {
		name = docName
	}

	componentType := types.TypeOther
	if t, ok := extract.Classify(content); ok {
		componentType = t
	}

	firstPage := 0
	if len(pages) > 0 {
		firstPage = pages[0].number
	}

	c := types.Component{
		Name:           name,
		Type:           componentType,
		Manufacturer:   extract.ExtractManufacturer(content),
		PartNumber:     partNumber,
		Power:          extract.ParsePowerSpecs(content, a.cfg.Extract),
		Interfaces:     extract.ParseInterfaces(content),
		SpecificSpecs:  specificSpecs,
		SourceDocument: docName,
		PageNumber:     firstPage,
	}
	c.Confidence = componentConfidence(c)
	return c
}

// componentConfidence scores how much of the component's field checklist
// extraction managed to populate (R4).
func componentConfidence(c types.Component) float64 {
	fields := map[string]string{
		"name":          c.Name,
		"type":          string(c.Type),
		"manufacturer":  c.Manufacturer,
		"part_number":   c.PartNumber,
		"voltage_input": c.Power.VoltageInput,
		"current":       c.Power.CurrentRating,
	}
	if c.Interfaces.Total() > 0 {
		fields["interfaces"] = "found"
	} else {
		fields["interfaces"] = ""
	}
	if len(c.SpecificSpecs) > 0 {
		fields["specific_specs"] = "found"
	} else {
		fields["specific_specs"] = ""
	}
	return extract.Confidence(fields)
}

// page is one page's worth of document text.
type page struct {
	number int
	text   string
}

// splitPages divides content at "<!-- page N -->" markers. Text before the
// first marker (or all text when there are no markers) is page 1.
func splitPages(content string) []page {
	lines := strings.Split(content, "\n")

	var pages []page
	current := page{number: 1}
	var body []string

	flush := func() {
		current.text = strings.TrimSpace(strings.Join(body, "\n"))
		if current.text != "" {
			pages = append(pages, current)
		}
		body = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if n, ok := parsePageMarker(trimmed); ok {
			flush()
			current = page{number: n}
			continue
		}
		body = append(body, line)
	}
	flush()

	if pages == nil {
		pages = []page{{number: 1}}
	}
	return pages
}

// parsePageMarker extracts the page number from a marker like <!-- page 3 -->.
func parsePageMarker(line string) (int, bool) {
	if !strings.HasPrefix(line, "<!-- page ") || !strings.HasSuffix(line, " -->") {
		return 0, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(line, "<!-- page "), " -->")
	var n int
	if _, err := fmt.Sscanf(inner, "%d", &n); err != nil {
		return 0, false
	}
	return n, true
}

// WriteProject marshals the analyzed project to
// cfg.OutputDir/projects/[slug].yaml and returns the path (R5.4).
func (a *Analyzer) WriteProject(p *types.Project) (string, error) {
	dir := filepath.Join(a.cfg.OutputDir, projectsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating projects directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshaling project: %w", err)
	}

	path := filepath.Join(dir, p.Slug()+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing project: %w", err)
	}
	return path, nil
}
