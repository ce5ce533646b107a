// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Specification is a page-scoped raw extraction record: everything pulled
// from one page of a source document before components are assembled.
// Per prd002-data-model R3. It is an intermediate artifact; nothing
// downstream of Component creation requires it.
type Specification struct {
	// DocumentName identifies the source document.
	DocumentName string `json:"document_name" yaml:"document_name"`

	// PageNumber is the 1-based page the record covers.
	PageNumber int `json:"page_number" yaml:"page_number"`

	// RawText is the page text as supplied by the ingestion collaborator.
	RawText string `json:"raw_text" yaml:"raw_text"`

	// Tables holds the page's tables as row-major grids of cell strings.
	Tables [][][]string `json:"tables,omitempty" yaml:"tables,omitempty"`

	// ExtractedValues maps pattern or spec names to raw matched values.
	ExtractedValues map[string]string `json:"extracted_values,omitempty" yaml:"extracted_values,omitempty"`

	// ComponentMentions lists component-category keywords seen on the page.
	ComponentMentions []string `json:"component_mentions,omitempty" yaml:"component_mentions,omitempty"`
}

// Project is a collection of components plus aggregate diagnostics for one
// system build. Per prd002-data-model R4. Components keep insertion order
// (discovery order). The four diagnostic lists are append-only accumulators:
// validators only ever append, so a caller re-validating the same project
// must call ResetDiagnostics first or see duplicated entries.
type Project struct {
	// Name is the project name (e.g. "Quadcopter Drone").
	Name string `json:"name" yaml:"name"`

	// Components lists the project's parts in discovery order.
	Components []Component `json:"components" yaml:"components"`

	// TotalPowerBudget maps aggregate keys (e.g. "total_current_a",
	// "estimated_power_w") to computed values. It is populated by the
	// analysis stage, not by the validators, which only read it.
	TotalPowerBudget map[string]float64 `json:"total_power_budget,omitempty" yaml:"total_power_budget,omitempty"`

	// CompatibilityIssues lists cross-component problems found by the
	// compatibility checkers.
	CompatibilityIssues []string `json:"compatibility_issues,omitempty" yaml:"compatibility_issues,omitempty"`

	// MissingComponents lists essential categories absent from the build.
	MissingComponents []string `json:"missing_components,omitempty" yaml:"missing_components,omitempty"`

	// Warnings lists non-fatal findings from project validation.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Recommendations lists suggested follow-ups for the builder.
	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// NewProject returns an empty project with the given name.
func NewProject(name string) *Project {
	return &Project{Name: name}
}

// AddComponent appends a component, preserving discovery order.
func (p *Project) AddComponent(c Component) {
	p.Components = append(p.Components, c)
}

// ComponentsByType returns all components of the given type, in order.
func (p *Project) ComponentsByType(t ComponentType) []Component {
	var out []Component
	for _, c := range p.Components {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// ResetDiagnostics clears all four diagnostic lists so validators can run
// again without duplicating earlier findings.
func (p *Project) ResetDiagnostics() {
	p.CompatibilityIssues = nil
	p.MissingComponents = nil
	p.Warnings = nil
	p.Recommendations = nil
}

// Slug returns the project name as a filesystem-safe token: lowercased,
// with runs of non-alphanumerics folded to single hyphens.
func (p *Project) Slug() string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(p.Name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
