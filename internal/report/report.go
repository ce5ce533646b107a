// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/spec-engine/internal/analyze"
	"github.com/pdiddy/spec-engine/pkg/types"
)

// Battery sizing factors: capacity in mAh per amp of draw, for roughly
// 12 and 30 minutes of runtime.
const (
	minRuntimeFactor = 0.2
	recRuntimeFactor = 0.5
)

var titleCaser = cases.Title(language.English)

// Markdown renders the full project report (R2): overview, BOM table,
// per-type component breakdown, the diagnostic sections populated by
// validation, and a power budget analysis with battery sizing.
func Markdown(p *types.Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s - Component Analysis Report\n\n", p.Name)
	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "- **Total Components**: %d\n", len(p.Components))
	fmt.Fprintf(&b, "- **Component Types**: %d\n", countTypes(p))
	if p.TotalPowerBudget != nil {
		fmt.Fprintf(&b, "- **Total Current Draw**: %sA\n", budgetValue(p, analyze.BudgetTotalCurrentA))
		fmt.Fprintf(&b, "- **Estimated Power**: %sW\n", budgetValue(p, analyze.BudgetEstimatedPower))
	}
	b.WriteByte('\n')

	writeBOMSection(&b, p)
	writeTypeBreakdown(&b, p)

	writeListSection(&b, "Compatibility Issues", p.CompatibilityIssues)
	writeListSection(&b, "Warnings", p.Warnings)
	writeListSection(&b, "Potentially Missing Components", p.MissingComponents)
	writeListSection(&b, "Recommendations", p.Recommendations)

	writePowerSection(&b, p)

	b.WriteString("---\n")
	fmt.Fprintf(&b, "*Project: %s*\n", p.Name)
	return b.String()
}

// Summary renders a short console summary of the analyzed project (R4).
func Summary(p *types.Project) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(&b, "\n%s\n  %s - Analysis Summary\n%s\n\n", rule, p.Name, rule)
	fmt.Fprintf(&b, "Components Found: %d\n", len(p.Components))
	if p.TotalPowerBudget != nil {
		fmt.Fprintf(&b, "Total Current: %sA\n", budgetValue(p, analyze.BudgetTotalCurrentA))
		fmt.Fprintf(&b, "Estimated Power: %sW\n", budgetValue(p, analyze.BudgetEstimatedPower))
	}
	fmt.Fprintf(&b, "\nCompatibility Issues: %d\n", len(p.CompatibilityIssues))
	fmt.Fprintf(&b, "Warnings: %d\n", len(p.Warnings))
	fmt.Fprintf(&b, "Missing Components: %d\n", len(p.MissingComponents))
	return b.String()
}

func writeBOMSection(b *strings.Builder, p *types.Project) {
	b.WriteString("## Bill of Materials\n\n")
	b.WriteString("| Component | Type | Manufacturer | Voltage | Current | Power | Source |\n")
	b.WriteString("|-----------|------|--------------|---------|---------|-------|--------|\n")
	for _, c := range p.Components {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			c.Name, c.Type,
			orNA(c.Manufacturer),
			orNA(c.Power.VoltageInput),
			orNA(c.Power.CurrentRating),
			orNA(c.Power.PowerConsumption),
			c.SourceDocument)
	}
	b.WriteByte('\n')
}

func writeTypeBreakdown(b *strings.Builder, p *types.Project) {
	b.WriteString("## Components by Type\n\n")

	byType := make(map[types.ComponentType][]types.Component)
	for _, c := range p.Components {
		byType[c.Type] = append(byType[c.Type], c)
	}
	typeNames := make([]string, 0, len(byType))
	for t := range byType {
		typeNames = append(typeNames, string(t))
	}
	sort.Strings(typeNames)

	for _, name := range typeNames {
		fmt.Fprintf(b, "### %s\n\n", titleCaser.String(name))
		for _, c := range byType[types.ComponentType(name)] {
			fmt.Fprintf(b, "- **%s**", c.Name)
			if c.Manufacturer != "" {
				fmt.Fprintf(b, " (%s)", c.Manufacturer)
			}
			if c.PartNumber != "" {
				fmt.Fprintf(b, " - Part #: %s", c.PartNumber)
			}
			b.WriteByte('\n')

			if c.Power.VoltageInput != "" {
				fmt.Fprintf(b, "  - Voltage: %s\n", c.Power.VoltageInput)
			}
			if c.Power.CurrentRating != "" {
				fmt.Fprintf(b, "  - Current: %s\n", c.Power.CurrentRating)
			}
			for _, key := range sortedKeys(c.SpecificSpecs) {
				fmt.Fprintf(b, "  - %s: %s\n", specLabel(key), c.SpecificSpecs[key])
			}
			b.WriteByte('\n')
		}
	}
}

func writeListSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteByte('\n')
}

func writePowerSection(b *strings.Builder, p *types.Project) {
	if p.TotalPowerBudget == nil {
		return
	}

	b.WriteString("## Power Budget Analysis\n\n")
	fmt.Fprintf(b, "**Total Current Draw**: %sA\n", budgetValue(p, analyze.BudgetTotalCurrentA))
	fmt.Fprintf(b, "**Estimated Power Consumption**: %sW\n\n", budgetValue(p, analyze.BudgetEstimatedPower))

	totalCurrent := p.TotalPowerBudget[analyze.BudgetTotalCurrentA]
	if totalCurrent <= 0 {
		return
	}

	minCapacity := int(totalCurrent * 1000 * minRuntimeFactor)
	recCapacity := int(totalCurrent * 1000 * recRuntimeFactor)

	b.WriteString("### Battery Recommendations\n\n")
	b.WriteString("For a drone or robotic build, consider:\n\n")
	b.WriteString("- **Battery Type**: LiPo 3S (11.1V) or 4S (14.8V)\n")
	fmt.Fprintf(b, "- **Minimum Capacity**: %dmAh (for ~12 minutes runtime)\n", minCapacity)
	fmt.Fprintf(b, "- **Recommended Capacity**: %dmAh (for ~30 minutes runtime)\n", recCapacity)
	b.WriteString("- **C-Rating**: At least 20C for peak current handling\n\n")
}

func countTypes(p *types.Project) int {
	seen := make(map[types.ComponentType]bool)
	for _, c := range p.Components {
		seen[c.Type] = true
	}
	return len(seen)
}

// budgetValue formats a budget entry, or N/A when the key is absent.
func budgetValue(p *types.Project, key string) string {
	v, ok := p.TotalPowerBudget[key]
	if !ok {
		return notAvailable
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// specLabel turns a snake_case spec key into a display label.
func specLabel(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
