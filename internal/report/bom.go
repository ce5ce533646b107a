// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders analyzed projects as bills of materials and
// project reports.
// Implements: prd005-reporting (R1-R4);
//
//	docs/ARCHITECTURE § Reporting.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/spec-engine/pkg/types"
)

// notAvailable fills BOM cells with no extracted value.
const notAvailable = "N/A"

// bomHeader is the CSV column order. Consumers key on these names; the
// order is part of the format.
var bomHeader = []string{
	"Component Name", "Type", "Manufacturer", "Part Number",
	"Voltage Input", "Voltage Output", "Current Rating",
	"Power Consumption", "Capacity",
	"UART", "I2C", "SPI", "USB",
	"Source Document", "Page",
}

// WriteCSV writes the project's bill of materials as CSV (R1.1). One row
// per component, in discovery order; empty spec fields render as N/A.
func WriteCSV(p *types.Project, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(bomHeader); err != nil {
		return fmt.Errorf("writing BOM header: %w", err)
	}

	for _, c := range p.Components {
		row := []string{
			c.Name,
			string(c.Type),
			orNA(c.Manufacturer),
			orNA(c.PartNumber),
			orNA(c.Power.VoltageInput),
			orNA(c.Power.VoltageOutput),
			orNA(c.Power.CurrentRating),
			orNA(c.Power.PowerConsumption),
			orNA(c.Power.Capacity),
			strconv.Itoa(c.Interfaces.UARTCount),
			strconv.Itoa(c.Interfaces.I2CCount),
			strconv.Itoa(c.Interfaces.SPICount),
			strconv.Itoa(c.Interfaces.USBCount),
			c.SourceDocument,
			pageCell(c.PageNumber),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing BOM row for %s: %w", c.Name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// FormatTable renders the bill of materials as a fixed-width text table for
// terminal display (R1.2).
func FormatTable(p *types.Project) string {
	if len(p.Components) == 0 {
		return "No components found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-30s %-15s %-10s %-10s %-20s\n",
		"Component", "Type", "Voltage", "Current", "Source")
	b.WriteString(strings.Repeat("-", 85))
	b.WriteByte('\n')

	for _, c := range p.Components {
		fmt.Fprintf(&b, "%-30s %-15s %-10s %-10s %-20s\n",
			truncate(c.Name, 30),
			truncate(string(c.Type), 15),
			orNA(c.Power.VoltageInput),
			orNA(c.Power.CurrentRating),
			truncate(c.SourceDocument, 20))
	}
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func pageCell(page int) string {
	if page == 0 {
		return notAvailable
	}
	return strconv.Itoa(page)
}

// truncate shortens s to max columns, marking the cut with "..".
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-2] + ".."
}
