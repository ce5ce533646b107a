// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "strings"

// Header keywords identifying the two roles in a specification table.
var (
	specHeaderIndicators  = []string{"specification", "parameter", "description", "feature"}
	valueHeaderIndicators = []string{"value", "rating", "typical", "min", "max"}
)

// ParseTableSpecs extracts name→value pairs from a row-major grid of cell
// strings (R5 table extraction). Row 0 is treated as a header when the grid
// has at least two rows. The first header cell matching a specification-role
// keyword and the first matching a value-role keyword select the two columns;
// one pair is emitted per subsequent row, skipping rows where either cell is
// empty after trimming. Ragged rows shorter than the selected columns are
// skipped rather than failing.
//
// Regardless of whether a column pair was found, the whole table is also
// flattened into one blob and run through ExtractAllSpecs, and the results
// merged in afterwards. On a key collision the pattern-derived value wins:
// the last-write-wins precedence is a documented property of this function,
// not an accident.
func ParseTableSpecs(table [][]string) map[string]string {
	specs := make(map[string]string)

	if len(table) < 2 {
		if len(table) == 0 {
			return specs
		}
		// Single row: no header/value structure, pattern pass only.
		mergeFlattened(specs, table)
		return specs
	}

	specCol, valueCol := -1, -1
	for idx, header := range table[0] {
		h := strings.ToLower(strings.TrimSpace(header))
		if containsAny(h, specHeaderIndicators) {
			if specCol < 0 {
				specCol = idx
			}
		} else if containsAny(h, valueHeaderIndicators) {
			if valueCol < 0 {
				valueCol = idx
			}
		}
	}

	if specCol >= 0 && valueCol >= 0 {
		widest := specCol
		if valueCol > widest {
			widest = valueCol
		}
		for _, row := range table[1:] {
			if len(row) <= widest {
				continue
			}
			name := strings.TrimSpace(row[specCol])
			value := strings.TrimSpace(row[valueCol])
			if name == "" || value == "" {
				continue
			}
			specs[name] = value
		}
	}

	mergeFlattened(specs, table)
	return specs
}

// mergeFlattened joins all cells into one text blob, runs the aggregate
// pattern extractor over it, and merges the results into specs with
// pattern-derived keys taking precedence.
func mergeFlattened(specs map[string]string, table [][]string) {
	var b strings.Builder
	for _, row := range table {
		for _, cell := range row {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell)
		}
	}
	for k, v := range ExtractAllSpecs(b.String()) {
		specs[k] = v
	}
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
