// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/spec-engine/pkg/types"
)

// domainKeywords is the fixed vocabulary of project-name keywords (matched
// case-insensitively as substrings) that switch on the essential-component
// check.
var domainKeywords = []string{"drone", "quadcopter"}

// essentialCategories lists the categories a drone-class build needs, in
// report order, with the description used in the missing-component warning.
var essentialCategories = []struct {
	Type        types.ComponentType
	Description string
}{
	{types.TypeProcessor, "Flight controller or microcontroller"},
	{types.TypeMotor, "Motors for propulsion"},
	{types.TypeESC, "Electronic speed controllers"},
	{types.TypeBattery, "Power source"},
	{types.TypeRadio, "Remote control receiver"},
}

// Thresholds for the compatibility checks. Fixed by policy, not configurable:
// more than three voltage domains implies regulation complexity worth
// flagging, and 50 A of total draw is past hobby-wiring territory.
const (
	maxDistinctVoltages = 3
	maxTotalCurrentAmps = 50.0
)

// leadingNumber pulls the leading numeric value out of a raw spec token.
var leadingNumber = regexp.MustCompile(`(\d+\.?\d*)`)

// ProjectResult holds the outcome of validating a project. Unlike
// ComponentResult, everything folds into Warnings, per-component errors
// included, and OK is true iff Warnings is empty. The asymmetry with the
// component-level ok/errors pair is intentional and covered by tests.
type ProjectResult struct {
	OK       bool
	Warnings []string
}

// Project validates an assembled project (R3): warns when the project is
// empty, folds per-component validation errors into project warnings tagged
// with the component's index and name, and, for recognized domains (project
// name containing "drone" or "quadcopter"), warns per missing essential
// category. The caller appends the returned warnings to the project's
// diagnostic lists; this function never mutates its argument.
func Project(p *types.Project) ProjectResult {
	var res ProjectResult

	if len(p.Components) == 0 {
		res.Warnings = append(res.Warnings, "No components found in project")
	}

	for idx, c := range p.Components {
		cr := Component(c)
		if !cr.OK {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Component %d (%s): %s", idx+1, c.Name, strings.Join(cr.Errors, ", ")))
		}
	}

	if isRecognizedDomain(p.Name) {
		res.Warnings = append(res.Warnings, missingEssentials(p)...)
	}

	res.OK = len(res.Warnings) == 0
	return res
}

// isRecognizedDomain reports whether the project name names a domain with an
// essential-component table.
func isRecognizedDomain(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range domainKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// missingEssentials returns one warning per essential category absent from
// the project (R3.3).
func missingEssentials(p *types.Project) []string {
	present := make(map[types.ComponentType]bool, len(p.Components))
	for _, c := range p.Components {
		present[c.Type] = true
	}

	var warnings []string
	for _, ess := range essentialCategories {
		if !present[ess.Type] {
			warnings = append(warnings, fmt.Sprintf("Missing essential component: %s", ess.Description))
		}
	}
	return warnings
}

// CheckPowerCompatibility flags power-distribution problems across the
// project (R4.1): more than three distinct input voltage levels, and a
// total current draw above 50 A when a battery is present. The budget map
// is read, never written; the analysis stage populates it.
func CheckPowerCompatibility(p *types.Project) []string {
	var issues []string

	distinct := make(map[float64]bool)
	for _, c := range p.Components {
		if c.Power.VoltageInput == "" {
			continue
		}
		if v, ok := leadingValue(c.Power.VoltageInput); ok {
			distinct[v] = true
		}
	}

	if len(distinct) > maxDistinctVoltages {
		issues = append(issues, fmt.Sprintf(
			"Multiple voltage requirements detected: %s. May need voltage regulators.",
			formatVoltageSet(distinct)))
	}

	if len(p.ComponentsByType(types.TypeBattery)) > 0 {
		total := p.TotalPowerBudget["total_current_a"]
		if total > maxTotalCurrentAmps {
			issues = append(issues, fmt.Sprintf(
				"High total current draw (%gA). Ensure battery and wiring can handle this load.", total))
		}
	}

	return issues
}

// leadingValue parses the leading numeric portion of a raw spec token.
func leadingValue(token string) (float64, bool) {
	m := leadingNumber.FindStringSubmatch(token)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// formatVoltageSet renders the distinct voltage levels sorted ascending so
// the issue text is deterministic.
func formatVoltageSet(distinct map[float64]bool) string {
	levels := make([]float64, 0, len(distinct))
	for v := range distinct {
		levels = append(levels, v)
	}
	sort.Float64s(levels)

	parts := make([]string, len(levels))
	for i, v := range levels {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64) + "V"
	}
	return strings.Join(parts, ", ")
}

// peripheralTypes are the component types whose specs are scanned for bus
// protocol mentions when estimating interface demand.
var peripheralTypes = map[types.ComponentType]bool{
	types.TypeSensor: true,
	types.TypeRadio:  true,
	types.TypeCamera: true,
}

// CheckInterfaceAvailability compares the controller's bus supply against
// estimated peripheral demand (R4.2). The first processor- or
// controller-typed component is taken as "the" controller; multi-controller
// builds are not reasoned about. Demand is estimated by substring-matching
// protocol names in the textual form of each peripheral's specific specs,
// a heuristic proxy rather than a bus graph.
func CheckInterfaceAvailability(p *types.Project) []string {
	controller, ok := findController(p)
	if !ok {
		return []string{"No processor/controller found to connect peripherals"}
	}

	var requiredUART, requiredI2C, requiredSPI int
	for _, c := range p.Components {
		if !peripheralTypes[c.Type] {
			continue
		}
		specs := strings.ToLower(fmt.Sprintf("%v", c.SpecificSpecs))
		if strings.Contains(specs, "uart") {
			requiredUART++
		}
		if strings.Contains(specs, "i2c") {
			requiredI2C++
		}
		if strings.Contains(specs, "spi") {
			requiredSPI++
		}
	}

	var issues []string
	if requiredUART > controller.Interfaces.UARTCount {
		issues = append(issues, fmt.Sprintf(
			"Insufficient UART ports: need %d, have %d", requiredUART, controller.Interfaces.UARTCount))
	}
	if requiredI2C > controller.Interfaces.I2CCount {
		issues = append(issues, fmt.Sprintf(
			"Insufficient I2C ports: need %d, have %d", requiredI2C, controller.Interfaces.I2CCount))
	}
	if requiredSPI > controller.Interfaces.SPICount {
		issues = append(issues, fmt.Sprintf(
			"Insufficient SPI ports: need %d, have %d", requiredSPI, controller.Interfaces.SPICount))
	}
	return issues
}

// findController returns the first processor/controller component.
func findController(p *types.Project) (types.Component, bool) {
	for _, c := range p.Components {
		if c.Type == types.TypeProcessor || c.Type == "controller" {
			return c, true
		}
	}
	return types.Component{}, false
}
