// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks extracted components and assembled projects.
// Validation findings are returned as data, never as errors: a malformed
// component is a result, not a fault, so callers decide whether to reject,
// flag, or proceed.
// Implements: prd003-validation (R1-R4);
//
//	docs/ARCHITECTURE § Validation.
package validate

import (
	"fmt"
	"regexp"

	"github.com/pdiddy/spec-engine/pkg/types"
)

// Anchored format patterns per unit family. A populated PowerSpec field that
// fails its pattern is an error, not a warning: a malformed unit token would
// corrupt downstream aggregation.
var (
	voltageFormat  = regexp.MustCompile(`(?i)^\d+\.?\d*V(DC|AC)?$`)
	currentFormat  = regexp.MustCompile(`(?i)^\d+\.?\d*(mA|A)$`)
	powerFormat    = regexp.MustCompile(`(?i)^\d+\.?\d*(mW|W)$`)
	capacityFormat = regexp.MustCompile(`(?i)^\d+\.?\d*mAh$`)
)

// ComponentResult holds the outcome of validating a single component.
// OK is true iff Errors is empty; Warnings never affect OK.
type ComponentResult struct {
	OK       bool
	Errors   []string
	Warnings []string
}

// Component validates a single component's required fields and power spec
// formats (R1). An unknown-but-non-empty component type is a warning, not
// an error.
func Component(c types.Component) ComponentResult {
	var res ComponentResult

	if c.Name == "" {
		res.Errors = append(res.Errors, "component name is required")
	}

	if c.Type == "" {
		res.Errors = append(res.Errors, "component type is required")
	} else if !types.KnownComponentTypes[c.Type] {
		res.Warnings = append(res.Warnings, fmt.Sprintf("unknown component type: %s", c.Type))
	}

	if c.SourceDocument == "" {
		res.Errors = append(res.Errors, "source document is required")
	}

	res.Errors = append(res.Errors, powerSpecErrors(c.Power)...)

	res.OK = len(res.Errors) == 0
	return res
}

// powerSpecErrors checks each populated power field against its anchored
// unit pattern (R1.3). Empty fields are fine: absence means "not found in
// source", never "zero".
func powerSpecErrors(p types.PowerSpec) []string {
	var errs []string

	if p.VoltageInput != "" && !voltageFormat.MatchString(p.VoltageInput) {
		errs = append(errs, fmt.Sprintf("invalid voltage input format: %s", p.VoltageInput))
	}
	if p.VoltageOutput != "" && !voltageFormat.MatchString(p.VoltageOutput) {
		errs = append(errs, fmt.Sprintf("invalid voltage output format: %s", p.VoltageOutput))
	}
	if p.CurrentRating != "" && !currentFormat.MatchString(p.CurrentRating) {
		errs = append(errs, fmt.Sprintf("invalid current rating format: %s", p.CurrentRating))
	}
	if p.PowerConsumption != "" && !powerFormat.MatchString(p.PowerConsumption) {
		errs = append(errs, fmt.Sprintf("invalid power consumption format: %s", p.PowerConsumption))
	}
	if p.Capacity != "" && !capacityFormat.MatchString(p.Capacity) {
		errs = append(errs, fmt.Sprintf("invalid capacity format: %s", p.Capacity))
	}

	return errs
}

// Completeness returns the fraction of a fixed 8-item checklist populated on
// the component (R2): name, type, manufacturer, part number, voltage input,
// current rating, any interface count above zero (uart/i2c/spi/usb), and a
// non-empty specific-specs map. Each item counts as one unit regardless of
// how many sub-fields it covers.
func Completeness(c types.Component) float64 {
	const totalItems = 8
	filled := 0

	for _, field := range []string{
		c.Name,
		string(c.Type),
		c.Manufacturer,
		c.PartNumber,
		c.Power.VoltageInput,
		c.Power.CurrentRating,
	} {
		if field != "" {
			filled++
		}
	}

	if c.Interfaces.UARTCount > 0 || c.Interfaces.I2CCount > 0 ||
		c.Interfaces.SPICount > 0 || c.Interfaces.USBCount > 0 {
		filled++
	}

	if len(c.SpecificSpecs) > 0 {
		filled++
	}

	return float64(filled) / float64(totalItems)
}
