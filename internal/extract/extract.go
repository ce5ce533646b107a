// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/spec-engine/pkg/types"
)

// Normalize folds the input to NFKC form so fullwidth digits and compatibility
// variants from datasheet text match the ASCII-oriented patterns. All
// exported extraction entry points normalize before matching.
func Normalize(text string) string {
	return norm.NFKC.String(text)
}

// ExtractPattern returns the first whole substring of text matching the named
// value pattern, or "" when the pattern finds nothing. Matching is a single
// leftmost-first pass: no attempt is made to rank multiple candidates (R2.1).
func ExtractPattern(text string, kind PatternKind) string {
	re, ok := valuePatterns[kind]
	if !ok {
		return ""
	}
	return strings.TrimSpace(re.FindString(Normalize(text)))
}

// ExtractAllSpecs runs every registered value pattern independently over the
// full text and returns the kinds that matched (R2.3). Patterns are not
// mutually exclusive: a clock-speed value and a generic frequency value may
// come from the same token. Output is deterministic for identical input.
func ExtractAllSpecs(text string) map[string]string {
	text = Normalize(text)
	specs := make(map[string]string)
	for _, kind := range patternOrder {
		if m := valuePatterns[kind].FindString(text); m != "" {
			specs[string(kind)] = strings.TrimSpace(m)
		}
	}
	return specs
}

// ParsePowerSpecs extracts power-related values from text. Voltage extraction
// is context-scoped: a voltage token near an input keyword (input/supply/vin)
// lands in VoltageInput, near an output keyword (output/vout) in
// VoltageOutput. When neither direction matches contextually, the first
// unscoped voltage match is assigned to VoltageInput, an inherited
// asymmetric default controlled by cfg.UnscopedVoltageToInput (R4.3).
func ParsePowerSpecs(text string, cfg types.ExtractConfig) types.PowerSpec {
	text = Normalize(text)

	voltageInput := contextualVoltage(text, inputContextKeywords)
	voltageOutput := contextualVoltage(text, outputContextKeywords)

	if voltageInput == "" && voltageOutput == "" && cfg.UnscopedVoltageToInput {
		voltageInput = strings.TrimSpace(valuePatterns[PatternVoltage].FindString(text))
	}

	return types.PowerSpec{
		VoltageInput:     voltageInput,
		VoltageOutput:    voltageOutput,
		CurrentRating:    strings.TrimSpace(valuePatterns[PatternCurrent].FindString(text)),
		PowerConsumption: strings.TrimSpace(valuePatterns[PatternPower].FindString(text)),
		Capacity:         strings.TrimSpace(valuePatterns[PatternCapacity].FindString(text)),
	}
}

// contextualVoltage returns the first voltage token trailing one of the
// context keywords within the bounded window, or "" (R4.2). Keywords are
// tried in registration order; the first keyword with a match wins.
func contextualVoltage(text string, keywords []string) string {
	for _, kw := range keywords {
		if m := contextualVoltagePatterns[kw].FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// ParseInterfaces extracts communication bus counts from text (R3). For each
// kind only the first match is used; a kind with no match keeps the zero
// default, meaning "not stated". This is a best-effort heuristic: a protocol
// name in unrelated prose can still produce a count.
func ParseInterfaces(text string) types.InterfaceSpec {
	text = Normalize(text)

	var spec types.InterfaceSpec
	for _, kind := range interfaceKinds {
		m := interfacePatterns[kind].FindStringSubmatch(text)
		if m == nil {
			continue
		}
		count := parseCount(m[1])
		if count < 0 {
			continue
		}
		switch kind {
		case InterfaceUART:
			spec.UARTCount = count
		case InterfaceI2C:
			spec.I2CCount = count
		case InterfaceSPI:
			spec.SPICount = count
		case InterfaceCAN:
			spec.CANCount = count
		case InterfaceUSB:
			spec.USBCount = count
		case InterfaceGPIO:
			spec.GPIOCount = count
		case InterfacePWM:
			spec.PWMCount = count
		}
	}
	return spec
}

// parseCount converts a digit run to an int, returning -1 on overflow-scale
// garbage so the caller can skip it.
func parseCount(digits string) int {
	if len(digits) > 6 {
		return -1
	}
	n := 0
	for _, c := range digits {
		n = n*10 + int(c-'0')
	}
	return n
}

// ExtractComponentName looks for a model or part number declaration
// ("Model: X2212", "Part No. PH4-001", "P/N: ...") and returns the first
// match, or "" (R5.1).
func ExtractComponentName(text string) string {
	text = Normalize(text)
	for _, re := range namePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// ExtractManufacturer looks for a manufacturer declaration ("Manufacturer:",
// "Made by", a copyright line) and returns the first match, or "" (R5.2).
func ExtractManufacturer(text string) string {
	text = Normalize(text)
	for _, re := range manufacturerPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// Confidence returns the fraction of requested fields that carry a value,
// in [0,1]. An empty map scores 0 (prd004-analysis R4.1).
func Confidence(extracted map[string]string) float64 {
	if len(extracted) == 0 {
		return 0
	}
	filled := 0
	for _, v := range extracted {
		if v != "" {
			filled++
		}
	}
	return float64(filled) / float64(len(extracted))
}
