// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls typed specification values out of datasheet text
// and tables using a fixed pattern registry.
// Implements: prd001-extraction (R1-R5);
//
//	docs/ARCHITECTURE § Extraction.
package extract

import (
	"regexp"
	"strconv"
)

// PatternKind names one extraction rule in the value pattern registry.
// Per prd001-extraction R1.1.
type PatternKind string

const (
	PatternVoltage     PatternKind = "voltage"
	PatternCurrent     PatternKind = "current"
	PatternPower       PatternKind = "power"
	PatternFrequency   PatternKind = "frequency"
	PatternCapacity    PatternKind = "capacity"
	PatternResolution  PatternKind = "resolution"
	PatternMegapixel   PatternKind = "megapixel"
	PatternFPS         PatternKind = "fps"
	PatternKVRating    PatternKind = "kv_rating"
	PatternClockSpeed  PatternKind = "clock_speed"
	PatternMemory      PatternKind = "memory"
	PatternTemperature PatternKind = "temperature"
	PatternWeight      PatternKind = "weight"
	PatternRPM         PatternKind = "rpm"
	PatternChannels    PatternKind = "channels"
)

// valuePatterns maps each kind to its compiled matcher. Compiled once at
// package init; the registry is immutable afterwards (R1.2).
var valuePatterns = map[PatternKind]*regexp.Regexp{
	PatternVoltage:     regexp.MustCompile(`(?i)(\d+\.?\d*)\s*V(?:DC|AC)?\b`),        // "5V", "3.3VDC"
	PatternCurrent:     regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(mA|A)\b`),             // "2A", "500mA"
	PatternPower:       regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(mW|W)\b`),             // "10W", "500mW"
	PatternFrequency:   regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(MHz|GHz|Hz|KHz)`),     // "2.4GHz", "100MHz"
	PatternCapacity:    regexp.MustCompile(`(?i)(\d+\.?\d*)\s*mAh`),                  // "2200mAh"
	PatternResolution:  regexp.MustCompile(`(\d+)\s*[xX×]\s*(\d+)`),                  // "1920x1080"
	PatternMegapixel:   regexp.MustCompile(`(?i)(\d+\.?\d*)\s*MP`),                   // "12MP"
	PatternFPS:         regexp.MustCompile(`(?i)(\d+)\s*fps`),                        // "60fps"
	PatternKVRating:    regexp.MustCompile(`(?i)(\d+)\s*KV`),                         // "2300KV"
	PatternClockSpeed:  regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(MHz|GHz)`),            // "168MHz"
	PatternMemory:      regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(KB|MB|GB)`),           // "256KB", "1MB"
	PatternTemperature: regexp.MustCompile(`(?i)(-?\d+\.?\d*)\s*°?C`),                // "-40°C", "85C"
	PatternWeight:      regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(g|kg|oz|lb)`),         // "50g", "2.5kg"
	PatternRPM:         regexp.MustCompile(`(?i)(\d+)\s*RPM`),                        // "5000 RPM"
	PatternChannels:    regexp.MustCompile(`(?i)(\d+)\s*[-\s]?(?:ch|channel)`),       // "8-channel"
}

// patternOrder fixes the iteration order for aggregate extraction so output
// construction is deterministic (R2.4).
var patternOrder = []PatternKind{
	PatternVoltage, PatternCurrent, PatternPower, PatternFrequency,
	PatternCapacity, PatternResolution, PatternMegapixel, PatternFPS,
	PatternKVRating, PatternClockSpeed, PatternMemory, PatternTemperature,
	PatternWeight, PatternRPM, PatternChannels,
}

// InterfaceKind names one of the fixed communication bus kinds.
// Per prd001-extraction R3.1. The set is closed: count extraction writes
// each kind into its named InterfaceSpec field through an explicit switch.
type InterfaceKind string

const (
	InterfaceUART InterfaceKind = "uart"
	InterfaceI2C  InterfaceKind = "i2c"
	InterfaceSPI  InterfaceKind = "spi"
	InterfaceCAN  InterfaceKind = "can"
	InterfaceUSB  InterfaceKind = "usb"
	InterfaceGPIO InterfaceKind = "gpio"
	InterfacePWM  InterfaceKind = "pwm"
)

// interfaceKinds fixes the processing order for interface extraction.
var interfaceKinds = []InterfaceKind{
	InterfaceUART, InterfaceI2C, InterfaceSPI, InterfaceCAN,
	InterfaceUSB, InterfaceGPIO, InterfacePWM,
}

// interfacePatterns matches a count adjacent to an interface token, with an
// optional multiplication glyph: "3x UART", "3× UART", "3 UART".
var interfacePatterns = map[InterfaceKind]*regexp.Regexp{
	InterfaceUART: regexp.MustCompile(`(?i)(\d+)\s*[×xX]?\s*UART`),
	InterfaceI2C:  regexp.MustCompile(`(?i)(\d+)\s*[×xX]?\s*I2C`),
	InterfaceSPI:  regexp.MustCompile(`(?i)(\d+)\s*[×xX]?\s*SPI`),
	InterfaceCAN:  regexp.MustCompile(`(?i)(\d+)\s*[×xX]?\s*CAN`),
	InterfaceUSB:  regexp.MustCompile(`(?i)(\d+)\s*[×xX]?\s*USB`),
	InterfaceGPIO: regexp.MustCompile(`(?i)(\d+)\s*[×xX]?\s*GPIO`),
	InterfacePWM:  regexp.MustCompile(`(?i)(\d+)\s*[×xX]?\s*PWM`),
}

// voltageContextWindow bounds how far a voltage token may trail its context
// keyword for contextual extraction (R4.2).
const voltageContextWindow = 20

// inputContextKeywords and outputContextKeywords scope voltage extraction.
var (
	inputContextKeywords  = []string{"input", "supply", "vin"}
	outputContextKeywords = []string{"output", "vout"}
)

// contextualVoltagePatterns precompiles one matcher per context keyword:
// the keyword, a short run of filler, then a voltage-shaped token.
var contextualVoltagePatterns = buildContextualVoltagePatterns()

func buildContextualVoltagePatterns() map[string]*regexp.Regexp {
	const voltageShape = `(\d+\.?\d*\s*V(?:DC|AC)?)\b`
	out := make(map[string]*regexp.Regexp)
	for _, kw := range append(append([]string{}, inputContextKeywords...), outputContextKeywords...) {
		out[kw] = regexp.MustCompile(`(?i)` + kw + `[\s\w:]{0,` + strconv.Itoa(voltageContextWindow) + `}?` + voltageShape)
	}
	return out
}

// Name and manufacturer patterns, tried in order (R5.1, R5.2).
var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Model[:\s]+([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?i)Part\s*(?:Number|No\.?)[:\s]+([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?i)P/N[:\s]+([A-Z0-9\-]+)`),
	}

	manufacturerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Manufacturer[:\s]+([A-Za-z\s&]+?)(?:\n|$)`),
		regexp.MustCompile(`(?i)Made by[:\s]+([A-Za-z\s&]+?)(?:\n|$)`),
		regexp.MustCompile(`(?i)(?:©|Copyright)[:\s]+\d{4}\s+([A-Za-z\s&]+?)(?:\n|$)`),
	}
)
