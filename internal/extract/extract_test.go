package extract

import (
	"reflect"
	"testing"

	"github.com/pdiddy/spec-engine/pkg/types"
)

func defaultCfg() types.ExtractConfig {
	return types.DefaultExtractConfig()
}

// --- ExtractPattern ---

func TestExtractPattern(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind PatternKind
		want string
	}{
		{"voltage plain", "Supply voltage 5V typical", PatternVoltage, "5V"},
		{"voltage decimal with suffix", "Rated at 3.3VDC nominal", PatternVoltage, "3.3VDC"},
		{"voltage rejects attached word", "This is 12VOLTS", PatternVoltage, ""},
		{"current milliamp", "draws 500mA at idle", PatternCurrent, "500mA"},
		{"current amp", "Max current: 25A burst", PatternCurrent, "25A"},
		{"current does not eat capacity unit", "2200mAh pack", PatternCurrent, ""},
		{"power watt", "consumes 10W", PatternPower, "10W"},
		{"capacity", "LiPo 2200mAh 3S", PatternCapacity, "2200mAh"},
		{"frequency", "operates at 2.4GHz", PatternFrequency, "2.4GHz"},
		{"resolution", "1920x1080 @ 60fps", PatternResolution, "1920x1080"},
		{"resolution unicode glyph", "4056×3040 stills", PatternResolution, "4056×3040"},
		{"kv rating", "2300KV brushless", PatternKVRating, "2300KV"},
		{"temperature negative", "from -40°C to 85C", PatternTemperature, "-40°C"},
		{"channels short alternative wins", "8-channel receiver", PatternChannels, "8-ch"},
		{"rpm", "up to 5000 RPM", PatternRPM, "5000 RPM"},
		{"unknown kind", "5V", PatternKind("bogus"), ""},
		{"no match", "no numbers here", PatternVoltage, ""},
		{"empty text", "", PatternVoltage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPattern(tt.text, tt.kind); got != tt.want {
				t.Errorf("ExtractPattern(%q, %q) = %q, want %q", tt.text, tt.kind, got, tt.want)
			}
		})
	}
}

func TestExtractPatternLeftmostFirst(t *testing.T) {
	// Two candidate voltages: the first one in the text wins, no ranking.
	got := ExtractPattern("absolute max 16V, nominal 12V", PatternVoltage)
	if got != "16V" {
		t.Errorf("ExtractPattern leftmost = %q, want %q", got, "16V")
	}
}

// --- ExtractAllSpecs ---

func TestExtractAllSpecs(t *testing.T) {
	text := "Brushless motor, 11.1V input, 25A max, 2300KV, weight 50g"
	specs := ExtractAllSpecs(text)

	want := map[string]string{
		"voltage":   "11.1V",
		"current":   "25A",
		"kv_rating": "2300KV",
		"weight":    "50g",
	}
	for k, v := range want {
		if specs[k] != v {
			t.Errorf("specs[%q] = %q, want %q", k, specs[k], v)
		}
	}
}

func TestExtractAllSpecsOverlappingPatterns(t *testing.T) {
	// A clock token satisfies both the clock_speed and frequency patterns.
	specs := ExtractAllSpecs("STM32 running at 168MHz")
	if specs["clock_speed"] != "168MHz" {
		t.Errorf("clock_speed = %q, want 168MHz", specs["clock_speed"])
	}
	if specs["frequency"] != "168MHz" {
		t.Errorf("frequency = %q, want 168MHz", specs["frequency"])
	}
}

func TestExtractAllSpecsDeterministic(t *testing.T) {
	text := "5V 2A 10W 2.4GHz 2200mAh 1920x1080 12MP 60fps 2300KV 168MHz 256KB -40C 50g 5000 RPM 8-channel"
	first := ExtractAllSpecs(text)
	second := ExtractAllSpecs(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestExtractAllSpecsEmptyText(t *testing.T) {
	if specs := ExtractAllSpecs(""); len(specs) != 0 {
		t.Errorf("ExtractAllSpecs(\"\") = %v, want empty", specs)
	}
}

// --- ParsePowerSpecs ---

func TestParsePowerSpecsContextualVoltage(t *testing.T) {
	spec := ParsePowerSpecs("Input: 12V, Output: 5V", defaultCfg())
	if spec.VoltageInput != "12V" {
		t.Errorf("VoltageInput = %q, want 12V", spec.VoltageInput)
	}
	if spec.VoltageOutput != "5V" {
		t.Errorf("VoltageOutput = %q, want 5V", spec.VoltageOutput)
	}
}

func TestParsePowerSpecsContextKeywords(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantInput  string
		wantOutput string
	}{
		{"supply keyword", "Supply voltage: 7.4V", "7.4V", ""},
		{"vin keyword", "VIN 5V max", "5V", ""},
		{"vout keyword", "VOUT: 3.3V regulated", "", "3.3V"},
		{"output only", "Output voltage 5VDC", "", "5VDC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ParsePowerSpecs(tt.text, defaultCfg())
			if spec.VoltageInput != tt.wantInput {
				t.Errorf("VoltageInput = %q, want %q", spec.VoltageInput, tt.wantInput)
			}
			if spec.VoltageOutput != tt.wantOutput {
				t.Errorf("VoltageOutput = %q, want %q", spec.VoltageOutput, tt.wantOutput)
			}
		})
	}
}

func TestParsePowerSpecsUnscopedDefault(t *testing.T) {
	// No context keyword anywhere: the first voltage goes to VoltageInput
	// by default, and nowhere when the knob is off.
	text := "Operates from 11.1V, draws 2A, consumes 10W, pack is 2200mAh"

	spec := ParsePowerSpecs(text, defaultCfg())
	if spec.VoltageInput != "11.1V" {
		t.Errorf("VoltageInput = %q, want 11.1V", spec.VoltageInput)
	}
	if spec.VoltageOutput != "" {
		t.Errorf("VoltageOutput = %q, want empty", spec.VoltageOutput)
	}

	spec = ParsePowerSpecs(text, types.ExtractConfig{UnscopedVoltageToInput: false})
	if spec.VoltageInput != "" {
		t.Errorf("with knob off, VoltageInput = %q, want empty", spec.VoltageInput)
	}

	if spec.CurrentRating != "2A" {
		t.Errorf("CurrentRating = %q, want 2A", spec.CurrentRating)
	}
	if spec.PowerConsumption != "10W" {
		t.Errorf("PowerConsumption = %q, want 10W", spec.PowerConsumption)
	}
	if spec.Capacity != "2200mAh" {
		t.Errorf("Capacity = %q, want 2200mAh", spec.Capacity)
	}
}

func TestParsePowerSpecsNothingFound(t *testing.T) {
	spec := ParsePowerSpecs("just prose with no electrical values", defaultCfg())
	if !spec.IsZero() {
		t.Errorf("ParsePowerSpecs on plain prose = %+v, want zero value", spec)
	}
}

// --- ParseInterfaces ---

func TestParseInterfaces(t *testing.T) {
	spec := ParseInterfaces("3x UART, 2x I2C, 1x SPI")

	want := types.InterfaceSpec{UARTCount: 3, I2CCount: 2, SPICount: 1}
	if spec != want {
		t.Errorf("ParseInterfaces = %+v, want %+v", spec, want)
	}
}

func TestParseInterfacesVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.InterfaceSpec
	}{
		{"no glyph", "6 UART ports and 20 GPIO", types.InterfaceSpec{UARTCount: 6, GPIOCount: 20}},
		{"multiplication sign", "2× I2C, 1× CAN", types.InterfaceSpec{I2CCount: 2, CANCount: 1}},
		{"lowercase", "1x usb, 6x pwm outputs", types.InterfaceSpec{USBCount: 1, PWMCount: 6}},
		{"first match per kind", "3x UART main, 1x UART debug", types.InterfaceSpec{UARTCount: 3}},
		{"nothing stated", "no buses mentioned at all", types.InterfaceSpec{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseInterfaces(tt.text); got != tt.want {
				t.Errorf("ParseInterfaces(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

// --- name and manufacturer ---

func TestExtractComponentName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"model", "Model: X2212-980", "X2212-980"},
		{"part number", "Part Number: PH4-001", "PH4-001"},
		{"part no abbreviated", "Part No. GPS-M8N", "GPS-M8N"},
		{"pn slash", "P/N: BN-880", "BN-880"},
		{"none", "an unlabelled datasheet", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractComponentName(tt.text); got != tt.want {
				t.Errorf("ExtractComponentName(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractManufacturer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labelled", "Manufacturer: Holybro\nRevision 2", "Holybro"},
		{"made by", "Made by SunnySky\n", "SunnySky"},
		{"copyright line", "Copyright 2023 EMAX Industries\n", "EMAX Industries"},
		{"none", "no vendor information", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractManufacturer(tt.text); got != tt.want {
				t.Errorf("ExtractManufacturer(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// --- Confidence ---

func TestConfidence(t *testing.T) {
	tests := []struct {
		name      string
		extracted map[string]string
		want      float64
	}{
		{"empty map", map[string]string{}, 0},
		{"nil map", nil, 0},
		{"all filled", map[string]string{"a": "1", "b": "2"}, 1.0},
		{"half filled", map[string]string{"a": "1", "b": ""}, 0.5},
		{"none filled", map[string]string{"a": "", "b": ""}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Confidence(tt.extracted); got != tt.want {
				t.Errorf("Confidence = %v, want %v", got, tt.want)
			}
		})
	}
}
