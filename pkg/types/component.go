// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ComponentType categorizes a hardware component.
// Per prd002-data-model R1.2. The set is advisory: extraction may produce
// types outside it, and validation treats an unknown type as a warning,
// not an error.
type ComponentType string

const (
	TypeMotor     ComponentType = "motor"
	TypeSensor    ComponentType = "sensor"
	TypeCamera    ComponentType = "camera"
	TypeProcessor ComponentType = "processor"
	TypeBattery   ComponentType = "battery"
	TypeESC       ComponentType = "esc"
	TypeRadio     ComponentType = "radio"
	TypePower     ComponentType = "power"
	TypeOther     ComponentType = "other"
)

// KnownComponentTypes is the advisory set of recognized component types.
var KnownComponentTypes = map[ComponentType]bool{
	TypeMotor:     true,
	TypeSensor:    true,
	TypeCamera:    true,
	TypeProcessor: true,
	TypeBattery:   true,
	TypeESC:       true,
	TypeRadio:     true,
	TypePower:     true,
	TypeOther:     true,
}

// PowerSpec holds power-related specifications for a component.
// Per prd002-data-model R2.1. Every field keeps the raw matched token from
// the source text, original units included ("11.1V", "500mA"). An empty
// string means the value was not found in the source, never that it is zero.
type PowerSpec struct {
	// VoltageInput is the supply/input voltage token (e.g. "5V", "3.3VDC").
	VoltageInput string `json:"voltage_input,omitempty" yaml:"voltage_input,omitempty"`

	// VoltageOutput is the output voltage token (e.g. "3.3V").
	VoltageOutput string `json:"voltage_output,omitempty" yaml:"voltage_output,omitempty"`

	// CurrentRating is the current token (e.g. "2A", "500mA").
	CurrentRating string `json:"current_rating,omitempty" yaml:"current_rating,omitempty"`

	// PowerConsumption is the power token (e.g. "10W", "500mW").
	PowerConsumption string `json:"power_consumption,omitempty" yaml:"power_consumption,omitempty"`

	// Capacity is the battery capacity token (e.g. "2200mAh").
	Capacity string `json:"capacity,omitempty" yaml:"capacity,omitempty"`
}

// IsZero reports whether no power field was populated.
func (p PowerSpec) IsZero() bool {
	return p == PowerSpec{}
}

// InterfaceSpec holds communication interface counts for a component.
// Per prd002-data-model R2.2. A zero count means "not stated in the source",
// not "no such port exists". Counts are never negative; extraction only
// sets them upward from the zero default.
type InterfaceSpec struct {
	UARTCount int `json:"uart_count" yaml:"uart_count"`
	I2CCount  int `json:"i2c_count" yaml:"i2c_count"`
	SPICount  int `json:"spi_count" yaml:"spi_count"`
	CANCount  int `json:"can_count" yaml:"can_count"`
	USBCount  int `json:"usb_count" yaml:"usb_count"`
	GPIOCount int `json:"gpio_count" yaml:"gpio_count"`
	PWMCount  int `json:"pwm_count" yaml:"pwm_count"`
}

// Total returns the sum of all interface counts.
func (i InterfaceSpec) Total() int {
	return i.UARTCount + i.I2CCount + i.SPICount + i.CANCount +
		i.USBCount + i.GPIOCount + i.PWMCount
}

// Component is one physical hardware part described by a source document.
// Per prd002-data-model R1. A Component is self-contained: it records the
// name of its source document for provenance but does not own the document.
// Instances are populated by extraction, optionally given a Confidence, then
// attached to a Project and treated as immutable.
type Component struct {
	// Name identifies the component (required, non-empty).
	Name string `json:"name" yaml:"name"`

	// Type is the component category (required; see KnownComponentTypes).
	Type ComponentType `json:"component_type" yaml:"component_type"`

	// Manufacturer is the vendor name, when the source states one.
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`

	// PartNumber is the vendor part/model number, when stated.
	PartNumber string `json:"part_number,omitempty" yaml:"part_number,omitempty"`

	// Power holds the extracted electrical characteristics.
	Power PowerSpec `json:"power" yaml:"power"`

	// Interfaces holds the extracted communication bus counts.
	Interfaces InterfaceSpec `json:"interfaces" yaml:"interfaces"`

	// SpecificSpecs maps pattern names to raw matched values for everything
	// the generic extractor found (e.g. "kv_rating" → "2300KV").
	SpecificSpecs map[string]string `json:"specific_specs,omitempty" yaml:"specific_specs,omitempty"`

	// SourceDocument names the document the component came from (required).
	SourceDocument string `json:"source_document" yaml:"source_document"`

	// PageNumber is the 1-based source page, when known.
	PageNumber int `json:"page_number,omitempty" yaml:"page_number,omitempty"`

	// Confidence is the extraction confidence in [0,1], when scored.
	Confidence float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}
