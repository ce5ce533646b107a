package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Quadcopter Drone", "quadcopter-drone"},
		{"  My --- Build!  ", "my-build"},
		{"v2", "v2"},
		{"", ""},
	}
	for _, tt := range tests {
		p := NewProject(tt.in)
		assert.Equal(t, tt.want, p.Slug(), "Slug(%q)", tt.in)
	}
}

func TestComponentsByType(t *testing.T) {
	p := NewProject("Drone")
	p.AddComponent(Component{Name: "m1", Type: TypeMotor})
	p.AddComponent(Component{Name: "fc", Type: TypeProcessor})
	p.AddComponent(Component{Name: "m2", Type: TypeMotor})

	motors := p.ComponentsByType(TypeMotor)
	if assert.Len(t, motors, 2) {
		assert.Equal(t, "m1", motors[0].Name)
		assert.Equal(t, "m2", motors[1].Name)
	}
	assert.Nil(t, p.ComponentsByType(TypeCamera))
}

func TestResetDiagnostics(t *testing.T) {
	p := NewProject("Drone")
	p.CompatibilityIssues = []string{"a"}
	p.MissingComponents = []string{"b"}
	p.Warnings = []string{"c"}
	p.Recommendations = []string{"d"}

	p.ResetDiagnostics()

	assert.Nil(t, p.CompatibilityIssues)
	assert.Nil(t, p.MissingComponents)
	assert.Nil(t, p.Warnings)
	assert.Nil(t, p.Recommendations)
}

func TestPowerSpecIsZero(t *testing.T) {
	assert.True(t, PowerSpec{}.IsZero())
	assert.False(t, PowerSpec{VoltageInput: "12V"}.IsZero())
	assert.False(t, PowerSpec{Capacity: "2200mAh"}.IsZero())
}

func TestInterfaceSpecTotal(t *testing.T) {
	assert.Equal(t, 0, InterfaceSpec{}.Total())
	assert.Equal(t, 6, InterfaceSpec{UARTCount: 3, I2CCount: 2, SPICount: 1}.Total())
}
