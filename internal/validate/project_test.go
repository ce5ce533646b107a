package validate

import (
	"strings"
	"testing"

	"github.com/pdiddy/spec-engine/pkg/types"
)

func namedComponent(name string, t types.ComponentType) types.Component {
	return types.Component{Name: name, Type: t, SourceDocument: "doc"}
}

func TestProjectEmpty(t *testing.T) {
	p := types.NewProject("Bench PSU")

	res := Project(p)
	if res.OK {
		t.Fatal("empty project validated OK")
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "No components") {
		t.Errorf("warnings = %v, want exactly one no-components entry", res.Warnings)
	}
}

func TestProjectFoldsComponentErrors(t *testing.T) {
	p := types.NewProject("Bench PSU")
	p.AddComponent(namedComponent("Regulator", types.TypePower))
	bad := namedComponent("Cell", types.TypeBattery)
	bad.SourceDocument = ""
	p.AddComponent(bad)

	res := Project(p)
	if res.OK {
		t.Fatal("project with an invalid component validated OK")
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one folded entry", res.Warnings)
	}
	// Tagged with 1-based index and name.
	if !strings.Contains(res.Warnings[0], "Component 2 (Cell)") {
		t.Errorf("warning %q missing component tag", res.Warnings[0])
	}
	if !strings.Contains(res.Warnings[0], "source document is required") {
		t.Errorf("warning %q missing folded error text", res.Warnings[0])
	}
}

func TestProjectOKAsymmetry(t *testing.T) {
	// Component-level unknown-type warnings do not propagate to the project:
	// project OK depends only on folded errors and project-level checks.
	p := types.NewProject("Bench PSU")
	odd := namedComponent("Gadget", "widget")
	p.AddComponent(odd)

	res := Project(p)
	if !res.OK {
		t.Errorf("project with warning-only component not OK: %v", res.Warnings)
	}
}

func TestProjectEssentialComponents(t *testing.T) {
	tests := []struct {
		name        string
		projectName string
		types       []types.ComponentType
		wantMissing int
	}{
		{
			name:        "complete drone build",
			projectName: "Racing Drone",
			types: []types.ComponentType{
				types.TypeProcessor, types.TypeMotor, types.TypeESC,
				types.TypeBattery, types.TypeRadio,
			},
			wantMissing: 0,
		},
		{
			name:        "drone missing esc and radio",
			projectName: "Survey Drone",
			types:       []types.ComponentType{types.TypeProcessor, types.TypeMotor, types.TypeBattery},
			wantMissing: 2,
		},
		{
			name:        "quadcopter keyword recognized",
			projectName: "My QUADCOPTER build",
			types:       []types.ComponentType{types.TypeProcessor},
			wantMissing: 4,
		},
		{
			name:        "unrecognized domain skips the check",
			projectName: "Weather Station",
			types:       []types.ComponentType{types.TypeSensor},
			wantMissing: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := types.NewProject(tt.projectName)
			for i, ct := range tt.types {
				p.AddComponent(namedComponent(strings.Repeat("c", i+1), ct))
			}

			res := Project(p)
			missing := 0
			for _, w := range res.Warnings {
				if strings.Contains(w, "Missing essential component") {
					missing++
				}
			}
			if missing != tt.wantMissing {
				t.Errorf("missing-essential warnings = %d, want %d: %v", missing, tt.wantMissing, res.Warnings)
			}
		})
	}
}

func TestCheckPowerCompatibilityVoltageDomains(t *testing.T) {
	p := types.NewProject("Drone")
	for i, v := range []string{"5V", "12V", "3.3V"} {
		c := namedComponent(strings.Repeat("c", i+1), types.TypeSensor)
		c.Power.VoltageInput = v
		p.AddComponent(c)
	}

	// Three distinct levels: under the threshold, no issue.
	if issues := CheckPowerCompatibility(p); len(issues) != 0 {
		t.Fatalf("3 voltage levels flagged: %v", issues)
	}

	// A fourth distinct level crosses it.
	c := namedComponent("servo", types.TypeMotor)
	c.Power.VoltageInput = "7.4V"
	p.AddComponent(c)

	issues := CheckPowerCompatibility(p)
	if len(issues) != 1 {
		t.Fatalf("issues = %v, want one voltage-domain issue", issues)
	}
	if !strings.Contains(issues[0], "Multiple voltage requirements") {
		t.Errorf("issue %q missing voltage-domain text", issues[0])
	}
	// Deterministic, sorted rendering of the levels.
	if !strings.Contains(issues[0], "3.3V, 5V, 7.4V, 12V") {
		t.Errorf("issue %q missing sorted levels", issues[0])
	}
}

func TestCheckPowerCompatibilityDuplicateVoltagesCollapse(t *testing.T) {
	p := types.NewProject("Drone")
	for i, v := range []string{"5V", "5VDC", "5.0V", "12V"} {
		c := namedComponent(strings.Repeat("c", i+1), types.TypeSensor)
		c.Power.VoltageInput = v
		p.AddComponent(c)
	}
	// 5, 5, 5, 12 → two distinct levels.
	if issues := CheckPowerCompatibility(p); len(issues) != 0 {
		t.Errorf("duplicate levels flagged: %v", issues)
	}
}

func TestCheckPowerCompatibilityCurrentDraw(t *testing.T) {
	p := types.NewProject("Drone")
	p.AddComponent(namedComponent("pack", types.TypeBattery))
	p.TotalPowerBudget = map[string]float64{"total_current_a": 62.5}

	issues := CheckPowerCompatibility(p)
	if len(issues) != 1 || !strings.Contains(issues[0], "62.5A") {
		t.Errorf("issues = %v, want one high-current issue naming 62.5A", issues)
	}

	// Same draw without a battery: the check does not apply.
	p2 := types.NewProject("Drone")
	p2.AddComponent(namedComponent("motor", types.TypeMotor))
	p2.TotalPowerBudget = map[string]float64{"total_current_a": 62.5}
	if issues := CheckPowerCompatibility(p2); len(issues) != 0 {
		t.Errorf("batteryless project flagged: %v", issues)
	}

	// Exactly at the threshold: not flagged.
	p.TotalPowerBudget["total_current_a"] = 50
	if issues := CheckPowerCompatibility(p); len(issues) != 0 {
		t.Errorf("50A flagged: %v", issues)
	}
}

func TestCheckInterfaceAvailability(t *testing.T) {
	controller := namedComponent("FC", types.TypeProcessor)
	controller.Interfaces = types.InterfaceSpec{UARTCount: 2, I2CCount: 1}

	gps := namedComponent("GPS", types.TypeSensor)
	gps.SpecificSpecs = map[string]string{"interface": "UART, update 10Hz"}

	compass := namedComponent("Compass", types.TypeSensor)
	compass.SpecificSpecs = map[string]string{"bus": "I2C address 0x1E"}

	rx := namedComponent("RX", types.TypeRadio)
	rx.SpecificSpecs = map[string]string{"link": "SBUS over UART"}

	baro := namedComponent("Baro", types.TypeSensor)
	baro.SpecificSpecs = map[string]string{"bus": "i2c or spi selectable"}

	p := types.NewProject("Drone")
	p.AddComponent(controller)
	p.AddComponent(gps)
	p.AddComponent(compass)
	p.AddComponent(rx)
	p.AddComponent(baro)

	// Demand: UART 2 (gps, rx), I2C 2 (compass, baro), SPI 1 (baro).
	// Supply: UART 2, I2C 1, SPI 0.
	issues := CheckInterfaceAvailability(p)
	if len(issues) != 2 {
		t.Fatalf("issues = %v, want I2C and SPI shortfalls", issues)
	}
	if !strings.Contains(issues[0], "I2C") || !strings.Contains(issues[0], "need 2, have 1") {
		t.Errorf("issue[0] = %q, want I2C shortfall", issues[0])
	}
	if !strings.Contains(issues[1], "SPI") || !strings.Contains(issues[1], "need 1, have 0") {
		t.Errorf("issue[1] = %q, want SPI shortfall", issues[1])
	}
}

func TestCheckInterfaceAvailabilityNoController(t *testing.T) {
	p := types.NewProject("Drone")
	p.AddComponent(namedComponent("GPS", types.TypeSensor))

	issues := CheckInterfaceAvailability(p)
	if len(issues) != 1 || !strings.Contains(issues[0], "No processor/controller") {
		t.Errorf("issues = %v, want single no-controller issue", issues)
	}
}

func TestCheckInterfaceAvailabilityFirstControllerWins(t *testing.T) {
	first := namedComponent("FC-A", types.TypeProcessor)
	first.Interfaces = types.InterfaceSpec{UARTCount: 0}
	second := namedComponent("FC-B", types.TypeProcessor)
	second.Interfaces = types.InterfaceSpec{UARTCount: 8}

	gps := namedComponent("GPS", types.TypeSensor)
	gps.SpecificSpecs = map[string]string{"interface": "uart"}

	p := types.NewProject("Drone")
	p.AddComponent(first)
	p.AddComponent(second)
	p.AddComponent(gps)

	// The first controller (0 UARTs) is the one consulted.
	issues := CheckInterfaceAvailability(p)
	if len(issues) != 1 || !strings.Contains(issues[0], "UART") {
		t.Errorf("issues = %v, want UART shortfall against first controller", issues)
	}
}

func TestProjectValidationAppendOnlyContract(t *testing.T) {
	// Validators return findings; the caller owns appending them to the
	// project's diagnostic lists. Re-running without a reset duplicates.
	p := types.NewProject("Drone")

	res := Project(p)
	p.Warnings = append(p.Warnings, res.Warnings...)
	res = Project(p)
	p.Warnings = append(p.Warnings, res.Warnings...)

	if len(p.Warnings) != 2 {
		t.Fatalf("warnings after two passes = %d, want duplicated entries", len(p.Warnings))
	}

	p.ResetDiagnostics()
	if p.Warnings != nil {
		t.Errorf("ResetDiagnostics left warnings: %v", p.Warnings)
	}
}
