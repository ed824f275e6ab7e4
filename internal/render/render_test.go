package render

import (
	"context"
	"strings"
	"testing"

	"github.com/CristiGvl/picoSensorBridge/internal/hardware"
)

func TestTable(t *testing.T) {
	bridge := hardware.NewFakeBridge()
	hw, err := bridge.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	out := Table(hw)
	for _, want := range []string{"TEMP", "FAN", "CONTROL", "Temp 2", "fake/fan1", "47 °C", "1200 RPM", "50 %"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTableEmpty(t *testing.T) {
	if out := Table(&hardware.Hardware{}); !strings.Contains(out, "no sensors found") {
		t.Errorf("unexpected output: %q", out)
	}
}
