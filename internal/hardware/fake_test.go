package hardware

import (
	"context"
	"testing"
)

func TestFakeBridgeKeepsValues(t *testing.T) {
	bridge := NewFakeBridge()

	hw, err := bridge.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := hw.Temps[1].Value(); got != 47 {
		t.Errorf("Temp 2 = %d, want 47", got)
	}

	bridge.Values["fake/temp2"].Set(88.8)

	again, _ := bridge.Generate(context.Background())
	if got := again.Temps[1].Value(); got != 88 {
		t.Errorf("Temp 2 after Set = %d, want 88", got)
	}
	if got := hw.Temps[1].Value(); got != 88 {
		t.Errorf("earlier handle = %d, want 88", got)
	}
}

func TestZeroValueFakeBridge(t *testing.T) {
	bridge := &FakeBridge{}

	hw, err := bridge.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(hw.Temps) != 3 || len(bridge.Values) != 6 {
		t.Errorf("unexpected fake hardware: %d temps, %d values", len(hw.Temps), len(bridge.Values))
	}
}
