package platform

import (
	"runtime"
	"testing"
)

func TestValidateSupport(t *testing.T) {
	if err := ValidateSupport(true); err != nil {
		t.Errorf("fake hardware should always validate, got %v", err)
	}

	err := ValidateSupport(false)
	switch runtime.GOOS {
	case "linux", "windows":
		if err != nil {
			t.Errorf("expected %s to be supported, got %v", runtime.GOOS, err)
		}
	default:
		if err == nil {
			t.Errorf("expected %s to be unsupported", runtime.GOOS)
		}
	}
}
