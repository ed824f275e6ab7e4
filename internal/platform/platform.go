package platform

import (
	"fmt"
	"runtime"
)

// SupportedOS represents operating systems with a sensor bridge
type SupportedOS string

const (
	Linux   SupportedOS = "linux"
	Windows SupportedOS = "windows"
)

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported returns true if the current OS has a sensor bridge
func IsSupported() bool {
	os := GetOS()
	return os == Linux || os == Windows
}

// ValidateSupport returns an error if the current OS has no sensor bridge.
// Fake hardware runs everywhere.
func ValidateSupport(fake bool) error {
	if fake || IsSupported() {
		return nil
	}
	return fmt.Errorf("unsupported operating system: %s. Supported: linux, windows (or run with -fake)", runtime.GOOS)
}
