//go:build !linux && !windows

package hardware

import (
	"context"
	"fmt"
)

// UnsupportedBridge is a fallback for unsupported platforms
type UnsupportedBridge struct{}

// newPlatformBridge creates a fallback bridge for unsupported platforms
func newPlatformBridge() Bridge {
	return &UnsupportedBridge{}
}

// Generate returns an error for unsupported platforms
func (b *UnsupportedBridge) Generate(ctx context.Context) (*Hardware, error) {
	return nil, fmt.Errorf("sensor discovery not supported on this platform")
}
