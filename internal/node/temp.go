package node

import (
	"github.com/CristiGvl/picoSensorBridge/internal/hardware"
	"github.com/gofiber/fiber/v2/log"
)

// Temp is a node reading one temperature sensor
type Temp struct {
	Name       string `json:"name"`
	HardwareID string `json:"id,omitempty"`

	index    int
	resolved bool
}

// Resolve binds the node to the sensor with its hardware id. An id that is
// not part of hw is dropped.
func (t *Temp) Resolve(hw *hardware.Hardware) {
	t.index, t.resolved = 0, false

	if t.HardwareID == "" {
		return
	}

	index, ok := hw.InternalIndex(t.HardwareID, hardware.TypeTemp)
	if !ok {
		log.Warnf("hardware %s from config not found, falling back to no id", t.HardwareID)
		t.HardwareID = ""
		return
	}

	t.index, t.resolved = index, true
}

// IsValid reports whether the node is bound to a sensor
func (t *Temp) IsValid() bool {
	return t.HardwareID != "" && t.resolved
}

// Value reads the bound sensor
func (t *Temp) Value(hw *hardware.Hardware) (int, bool) {
	if !t.IsValid() || t.index >= len(hw.Temps) {
		return 0, false
	}
	return hw.Temps[t.index].Value(), true
}
