package hardware

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// HardwareType represents the kind of a hardware item
type HardwareType string

const (
	TypeTemp    HardwareType = "temp"
	TypeFan     HardwareType = "fan"
	TypeControl HardwareType = "control"
)

// Hardware holds every sensor discovered by a bridge.
// A sensor's Index is its position in the slice of its type.
type Hardware struct {
	Temps    []*Sensor
	Fans     []*Sensor
	Controls []*Sensor
}

// Description is the serializable view of Hardware
type Description struct {
	Temps    []BaseHardware `json:"temps"`
	Fans     []BaseHardware `json:"fans"`
	Controls []BaseHardware `json:"controls"`
}

// Bridge discovers the sensors of a platform
type Bridge interface {
	Generate(ctx context.Context) (*Hardware, error)
}

// NewBridge creates a bridge for the current platform
func NewBridge() Bridge {
	return newPlatformBridge()
}

// Add appends a sensor of the given type, assigning its internal index
func (h *Hardware) Add(t HardwareType, id, name string, source Source) *Sensor {
	list := h.list(t)
	if list == nil {
		return nil
	}

	sensor := NewSensor(id, name, source, len(*list))
	*list = append(*list, sensor)
	return sensor
}

// Of returns the sensors of the given type
func (h *Hardware) Of(t HardwareType) []*Sensor {
	if list := h.list(t); list != nil {
		return *list
	}
	return nil
}

// InternalIndex returns the internal index of the sensor with the given id
func (h *Hardware) InternalIndex(id string, t HardwareType) (int, bool) {
	for _, sensor := range h.Of(t) {
		if sensor.ID == id {
			return sensor.Index, true
		}
	}
	return 0, false
}

// Sensor finds a sensor of any type by id
func (h *Hardware) Sensor(id string) (*Sensor, HardwareType, bool) {
	for _, t := range []HardwareType{TypeTemp, TypeFan, TypeControl} {
		if index, ok := h.InternalIndex(id, t); ok {
			return h.Of(t)[index], t, true
		}
	}
	return nil, "", false
}

// Describe returns the identity of every sensor
func (h *Hardware) Describe() *Description {
	return &Description{
		Temps:    describe(h.Temps),
		Fans:     describe(h.Fans),
		Controls: describe(h.Controls),
	}
}

// Save writes the hardware description as JSON
func (h *Hardware) Save(path string) error {
	data, err := json.MarshalIndent(h.Describe(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode hardware: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write hardware file: %w", err)
	}

	return nil
}

// LoadDescription reads a hardware description written by Save
func LoadDescription(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hardware file: %w", err)
	}

	var desc Description
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse hardware file: %w", err)
	}

	return &desc, nil
}

func (h *Hardware) list(t HardwareType) *[]*Sensor {
	switch t {
	case TypeTemp:
		return &h.Temps
	case TypeFan:
		return &h.Fans
	case TypeControl:
		return &h.Controls
	default:
		return nil
	}
}

func describe(sensors []*Sensor) []BaseHardware {
	out := make([]BaseHardware, 0, len(sensors))
	for _, sensor := range sensors {
		out = append(out, sensor.BaseHardware)
	}
	return out
}
