package hardware

import "math"

// Source is an externally owned sensor handle. Reading reports the most
// recent value and whether one is available.
type Source interface {
	Reading() (float64, bool)
}

// SourceFunc adapts a plain function to a Source
type SourceFunc func() (float64, bool)

// Reading calls f
func (f SourceFunc) Reading() (float64, bool) {
	return f()
}

// BaseHardware carries the identity shared by every hardware item
type BaseHardware struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Index int    `json:"index"`
}

// Sensor exposes the current reading of a Source as an integer.
// The Source is not owned by the Sensor and is read on every call.
type Sensor struct {
	BaseHardware
	source Source
}

// NewSensor creates a sensor over the given source
func NewSensor(id, name string, source Source, index int) *Sensor {
	return &Sensor{
		BaseHardware: BaseHardware{ID: id, Name: name, Index: index},
		source:       source,
	}
}

// Value returns the current reading truncated toward zero, or 0 when the
// source has no reading.
func (s *Sensor) Value() int {
	if s == nil || s.source == nil {
		return 0
	}

	v, ok := s.source.Reading()
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}

	return int(v)
}
