package hardware

import (
	"context"
	"fmt"
	"sync"
)

// FakeValue is a settable Source used by the fake bridge
type FakeValue struct {
	mu    sync.RWMutex
	value float64
	ok    bool
}

// NewFakeValue creates a fake source holding v
func NewFakeValue(v float64) *FakeValue {
	return &FakeValue{value: v, ok: true}
}

// Set stores a new reading
func (f *FakeValue) Set(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = v
	f.ok = true
}

// Clear drops the current reading
func (f *FakeValue) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ok = false
}

// Reading returns the stored reading
func (f *FakeValue) Reading() (float64, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value, f.ok
}

// FakeBridge generates a fixed set of sensors backed by FakeValues
type FakeBridge struct {
	Values map[string]*FakeValue
}

// NewFakeBridge creates a fake bridge with a few temps, fans and controls
func NewFakeBridge() *FakeBridge {
	return &FakeBridge{Values: make(map[string]*FakeValue)}
}

// Generate returns the fake hardware. Values keep their state across calls.
func (b *FakeBridge) Generate(ctx context.Context) (*Hardware, error) {
	hw := &Hardware{}

	for i := 0; i < 3; i++ {
		b.add(hw, TypeTemp, fmt.Sprintf("fake/temp%d", i+1), fmt.Sprintf("Temp %d", i+1), 40+float64(i)*7.5)
	}
	for i := 0; i < 2; i++ {
		b.add(hw, TypeFan, fmt.Sprintf("fake/fan%d", i+1), fmt.Sprintf("Fan %d", i+1), 1200+float64(i)*300)
	}
	b.add(hw, TypeControl, "fake/pwm1", "Control 1", 50)

	return hw, nil
}

func (b *FakeBridge) add(hw *Hardware, t HardwareType, id, name string, initial float64) {
	if b.Values == nil {
		b.Values = make(map[string]*FakeValue)
	}

	value, ok := b.Values[id]
	if !ok {
		value = NewFakeValue(initial)
		b.Values[id] = value
	}
	hw.Add(t, id, name, value)
}
