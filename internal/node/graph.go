// Package node evaluates the temp and target nodes of a configuration
// against discovered hardware.
package node

import (
	"sync"

	"github.com/CristiGvl/picoSensorBridge/internal/hardware"
	"github.com/gofiber/fiber/v2/log"
)

// Graph holds the nodes bound to one hardware snapshot
type Graph struct {
	mu      sync.Mutex
	hw      *hardware.Hardware
	temps   []*Temp
	targets []*Target
}

// FromConfig builds a graph from cfg, resolving hardware ids and dropping
// inputs that name no temp node. Null entries and nodes reusing a name
// already taken by another node are skipped.
func FromConfig(cfg *Config, hw *hardware.Hardware) *Graph {
	g := &Graph{hw: hw}

	// node names share one namespace across temps and targets
	names := make(map[string]bool)
	temps := make(map[string]bool)

	for i, temp := range cfg.Temps {
		if temp == nil {
			log.Warnf("temp %d: empty entry, skipping it", i)
			continue
		}
		if names[temp.Name] {
			log.Warnf("temp %s: duplicate node name, skipping it", temp.Name)
			continue
		}
		temp.Resolve(hw)
		g.temps = append(g.temps, temp)
		names[temp.Name] = true
		temps[temp.Name] = true
	}

	for i, target := range cfg.Targets {
		if target == nil {
			log.Warnf("target %d: empty entry, skipping it", i)
			continue
		}
		if names[target.Name] {
			log.Warnf("target %s: duplicate node name, skipping it", target.Name)
			continue
		}
		for _, input := range target.Inputs() {
			if !temps[input] {
				log.Warnf("target %s: input %s not found, clearing it", target.Name, input)
				target.ClearInputs()
			}
		}
		g.targets = append(g.targets, target)
		names[target.Name] = true
	}

	return g
}

// Default builds a graph with one temp node per temperature sensor.
// Sensors sharing a display name are named by their id instead.
func Default(hw *hardware.Hardware) *Graph {
	cfg := &Config{}
	taken := make(map[string]bool)
	for _, sensor := range hw.Temps {
		name := sensor.Name
		if taken[name] {
			name = sensor.ID
		}
		taken[name] = true
		cfg.Temps = append(cfg.Temps, &Temp{Name: name, HardwareID: sensor.ID})
	}
	return FromConfig(cfg, hw)
}

// Update evaluates temps then targets and returns each valid node's value by name
func (g *Graph) Update() map[string]int {
	g.mu.Lock()
	defer g.mu.Unlock()

	values := make(map[string]int)

	for _, temp := range g.temps {
		if v, ok := temp.Value(g.hw); ok {
			values[temp.Name] = v
		}
	}

	for _, target := range g.targets {
		if !target.IsValid() {
			continue
		}
		input, ok := values[*target.Input]
		if !ok {
			continue
		}
		values[target.Name] = target.Update(input)
	}

	return values
}

// TargetView describes a target node
type TargetView struct {
	Target
	Valid bool `json:"valid"`
}

// Targets returns a copy of every target node
func (g *Graph) Targets() []TargetView {
	g.mu.Lock()
	defer g.mu.Unlock()

	views := make([]TargetView, 0, len(g.targets))
	for _, target := range g.targets {
		views = append(views, TargetView{Target: *target, Valid: target.IsValid()})
	}
	return views
}

// Temps returns a copy of every temp node
func (g *Graph) Temps() []Temp {
	g.mu.Lock()
	defer g.mu.Unlock()

	temps := make([]Temp, 0, len(g.temps))
	for _, temp := range g.temps {
		temps = append(temps, *temp)
	}
	return temps
}
