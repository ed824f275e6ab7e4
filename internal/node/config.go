package node

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the user configuration of the node graph
type Config struct {
	Temps   []*Temp   `json:"temps"`
	Targets []*Target `json:"targets"`
}

// LoadConfig reads a JSON config file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &cfg, nil
}
