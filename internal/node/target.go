package node

import "encoding/json"

// Target switches between an idle and a load speed. Once the input drops to
// IdleTemp the idle speed holds until the input climbs back to LoadTemp.
type Target struct {
	Name      string  `json:"name"`
	IdleTemp  int     `json:"idleTemp"`
	IdleSpeed int     `json:"idleSpeed"`
	LoadTemp  int     `json:"loadTemp"`
	LoadSpeed int     `json:"loadSpeed"`
	Input     *string `json:"input"`

	idleReached bool
}

// UnmarshalJSON accepts both camelCase and snake_case threshold keys
func (t *Target) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name      string  `json:"name"`
		IdleTemp  *int    `json:"idleTemp"`
		IdleSpeed *int    `json:"idleSpeed"`
		LoadTemp  *int    `json:"loadTemp"`
		LoadSpeed *int    `json:"loadSpeed"`
		Input     *string `json:"input"`

		IdleTempSnake  *int `json:"idle_temp"`
		IdleSpeedSnake *int `json:"idle_speed"`
		LoadTempSnake  *int `json:"load_temp"`
		LoadSpeedSnake *int `json:"load_speed"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*t = Target{
		Name:      raw.Name,
		IdleTemp:  pick(raw.IdleTemp, raw.IdleTempSnake),
		IdleSpeed: pick(raw.IdleSpeed, raw.IdleSpeedSnake),
		LoadTemp:  pick(raw.LoadTemp, raw.LoadTempSnake),
		LoadSpeed: pick(raw.LoadSpeed, raw.LoadSpeedSnake),
		Input:     raw.Input,
	}
	return nil
}

func pick(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

// Update returns the speed for the given input value
func (t *Target) Update(value int) int {
	if t.idleReached {
		if value < t.LoadTemp {
			return t.IdleSpeed
		}

		t.idleReached = false
		return t.LoadSpeed
	}

	if value > t.IdleTemp {
		return t.LoadSpeed
	}

	t.idleReached = true
	return t.IdleSpeed
}

// IsValid reports whether the node has an input
func (t *Target) IsValid() bool {
	return t.Input != nil
}

// ClearInputs drops the input
func (t *Target) ClearInputs() {
	t.Input = nil
}

// Inputs returns the names of the nodes feeding this one
func (t *Target) Inputs() []string {
	if t.Input == nil {
		return nil
	}
	return []string{*t.Input}
}
