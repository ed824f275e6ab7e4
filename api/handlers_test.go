package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/CristiGvl/picoSensorBridge/internal/hardware"
	"github.com/CristiGvl/picoSensorBridge/internal/node"
)

func newTestServer(t *testing.T) (*Server, *hardware.FakeBridge) {
	t.Helper()

	bridge := hardware.NewFakeBridge()
	hw, err := bridge.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	input := "cpu"
	cfg := &node.Config{
		Temps: []*node.Temp{{Name: "cpu", HardwareID: "fake/temp1"}},
		Targets: []*node.Target{
			{Name: "cpu fan", IdleTemp: 40, IdleSpeed: 10, LoadTemp: 70, LoadSpeed: 100, Input: &input},
		},
	}

	return NewServer(hw, node.FromConfig(cfg, hw)), bridge
}

func get(t *testing.T, s *Server, path string, out any) int {
	t.Helper()

	resp, err := s.app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func TestHealthCheck(t *testing.T) {
	s, _ := newTestServer(t)

	var body map[string]any
	if code := get(t, s, "/api/health", &body); code != 200 {
		t.Fatalf("status = %d, want 200", code)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestGetSensors(t *testing.T) {
	s, bridge := newTestServer(t)

	var sensors []SensorView
	if code := get(t, s, "/api/sensors", &sensors); code != 200 {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(sensors) != 6 {
		t.Fatalf("expected 6 sensors, got %d", len(sensors))
	}
	if sensors[0].ID != "fake/temp1" || sensors[0].Type != hardware.TypeTemp || sensors[0].Value != 40 {
		t.Errorf("first sensor: %+v", sensors[0])
	}

	bridge.Values["fake/temp1"].Clear()
	get(t, s, "/api/sensors", &sensors)
	if sensors[0].Value != 0 {
		t.Errorf("cleared sensor value = %d, want 0", sensors[0].Value)
	}
}

func TestGetSensor(t *testing.T) {
	s, bridge := newTestServer(t)
	bridge.Values["fake/fan2"].Set(1499.7)

	var sensor SensorView
	if code := get(t, s, "/api/sensors/fake/fan2", &sensor); code != 200 {
		t.Fatalf("status = %d, want 200", code)
	}
	if sensor.Type != hardware.TypeFan || sensor.Index != 1 || sensor.Value != 1499 {
		t.Errorf("unexpected sensor: %+v", sensor)
	}

	var errBody map[string]string
	if code := get(t, s, "/api/sensors/fake/nope", &errBody); code != 404 {
		t.Errorf("status = %d, want 404", code)
	}
	if errBody["error"] == "" {
		t.Error("expected error message")
	}
}

func TestGetHardware(t *testing.T) {
	s, _ := newTestServer(t)

	var desc hardware.Description
	if code := get(t, s, "/api/hardware", &desc); code != 200 {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(desc.Temps) != 3 || len(desc.Fans) != 2 || len(desc.Controls) != 1 {
		t.Errorf("unexpected description: %+v", desc)
	}
}

func TestGetNodes(t *testing.T) {
	s, bridge := newTestServer(t)

	var values map[string]int
	get(t, s, "/api/nodes", &values)
	if values["cpu"] != 40 || values["cpu fan"] != 10 {
		t.Errorf("unexpected values: %v", values)
	}

	bridge.Values["fake/temp1"].Set(75.2)
	get(t, s, "/api/nodes", &values)
	if values["cpu"] != 75 || values["cpu fan"] != 100 {
		t.Errorf("unexpected values under load: %v", values)
	}

	var cfg struct {
		Temps   []map[string]any `json:"temps"`
		Targets []map[string]any `json:"targets"`
	}
	get(t, s, "/api/nodes/config", &cfg)
	if len(cfg.Temps) != 1 || len(cfg.Targets) != 1 || cfg.Targets[0]["valid"] != true {
		t.Errorf("unexpected node config: %+v", cfg)
	}
}

func TestGetNodeTargets(t *testing.T) {
	s, _ := newTestServer(t)

	var targets []map[string]any
	if code := get(t, s, "/api/nodes/targets", &targets); code != 200 {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(targets) != 1 {
		t.Fatalf("expected 1 target, got %d", len(targets))
	}
	if targets[0]["name"] != "cpu fan" || targets[0]["input"] != "cpu" || targets[0]["valid"] != true {
		t.Errorf("unexpected target: %v", targets[0])
	}
	if targets[0]["loadSpeed"] != float64(100) {
		t.Errorf("loadSpeed = %v, want 100", targets[0]["loadSpeed"])
	}
}
