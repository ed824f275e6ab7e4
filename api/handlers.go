package api

import (
	"context"
	"time"

	"github.com/CristiGvl/picoSensorBridge/internal/hardware"
	"github.com/CristiGvl/picoSensorBridge/internal/platform"
	"github.com/gofiber/fiber/v2"
	"github.com/shirou/gopsutil/v3/host"
)

// SensorView is one sensor with its current value
type SensorView struct {
	hardware.BaseHardware
	Type  hardware.HardwareType `json:"type"`
	Value int                   `json:"value"`
}

func newSensorView(sensor *hardware.Sensor, t hardware.HardwareType) SensorView {
	return SensorView{
		BaseHardware: sensor.BaseHardware,
		Type:         t,
		Value:        sensor.Value(),
	}
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp := fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"timestamp": time.Now().Unix(),
	}

	if info, err := host.InfoWithContext(ctx); err == nil {
		resp["hostname"] = info.Hostname
		resp["kernel"] = info.KernelVersion
	}

	return c.JSON(resp)
}

// Hardware description endpoint
func (s *Server) getHardware(c *fiber.Ctx) error {
	return c.JSON(s.hw.Describe())
}

// Sensor endpoints
func (s *Server) getSensors(c *fiber.Ctx) error {
	views := []SensorView{}
	for _, t := range []hardware.HardwareType{hardware.TypeTemp, hardware.TypeFan, hardware.TypeControl} {
		for _, sensor := range s.hw.Of(t) {
			views = append(views, newSensorView(sensor, t))
		}
	}

	return c.JSON(views)
}

func (s *Server) getSensor(c *fiber.Ctx) error {
	id := c.Params("*")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"error": "sensor id required"})
	}

	sensor, t, ok := s.hw.Sensor(id)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "sensor " + id + " not found"})
	}

	return c.JSON(newSensorView(sensor, t))
}

// Node endpoints
func (s *Server) getNodes(c *fiber.Ctx) error {
	return c.JSON(s.graph.Update())
}

func (s *Server) getNodeTargets(c *fiber.Ctx) error {
	return c.JSON(s.graph.Targets())
}

func (s *Server) getNodeConfig(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"temps":   s.graph.Temps(),
		"targets": s.graph.Targets(),
	})
}
