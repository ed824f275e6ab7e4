package api

import (
	"time"

	"github.com/CristiGvl/picoSensorBridge/internal/hardware"
	"github.com/CristiGvl/picoSensorBridge/internal/node"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Server represents the API server
type Server struct {
	app   *fiber.App
	hw    *hardware.Hardware
	graph *node.Graph
}

// NewServer creates a new API server over the discovered hardware and its node graph
func NewServer(hw *hardware.Hardware, graph *node.Graph) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "picoSensorBridge",
		AppName:               "picoSensorBridge v1.0",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		MaxAge:       86400, // 24 hours
	}))

	server := &Server{
		app:   app,
		hw:    hw,
		graph: graph,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// Health check
	api.Get("/health", s.healthCheck)

	// Hardware description
	api.Get("/hardware", s.getHardware)

	// Sensor ids contain slashes, hence the wildcard
	api.Get("/sensors", s.getSensors)
	api.Get("/sensors/*", s.getSensor)

	// Node graph endpoints
	api.Get("/nodes", s.getNodes)
	api.Get("/nodes/targets", s.getNodeTargets)
	api.Get("/nodes/config", s.getNodeConfig)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
