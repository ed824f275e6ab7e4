package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CristiGvl/picoSensorBridge/api"
	"github.com/CristiGvl/picoSensorBridge/internal/hardware"
	"github.com/CristiGvl/picoSensorBridge/internal/node"
	"github.com/CristiGvl/picoSensorBridge/internal/platform"
	"github.com/CristiGvl/picoSensorBridge/internal/render"
	"github.com/gofiber/fiber/v2/log"
)

var logLevels = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	// Parse command line flags
	port := flag.String("port", "8080", "Port to run the server on")
	bind := flag.String("bind", "0.0.0.0", "IP address to bind the server to")
	configPath := flag.String("config", "", "Path to a node config file (default graph when empty)")
	hardwareFile := flag.String("hardware-file", "", "Write the discovered hardware description to this file")
	fake := flag.Bool("fake", false, "Use fake hardware instead of the platform bridge")
	list := flag.Bool("list", false, "Print discovered sensors and exit")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	// Configure logging
	level, ok := logLevels[*logLevel]
	if !ok {
		stdlog.Fatalf("Unknown log level %q", *logLevel)
	}
	log.SetLevel(level)

	// Validate platform support
	if err := platform.ValidateSupport(*fake); err != nil {
		stdlog.Fatalf("Platform validation failed: %v", err)
	}

	// Discover hardware
	var bridge hardware.Bridge = hardware.NewBridge()
	if *fake {
		bridge = hardware.NewFakeBridge()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	hw, err := bridge.Generate(ctx)
	cancel()
	if err != nil {
		stdlog.Fatalf("Failed to discover hardware: %v", err)
	}
	log.Infof("Discovered %d temps, %d fans, %d controls", len(hw.Temps), len(hw.Fans), len(hw.Controls))

	if *list {
		fmt.Println(render.Table(hw))
		return
	}

	if *hardwareFile != "" {
		if err := hw.Save(*hardwareFile); err != nil {
			log.Warn(err)
		}
	}

	// Build the node graph and the API server
	graph := loadGraph(*configPath, hw)

	server := api.NewServer(hw, graph)

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		if err := server.Shutdown(); err != nil {
			log.Errorf("Error during shutdown: %v", err)
		}
		os.Exit(0)
	}()

	// Start the server
	log.Infof("Starting picoSensorBridge server on %s:%s", *bind, *port)
	stdlog.Fatal(server.Start(*bind + ":" + *port))
}

// loadGraph builds the graph from the config file, falling back to the
// default graph when there is none or it cannot be read
func loadGraph(path string, hw *hardware.Hardware) *node.Graph {
	if path == "" {
		return node.Default(hw)
	}

	cfg, err := node.LoadConfig(path)
	if err != nil {
		log.Warn(err)
		return node.Default(hw)
	}

	return node.FromConfig(cfg, hw)
}
