package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/okampfer/lifesim/internal/api"
	"github.com/okampfer/lifesim/internal/catalog"
	"github.com/okampfer/lifesim/internal/config"
)

func main() {
	cfg := parseFlags()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Starting lifesim server...")
	log.Printf("Config: port=%d, scenario-dir=%s", cfg.Port, cfg.ScenarioDirectory)

	cat := catalog.New(cfg.ScenarioDirectory, cfg.SchemaPath)
	if err := cat.Load(); err != nil {
		log.Fatalf("Failed to load scenarios: %v", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	apiServer := api.NewServer(cat, addr, cfg.MaxConcurrentRuns)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- apiServer.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Server error: %v", err)

	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
		defer cancel()

		if err := apiServer.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}

		log.Println("Shutdown complete")
	}
}

func parseFlags() config.Config {
	cfg := config.DefaultConfig()

	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	flag.StringVar(&cfg.Host, "host", cfg.Host, "HTTP server host")
	flag.StringVar(&cfg.ScenarioDirectory, "scenario-dir", cfg.ScenarioDirectory, "Directory containing scenario YAML files")
	flag.StringVar(&cfg.SchemaPath, "schema", cfg.SchemaPath, "Path to the scenario JSON schema")
	flag.Int64Var(&cfg.MaxConcurrentRuns, "max-runs", cfg.MaxConcurrentRuns, "Maximum concurrent ad-hoc simulations")

	flag.Parse()

	return cfg
}
