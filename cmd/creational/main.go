// Command creational wires the drink machine and settings into the CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/custodia-labs/creational/internal/adapters/driven/config/file"
	"github.com/custodia-labs/creational/internal/adapters/driving/cli"
	"github.com/custodia-labs/creational/internal/core/services"
	"github.com/custodia-labs/creational/internal/drinks"
	"github.com/custodia-labs/creational/internal/metrics"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := setup(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// cobra reports command errors itself.
	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// setup builds the services and injects them into the CLI. A drink
// factory that fails to construct is fatal.
func setup() error {
	store, err := file.NewConfigStore(os.Getenv("CREATIONAL_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settings := services.NewSettingsService(store)

	registry := drinks.NewRegistry()
	drinks.RegisterDefaults(registry)

	machine, err := services.NewHotDrinkMachine(registry)
	if err != nil {
		return fmt.Errorf("starting drink machine: %w", err)
	}

	reg := prometheus.NewRegistry()

	cli.SetVersion(version)
	cli.SetServices(metrics.Instrument(machine, metrics.New(reg)), settings)
	cli.SetMetricsHandler(metrics.Handler(reg))
	return nil
}
