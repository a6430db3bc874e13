// Package cli provides the cobra command tree for creational.
// It is a driving adapter: commands translate flags and arguments into
// calls on the driving ports injected by main.
package cli

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/creational/internal/core/ports/driving"
	"github.com/custodia-labs/creational/internal/logger"
)

var (
	version = "dev"

	verbose bool

	drinkMachine    driving.DrinkMachine
	settingsService driving.SettingsService
	metricsHandler  http.Handler
)

var rootCmd = &cobra.Command{
	Use:   "creational",
	Short: "Creational design patterns at work",
	Long: `creational demonstrates two creational patterns:

  person - a fluent builder facade that fills one record through
           separate address and employment chains
  drink  - an abstract factory registry that dispatches drink
           requests to the matching hot drink factory`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose || currentSettingsVerbose())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "narrate what the machine and builders do")
}

// SetServices injects the driving ports used by the commands.
func SetServices(machine driving.DrinkMachine, settings driving.SettingsService) {
	drinkMachine = machine
	settingsService = settings
}

// SetMetricsHandler sets the handler served at /metrics by "mcp serve --port".
func SetMetricsHandler(h http.Handler) {
	metricsHandler = h
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func currentSettingsVerbose() bool {
	if settingsService == nil {
		return false
	}
	return settingsService.Get().Verbose
}

func jsonOutput(flag bool) bool {
	if flag {
		return true
	}
	return settingsService != nil && settingsService.Get().JSONOutput
}
