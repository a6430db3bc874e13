package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/creational/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change settings stored in config.toml.

Known keys:
  logging.verbose  - narrate machine and builder activity (true/false)
  drinks.default   - drink made by "drink make" without a name
  output.json      - print JSON by default (true/false)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a stored setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Get()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("  File: %s\n", settingsService.Path())
	cmd.Println()
	cmd.Printf("  %s = %t\n", domain.SettingVerbose, settings.Verbose)
	cmd.Printf("  %s = %s\n", domain.SettingDefaultDrink, settings.DefaultDrink)
	cmd.Printf("  %s = %t\n", domain.SettingJSONOutput, settings.JSONOutput)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	val, err := settingsService.Lookup(args[0])
	if err != nil {
		return err
	}
	cmd.Println(fmt.Sprint(val))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w\nknown keys: %v", err, knownKeys())
		}
		return err
	}

	cmd.Printf("%s set to %s\n", key, value)
	return nil
}

func knownKeys() []string {
	keys := make([]string, 0, len(domain.KnownSettings))
	for k := range domain.KnownSettings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
