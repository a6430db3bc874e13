package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/creational/internal/core/domain"
)

var (
	drinkJSON    bool
	drinkConsume bool
)

var drinkCmd = &cobra.Command{
	Use:   "drink",
	Short: "Order hot drinks from the drink machine",
	Long: `The drink machine discovers every hot drink factory at startup and
dispatches each order to the factory whose name matches exactly.`,
}

var drinkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available drinks",
	Args:  cobra.NoArgs,
	RunE:  runDrinkList,
}

var drinkMakeCmd = &cobra.Command{
	Use:   "make [name]",
	Short: "Make a drink",
	Long: `Make a drink by name (case-sensitive). Without a name the
drinks.default setting is used.

Examples:
  creational drink make Tea
  creational drink make Coffee --consume`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDrinkMake,
}

func init() {
	drinkListCmd.Flags().BoolVar(&drinkJSON, "json", false, "output as JSON")
	drinkMakeCmd.Flags().BoolVar(&drinkJSON, "json", false, "output as JSON")
	drinkMakeCmd.Flags().BoolVar(&drinkConsume, "consume", false, "consume the drink once it is made")
	drinkCmd.AddCommand(drinkListCmd)
	drinkCmd.AddCommand(drinkMakeCmd)
	rootCmd.AddCommand(drinkCmd)
}

func runDrinkList(cmd *cobra.Command, _ []string) error {
	if drinkMachine == nil {
		return errors.New("drink machine not configured")
	}

	names := drinkMachine.Available()

	if jsonOutput(drinkJSON) {
		return printJSON(cmd, names)
	}

	if len(names) == 0 {
		cmd.Println("No drinks available.")
		return nil
	}

	cmd.Println("Available drinks:")
	for i, name := range names {
		cmd.Printf("  %d: %s\n", i, name)
	}
	return nil
}

func runDrinkMake(cmd *cobra.Command, args []string) error {
	if drinkMachine == nil {
		return errors.New("drink machine not configured")
	}

	name := domain.DefaultSettings().DefaultDrink
	if settingsService != nil {
		name = settingsService.Get().DefaultDrink
	}
	if len(args) == 1 {
		name = args[0]
	}

	drink, err := drinkMachine.MakeDrink(name)
	if err != nil {
		if errors.Is(err, domain.ErrNoSuchProduct) {
			return fmt.Errorf("%w (available: %v)", err, drinkMachine.Available())
		}
		return fmt.Errorf("make drink failed: %w", err)
	}

	if jsonOutput(drinkJSON) {
		if drinkConsume {
			drink.Consume()
		}
		return printJSON(cmd, domain.DrinkInfo{
			ID:       drink.ID(),
			Kind:     drink.Kind(),
			AmountML: domain.DefaultServingML,
			Consumed: drinkConsume,
		})
	}

	cmd.Printf("Your %s is ready (%d ml, id %s)\n", drink.Kind(), domain.DefaultServingML, drink.ID())
	if drinkConsume {
		drink.Consume()
		cmd.Printf("You finished your %s\n", drink.Kind())
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
