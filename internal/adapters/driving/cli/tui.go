package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/creational/internal/adapters/driving/tui"
	"github.com/custodia-labs/creational/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive drink picker",
	Long: `Launch an interactive terminal menu for the drink machine.

Controls:
  ↑/k, ↓/j - Move through the menu
  Enter    - Make the selected drink
  c        - Consume the last drink
  q, Esc   - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("tui requires an interactive terminal")
	}

	app, err := tui.NewApp(&tui.Ports{Machine: drinkMachine})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	// Narration would tear the alt screen.
	if logger.IsVerbose() {
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
