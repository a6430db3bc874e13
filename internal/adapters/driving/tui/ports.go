// Package tui provides an interactive drink picker for creational.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/creational/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Machine makes hot drinks.
	Machine driving.DrinkMachine
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Machine == nil {
		return ErrMissingDrinkMachine
	}
	return nil
}
