package tui

import "errors"

// ErrMissingDrinkMachine is returned when the drink machine is not provided.
var ErrMissingDrinkMachine = errors.New("tui: drink machine is required")
