package driving

import "github.com/custodia-labs/creational/internal/core/ports/driven"

// DrinkMachine dispatches drink requests to the matching factory.
type DrinkMachine interface {
	// MakeDrink prepares a new drink of the named family.
	// Returns domain.ErrNoSuchProduct if no family has that name and
	// domain.ErrAmbiguousProduct if more than one does.
	MakeDrink(name string) (driven.HotDrink, error)

	// Available returns the drink names in discovery order.
	Available() []string
}
