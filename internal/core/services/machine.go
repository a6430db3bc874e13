package services

import (
	"fmt"

	"github.com/custodia-labs/creational/internal/core/domain"
	"github.com/custodia-labs/creational/internal/core/ports/driven"
	"github.com/custodia-labs/creational/internal/core/ports/driving"
	"github.com/custodia-labs/creational/internal/logger"
)

// Ensure HotDrinkMachine implements the interface.
var _ driving.DrinkMachine = (*HotDrinkMachine)(nil)

// namedFactory is one discovered factory variant.
type namedFactory struct {
	name    string
	factory driven.HotDrinkFactory
}

// HotDrinkMachine dispatches drink requests to the factory with the matching name.
// The set of factories is fixed when the machine is constructed.
type HotDrinkMachine struct {
	factories []namedFactory
}

// NewHotDrinkMachine instantiates every factory variant in the catalog,
// in catalog order. If any variant fails to build, no machine is returned
// and the error wraps domain.ErrConstructionFailure.
func NewHotDrinkMachine(catalog driven.FactoryCatalog) (*HotDrinkMachine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: factory catalog is required", domain.ErrInvalidInput)
	}

	logger.Section("Drink machine")

	regs := catalog.Registrations()
	m := &HotDrinkMachine{
		factories: make([]namedFactory, 0, len(regs)),
	}

	for _, reg := range regs {
		if reg.Build == nil {
			return nil, fmt.Errorf("%w: %s has no builder", domain.ErrConstructionFailure, reg.Identifier)
		}

		f, err := reg.Build()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrConstructionFailure, reg.Identifier, err)
		}
		if f == nil {
			return nil, fmt.Errorf("%w: %s returned no factory", domain.ErrConstructionFailure, reg.Identifier)
		}

		name := driven.DisplayName(reg.Identifier)
		logger.Debug("registered drink %q from %s", name, reg.Identifier)
		m.factories = append(m.factories, namedFactory{name: name, factory: f})
	}

	return m, nil
}

// MakeDrink prepares a new drink of the named family.
// The name must match exactly one discovered factory (case-sensitive).
func (m *HotDrinkMachine) MakeDrink(name string) (driven.HotDrink, error) {
	logger.List("Available drinks", m.Available())

	var matches []driven.HotDrinkFactory
	for _, nf := range m.factories {
		if nf.name == name {
			matches = append(matches, nf.factory)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("make drink %q: %w", name, domain.ErrNoSuchProduct)
	case 1:
		return matches[0].Prepare(domain.DefaultServingML), nil
	default:
		logger.Warn("%d factories answer to %q", len(matches), name)
		return nil, fmt.Errorf("make drink %q: %d factories match: %w", name, len(matches), domain.ErrAmbiguousProduct)
	}
}

// Available returns the drink names in discovery order.
func (m *HotDrinkMachine) Available() []string {
	names := make([]string, len(m.factories))
	for i, nf := range m.factories {
		names[i] = nf.name
	}
	return names
}
