package mcp

import (
	"fmt"

	"github.com/custodia-labs/creational/internal/core/domain"
	"github.com/custodia-labs/creational/internal/core/ports/driven"
)

// mockDrink implements driven.HotDrink for testing.
type mockDrink struct {
	id       string
	kind     string
	consumed int
}

func (d *mockDrink) ID() string   { return d.id }
func (d *mockDrink) Kind() string { return d.kind }
func (d *mockDrink) Consume()     { d.consumed++ }

// mockMachine implements driving.DrinkMachine for testing.
type mockMachine struct {
	names []string
	made  []*mockDrink
	err   error
}

func (m *mockMachine) MakeDrink(name string) (driven.HotDrink, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, n := range m.names {
		if n == name {
			d := &mockDrink{id: fmt.Sprintf("%s-%d", name, len(m.made)+1), kind: name}
			m.made = append(m.made, d)
			return d, nil
		}
	}
	return nil, fmt.Errorf("make drink %q: %w", name, domain.ErrNoSuchProduct)
}

func (m *mockMachine) Available() []string {
	return m.names
}
