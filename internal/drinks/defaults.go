package drinks

import (
	"github.com/custodia-labs/creational/internal/drinks/coffee"
	"github.com/custodia-labs/creational/internal/drinks/tea"
)

// RegisterDefaults registers all built-in drink families with the registry.
// Call this during application initialisation.
func RegisterDefaults(r *Registry) {
	r.Register(tea.Identifier, tea.New)
	r.Register(coffee.Identifier, coffee.New)
}
