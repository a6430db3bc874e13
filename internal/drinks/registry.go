package drinks

import (
	"github.com/custodia-labs/creational/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.FactoryCatalog = (*Registry)(nil)

// Registry is an ordered table of factory variants.
// Registration order is the discovery order seen by the drink machine.
type Registry struct {
	entries []driven.FactoryRegistration
}

// NewRegistry creates a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a factory builder under the given variant identifier.
// Identifiers are not deduplicated; the drink machine reports a name that
// maps to more than one variant as ambiguous.
func (r *Registry) Register(identifier string, builder driven.HotDrinkFactoryBuilder) {
	r.entries = append(r.entries, driven.FactoryRegistration{
		Identifier: identifier,
		Build:      builder,
	})
}

// Has returns true if a variant with the given identifier is registered.
func (r *Registry) Has(identifier string) bool {
	for _, e := range r.entries {
		if e.Identifier == identifier {
			return true
		}
	}
	return false
}

// Identifiers returns all registered variant identifiers in registration order.
func (r *Registry) Identifiers() []string {
	ids := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		ids = append(ids, e.Identifier)
	}
	return ids
}

// Registrations returns a copy of the table in registration order.
func (r *Registry) Registrations() []driven.FactoryRegistration {
	out := make([]driven.FactoryRegistration, len(r.entries))
	copy(out, r.entries)
	return out
}
