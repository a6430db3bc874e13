package driven

import "strings"

// FactorySuffix is stripped from a variant identifier to form its display name.
const FactorySuffix = "Factory"

// HotDrink is a prepared product of a hot drink family.
// Its identity is the concrete variant; ID distinguishes instances.
type HotDrink interface {
	// ID returns the unique identifier of this instance.
	ID() string

	// Kind returns the display name of the drink family (e.g., "Tea").
	Kind() string

	// Consume performs the variant-specific consume action.
	Consume()
}

// HotDrinkFactory prepares drinks of one family.
type HotDrinkFactory interface {
	// Prepare returns a new drink. The amount is only narrated;
	// it never changes the returned product's behaviour.
	Prepare(amount int) HotDrink
}

// HotDrinkFactoryBuilder creates a factory variant with no arguments.
// A non-nil error means the variant cannot be instantiated.
type HotDrinkFactoryBuilder func() (HotDrinkFactory, error)

// FactoryRegistration pairs a factory variant's identifier with its builder.
type FactoryRegistration struct {
	// Identifier is the variant identifier (e.g., "TeaFactory").
	Identifier string

	// Build instantiates the variant.
	Build HotDrinkFactoryBuilder
}

// DisplayName derives a drink name from a variant identifier.
// E.g., "TeaFactory" becomes "Tea".
func DisplayName(identifier string) string {
	return strings.TrimSuffix(identifier, FactorySuffix)
}

// FactoryCatalog lists the factory variants available to the program.
type FactoryCatalog interface {
	// Registrations returns every registered variant in registration order.
	Registrations() []FactoryRegistration
}
