package domain

// DefaultServingML is the amount every drink is prepared with.
const DefaultServingML = 100

// DrinkInfo describes a prepared hot drink for adapters that cannot hold
// on to the product itself (JSON output, MCP responses).
type DrinkInfo struct {
	// ID is the unique identifier of this drink instance.
	ID string `json:"id"`

	// Kind is the display name of the drink family (e.g., "Tea").
	Kind string `json:"kind"`

	// AmountML is the amount the drink was prepared with.
	AmountML int `json:"amount_ml"`

	// Consumed is true once the drink has been drunk.
	Consumed bool `json:"consumed,omitempty"`
}
