// Package tea provides the tea family of hot drinks.
package tea

import (
	"github.com/google/uuid"

	"github.com/custodia-labs/creational/internal/core/ports/driven"
	"github.com/custodia-labs/creational/internal/logger"
)

// Identifier is the variant identifier the factory registers under.
const Identifier = "TeaFactory"

// Kind is the display name of the family.
const Kind = "Tea"

// Ensure Drink and Factory implement the interfaces.
var (
	_ driven.HotDrink        = (*Drink)(nil)
	_ driven.HotDrinkFactory = (*Factory)(nil)
)

// Drink is a prepared cup of tea.
type Drink struct {
	id string
}

// ID returns the unique identifier of this cup.
func (d *Drink) ID() string { return d.id }

// Kind returns "Tea".
func (d *Drink) Kind() string { return Kind }

// Consume drinks the tea.
func (d *Drink) Consume() {
	logger.Info("This tea is nice but I'd prefer it with milk.")
}

// Factory prepares tea.
type Factory struct{}

// New creates a tea factory.
func New() (driven.HotDrinkFactory, error) {
	return &Factory{}, nil
}

// Prepare brews a new cup of tea.
func (f *Factory) Prepare(amount int) driven.HotDrink {
	logger.Info("Put in tea bag, boil water, pour %d ml, add lemon, enjoy!", amount)
	return &Drink{id: uuid.New().String()}
}
