// Package coffee provides the coffee family of hot drinks.
package coffee

import (
	"github.com/google/uuid"

	"github.com/custodia-labs/creational/internal/core/ports/driven"
	"github.com/custodia-labs/creational/internal/logger"
)

// Identifier is the variant identifier the factory registers under.
const Identifier = "CoffeeFactory"

// Kind is the display name of the family.
const Kind = "Coffee"

// Ensure Drink and Factory implement the interfaces.
var (
	_ driven.HotDrink        = (*Drink)(nil)
	_ driven.HotDrinkFactory = (*Factory)(nil)
)

// Drink is a prepared cup of coffee.
type Drink struct {
	id string
}

// ID returns the unique identifier of this cup.
func (d *Drink) ID() string { return d.id }

// Kind returns "Coffee".
func (d *Drink) Kind() string { return Kind }

// Consume drinks the coffee.
func (d *Drink) Consume() {
	logger.Info("This coffee is delicious!")
}

// Factory prepares coffee.
type Factory struct{}

// New creates a coffee factory.
func New() (driven.HotDrinkFactory, error) {
	return &Factory{}, nil
}

// Prepare brews a new cup of coffee.
func (f *Factory) Prepare(amount int) driven.HotDrink {
	logger.Info("Grind some beans, boil water, pour %d ml, add cream and sugar, enjoy!", amount)
	return &Drink{id: uuid.New().String()}
}
