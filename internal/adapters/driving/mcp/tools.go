package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/creational/internal/core/domain"
	"github.com/custodia-labs/creational/internal/person"
)

// ListDrinksInput is the input schema for the list_drinks tool.
type ListDrinksInput struct{}

// ListDrinksOutput is the output schema for the list_drinks tool.
type ListDrinksOutput struct {
	Drinks []string `json:"drinks"`
	Count  int      `json:"count"`
}

// MakeDrinkInput is the input schema for the make_drink tool.
type MakeDrinkInput struct {
	Name    string `json:"name" jsonschema:"exact, case-sensitive drink name as returned by list_drinks"`
	Consume bool   `json:"consume,omitempty" jsonschema:"consume the drink after it is made"`
}

// MakeDrinkOutput is the output schema for the make_drink tool.
type MakeDrinkOutput struct {
	Drink domain.DrinkInfo `json:"drink"`
}

// BuildPersonInput is the input schema for the build_person tool.
type BuildPersonInput struct {
	StreetAddress string `json:"street_address,omitempty" jsonschema:"street and house number"`
	Postcode      string `json:"postcode,omitempty" jsonschema:"postal code"`
	City          string `json:"city,omitempty" jsonschema:"city of residence"`
	CompanyName   string `json:"company_name,omitempty" jsonschema:"employer"`
	Position      string `json:"position,omitempty" jsonschema:"job title"`
	AnnualIncome  int    `json:"annual_income,omitempty" jsonschema:"yearly gross income"`
}

// BuildPersonOutput is the output schema for the build_person tool.
type BuildPersonOutput struct {
	Person  domain.Person `json:"person"`
	Summary string        `json:"summary"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_drinks",
		Description: "List the hot drinks the machine can make, in discovery order",
	}, s.handleListDrinks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "make_drink",
		Description: "Make a new hot drink by exact name",
	}, s.handleMakeDrink)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_person",
		Description: "Build a person record with the fluent address and employment builders",
	}, s.handleBuildPerson)
}

// handleListDrinks handles the list_drinks tool invocation.
func (s *Server) handleListDrinks(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListDrinksInput,
) (*mcp.CallToolResult, ListDrinksOutput, error) {
	names := s.ports.Machine.Available()
	return nil, ListDrinksOutput{Drinks: names, Count: len(names)}, nil
}

// handleMakeDrink handles the make_drink tool invocation.
func (s *Server) handleMakeDrink(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input MakeDrinkInput,
) (*mcp.CallToolResult, MakeDrinkOutput, error) {
	drink, err := s.ports.Machine.MakeDrink(input.Name)
	if err != nil {
		return nil, MakeDrinkOutput{}, err
	}

	if input.Consume {
		drink.Consume()
	}

	return nil, MakeDrinkOutput{
		Drink: domain.DrinkInfo{
			ID:       drink.ID(),
			Kind:     drink.Kind(),
			AmountML: domain.DefaultServingML,
			Consumed: input.Consume,
		},
	}, nil
}

// handleBuildPerson handles the build_person tool invocation.
// Empty inputs leave the matching fields at their zero values.
func (s *Server) handleBuildPerson(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input BuildPersonInput,
) (*mcp.CallToolResult, BuildPersonOutput, error) {
	p := person.New().
		Lives().
		At(input.StreetAddress).
		WithPostcode(input.Postcode).
		In(input.City).
		Works().
		At(input.CompanyName).
		AsA(input.Position).
		Earning(input.AnnualIncome).
		Build()

	return nil, BuildPersonOutput{Person: p, Summary: p.String()}, nil
}
