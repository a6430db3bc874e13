package domain

import "fmt"

// Person is a composite record with two independent attribute groups.
// Every field keeps its zero value until a builder sets it.
type Person struct {
	// Address group.

	// StreetAddress is the street and house number.
	StreetAddress string `json:"street_address"`

	// Postcode is the postal code.
	Postcode string `json:"postcode"`

	// City is the city of residence.
	City string `json:"city"`

	// Employment group.

	// CompanyName is the employer.
	CompanyName string `json:"company_name"`

	// Position is the job title.
	Position string `json:"position"`

	// AnnualIncome is the yearly gross income.
	AnnualIncome int `json:"annual_income"`
}

// HasAddress returns true if any address field is set.
func (p Person) HasAddress() bool {
	return p.StreetAddress != "" || p.Postcode != "" || p.City != ""
}

// HasEmployment returns true if any employment field is set.
func (p Person) HasEmployment() bool {
	return p.CompanyName != "" || p.Position != "" || p.AnnualIncome != 0
}

// String returns every field by name.
func (p Person) String() string {
	return fmt.Sprintf(
		"StreetAddress: %s, Postcode: %s, City: %s, CompanyName: %s, Position: %s, AnnualIncome: %d",
		p.StreetAddress, p.Postcode, p.City, p.CompanyName, p.Position, p.AnnualIncome,
	)
}
