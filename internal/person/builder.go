// Package person provides a fluent builder facade for domain.Person.
//
// The top-level Builder owns one record. Lives and Works return
// sub-builders for the address and employment groups; both hold the
// same record, so a chain can switch groups at any point:
//
//	p := person.New().
//		Lives().
//			At("123 London Road").
//			In("London").
//			WithPostcode("SW12BC").
//		Works().
//			At("Fabrikam").
//			AsA("Engineer").
//			Earning(123000).
//		Build()
package person

import "github.com/custodia-labs/creational/internal/core/domain"

// Builder is the facade over the address and employment sub-builders.
type Builder struct {
	person *domain.Person
}

// New creates a builder for an empty person.
func New() *Builder {
	return &Builder{person: &domain.Person{}}
}

// Lives switches to the address group.
func (b *Builder) Lives() *AddressBuilder {
	return &AddressBuilder{Builder: b}
}

// Works switches to the employment group.
func (b *Builder) Works() *JobBuilder {
	return &JobBuilder{Builder: b}
}

// Build returns the person as built so far. Unset fields keep their
// zero values. The builder stays usable afterwards.
func (b *Builder) Build() domain.Person {
	return *b.person
}

// AddressBuilder sets the address group of the shared person.
// The embedded Builder keeps Lives, Works and Build on the chain.
type AddressBuilder struct {
	*Builder
}

// At sets the street address.
func (b *AddressBuilder) At(streetAddress string) *AddressBuilder {
	b.person.StreetAddress = streetAddress
	return b
}

// WithPostcode sets the postcode.
func (b *AddressBuilder) WithPostcode(postcode string) *AddressBuilder {
	b.person.Postcode = postcode
	return b
}

// In sets the city.
func (b *AddressBuilder) In(city string) *AddressBuilder {
	b.person.City = city
	return b
}

// JobBuilder sets the employment group of the shared person.
type JobBuilder struct {
	*Builder
}

// At sets the company name.
func (b *JobBuilder) At(companyName string) *JobBuilder {
	b.person.CompanyName = companyName
	return b
}

// AsA sets the position.
func (b *JobBuilder) AsA(position string) *JobBuilder {
	b.person.Position = position
	return b
}

// Earning sets the annual income.
func (b *JobBuilder) Earning(annualIncome int) *JobBuilder {
	b.person.AnnualIncome = annualIncome
	return b
}
