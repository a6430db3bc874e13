// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - HotDrink: A prepared product of one drink family
//   - HotDrinkFactory: Prepares drinks of one family
//   - FactoryCatalog: Lists the factory variants available at startup
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or drink family package
package driven
