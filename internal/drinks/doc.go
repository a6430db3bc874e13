// Package drinks holds the registration table of hot drink factories.
// Each drink family lives in its own subpackage and is registered with
// the Registry at startup by RegisterDefaults.
//
// Adding a family means adding a subpackage and one Register call;
// the drink machine's dispatch code never changes.
package drinks
