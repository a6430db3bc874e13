// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate
// calls to driven ports (adapters).
//
// Services are synchronous and hold no state beyond what their
// constructors set up.
package services
