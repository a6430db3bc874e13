// Package mcp provides an MCP (Model Context Protocol) server adapter for creational.
// It lets AI assistants order drinks from the drink machine and build people
// through the fluent builder.
package mcp

import "errors"

// ErrMissingDrinkMachine is returned when the drink machine is not provided.
var ErrMissingDrinkMachine = errors.New("mcp: drink machine is required")
