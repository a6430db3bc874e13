package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for creational resources.
const uriScheme = "creational://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "drinks",
		Name:        "drinks",
		Description: "Menu of hot drinks the machine can make",
		MIMEType:    "application/json",
	}, s.handleDrinksResource)
}

// drinkMenuEntry is one line of the drinks resource.
type drinkMenuEntry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// handleDrinksResource returns the drink menu in discovery order.
func (s *Server) handleDrinksResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	names := s.ports.Machine.Available()

	menu := make([]drinkMenuEntry, len(names))
	for i, name := range names {
		menu[i] = drinkMenuEntry{Index: i, Name: name}
	}

	data, err := json.Marshal(menu)
	if err != nil {
		return nil, fmt.Errorf("marshalling drink menu: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
