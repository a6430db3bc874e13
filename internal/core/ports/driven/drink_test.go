package driven

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		identifier string
		expected   string
	}{
		{"TeaFactory", "Tea"},
		{"CoffeeFactory", "Coffee"},
		{"Cocoa", "Cocoa"},
		{"Factory", ""},
		{"FactoryFactory", "Factory"},
		{"FactoryOutlet", "FactoryOutlet"},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.identifier))
		})
	}
}
