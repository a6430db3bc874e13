package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrConstructionFailure", ErrConstructionFailure},
		{"ErrNoSuchProduct", ErrNoSuchProduct},
		{"ErrAmbiguousProduct", ErrAmbiguousProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNoSuchProduct(t *testing.T) {
	assert.Equal(t, "no such product", ErrNoSuchProduct.Error())
	assert.False(t, errors.Is(ErrNoSuchProduct, ErrAmbiguousProduct))
}

func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("make drink %q: %w", "Cocoa", ErrNoSuchProduct)

	assert.True(t, errors.Is(wrapped, ErrNoSuchProduct))
	assert.False(t, errors.Is(wrapped, ErrConstructionFailure))
	assert.Contains(t, wrapped.Error(), "Cocoa")
}

// TestErrors_Distinct tests that the drink machine errors are distinguishable
func TestErrors_Distinct(t *testing.T) {
	errs := []error{ErrConstructionFailure, ErrNoSuchProduct, ErrAmbiguousProduct}

	for i, a := range errs {
		for j, b := range errs {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}
