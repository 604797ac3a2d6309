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
		{"ErrValidation", ErrValidation},
		{"ErrUnknownOperation", ErrUnknownOperation},
		{"ErrElementNotFound", ErrElementNotFound},
		{"ErrTimeout", ErrTimeout},
		{"ErrNoResults", ErrNoResults},
		{"ErrLiveDisabled", ErrLiveDisabled},
		{"ErrExport", ErrExport},
		{"ErrTaskFailed", ErrTaskFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrValidation))
}

// TestErrors_AreDistinct tests that live retrieval errors do not match each other
func TestErrors_AreDistinct(t *testing.T) {
	live := []error{ErrElementNotFound, ErrTimeout, ErrNoResults, ErrLiveDisabled}
	for i, a := range live {
		for j, b := range live {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}

// TestErrValidation_Wrapped tests that wrapped validation errors stay detectable
func TestErrValidation_Wrapped(t *testing.T) {
	err := fmt.Errorf("%w: CNR must be alphanumeric", ErrValidation)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "validation failed")
}
