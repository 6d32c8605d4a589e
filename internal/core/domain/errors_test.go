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
		{"ErrInvalidRecordFormat", ErrInvalidRecordFormat},
		{"ErrInvalidOption", ErrInvalidOption},
		{"ErrMissingPath", ErrMissingPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrInvalidRecordFormat(t *testing.T) {
	assert.Equal(t, "invalid record format", ErrInvalidRecordFormat.Error())
	assert.False(t, errors.Is(ErrInvalidRecordFormat, ErrInvalidOption))
}

func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("line 3: %w", ErrInvalidRecordFormat)
	assert.True(t, errors.Is(wrapped, ErrInvalidRecordFormat))
}
