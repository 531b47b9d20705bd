package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerState_String(t *testing.T) {
	tests := []struct {
		state    ManagerState
		expected string
	}{
		{StateSteady, "Steady"},
		{StateTransitioning, "Transitioning"},
		{ManagerState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestManagerStateConstants(t *testing.T) {
	// Steady must be the zero value so a fresh manager starts steady
	assert.Equal(t, ManagerState(0), StateSteady)
	assert.Equal(t, ManagerState(1), StateTransitioning)
}
