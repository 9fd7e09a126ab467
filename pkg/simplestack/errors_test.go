package simplestack

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("boom")
	err := NewInfrastructureError("open_input", cause)

	assert.Equal(t, "simplestack: open_input: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsInfrastructureError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsInfrastructureError(cause))

	assert.Equal(t, "simplestack: render", NewInfrastructureError("render", nil).Error())
}

func TestIsNotMounted(t *testing.T) {
	assert.True(t, IsNotMounted(fmt.Errorf("current: %w", ErrNotMounted)))
	assert.False(t, IsNotMounted(ErrUnknownPlatform))
}
