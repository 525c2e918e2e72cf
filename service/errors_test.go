package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWagerError_IsMatchesCode(t *testing.T) {
	err := fmt.Errorf("play: %w", newOnCooldown(2*time.Second))

	assert.ErrorIs(t, err, ErrOnCooldown)
	assert.NotErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, IsRejection(err))
}

func TestWagerError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := newCollaboratorUnavailable("ledger", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrCollaboratorUnavailable)
	assert.False(t, IsRejection(err))
	assert.Equal(t, "COLLABORATOR_UNAVAILABLE: ledger unavailable (connection reset)", err.Error())
}

func TestAsWagerError(t *testing.T) {
	wagerErr, ok := AsWagerError(fmt.Errorf("wrapped: %w", newInsufficientFunds(40, 100)))
	require.True(t, ok)
	assert.Equal(t, CodeInsufficientFunds, wagerErr.Code)
	assert.Equal(t, int64(60), wagerErr.Shortfall)

	_, ok = AsWagerError(errors.New("plain"))
	assert.False(t, ok)
}
