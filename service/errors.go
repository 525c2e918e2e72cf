package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode classifies a rejected or failed wager
type ErrorCode string

const (
	CodeInvalidInput            ErrorCode = "INVALID_INPUT"
	CodeOnCooldown              ErrorCode = "ON_COOLDOWN"
	CodeInsufficientFunds       ErrorCode = "INSUFFICIENT_FUNDS"
	CodeCollaboratorUnavailable ErrorCode = "COLLABORATOR_UNAVAILABLE"
	CodeNotAuthorized           ErrorCode = "NOT_AUTHORIZED"
)

// WagerError is returned for every wager that does not reach an outcome
type WagerError struct {
	Code      ErrorCode
	Message   string
	Remaining time.Duration // set for CodeOnCooldown
	Shortfall int64         // set for CodeInsufficientFunds
	Err       error
}

func (e *WagerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *WagerError) Unwrap() error {
	return e.Err
}

// Is matches on code so callers can use errors.Is against the sentinels below
func (e *WagerError) Is(target error) bool {
	t, ok := target.(*WagerError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidInput            = &WagerError{Code: CodeInvalidInput}
	ErrOnCooldown              = &WagerError{Code: CodeOnCooldown}
	ErrInsufficientFunds       = &WagerError{Code: CodeInsufficientFunds}
	ErrCollaboratorUnavailable = &WagerError{Code: CodeCollaboratorUnavailable}
	ErrNotAuthorized           = &WagerError{Code: CodeNotAuthorized}
)

// AsWagerError extracts a WagerError from err
func AsWagerError(err error) (*WagerError, bool) {
	var wagerErr *WagerError
	if errors.As(err, &wagerErr) {
		return wagerErr, true
	}
	return nil, false
}

func newInvalidInput(format string, args ...any) *WagerError {
	return &WagerError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func newOnCooldown(remaining time.Duration) *WagerError {
	return &WagerError{
		Code:      CodeOnCooldown,
		Message:   fmt.Sprintf("command on cooldown for %s", remaining.Round(time.Second)),
		Remaining: remaining,
	}
}

func newInsufficientFunds(wallet, bet int64) *WagerError {
	return &WagerError{
		Code:      CodeInsufficientFunds,
		Message:   fmt.Sprintf("insufficient balance: have %d, need %d", wallet, bet),
		Shortfall: bet - wallet,
	}
}

func newCollaboratorUnavailable(what string, err error) *WagerError {
	return &WagerError{
		Code:    CodeCollaboratorUnavailable,
		Message: fmt.Sprintf("%s unavailable", what),
		Err:     err,
	}
}
