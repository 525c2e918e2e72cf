package service

import (
	"time"

	"wagerbot/models"
)

// GateSnapshot is the ledger state a wager is checked against
type GateSnapshot struct {
	Game     models.GameType
	Bet      int64
	Wallet   int64
	Cooldown *models.Cooldown
	Window   time.Duration
}

// CanProceed decides whether a wager may run at now. It reads nothing and writes nothing.
// Cooldown is checked before balance; beg skips the balance check entirely.
func CanProceed(s GateSnapshot, now time.Time) error {
	if remaining := s.Cooldown.Remaining(s.Window, now); remaining > 0 {
		return newOnCooldown(remaining)
	}

	if !s.Game.RequiresBet() {
		return nil
	}
	if s.Bet <= 0 {
		return newInvalidInput("bet must be greater than 0")
	}
	if s.Bet > s.Wallet {
		return newInsufficientFunds(s.Wallet, s.Bet)
	}
	return nil
}
