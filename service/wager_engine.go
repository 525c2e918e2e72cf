package service

import (
	"github.com/shopspring/decimal"

	"wagerbot/games"
	"wagerbot/models"
)

// WagerEngine turns a validated request into an outcome. It performs no I/O.
type WagerEngine struct {
	src games.Source
}

// NewWagerEngine creates an engine drawing from src
func NewWagerEngine(src games.Source) *WagerEngine {
	if src == nil {
		src = games.DefaultSource()
	}
	return &WagerEngine{src: src}
}

// Resolve plays req with the given gambling bonus
func (e *WagerEngine) Resolve(req models.WagerRequest, bonus decimal.Decimal) (*models.WagerOutcome, error) {
	var outcome models.WagerOutcome
	switch req.Game {
	case models.GameFlip:
		outcome = games.Flip(e.src, req.Amount, req.Choice, bonus)
	case models.GameDice:
		outcome = games.Dice(e.src, req.Amount, bonus)
	case models.GameSlots:
		outcome = games.Slots(e.src, req.Amount, bonus)
	case models.GameRPS:
		outcome = games.RPS(e.src, req.Amount, req.Choice)
	case models.GameBeg:
		outcome = games.Beg(e.src)
	default:
		return nil, newInvalidInput("unknown game %q", req.Game)
	}
	return &outcome, nil
}
