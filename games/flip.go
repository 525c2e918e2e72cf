package games

import (
	"math"

	"github.com/shopspring/decimal"

	"wagerbot/models"
)

const (
	flipBaseWinChance = 0.55
	flipMaxWinChance  = 0.75
	flipForgiveChance = 0.3
)

var flipPayout = decimal.RequireFromString("1.8")

// FlipWinChance is the probability of the hidden win roll for a bonus multiplier
func FlipWinChance(bonus decimal.Decimal) float64 {
	return math.Min(flipMaxWinChance, flipBaseWinChance*bonus.InexactFloat64())
}

// Flip resolves a coin flip. The face shown is a fair draw; the win is decided by a
// separate roll at FlipWinChance, and a wrong guess still wins 30% of the time when
// that roll succeeds.
func Flip(src Source, bet int64, choice string, bonus decimal.Decimal) models.WagerOutcome {
	bonus = NormalizeBonus(bonus)

	face := models.ChoiceTails
	if src.Float64() < 0.5 {
		face = models.ChoiceHeads
	}
	actualWin := src.Float64() < FlipWinChance(bonus)

	won := false
	forgiven := false
	if actualWin {
		if choice == face {
			won = true
		} else if src.Float64() < flipForgiveChance {
			won = true
			forgiven = true
		}
	}

	outcome := models.WagerOutcome{
		Game:         models.GameFlip,
		BonusApplied: bonus.GreaterThan(one),
		Detail: models.OutcomeDetail{
			CoinFace: face,
			Forgiven: forgiven,
			Choice:   choice,
		},
	}
	if won {
		settle(&outcome, bet, flipPayout)
	} else {
		settle(&outcome, bet, decimal.Zero)
	}
	return outcome
}
