package games

import (
	"github.com/shopspring/decimal"

	"wagerbot/models"
)

var one = decimal.NewFromInt(1)

// Payout returns floor(bet * multiplier)
func Payout(bet int64, multiplier decimal.Decimal) int64 {
	return decimal.NewFromInt(bet).Mul(multiplier).Floor().IntPart()
}

// NormalizeBonus maps a raw effect multiplier to a usable one. Anything below 1 is neutral.
func NormalizeBonus(m decimal.Decimal) decimal.Decimal {
	if m.LessThan(one) {
		return one
	}
	return m
}

// settle fills the money fields for a multiplier-based outcome.
// A zero multiplier loses the bet; anything else pays floor(bet*m).
func settle(outcome *models.WagerOutcome, bet int64, multiplier decimal.Decimal) {
	outcome.Bet = bet
	outcome.Multiplier = multiplier
	if multiplier.IsPositive() {
		outcome.Result = models.ResultWin
		outcome.GrossWinnings = Payout(bet, multiplier)
		outcome.BalanceDelta = outcome.GrossWinnings - bet
		return
	}
	outcome.Result = models.ResultLose
	outcome.GrossWinnings = 0
	outcome.BalanceDelta = -bet
}
