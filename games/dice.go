package games

import (
	"github.com/shopspring/decimal"

	"wagerbot/models"
)

// DiceMultiplier returns the base payout multiplier for a die face
func DiceMultiplier(face int) decimal.Decimal {
	switch face {
	case 6:
		return decimal.NewFromInt(5)
	case 5:
		return decimal.NewFromInt(2)
	case 4:
		return decimal.RequireFromString("1.5")
	default:
		return decimal.Zero
	}
}

// Dice rolls one fair die; 4, 5 and 6 pay, scaled by the bonus
func Dice(src Source, bet int64, bonus decimal.Decimal) models.WagerOutcome {
	bonus = NormalizeBonus(bonus)
	face := src.IntN(6) + 1

	outcome := models.WagerOutcome{
		Game:         models.GameDice,
		BonusApplied: bonus.GreaterThan(one),
		Detail:       models.OutcomeDetail{DieFace: face},
	}
	settle(&outcome, bet, DiceMultiplier(face).Mul(bonus))
	return outcome
}
