package games

import (
	"github.com/shopspring/decimal"

	"wagerbot/models"
)

// SlotSymbol is one reel face with its draw weight and three-of-a-kind payout
type SlotSymbol struct {
	Face   string
	Weight int
	Triple decimal.Decimal
}

// SlotSymbols is the reel strip. Weights sum to 100.
var SlotSymbols = []SlotSymbol{
	{Face: "🍒", Weight: 35, Triple: decimal.NewFromInt(8)},
	{Face: "🍋", Weight: 30, Triple: decimal.NewFromInt(4)},
	{Face: "🍊", Weight: 25, Triple: decimal.NewFromInt(2)},
	{Face: "💎", Weight: 8, Triple: decimal.NewFromInt(15)},
	{Face: "7️⃣", Weight: 2, Triple: decimal.NewFromInt(30)},
}

var slotPairMultiplier = decimal.RequireFromString("1.2")

func slotTotalWeight() int {
	total := 0
	for _, s := range SlotSymbols {
		total += s.Weight
	}
	return total
}

func spinReel(src Source, total int) SlotSymbol {
	r := src.IntN(total)
	for _, s := range SlotSymbols {
		if r < s.Weight {
			return s
		}
		r -= s.Weight
	}
	return SlotSymbols[len(SlotSymbols)-1]
}

// SlotsMultiplier returns the base multiplier and match kind for three reels
func SlotsMultiplier(reels [3]SlotSymbol) (decimal.Decimal, string) {
	a, b, c := reels[0].Face, reels[1].Face, reels[2].Face
	switch {
	case a == b && b == c:
		return reels[0].Triple, models.MatchThreeOfAKind
	case a == b || b == c || a == c:
		return slotPairMultiplier, models.MatchTwoMatching
	default:
		return decimal.Zero, ""
	}
}

// Slots spins three independent weighted reels
func Slots(src Source, bet int64, bonus decimal.Decimal) models.WagerOutcome {
	bonus = NormalizeBonus(bonus)
	total := slotTotalWeight()

	var reels [3]SlotSymbol
	for i := range reels {
		reels[i] = spinReel(src, total)
	}
	base, kind := SlotsMultiplier(reels)

	outcome := models.WagerOutcome{
		Game:         models.GameSlots,
		BonusApplied: bonus.GreaterThan(one),
		Detail: models.OutcomeDetail{
			Reels:     []string{reels[0].Face, reels[1].Face, reels[2].Face},
			MatchKind: kind,
		},
	}
	settle(&outcome, bet, base.Mul(bonus))
	return outcome
}
