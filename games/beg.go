package games

import (
	"github.com/shopspring/decimal"

	"wagerbot/models"
)

// BegEntry is one possible beg result; the amount is drawn uniformly from [Min, Max]
type BegEntry struct {
	Text  string
	Emoji string
	Min   int64
	Max   int64
}

// BegTable is drawn from uniformly
var BegTable = []BegEntry{
	{Text: "A generous stranger gives you", Emoji: "🙏", Min: 10, Max: 50},
	{Text: "You find some money on the ground", Emoji: "💰", Min: 5, Max: 30},
	{Text: "Someone takes pity and gives you", Emoji: "😢", Min: 15, Max: 40},
	{Text: "A kind old lady gives you", Emoji: "👵", Min: 20, Max: 60},
	{Text: "You perform a small favor and earn", Emoji: "🤝", Min: 25, Max: 45},
	{Text: "A businessman tips you", Emoji: "👔", Min: 30, Max: 70},
	{Text: "You get nothing... try again later", Emoji: "😞", Min: 0, Max: 0},
	{Text: "Someone yells at you to get a job", Emoji: "😠", Min: 0, Max: 0},
}

// Beg grants a small random amount without staking anything. A zero draw is a lose with no delta.
func Beg(src Source) models.WagerOutcome {
	entry := BegTable[src.IntN(len(BegTable))]
	amount := entry.Min
	if entry.Max > entry.Min {
		amount += int64(src.IntN(int(entry.Max-entry.Min) + 1))
	}

	outcome := models.WagerOutcome{
		Game:          models.GameBeg,
		Result:        models.ResultLose,
		Multiplier:    decimal.Zero,
		GrossWinnings: amount,
		BalanceDelta:  amount,
		Detail: models.OutcomeDetail{
			BegText:  entry.Text,
			BegEmoji: entry.Emoji,
		},
	}
	if amount > 0 {
		outcome.Result = models.ResultWin
	}
	return outcome
}
