package games

import (
	"github.com/shopspring/decimal"

	"wagerbot/models"
)

var rpsChoices = []string{models.ChoiceRock, models.ChoicePaper, models.ChoiceScissors}

var beats = map[string]string{
	models.ChoiceRock:     models.ChoiceScissors,
	models.ChoicePaper:    models.ChoiceRock,
	models.ChoiceScissors: models.ChoicePaper,
}

// RPS plays one round against a uniformly random bot choice. A win pays 2x, a tie
// returns the stake and a loss forfeits it. No bonus applies.
func RPS(src Source, bet int64, choice string) models.WagerOutcome {
	botChoice := rpsChoices[src.IntN(len(rpsChoices))]

	outcome := models.WagerOutcome{
		Game: models.GameRPS,
		Detail: models.OutcomeDetail{
			Choice:    choice,
			BotChoice: botChoice,
		},
	}

	switch {
	case choice == botChoice:
		outcome.Bet = bet
		outcome.Result = models.ResultTie
		outcome.Multiplier = one
		outcome.GrossWinnings = bet
		outcome.BalanceDelta = 0
	case beats[choice] == botChoice:
		settle(&outcome, bet, decimal.NewFromInt(2))
	default:
		settle(&outcome, bet, decimal.Zero)
	}
	return outcome
}
