package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bet is the persisted record of one resolved game command
type Bet struct {
	ID               int64           `db:"id"`
	RoundID          uuid.UUID       `db:"round_id"`
	DiscordID        int64           `db:"discord_id"`
	Game             GameType        `db:"game"`
	Amount           int64           `db:"amount"`
	Choice           string          `db:"choice"`
	Result           Result          `db:"result"`
	Multiplier       decimal.Decimal `db:"multiplier"`
	GrossWinnings    int64           `db:"gross_winnings"`
	BalanceDelta     int64           `db:"balance_delta"`
	Detail           OutcomeDetail   `db:"detail"`
	BalanceHistoryID *int64          `db:"balance_history_id"`
	CreatedAt        time.Time       `db:"created_at"`
}

// NewBetFromOutcome builds the record for a committed outcome
func NewBetFromOutcome(roundID uuid.UUID, discordID int64, choice string, outcome *WagerOutcome) *Bet {
	return &Bet{
		RoundID:       roundID,
		DiscordID:     discordID,
		Game:          outcome.Game,
		Amount:        outcome.Bet,
		Choice:        choice,
		Result:        outcome.Result,
		Multiplier:    outcome.Multiplier,
		GrossWinnings: outcome.GrossWinnings,
		BalanceDelta:  outcome.BalanceDelta,
		Detail:        outcome.Detail,
	}
}
