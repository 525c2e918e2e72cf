package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"wagerbot/database"
	"wagerbot/models"
)

// BetRepository implements the BetRepository interface
type BetRepository struct {
	q queryable
}

// NewBetRepository creates a new bet repository
func NewBetRepository(db *database.DB) *BetRepository {
	return &BetRepository{q: db.Pool}
}

// newBetRepositoryWithTx creates a new bet repository with a transaction
func newBetRepositoryWithTx(tx queryable) *BetRepository {
	return &BetRepository{q: tx}
}

// Create inserts the record for a resolved command
func (r *BetRepository) Create(ctx context.Context, bet *models.Bet) error {
	detailJSON, err := json.Marshal(bet.Detail)
	if err != nil {
		return fmt.Errorf("failed to marshal bet detail: %w", err)
	}

	query := `
		INSERT INTO bets
		(round_id, discord_id, game, amount, choice, result, multiplier, gross_winnings, balance_delta, detail, balance_history_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`

	err = r.q.QueryRow(ctx, query,
		bet.RoundID,
		bet.DiscordID,
		bet.Game,
		bet.Amount,
		bet.Choice,
		bet.Result,
		bet.Multiplier,
		bet.GrossWinnings,
		bet.BalanceDelta,
		detailJSON,
		bet.BalanceHistoryID,
	).Scan(&bet.ID, &bet.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bet: %w", err)
	}

	return nil
}

// GetByUser returns the user's most recent bets, newest first
func (r *BetRepository) GetByUser(ctx context.Context, discordID int64, limit int) ([]*models.Bet, error) {
	query := `
		SELECT id, round_id, discord_id, game, amount, choice, result, multiplier,
		       gross_winnings, balance_delta, detail, balance_history_id, created_at
		FROM bets
		WHERE discord_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.q.Query(ctx, query, discordID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets for user %d: %w", discordID, err)
	}
	defer rows.Close()

	var bets []*models.Bet
	for rows.Next() {
		var bet models.Bet
		var detailJSON []byte

		err := rows.Scan(
			&bet.ID,
			&bet.RoundID,
			&bet.DiscordID,
			&bet.Game,
			&bet.Amount,
			&bet.Choice,
			&bet.Result,
			&bet.Multiplier,
			&bet.GrossWinnings,
			&bet.BalanceDelta,
			&detailJSON,
			&bet.BalanceHistoryID,
			&bet.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}

		if len(detailJSON) > 0 {
			if err := json.Unmarshal(detailJSON, &bet.Detail); err != nil {
				return nil, fmt.Errorf("failed to unmarshal bet detail: %w", err)
			}
		}

		bets = append(bets, &bet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bets: %w", err)
	}

	return bets, nil
}
