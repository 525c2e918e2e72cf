package repository

import (
	"context"
	"fmt"
	"time"

	"wagerbot/database"
	"wagerbot/models"
)

// EffectRepository implements the EffectRepository interface
type EffectRepository struct {
	q queryable
}

// NewEffectRepository creates a new effect repository
func NewEffectRepository(db *database.DB) *EffectRepository {
	return &EffectRepository{q: db.Pool}
}

func newEffectRepositoryWithTx(tx queryable) *EffectRepository {
	return &EffectRepository{q: tx}
}

// GetActive returns the user's effects that expire after now
func (r *EffectRepository) GetActive(ctx context.Context, discordID int64, now time.Time) ([]*models.ActiveEffect, error) {
	query := `
		SELECT discord_id, effect_key, multiplier, expires_at, created_at
		FROM active_effects
		WHERE discord_id = $1 AND expires_at > $2
		ORDER BY effect_key
	`

	rows, err := r.q.Query(ctx, query, discordID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get active effects for user %d: %w", discordID, err)
	}
	defer rows.Close()

	var effects []*models.ActiveEffect
	for rows.Next() {
		var effect models.ActiveEffect
		if err := rows.Scan(
			&effect.DiscordID,
			&effect.Key,
			&effect.Multiplier,
			&effect.ExpiresAt,
			&effect.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan active effect: %w", err)
		}
		effects = append(effects, &effect)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate active effects: %w", err)
	}
	return effects, nil
}

// Grant creates the effect or replaces the user's existing one with the same key
func (r *EffectRepository) Grant(ctx context.Context, effect *models.ActiveEffect) error {
	query := `
		INSERT INTO active_effects (discord_id, effect_key, multiplier, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (discord_id, effect_key) DO UPDATE
		SET multiplier = EXCLUDED.multiplier, expires_at = EXCLUDED.expires_at, created_at = NOW()
		RETURNING created_at
	`

	err := r.q.QueryRow(ctx, query,
		effect.DiscordID,
		effect.Key,
		effect.Multiplier,
		effect.ExpiresAt,
	).Scan(&effect.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to grant effect %s to user %d: %w", effect.Key, effect.DiscordID, err)
	}
	return nil
}
