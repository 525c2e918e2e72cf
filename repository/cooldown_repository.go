package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"wagerbot/database"
	"wagerbot/models"
)

// CooldownRepository implements the CooldownRepository interface
type CooldownRepository struct {
	q queryable
}

// NewCooldownRepository creates a new cooldown repository
func NewCooldownRepository(db *database.DB) *CooldownRepository {
	return &CooldownRepository{q: db.Pool}
}

func newCooldownRepositoryWithTx(tx queryable) *CooldownRepository {
	return &CooldownRepository{q: tx}
}

// Get returns the last invocation of command by the user, or nil if it never ran
func (r *CooldownRepository) Get(ctx context.Context, discordID int64, command string) (*models.Cooldown, error) {
	query := `
		SELECT discord_id, command, last_invoked_at
		FROM cooldowns
		WHERE discord_id = $1 AND command = $2
	`

	var cooldown models.Cooldown
	err := r.q.QueryRow(ctx, query, discordID, command).Scan(
		&cooldown.DiscordID,
		&cooldown.Command,
		&cooldown.LastInvokedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cooldown %s for user %d: %w", command, discordID, err)
	}
	return &cooldown, nil
}

// Set stamps the last invocation time for command
func (r *CooldownRepository) Set(ctx context.Context, discordID int64, command string, at time.Time) error {
	query := `
		INSERT INTO cooldowns (discord_id, command, last_invoked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (discord_id, command) DO UPDATE SET last_invoked_at = EXCLUDED.last_invoked_at
	`

	if _, err := r.q.Exec(ctx, query, discordID, command, at); err != nil {
		return fmt.Errorf("failed to set cooldown %s for user %d: %w", command, discordID, err)
	}
	return nil
}
