package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"wagerbot/database"
	"wagerbot/models"
)

const userColumns = `discord_id, username, wallet, wallet_limit, created_at, updated_at`

// UserRepository implements the UserRepository interface
type UserRepository struct {
	q queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// newUserRepositoryWithTx creates a new user repository with a transaction
func newUserRepositoryWithTx(tx queryable) *UserRepository {
	return &UserRepository{q: tx}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.DiscordID,
		&user.Username,
		&user.Wallet,
		&user.WalletLimit,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByDiscordID retrieves a user by their Discord ID
func (r *UserRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE discord_id = $1`

	user, err := scanUser(r.q.QueryRow(ctx, query, discordID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by discord ID %d: %w", discordID, err)
	}
	return user, nil
}

// GetByDiscordIDForUpdate retrieves a user and holds a row lock until the transaction ends
func (r *UserRepository) GetByDiscordIDForUpdate(ctx context.Context, discordID int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE discord_id = $1 FOR UPDATE`

	user, err := scanUser(r.q.QueryRow(ctx, query, discordID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock user %d: %w", discordID, err)
	}
	return user, nil
}

// Create creates a new user with the initial balance. Returns nil if the user already exists.
func (r *UserRepository) Create(ctx context.Context, discordID int64, username string, initialBalance, walletLimit int64) (*models.User, error) {
	query := `
		INSERT INTO users (discord_id, username, wallet, wallet_limit)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (discord_id) DO NOTHING
		RETURNING ` + userColumns

	user, err := scanUser(r.q.QueryRow(ctx, query, discordID, username, initialBalance, walletLimit))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user with discord ID %d: %w", discordID, err)
	}
	return user, nil
}

// AdjustBalance applies delta to the wallet atomically, failing if the result would be negative
func (r *UserRepository) AdjustBalance(ctx context.Context, discordID int64, delta int64) (*models.User, error) {
	query := `
		UPDATE users
		SET wallet = wallet + $1, updated_at = NOW()
		WHERE discord_id = $2 AND wallet + $1 >= 0
		RETURNING ` + userColumns

	user, err := scanUser(r.q.QueryRow(ctx, query, delta, discordID))
	if errors.Is(err, pgx.ErrNoRows) {
		existing, getErr := r.GetByDiscordID(ctx, discordID)
		if getErr != nil {
			return nil, fmt.Errorf("failed to check user: %w", getErr)
		}
		if existing == nil {
			return nil, fmt.Errorf("user with discord ID %d not found", discordID)
		}
		return nil, fmt.Errorf("insufficient balance: have %d, delta %d", existing.Wallet, delta)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to adjust balance for user %d: %w", discordID, err)
	}
	return user, nil
}
