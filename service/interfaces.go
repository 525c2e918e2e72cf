package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"wagerbot/events"
	"wagerbot/models"
)

// UserRepository defines the interface for wallet data access
type UserRepository interface {
	// GetByDiscordID retrieves a user by their Discord ID, or nil if none exists
	GetByDiscordID(ctx context.Context, discordID int64) (*models.User, error)

	// GetByDiscordIDForUpdate retrieves a user and locks the row until the transaction ends
	GetByDiscordIDForUpdate(ctx context.Context, discordID int64) (*models.User, error)

	// Create inserts a user. It returns nil without error if the user already exists.
	Create(ctx context.Context, discordID int64, username string, initialBalance, walletLimit int64) (*models.User, error)

	// AdjustBalance applies a relative delta and returns the updated user.
	// It refuses to take the wallet below zero.
	AdjustBalance(ctx context.Context, discordID int64, delta int64) (*models.User, error)
}

// CooldownRepository tracks the last successful use of each command per user
type CooldownRepository interface {
	Get(ctx context.Context, discordID int64, command string) (*models.Cooldown, error)
	Set(ctx context.Context, discordID int64, command string, at time.Time) error
}

// EffectRepository stores time-limited modifiers
type EffectRepository interface {
	// GetActive returns effects that have not expired at now
	GetActive(ctx context.Context, discordID int64, now time.Time) ([]*models.ActiveEffect, error)

	// Grant creates or replaces an effect
	Grant(ctx context.Context, effect *models.ActiveEffect) error
}

// BalanceHistoryRepository defines the interface for balance history tracking
type BalanceHistoryRepository interface {
	// Record creates a new balance history entry
	Record(ctx context.Context, history *models.BalanceHistory) error

	// GetByUser returns balance history for a specific user
	GetByUser(ctx context.Context, discordID int64, limit int) ([]*models.BalanceHistory, error)
}

// BetRepository stores one record per resolved command
type BetRepository interface {
	Create(ctx context.Context, bet *models.Bet) error
	GetByUser(ctx context.Context, discordID int64, limit int) ([]*models.Bet, error)
}

// EventPublisher queues events until the owning unit of work commits
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork scopes repositories to a single transaction
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() UserRepository
	CooldownRepository() CooldownRepository
	EffectRepository() EffectRepository
	BalanceHistoryRepository() BalanceHistoryRepository
	BetRepository() BetRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// EffectsProvider reports the modifiers currently held by a user, keyed by effect key
type EffectsProvider interface {
	GetActiveEffects(ctx context.Context, discordID int64) (map[string]*models.ActiveEffect, error)
}

// UserService defines the interface for account operations
type UserService interface {
	// GetOrCreateUser retrieves an existing user or creates a new one with the starting balance
	GetOrCreateUser(ctx context.Context, discordID int64, username string) (*models.User, error)

	// GetRecentBets returns the user's latest wager records, newest first
	GetRecentBets(ctx context.Context, discordID int64, limit int) ([]*models.Bet, error)
}

// GamblingService runs wager commands end to end
type GamblingService interface {
	// Play validates, gates, resolves and commits one command
	Play(ctx context.Context, req models.WagerRequest) (*models.PlayResult, error)
}

// BonusService hands out time-limited gambling bonuses
type BonusService interface {
	// CanGrant reports whether discordID may grant bonuses
	CanGrant(discordID int64) bool

	// GrantGamblingBonus gives discordID a gambling bonus for duration, replacing any active one
	GrantGamblingBonus(ctx context.Context, grantedBy, discordID int64, multiplier decimal.Decimal, duration time.Duration) (*models.ActiveEffect, error)
}
