package service

import (
	"context"
	"time"

	"wagerbot/events"
	"wagerbot/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.User, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByDiscordIDForUpdate(ctx context.Context, discordID int64) (*models.User, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, discordID int64, username string, initialBalance, walletLimit int64) (*models.User, error) {
	args := m.Called(ctx, discordID, username, initialBalance, walletLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) AdjustBalance(ctx context.Context, discordID int64, delta int64) (*models.User, error) {
	args := m.Called(ctx, discordID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockCooldownRepository is a mock implementation of CooldownRepository
type MockCooldownRepository struct {
	mock.Mock
}

func (m *MockCooldownRepository) Get(ctx context.Context, discordID int64, command string) (*models.Cooldown, error) {
	args := m.Called(ctx, discordID, command)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cooldown), args.Error(1)
}

func (m *MockCooldownRepository) Set(ctx context.Context, discordID int64, command string, at time.Time) error {
	args := m.Called(ctx, discordID, command, at)
	return args.Error(0)
}

// MockEffectRepository is a mock implementation of EffectRepository
type MockEffectRepository struct {
	mock.Mock
}

func (m *MockEffectRepository) GetActive(ctx context.Context, discordID int64, now time.Time) ([]*models.ActiveEffect, error) {
	args := m.Called(ctx, discordID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ActiveEffect), args.Error(1)
}

func (m *MockEffectRepository) Grant(ctx context.Context, effect *models.ActiveEffect) error {
	args := m.Called(ctx, effect)
	return args.Error(0)
}

// MockBalanceHistoryRepository is a mock implementation of BalanceHistoryRepository
type MockBalanceHistoryRepository struct {
	mock.Mock
}

func (m *MockBalanceHistoryRepository) Record(ctx context.Context, history *models.BalanceHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockBalanceHistoryRepository) GetByUser(ctx context.Context, discordID int64, limit int) ([]*models.BalanceHistory, error) {
	args := m.Called(ctx, discordID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BalanceHistory), args.Error(1)
}

// MockBetRepository is a mock implementation of BetRepository
type MockBetRepository struct {
	mock.Mock
}

func (m *MockBetRepository) Create(ctx context.Context, bet *models.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockBetRepository) GetByUser(ctx context.Context, discordID int64, limit int) ([]*models.Bet, error) {
	args := m.Called(ctx, discordID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bet), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher for testing
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// MockEffectsProvider is a mock implementation of EffectsProvider
type MockEffectsProvider struct {
	mock.Mock
}

func (m *MockEffectsProvider) GetActiveEffects(ctx context.Context, discordID int64) (map[string]*models.ActiveEffect, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*models.ActiveEffect), args.Error(1)
}

// MockUnitOfWork is a mock implementation of UnitOfWork. Repository getters return
// whatever was handed to SetRepositories rather than going through mock expectations.
type MockUnitOfWork struct {
	mock.Mock
	userRepo           UserRepository
	cooldownRepo       CooldownRepository
	effectRepo         EffectRepository
	balanceHistoryRepo BalanceHistoryRepository
	betRepo            BetRepository
	eventBus           EventPublisher
}

// MockRepositories bundles the repositories a MockUnitOfWork hands out
type MockRepositories struct {
	Users          UserRepository
	Cooldowns      CooldownRepository
	Effects        EffectRepository
	BalanceHistory BalanceHistoryRepository
	Bets           BetRepository
	EventBus       EventPublisher
}

// SetRepositories wires the repositories returned by the getters
func (m *MockUnitOfWork) SetRepositories(repos MockRepositories) {
	m.userRepo = repos.Users
	m.cooldownRepo = repos.Cooldowns
	m.effectRepo = repos.Effects
	m.balanceHistoryRepo = repos.BalanceHistory
	m.betRepo = repos.Bets
	m.eventBus = repos.EventBus
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) UserRepository() UserRepository {
	return m.userRepo
}

func (m *MockUnitOfWork) CooldownRepository() CooldownRepository {
	return m.cooldownRepo
}

func (m *MockUnitOfWork) EffectRepository() EffectRepository {
	return m.effectRepo
}

func (m *MockUnitOfWork) BalanceHistoryRepository() BalanceHistoryRepository {
	return m.balanceHistoryRepo
}

func (m *MockUnitOfWork) BetRepository() BetRepository {
	return m.betRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.eventBus
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
