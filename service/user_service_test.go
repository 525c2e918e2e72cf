package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wagerbot/config"
	"wagerbot/models"
)

func TestUserService_GetOrCreateUser_ExistingUser(t *testing.T) {
	ctx := context.Background()
	mockFactory := new(MockUnitOfWorkFactory)
	mockUoW := new(MockUnitOfWork)
	mockUserRepo := new(MockUserRepository)
	mockUoW.SetRepositories(MockRepositories{Users: mockUserRepo})

	existing := &models.User{DiscordID: 42, Username: "existing", Wallet: 1500, WalletLimit: 50000}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockUserRepo.On("GetByDiscordID", ctx, int64(42)).Return(existing, nil)

	svc := NewUserService(mockFactory, config.NewTestConfig())
	user, err := svc.GetOrCreateUser(ctx, 42, "existing")

	require.NoError(t, err)
	assert.Same(t, existing, user)
	mockUoW.AssertNotCalled(t, "Commit")
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_GetOrCreateUser_NewUser(t *testing.T) {
	ctx := context.Background()
	mockFactory := new(MockUnitOfWorkFactory)
	mockUoW := new(MockUnitOfWork)
	mockUserRepo := new(MockUserRepository)
	mockHistoryRepo := new(MockBalanceHistoryRepository)
	mockBus := new(MockEventPublisher)
	mockUoW.SetRepositories(MockRepositories{
		Users:          mockUserRepo,
		BalanceHistory: mockHistoryRepo,
		EventBus:       mockBus,
	})

	created := &models.User{DiscordID: 42, Username: "newbie", Wallet: 500, WalletLimit: 50000}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockUserRepo.On("GetByDiscordID", ctx, int64(42)).Return(nil, nil)
	mockUserRepo.On("Create", ctx, int64(42), "newbie", int64(500), int64(50000)).Return(created, nil)
	mockHistoryRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
		return h.DiscordID == 42 &&
			h.BalanceBefore == 0 &&
			h.BalanceAfter == 500 &&
			h.ChangeAmount == 500 &&
			h.TransactionType == models.TransactionTypeInitial
	})).Return(nil)
	mockBus.On("Publish", mock.AnythingOfType("events.BalanceChangeEvent")).Return().Once()
	mockBus.On("Publish", mock.AnythingOfType("events.UserCreatedEvent")).Return().Once()

	svc := NewUserService(mockFactory, config.NewTestConfig())
	user, err := svc.GetOrCreateUser(ctx, 42, "newbie")

	require.NoError(t, err)
	assert.Equal(t, int64(500), user.Wallet)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockHistoryRepo.AssertExpectations(t)
	mockBus.AssertExpectations(t)
}

func TestUserService_GetOrCreateUser_ZeroStartingBalanceSkipsHistory(t *testing.T) {
	ctx := context.Background()
	mockFactory := new(MockUnitOfWorkFactory)
	mockUoW := new(MockUnitOfWork)
	mockUserRepo := new(MockUserRepository)
	mockHistoryRepo := new(MockBalanceHistoryRepository)
	mockUoW.SetRepositories(MockRepositories{Users: mockUserRepo, BalanceHistory: mockHistoryRepo})

	cfg := config.NewTestConfig()
	cfg.StartingBalance = 0

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockUserRepo.On("GetByDiscordID", ctx, int64(7)).Return(nil, nil)
	mockUserRepo.On("Create", ctx, int64(7), "broke", int64(0), int64(50000)).Return(&models.User{DiscordID: 7}, nil)

	svc := NewUserService(mockFactory, cfg)
	user, err := svc.GetOrCreateUser(ctx, 7, "broke")

	require.NoError(t, err)
	assert.Equal(t, int64(0), user.Wallet)
	mockHistoryRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	mockUoW.AssertExpectations(t)
}

func TestUserService_GetOrCreateUser_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	mockFactory := new(MockUnitOfWorkFactory)
	mockUoW := new(MockUnitOfWork)
	mockUserRepo := new(MockUserRepository)
	mockUoW.SetRepositories(MockRepositories{Users: mockUserRepo})

	winner := &models.User{DiscordID: 42, Username: "fast", Wallet: 500}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockUserRepo.On("GetByDiscordID", ctx, int64(42)).Return(nil, nil).Once()
	mockUserRepo.On("Create", ctx, int64(42), "slow", int64(500), int64(50000)).Return(nil, nil)
	mockUserRepo.On("GetByDiscordID", ctx, int64(42)).Return(winner, nil).Once()

	svc := NewUserService(mockFactory, config.NewTestConfig())
	user, err := svc.GetOrCreateUser(ctx, 42, "slow")

	require.NoError(t, err)
	assert.Same(t, winner, user)
	mockUoW.AssertNotCalled(t, "Commit")
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_GetOrCreateUser_RepositoryError(t *testing.T) {
	ctx := context.Background()
	mockFactory := new(MockUnitOfWorkFactory)
	mockUoW := new(MockUnitOfWork)
	mockUserRepo := new(MockUserRepository)
	mockUoW.SetRepositories(MockRepositories{Users: mockUserRepo})

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockUserRepo.On("GetByDiscordID", ctx, int64(42)).Return(nil, errors.New("database error"))

	svc := NewUserService(mockFactory, config.NewTestConfig())
	user, err := svc.GetOrCreateUser(ctx, 42, "someone")

	assert.Nil(t, user)
	assert.ErrorContains(t, err, "database error")
	mockUoW.AssertExpectations(t)
}

func TestUserService_GetRecentBets(t *testing.T) {
	ctx := context.Background()
	mockFactory := new(MockUnitOfWorkFactory)
	mockUoW := new(MockUnitOfWork)
	mockBetRepo := new(MockBetRepository)
	mockUoW.SetRepositories(MockRepositories{Bets: mockBetRepo})

	bets := []*models.Bet{
		{ID: 2, DiscordID: 42, Game: models.GameDice, Amount: 50, Result: models.ResultLose},
		{ID: 1, DiscordID: 42, Game: models.GameFlip, Amount: 20, Result: models.ResultWin},
	}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockBetRepo.On("GetByUser", ctx, int64(42), 5).Return(bets, nil)

	svc := NewUserService(mockFactory, config.NewTestConfig())
	result, err := svc.GetRecentBets(ctx, 42, 5)

	require.NoError(t, err)
	assert.Equal(t, bets, result)
	mockBetRepo.AssertExpectations(t)
}

func TestUserService_GetRecentBets_InvalidLimit(t *testing.T) {
	mockFactory := new(MockUnitOfWorkFactory)

	svc := NewUserService(mockFactory, config.NewTestConfig())
	result, err := svc.GetRecentBets(context.Background(), 42, 0)

	assert.Nil(t, result)
	assert.Error(t, err)
	mockFactory.AssertNotCalled(t, "Create")
}
