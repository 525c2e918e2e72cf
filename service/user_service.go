package service

import (
	"context"
	"fmt"

	"wagerbot/config"
	"wagerbot/models"
)

type userService struct {
	uowFactory UnitOfWorkFactory
	defaults   accountDefaults
}

// NewUserService creates a new user service
func NewUserService(uowFactory UnitOfWorkFactory, cfg *config.Config) UserService {
	return &userService{
		uowFactory: uowFactory,
		defaults: accountDefaults{
			startingBalance: cfg.StartingBalance,
			walletLimit:     cfg.DefaultWalletLimit,
		},
	}
}

// GetOrCreateUser retrieves an existing user or creates a new one with the starting balance
func (s *userService) GetOrCreateUser(ctx context.Context, discordID int64, username string) (*models.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user, err = createUser(ctx, uow, discordID, username, s.defaults)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Created concurrently by another command
		user, err = uow.UserRepository().GetByDiscordID(ctx, discordID)
		if err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		return user, nil
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return user, nil
}

// GetRecentBets returns the user's latest wager records, newest first
func (s *userService) GetRecentBets(ctx context.Context, discordID int64, limit int) ([]*models.Bet, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	bets, err := uow.BetRepository().GetByUser(ctx, discordID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent bets: %w", err)
	}
	return bets, nil
}
