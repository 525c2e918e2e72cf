package service

import (
	"context"
	"fmt"

	"wagerbot/models"
)

// accountDefaults are the wallet values given to a lazily created user
type accountDefaults struct {
	startingBalance int64
	walletLimit     int64
}

// createUser inserts a user inside uow and records the starting balance.
// It returns nil if another transaction created the user first.
func createUser(ctx context.Context, uow UnitOfWork, discordID int64, username string, defaults accountDefaults) (*models.User, error) {
	user, err := uow.UserRepository().Create(ctx, discordID, username, defaults.startingBalance, defaults.walletLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	if defaults.startingBalance > 0 {
		history := &models.BalanceHistory{
			DiscordID:       discordID,
			BalanceBefore:   0,
			BalanceAfter:    defaults.startingBalance,
			ChangeAmount:    defaults.startingBalance,
			TransactionType: models.TransactionTypeInitial,
			TransactionMetadata: map[string]any{
				"username": username,
			},
		}
		if err := RecordBalanceChange(ctx, uow, history); err != nil {
			return nil, fmt.Errorf("failed to record initial balance: %w", err)
		}
	}

	return user, nil
}

// lockOrCreateUser returns the user's row locked for the rest of the transaction,
// creating the account first if it does not exist yet.
func lockOrCreateUser(ctx context.Context, uow UnitOfWork, discordID int64, username string, defaults accountDefaults) (*models.User, error) {
	repo := uow.UserRepository()

	user, err := repo.GetByDiscordIDForUpdate(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user, err = createUser(ctx, uow, discordID, username, defaults)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	// Lost the insert race; the winner's row is visible once it commits
	user, err = repo.GetByDiscordIDForUpdate(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d not found after concurrent create", discordID)
	}
	return user, nil
}
