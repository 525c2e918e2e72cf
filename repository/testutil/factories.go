package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wagerbot/models"
)

// CreateTestUser creates a test user with default values
func CreateTestUser(discordID int64, username string) *models.User {
	now := time.Now()
	return &models.User{
		DiscordID:   discordID,
		Username:    username,
		Wallet:      500,
		WalletLimit: 50000,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CreateTestBalanceHistory creates a test balance history entry
func CreateTestBalanceHistory(discordID int64, before, after int64, transactionType models.TransactionType) *models.BalanceHistory {
	return &models.BalanceHistory{
		DiscordID:       discordID,
		BalanceBefore:   before,
		BalanceAfter:    after,
		ChangeAmount:    after - before,
		TransactionType: transactionType,
		TransactionMetadata: map[string]any{
			"test": true,
		},
	}
}

// CreateTestBet creates a losing dice bet record
func CreateTestBet(discordID int64, amount int64) *models.Bet {
	return &models.Bet{
		RoundID:      uuid.New(),
		DiscordID:    discordID,
		Game:         models.GameDice,
		Amount:       amount,
		Result:       models.ResultLose,
		Multiplier:   decimal.Zero,
		BalanceDelta: -amount,
		Detail:       models.OutcomeDetail{DieFace: 2},
	}
}

// CreateTestEffect creates a gambling bonus effect expiring after ttl
func CreateTestEffect(discordID int64, multiplier string, ttl time.Duration) *models.ActiveEffect {
	return &models.ActiveEffect{
		DiscordID:  discordID,
		Key:        models.EffectGamblingBonus,
		Multiplier: decimal.RequireFromString(multiplier),
		ExpiresAt:  time.Now().Add(ttl),
	}
}
