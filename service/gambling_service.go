package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"wagerbot/config"
	"wagerbot/events"
	"wagerbot/metrics"
	"wagerbot/models"
)

type gamblingService struct {
	uowFactory UnitOfWorkFactory
	effects    EffectsProvider
	engine     *WagerEngine
	cooldowns  func(command string) time.Duration
	defaults   accountDefaults
	now        func() time.Time
	newRoundID func() uuid.UUID
}

// NewGamblingService creates a new gambling service
func NewGamblingService(uowFactory UnitOfWorkFactory, effects EffectsProvider, engine *WagerEngine, cfg *config.Config) GamblingService {
	return &gamblingService{
		uowFactory: uowFactory,
		effects:    effects,
		engine:     engine,
		cooldowns:  cfg.CooldownFor,
		defaults: accountDefaults{
			startingBalance: cfg.StartingBalance,
			walletLimit:     cfg.DefaultWalletLimit,
		},
		now:        time.Now,
		newRoundID: uuid.New,
	}
}

// Play validates, gates, resolves and commits one command. The user's row stays
// locked from the gate check until commit, so concurrent commands from the same
// user run one after another and always see the committed wallet and cooldown.
func (s *gamblingService) Play(ctx context.Context, req models.WagerRequest) (*models.PlayResult, error) {
	started := time.Now()
	req.Normalize()

	result, err := s.play(ctx, req)
	if err != nil {
		if wagerErr, ok := AsWagerError(err); ok {
			metrics.RecordRejection(req.Game, string(wagerErr.Code))
		}
		return nil, err
	}

	metrics.RecordWager(result.Outcome, time.Since(started))
	log.WithFields(log.Fields{
		"roundID":    result.RoundID,
		"discordID":  req.UserID,
		"game":       req.Game,
		"result":     result.Outcome.Result,
		"bet":        result.Outcome.Bet,
		"delta":      result.Outcome.BalanceDelta,
		"newBalance": result.NewBalance,
	}).Info("Wager resolved")

	return result, nil
}

func (s *gamblingService) play(ctx context.Context, req models.WagerRequest) (*models.PlayResult, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	bonus := GamblingMultiplier(ctx, s.effects, req.UserID)

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, newCollaboratorUnavailable("ledger", err)
	}
	defer uow.Rollback() // No-op if already committed

	user, err := lockOrCreateUser(ctx, uow, req.UserID, req.Username, s.defaults)
	if err != nil {
		return nil, newCollaboratorUnavailable("ledger", err)
	}

	command := string(req.Game)
	cooldown, err := uow.CooldownRepository().Get(ctx, req.UserID, command)
	if err != nil {
		return nil, newCollaboratorUnavailable("cooldown store", err)
	}

	now := s.now()
	if err := CanProceed(GateSnapshot{
		Game:     req.Game,
		Bet:      req.Amount,
		Wallet:   user.Wallet,
		Cooldown: cooldown,
		Window:   s.cooldowns(command),
	}, now); err != nil {
		return nil, err
	}

	outcome, err := s.engine.Resolve(req, bonus)
	if err != nil {
		return nil, err
	}

	updated, err := uow.UserRepository().AdjustBalance(ctx, req.UserID, outcome.BalanceDelta)
	if err != nil {
		return nil, newCollaboratorUnavailable("ledger", err)
	}

	if err := uow.CooldownRepository().Set(ctx, req.UserID, command, now); err != nil {
		return nil, newCollaboratorUnavailable("cooldown store", err)
	}

	roundID := s.newRoundID()
	bet := models.NewBetFromOutcome(roundID, req.UserID, req.Choice, outcome)

	if outcome.BalanceDelta != 0 {
		history := &models.BalanceHistory{
			DiscordID:       req.UserID,
			BalanceBefore:   user.Wallet,
			BalanceAfter:    updated.Wallet,
			ChangeAmount:    outcome.BalanceDelta,
			TransactionType: transactionTypeFor(outcome),
			TransactionMetadata: map[string]any{
				"round_id":   roundID.String(),
				"game":       string(outcome.Game),
				"bet_amount": outcome.Bet,
				"multiplier": outcome.Multiplier.String(),
				"result":     string(outcome.Result),
			},
		}
		if err := RecordBalanceChange(ctx, uow, history); err != nil {
			return nil, newCollaboratorUnavailable("ledger", err)
		}
		bet.BalanceHistoryID = &history.ID
	}

	if err := uow.BetRepository().Create(ctx, bet); err != nil {
		return nil, newCollaboratorUnavailable("ledger", fmt.Errorf("failed to create bet record: %w", err))
	}

	uow.EventBus().Publish(events.WagerResolvedEvent{
		RoundID:      roundID,
		UserID:       req.UserID,
		Game:         outcome.Game,
		Result:       outcome.Result,
		Bet:          outcome.Bet,
		Multiplier:   outcome.Multiplier.String(),
		BalanceDelta: outcome.BalanceDelta,
		NewBalance:   updated.Wallet,
		BonusApplied: outcome.BonusApplied,
	})

	if err := uow.Commit(); err != nil {
		return nil, newCollaboratorUnavailable("ledger", err)
	}

	return &models.PlayResult{
		RoundID:     roundID,
		Outcome:     outcome,
		NewBalance:  updated.Wallet,
		WalletLimit: updated.WalletLimit,
	}, nil
}

func transactionTypeFor(outcome *models.WagerOutcome) models.TransactionType {
	switch {
	case outcome.Game == models.GameBeg:
		return models.TransactionTypeBeg
	case outcome.BalanceDelta > 0:
		return models.TransactionTypeBetWin
	default:
		return models.TransactionTypeBetLoss
	}
}

// IsRejection reports whether err stopped a wager before it resolved for a reason the user caused
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrOnCooldown) || errors.Is(err, ErrInsufficientFunds)
}
