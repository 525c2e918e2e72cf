package service

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"wagerbot/config"
	"wagerbot/models"
)

// Grant limits for the gambling bonus
const (
	MinBonusDuration = time.Minute
	MaxBonusDuration = 7 * 24 * time.Hour
)

// MaxBonusMultiplier caps a granted gambling bonus
var MaxBonusMultiplier = decimal.NewFromInt(5)

type bonusService struct {
	uowFactory UnitOfWorkFactory
	adminIDs   []int64
	now        func() time.Time
}

// NewBonusService creates a BonusService. Only IDs in cfg.BonusAdminDiscordIDs may grant.
func NewBonusService(uowFactory UnitOfWorkFactory, cfg *config.Config) BonusService {
	return &bonusService{
		uowFactory: uowFactory,
		adminIDs:   cfg.BonusAdminDiscordIDs,
		now:        time.Now,
	}
}

func (s *bonusService) CanGrant(discordID int64) bool {
	return slices.Contains(s.adminIDs, discordID)
}

func (s *bonusService) GrantGamblingBonus(ctx context.Context, grantedBy, discordID int64, multiplier decimal.Decimal, duration time.Duration) (*models.ActiveEffect, error) {
	if !s.CanGrant(grantedBy) {
		return nil, &WagerError{Code: CodeNotAuthorized, Message: "only bonus admins can grant bonuses"}
	}
	if discordID <= 0 {
		return nil, newInvalidInput("a target user is required")
	}
	if !multiplier.GreaterThan(decimal.NewFromInt(1)) || multiplier.GreaterThan(MaxBonusMultiplier) {
		return nil, newInvalidInput("multiplier must be above 1 and at most %s", MaxBonusMultiplier)
	}
	if duration < MinBonusDuration || duration > MaxBonusDuration {
		return nil, newInvalidInput("duration must be between %s and %s", MinBonusDuration, MaxBonusDuration)
	}

	effect := &models.ActiveEffect{
		DiscordID:  discordID,
		Key:        models.EffectGamblingBonus,
		Multiplier: multiplier,
		ExpiresAt:  s.now().Add(duration),
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, newCollaboratorUnavailable("effects store", err)
	}
	defer uow.Rollback()

	if err := uow.EffectRepository().Grant(ctx, effect); err != nil {
		return nil, newCollaboratorUnavailable("effects store", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, newCollaboratorUnavailable("effects store", err)
	}

	log.WithFields(log.Fields{
		"grantedBy":  grantedBy,
		"discordID":  discordID,
		"multiplier": multiplier.String(),
		"expiresAt":  effect.ExpiresAt,
	}).Info("Gambling bonus granted")

	return effect, nil
}
