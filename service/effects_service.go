package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"wagerbot/games"
	"wagerbot/metrics"
	"wagerbot/models"
)

type effectsProvider struct {
	uowFactory UnitOfWorkFactory
	now        func() time.Time
}

// NewEffectsProvider creates an EffectsProvider backed by the effect repository
func NewEffectsProvider(uowFactory UnitOfWorkFactory) EffectsProvider {
	return &effectsProvider{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (p *effectsProvider) GetActiveEffects(ctx context.Context, discordID int64) (map[string]*models.ActiveEffect, error) {
	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	active, err := uow.EffectRepository().GetActive(ctx, discordID, p.now())
	if err != nil {
		return nil, fmt.Errorf("failed to get active effects: %w", err)
	}

	byKey := make(map[string]*models.ActiveEffect, len(active))
	for _, effect := range active {
		byKey[effect.Key] = effect
	}
	return byKey, nil
}

// GamblingMultiplier returns the user's gambling bonus. Lookup failures are logged
// and treated as no bonus so a wager never fails on effects alone.
func GamblingMultiplier(ctx context.Context, provider EffectsProvider, discordID int64) decimal.Decimal {
	neutral := decimal.NewFromInt(1)
	if provider == nil {
		return neutral
	}

	effects, err := provider.GetActiveEffects(ctx, discordID)
	if err != nil {
		metrics.EffectsFallbackTotal.Inc()
		log.WithFields(log.Fields{
			"discordID": discordID,
			"error":     err,
		}).Warn("Effects lookup failed, using neutral gambling multiplier")
		return neutral
	}

	effect, ok := effects[models.EffectGamblingBonus]
	if !ok || effect == nil {
		return neutral
	}
	return games.NormalizeBonus(effect.Multiplier)
}
