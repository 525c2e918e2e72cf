package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EffectGamblingBonus scales flip win chance and dice/slots payouts
const EffectGamblingBonus = "gambling_bonus"

// ActiveEffect is a time-limited modifier held by a user
type ActiveEffect struct {
	DiscordID  int64           `db:"discord_id"`
	Key        string          `db:"effect_key"`
	Multiplier decimal.Decimal `db:"multiplier"`
	ExpiresAt  time.Time       `db:"expires_at"`
	CreatedAt  time.Time       `db:"created_at"`
}

// IsActive reports whether the effect has not yet expired at now
func (e *ActiveEffect) IsActive(now time.Time) bool {
	return e != nil && now.Before(e.ExpiresAt)
}
