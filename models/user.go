package models

import (
	"time"
)

// User is a wallet holder keyed by Discord ID
type User struct {
	DiscordID   int64     `db:"discord_id"`
	Username    string    `db:"username"`
	Wallet      int64     `db:"wallet"`
	WalletLimit int64     `db:"wallet_limit"` // displayed only, never enforced
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// CanAfford reports whether the wallet covers amount
func (u *User) CanAfford(amount int64) bool {
	return u.Wallet >= amount
}

// Shortfall returns how much the wallet is missing to cover amount
func (u *User) Shortfall(amount int64) int64 {
	if u.Wallet >= amount {
		return 0
	}
	return amount - u.Wallet
}
