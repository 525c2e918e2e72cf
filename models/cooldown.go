package models

import "time"

// Cooldown records the last successful invocation of a command by a user
type Cooldown struct {
	DiscordID     int64     `db:"discord_id"`
	Command       string    `db:"command"`
	LastInvokedAt time.Time `db:"last_invoked_at"`
}

// Remaining returns how long until the command may run again. A nil cooldown never blocks.
func (c *Cooldown) Remaining(window time.Duration, now time.Time) time.Duration {
	if c == nil || window <= 0 {
		return 0
	}
	elapsed := now.Sub(c.LastInvokedAt)
	if elapsed >= window {
		return 0
	}
	return window - elapsed
}
