package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldown_Remaining(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	var none *Cooldown
	assert.Equal(t, time.Duration(0), none.Remaining(3*time.Second, now))

	c := &Cooldown{DiscordID: 1, Command: "dice", LastInvokedAt: now.Add(-1 * time.Second)}
	assert.Equal(t, 3*time.Second, c.Remaining(4*time.Second, now))
	assert.Equal(t, time.Duration(0), c.Remaining(time.Second, now))
	assert.Equal(t, time.Duration(0), c.Remaining(0, now))
}

func TestUser_Shortfall(t *testing.T) {
	u := &User{Wallet: 50}
	assert.True(t, u.CanAfford(50))
	assert.False(t, u.CanAfford(60))
	assert.Equal(t, int64(10), u.Shortfall(60))
	assert.Equal(t, int64(0), u.Shortfall(20))
}

func TestWagerRequest_Normalize(t *testing.T) {
	req := WagerRequest{Game: " Flip ", Choice: "HEADS "}
	req.Normalize()
	assert.Equal(t, GameFlip, req.Game)
	assert.Equal(t, ChoiceHeads, req.Choice)
}

func TestGameType_Choices(t *testing.T) {
	assert.Equal(t, []string{"heads", "tails"}, GameFlip.Choices())
	assert.Equal(t, []string{"rock", "paper", "scissors"}, GameRPS.Choices())
	assert.Nil(t, GameDice.Choices())
	assert.False(t, GameBeg.RequiresBet())
	assert.True(t, GameSlots.RequiresBet())
}

func TestActiveEffect_IsActive(t *testing.T) {
	now := time.Now()
	assert.True(t, (&ActiveEffect{ExpiresAt: now.Add(time.Minute)}).IsActive(now))
	assert.False(t, (&ActiveEffect{ExpiresAt: now.Add(-time.Minute)}).IsActive(now))

	var missing *ActiveEffect
	assert.False(t, missing.IsActive(now))
}
