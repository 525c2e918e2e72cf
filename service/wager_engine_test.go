package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wagerbot/models"
)

func TestWagerEngine_Resolve(t *testing.T) {
	neutral := decimal.NewFromInt(1)

	t.Run("flip matching guess", func(t *testing.T) {
		engine := NewWagerEngine(&scriptedSource{floats: []float64{0.1, 0.2}})
		outcome, err := engine.Resolve(models.WagerRequest{Game: models.GameFlip, Amount: 100, Choice: "heads"}, neutral)
		require.NoError(t, err)
		assert.Equal(t, models.ResultWin, outcome.Result)
		assert.Equal(t, int64(180), outcome.GrossWinnings)
		assert.Equal(t, int64(80), outcome.BalanceDelta)
	})

	t.Run("flip forgiven wrong guess", func(t *testing.T) {
		engine := NewWagerEngine(&scriptedSource{floats: []float64{0.9, 0.2, 0.1}})
		outcome, err := engine.Resolve(models.WagerRequest{Game: models.GameFlip, Amount: 100, Choice: "heads"}, neutral)
		require.NoError(t, err)
		assert.Equal(t, models.ResultWin, outcome.Result)
		assert.Equal(t, "tails", outcome.Detail.CoinFace)
		assert.True(t, outcome.Detail.Forgiven)
	})

	t.Run("dice four with bonus", func(t *testing.T) {
		engine := NewWagerEngine(&scriptedSource{ints: []int{3}})
		outcome, err := engine.Resolve(models.WagerRequest{Game: models.GameDice, Amount: 100}, decimal.NewFromInt(2))
		require.NoError(t, err)
		assert.Equal(t, int64(300), outcome.GrossWinnings)
		assert.True(t, outcome.BonusApplied)
	})

	t.Run("slots pair", func(t *testing.T) {
		engine := NewWagerEngine(&scriptedSource{ints: []int{0, 40, 10}})
		outcome, err := engine.Resolve(models.WagerRequest{Game: models.GameSlots, Amount: 100}, neutral)
		require.NoError(t, err)
		assert.Equal(t, []string{"🍒", "🍋", "🍒"}, outcome.Detail.Reels)
		assert.Equal(t, models.MatchTwoMatching, outcome.Detail.MatchKind)
		assert.Equal(t, int64(120), outcome.GrossWinnings)
	})

	t.Run("rps loss", func(t *testing.T) {
		engine := NewWagerEngine(&scriptedSource{ints: []int{1}})
		outcome, err := engine.Resolve(models.WagerRequest{Game: models.GameRPS, Amount: 40, Choice: "rock"}, neutral)
		require.NoError(t, err)
		assert.Equal(t, models.ResultLose, outcome.Result)
		assert.Equal(t, int64(-40), outcome.BalanceDelta)
	})

	t.Run("unknown game", func(t *testing.T) {
		engine := NewWagerEngine(&scriptedSource{})
		_, err := engine.Resolve(models.WagerRequest{Game: "poker", Amount: 1}, neutral)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestNewWagerEngine_DefaultSource(t *testing.T) {
	engine := NewWagerEngine(nil)
	outcome, err := engine.Resolve(models.WagerRequest{Game: models.GameDice, Amount: 10}, decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, outcome.Detail.DieFace, 1)
	assert.LessOrEqual(t, outcome.Detail.DieFace, 6)
}
