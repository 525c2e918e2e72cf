package games

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wagerbot/bot/common"
	"wagerbot/models"
	"wagerbot/service"
)

func playResult(o models.WagerOutcome, newBalance int64) *models.PlayResult {
	return &models.PlayResult{Outcome: &o, NewBalance: newBalance, WalletLimit: 50000}
}

func fieldNamed(embed *discordgo.MessageEmbed, name string) *discordgo.MessageEmbedField {
	for _, f := range embed.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func TestOutcomeEmbed_DiceWinWithBonus(t *testing.T) {
	embed := OutcomeEmbed(playResult(models.WagerOutcome{
		Game:          models.GameDice,
		Result:        models.ResultWin,
		Bet:           100,
		Multiplier:    decimal.RequireFromString("7.5"),
		GrossWinnings: 750,
		BalanceDelta:  650,
		BonusApplied:  true,
		Detail:        models.OutcomeDetail{DieFace: 6},
	}, 1650))

	assert.Equal(t, "🎉 You Won!", embed.Title)
	assert.Equal(t, common.ColorSuccess, embed.Color)
	assert.Equal(t, "🎲 You rolled a **6**! You won 750£ (7.5x)!", embed.Description)
	require.NotNil(t, fieldNamed(embed, "✨ Lucky Bonus"))
	assert.Equal(t, "1,650£ / 50,000£", fieldNamed(embed, "💵 New Balance").Value)
	assert.Equal(t, common.GamblingFooter, embed.Footer.Text)
}

func TestOutcomeEmbed_FlipLoss(t *testing.T) {
	embed := OutcomeEmbed(playResult(models.WagerOutcome{
		Game:         models.GameFlip,
		Result:       models.ResultLose,
		Bet:          60,
		Multiplier:   decimal.Zero,
		BalanceDelta: -60,
		Detail:       models.OutcomeDetail{CoinFace: "tails", Choice: "heads"},
	}, 40))

	assert.Equal(t, "💸 You Lost!", embed.Title)
	assert.Equal(t, "The coin landed on **tails**. You lost 60£.", embed.Description)
	assert.Nil(t, fieldNamed(embed, "✨ Lucky Bonus"))
	assert.Equal(t, "40£ / 50,000£", fieldNamed(embed, "💵 New Balance").Value)
}

func TestOutcomeEmbed_SlotsTriple(t *testing.T) {
	embed := OutcomeEmbed(playResult(models.WagerOutcome{
		Game:          models.GameSlots,
		Result:        models.ResultWin,
		Bet:           10,
		Multiplier:    decimal.NewFromInt(30),
		GrossWinnings: 300,
		BalanceDelta:  290,
		Detail: models.OutcomeDetail{
			Reels:     []string{"7️⃣", "7️⃣", "7️⃣"},
			MatchKind: models.MatchThreeOfAKind,
		},
	}, 1290))

	assert.Equal(t, "🎉 Jackpot!", embed.Title)
	assert.Equal(t, "🎰 | 7️⃣ | 7️⃣ | 7️⃣ |\nThree of a kind!\nYou won 300£!", embed.Description)
}

func TestOutcomeEmbed_RPSTie(t *testing.T) {
	embed := OutcomeEmbed(playResult(models.WagerOutcome{
		Game:          models.GameRPS,
		Result:        models.ResultTie,
		Bet:           250,
		Multiplier:    decimal.NewFromInt(1),
		GrossWinnings: 250,
		Detail:        models.OutcomeDetail{Choice: "paper", BotChoice: "paper"},
	}, 1000))

	assert.Equal(t, "🤝 It's a Tie!", embed.Title)
	assert.Equal(t, "Both chose **paper**! You get your 250£ back.", embed.Description)
	assert.Equal(t, "Paper", fieldNamed(embed, "🤖 Bot's Choice").Value)
	assert.Equal(t, "Paper", fieldNamed(embed, "👤 Your Choice").Value)
}

func TestOutcomeEmbed_RPSLoss(t *testing.T) {
	embed := OutcomeEmbed(playResult(models.WagerOutcome{
		Game:         models.GameRPS,
		Result:       models.ResultLose,
		Bet:          40,
		BalanceDelta: -40,
		Detail:       models.OutcomeDetail{Choice: "rock", BotChoice: "paper"},
	}, 960))

	assert.Equal(t, "💸 You Lose!", embed.Title)
	assert.Equal(t, "**Paper** beats **rock**! You lost 40£.", embed.Description)
}

func TestOutcomeEmbed_Beg(t *testing.T) {
	t.Run("success shows balance", func(t *testing.T) {
		embed := OutcomeEmbed(playResult(models.WagerOutcome{
			Game:          models.GameBeg,
			Result:        models.ResultWin,
			GrossWinnings: 42,
			BalanceDelta:  42,
			Detail:        models.OutcomeDetail{BegText: "A kind old lady gives you", BegEmoji: "👵"},
		}, 42))

		assert.Equal(t, "👵 Begging Successful", embed.Title)
		assert.Equal(t, "A kind old lady gives you 42£!", embed.Description)
		assert.NotNil(t, fieldNamed(embed, "💵 New Balance"))
	})

	t.Run("failure has no balance", func(t *testing.T) {
		embed := OutcomeEmbed(playResult(models.WagerOutcome{
			Game:   models.GameBeg,
			Result: models.ResultLose,
			Detail: models.OutcomeDetail{BegText: "Someone yells at you to get a job", BegEmoji: "😠"},
		}, 0))

		assert.Equal(t, "😠 Begging Failed", embed.Title)
		assert.Equal(t, common.ColorWarning, embed.Color)
		assert.Equal(t, "Someone yells at you to get a job", embed.Description)
		assert.Empty(t, embed.Fields)
	})
}

func TestRejectionEmbed(t *testing.T) {
	t.Run("cooldown", func(t *testing.T) {
		embed := RejectionEmbed(
			models.WagerRequest{Game: models.GameSlots, Amount: 10},
			&service.WagerError{Code: service.CodeOnCooldown, Remaining: 2500 * time.Millisecond},
		)
		assert.Equal(t, "⏰ Too Fast!", embed.Title)
		assert.Equal(t, "Please wait **3s** before gambling again.", embed.Description)
	})

	t.Run("beg cooldown", func(t *testing.T) {
		embed := RejectionEmbed(
			models.WagerRequest{Game: models.GameBeg},
			&service.WagerError{Code: service.CodeOnCooldown, Remaining: 4*time.Minute + 10*time.Second},
		)
		assert.Equal(t, "⏰ Too Soon!", embed.Title)
		assert.Equal(t, "Please wait **4m 10s** before begging again.", embed.Description)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		embed := RejectionEmbed(
			models.WagerRequest{Game: models.GameFlip, Amount: 60},
			&service.WagerError{Code: service.CodeInsufficientFunds, Shortfall: 10},
		)
		assert.Equal(t, "You only have 50£ in your wallet.", embed.Description)
	})

	t.Run("invalid input", func(t *testing.T) {
		embed := RejectionEmbed(
			models.WagerRequest{Game: models.GameDice},
			&service.WagerError{Code: service.CodeInvalidInput, Message: "bet must be greater than 0"},
		)
		assert.Equal(t, "❌ Invalid Input", embed.Title)
		assert.Equal(t, "Bet must be greater than 0.", embed.Description)
	})
}
