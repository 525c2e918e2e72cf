package games

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"wagerbot/bot/common"
	"wagerbot/models"
	"wagerbot/service"
)

// OutcomeEmbed renders a committed play
func OutcomeEmbed(result *models.PlayResult) *discordgo.MessageEmbed {
	o := result.Outcome

	var embed *discordgo.MessageEmbed
	switch o.Game {
	case models.GameFlip:
		embed = flipEmbed(o)
	case models.GameDice:
		embed = diceEmbed(o)
	case models.GameSlots:
		embed = slotsEmbed(o)
	case models.GameRPS:
		embed = rpsEmbed(o)
	case models.GameBeg:
		embed = begEmbed(o)
		if o.Result != models.ResultWin {
			return embed
		}
	default:
		embed = common.NewGameEmbed("🎰 Result", common.ColorGold)
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "💵 New Balance",
		Value:  fmt.Sprintf("%s / %s", common.FormatMoney(result.NewBalance), common.FormatMoney(result.WalletLimit)),
		Inline: false,
	})
	return embed
}

func luckyBonusField(value string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: "✨ Lucky Bonus", Value: value, Inline: false}
}

func flipEmbed(o *models.WagerOutcome) *discordgo.MessageEmbed {
	if o.Result == models.ResultWin {
		embed := common.NewGameEmbed("🎉 You Won!", common.ColorSuccess)
		embed.Description = fmt.Sprintf("The coin landed on **%s**! You won %s!", o.Detail.CoinFace, common.FormatMoney(o.GrossWinnings))
		if o.BonusApplied {
			embed.Fields = append(embed.Fields, luckyBonusField("Your win chance was increased by your items!"))
		}
		return embed
	}

	embed := common.NewGameEmbed("💸 You Lost!", common.ColorDanger)
	embed.Description = fmt.Sprintf("The coin landed on **%s**. You lost %s.", o.Detail.CoinFace, common.FormatMoney(o.Bet))
	return embed
}

func diceEmbed(o *models.WagerOutcome) *discordgo.MessageEmbed {
	if o.Result == models.ResultWin {
		embed := common.NewGameEmbed("🎉 You Won!", common.ColorSuccess)
		embed.Description = fmt.Sprintf("🎲 You rolled a **%d**! You won %s (%sx)!",
			o.Detail.DieFace, common.FormatMoney(o.GrossWinnings), o.Multiplier.StringFixed(1))
		if o.BonusApplied {
			embed.Fields = append(embed.Fields, luckyBonusField("Your payout was increased by your items!"))
		}
		return embed
	}

	embed := common.NewGameEmbed("💸 You Lost!", common.ColorDanger)
	embed.Description = fmt.Sprintf("🎲 You rolled a **%d**. You lost %s.", o.Detail.DieFace, common.FormatMoney(o.Bet))
	return embed
}

func slotsEmbed(o *models.WagerOutcome) *discordgo.MessageEmbed {
	reels := "🎰 |"
	for _, face := range o.Detail.Reels {
		reels += " " + face + " |"
	}

	if o.Result == models.ResultWin {
		embed := common.NewGameEmbed("🎉 Jackpot!", common.ColorSuccess)
		embed.Description = fmt.Sprintf("%s\n%s\nYou won %s!", reels, matchText(o.Detail.MatchKind), common.FormatMoney(o.GrossWinnings))
		if o.BonusApplied {
			embed.Fields = append(embed.Fields, luckyBonusField("Your payout was increased by your items!"))
		}
		return embed
	}

	embed := common.NewGameEmbed("💸 You Lost!", common.ColorDanger)
	embed.Description = fmt.Sprintf("%s\nYou lost %s.", reels, common.FormatMoney(o.Bet))
	return embed
}

func matchText(kind string) string {
	if kind == models.MatchThreeOfAKind {
		return "Three of a kind!"
	}
	return "Two matching!"
}

func rpsEmbed(o *models.WagerOutcome) *discordgo.MessageEmbed {
	choice, bot := o.Detail.Choice, o.Detail.BotChoice

	var embed *discordgo.MessageEmbed
	switch o.Result {
	case models.ResultTie:
		embed = common.NewGameEmbed("🤝 It's a Tie!", common.ColorInfo)
		embed.Description = fmt.Sprintf("Both chose **%s**! You get your %s back.", choice, common.FormatMoney(o.Bet))
	case models.ResultWin:
		embed = common.NewGameEmbed("🎉 You Win!", common.ColorSuccess)
		embed.Description = fmt.Sprintf("**%s** beats **%s**! You won %s!", common.TitleCase(choice), bot, common.FormatMoney(o.GrossWinnings))
	default:
		embed = common.NewGameEmbed("💸 You Lose!", common.ColorDanger)
		embed.Description = fmt.Sprintf("**%s** beats **%s**! You lost %s.", common.TitleCase(bot), choice, common.FormatMoney(o.Bet))
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "🤖 Bot's Choice", Value: common.TitleCase(bot), Inline: true},
		&discordgo.MessageEmbedField{Name: "👤 Your Choice", Value: common.TitleCase(choice), Inline: true},
	)
	return embed
}

func begEmbed(o *models.WagerOutcome) *discordgo.MessageEmbed {
	if o.Result == models.ResultWin {
		embed := common.NewGameEmbed(o.Detail.BegEmoji+" Begging Successful", common.ColorSuccess)
		embed.Description = fmt.Sprintf("%s %s!", o.Detail.BegText, common.FormatMoney(o.GrossWinnings))
		return embed
	}

	embed := common.NewGameEmbed(o.Detail.BegEmoji+" Begging Failed", common.ColorWarning)
	embed.Description = o.Detail.BegText
	return embed
}

// RejectionEmbed explains why a wager did not run
func RejectionEmbed(req models.WagerRequest, err *service.WagerError) *discordgo.MessageEmbed {
	switch err.Code {
	case service.CodeOnCooldown:
		if req.Game == models.GameBeg {
			embed := common.NewGameEmbed("⏰ Too Soon!", common.ColorWarning)
			embed.Description = fmt.Sprintf("Please wait **%s** before begging again.", common.FormatTime(err.Remaining))
			return embed
		}
		embed := common.NewGameEmbed("⏰ Too Fast!", common.ColorWarning)
		embed.Description = fmt.Sprintf("Please wait **%s** before gambling again.", common.FormatTime(err.Remaining))
		return embed

	case service.CodeInsufficientFunds:
		embed := common.NewGameEmbed("❌ Insufficient Funds", common.ColorDanger)
		embed.Description = fmt.Sprintf("You only have %s in your wallet.", common.FormatMoney(req.Amount-err.Shortfall))
		return embed

	default:
		embed := common.NewGameEmbed("❌ Invalid Input", common.ColorDanger)
		embed.Description = common.TitleCase(err.Message) + "."
		return embed
	}
}
