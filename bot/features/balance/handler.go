package balance

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"wagerbot/bot/common"
	"wagerbot/models"
)

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, username, err := common.InteractionUserID(i)
	if err != nil {
		log.Errorf("Error identifying balance user: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	user, err := f.userService.GetOrCreateUser(ctx, discordID, username)
	if err != nil {
		log.Errorf("Error getting user %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	bets, err := f.userService.GetRecentBets(ctx, discordID, recentBetLimit)
	if err != nil {
		// Balance is still worth showing without history
		log.Warnf("Error getting recent bets for user %d: %v", discordID, err)
		bets = nil
	}

	if err := common.RespondWithEmbed(s, i, BalanceEmbed(username, user, bets), false); err != nil {
		log.Errorf("Error responding to balance command: %v", err)
	}
}

// BalanceEmbed renders a wallet with its most recent games
func BalanceEmbed(username string, user *models.User, bets []*models.Bet) *discordgo.MessageEmbed {
	embed := common.NewGameEmbed(fmt.Sprintf("💰 %s's Wallet", username), common.ColorGold)
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "💵 Balance",
		Value:  fmt.Sprintf("%s / %s", common.FormatMoney(user.Wallet), common.FormatMoney(user.WalletLimit)),
		Inline: false,
	})

	if len(bets) == 0 {
		return embed
	}

	lines := make([]string, 0, len(bets))
	for _, bet := range bets {
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			resultIcon(bet.Result),
			common.TitleCase(string(bet.Game)),
			signedMoney(bet.BalanceDelta),
			common.FormatDiscordTimestamp(bet.CreatedAt, "R"),
		))
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "🎲 Recent Games",
		Value:  strings.Join(lines, "\n"),
		Inline: false,
	})
	return embed
}

func resultIcon(result models.Result) string {
	switch result {
	case models.ResultWin:
		return "🟢"
	case models.ResultTie:
		return "⚪"
	default:
		return "🔴"
	}
}

func signedMoney(delta int64) string {
	if delta > 0 {
		return "+" + common.FormatMoney(delta)
	}
	return common.FormatMoney(delta)
}
