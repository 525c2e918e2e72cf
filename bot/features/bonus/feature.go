package bonus

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"wagerbot/bot/common"
	"wagerbot/models"
	"wagerbot/service"
)

// CommandName is the admin slash command served by this feature
const CommandName = "bonus"

const commandTimeout = 10 * time.Second

// Feature lets bonus admins grant gambling bonuses
type Feature struct {
	bonusService service.BonusService
}

func New(bonusService service.BonusService) *Feature {
	return &Feature{bonusService: bonusService}
}

// Command returns the slash command definition. Discord hides it from non-administrators;
// the service still checks the caller against the configured admin list.
func Command() *discordgo.ApplicationCommand {
	adminOnly := int64(discordgo.PermissionAdministrator)
	minMultiplier := 1.01
	maxMultiplier := service.MaxBonusMultiplier.InexactFloat64()
	minMinutes := service.MinBonusDuration.Minutes()
	maxMinutes := service.MaxBonusDuration.Minutes()

	return &discordgo.ApplicationCommand{
		Name:                     CommandName,
		Description:              "Grant a user a temporary gambling bonus",
		DefaultMemberPermissions: &adminOnly,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Who gets the bonus",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        "multiplier",
				Description: "Bonus multiplier, e.g. 1.5",
				Required:    true,
				MinValue:    &minMultiplier,
				MaxValue:    maxMultiplier,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "minutes",
				Description: "How long the bonus lasts",
				Required:    true,
				MinValue:    &minMinutes,
				MaxValue:    maxMinutes,
			},
		},
	}
}

// Grant is a parsed /bonus invocation
type Grant struct {
	TargetID   int64
	Multiplier decimal.Decimal
	Duration   time.Duration
}

// ParseGrant reads the /bonus options
func ParseGrant(options []*discordgo.ApplicationCommandInteractionDataOption) (Grant, error) {
	var grant Grant
	for _, opt := range options {
		switch opt.Name {
		case "user":
			raw, ok := opt.Value.(string)
			if !ok {
				return Grant{}, fmt.Errorf("user option has unexpected type %T", opt.Value)
			}
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return Grant{}, fmt.Errorf("error parsing Discord ID %s: %w", raw, err)
			}
			grant.TargetID = id
		case "multiplier":
			grant.Multiplier = decimal.NewFromFloat(opt.FloatValue()).Round(4)
		case "minutes":
			grant.Duration = time.Duration(opt.IntValue()) * time.Minute
		}
	}
	if grant.TargetID == 0 {
		return Grant{}, fmt.Errorf("missing user option")
	}
	return grant, nil
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	adminID, _, err := common.InteractionUserID(i)
	if err != nil {
		log.WithError(err).Error("Failed to identify bonus granter")
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	if !f.bonusService.CanGrant(adminID) {
		common.RespondWithError(s, i, "You are not allowed to grant bonuses.")
		return
	}

	grant, err := ParseGrant(i.ApplicationCommandData().Options)
	if err != nil {
		log.WithError(err).Warn("Invalid bonus command options")
		common.RespondWithError(s, i, "Invalid bonus options.")
		return
	}

	effect, err := f.bonusService.GrantGamblingBonus(ctx, adminID, grant.TargetID, grant.Multiplier, grant.Duration)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) || errors.Is(err, service.ErrNotAuthorized) {
			wagerErr, _ := service.AsWagerError(err)
			common.RespondWithError(s, i, wagerErr.Message)
			return
		}
		log.WithFields(log.Fields{
			"grantedBy": adminID,
			"discordID": grant.TargetID,
			"error":     err,
		}).Error("Failed to grant gambling bonus")
		common.RespondWithError(s, i, "Unable to grant bonus. Please try again.")
		return
	}

	if err := common.RespondWithEmbed(s, i, GrantedEmbed(effect), true); err != nil {
		log.Errorf("Error responding to bonus command: %v", err)
	}
}

// GrantedEmbed confirms a granted bonus
func GrantedEmbed(effect *models.ActiveEffect) *discordgo.MessageEmbed {
	embed := common.NewGameEmbed("✨ Gambling Bonus Granted", common.ColorGold)
	embed.Description = fmt.Sprintf("<@%d> now plays with a **%sx** gambling bonus.", effect.DiscordID, effect.Multiplier.String())
	embed.Fields = []*discordgo.MessageEmbedField{
		{
			Name:   "⏳ Expires",
			Value:  common.FormatDiscordTimestamp(effect.ExpiresAt, "R"),
			Inline: true,
		},
	}
	return embed
}
