package games

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"wagerbot/bot/common"
	"wagerbot/models"
	"wagerbot/service"
)

const commandTimeout = 10 * time.Second

// Feature serves the game slash commands
type Feature struct {
	gamblingService service.GamblingService
}

// New creates the games feature
func New(gamblingService service.GamblingService) *Feature {
	return &Feature{gamblingService: gamblingService}
}

// Handles reports whether name is one of this feature's commands
func (f *Feature) Handles(name string) bool {
	for _, game := range models.AllGames {
		if string(game) == name {
			return true
		}
	}
	return false
}

// HandleCommand plays the invoked game and replies with the outcome
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	discordID, username, err := common.InteractionUserID(i)
	if err != nil {
		log.WithError(err).Error("Failed to identify command user")
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	data := i.ApplicationCommandData()
	req := BuildRequest(models.GameType(data.Name), discordID, username, data.Options)

	result, err := f.gamblingService.Play(ctx, req)
	if err != nil {
		f.respondWithFailure(s, i, req, err)
		return
	}

	if err := common.RespondWithEmbed(s, i, OutcomeEmbed(result), false); err != nil {
		log.WithFields(log.Fields{
			"game":    req.Game,
			"roundID": result.RoundID,
			"error":   err,
		}).Error("Error responding to game command")
	}
}

func (f *Feature) respondWithFailure(s *discordgo.Session, i *discordgo.InteractionCreate, req models.WagerRequest, err error) {
	if !service.IsRejection(err) {
		log.WithFields(log.Fields{
			"discordID": req.UserID,
			"game":      req.Game,
			"error":     err,
		}).Error("Wager failed")
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	wagerErr, _ := service.AsWagerError(err)
	if respErr := common.RespondWithEmbed(s, i, RejectionEmbed(req, wagerErr), true); respErr != nil {
		log.Errorf("Error sending rejection response: %v", respErr)
	}
}

// BuildRequest maps slash command options onto a wager request
func BuildRequest(game models.GameType, discordID int64, username string, options []*discordgo.ApplicationCommandInteractionDataOption) models.WagerRequest {
	req := models.WagerRequest{
		UserID:   discordID,
		Username: username,
		Game:     game,
	}
	for _, opt := range options {
		switch opt.Name {
		case "bet":
			req.Amount = opt.IntValue()
		case "choice":
			req.Choice = opt.StringValue()
		}
	}
	return req
}

// Commands returns the slash command definitions for every game
func Commands() []*discordgo.ApplicationCommand {
	minBet := 1.0
	betOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "bet",
		Description: "Amount to bet",
		Required:    true,
		MinValue:    &minBet,
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        string(models.GameFlip),
			Description: "Flip a coin - 1.8x payout if you win",
			Options: []*discordgo.ApplicationCommandOption{
				choiceOption("Heads or tails", models.ChoiceHeads, models.ChoiceTails),
				betOption,
			},
		},
		{
			Name:        string(models.GameDice),
			Description: "Roll a dice - 6 pays 5x, 5 pays 2x, 4 pays 1.5x",
			Options:     []*discordgo.ApplicationCommandOption{betOption},
		},
		{
			Name:        string(models.GameSlots),
			Description: "Spin the slot machine",
			Options:     []*discordgo.ApplicationCommandOption{betOption},
		},
		{
			Name:        string(models.GameRPS),
			Description: "Rock paper scissors - win pays 2x, tie returns your bet",
			Options: []*discordgo.ApplicationCommandOption{
				choiceOption("Your throw", models.ChoiceRock, models.ChoicePaper, models.ChoiceScissors),
				betOption,
			},
		},
		{
			Name:        string(models.GameBeg),
			Description: "Beg for money from generous strangers",
		},
	}
}

func choiceOption(description string, values ...string) *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(values))
	for _, v := range values {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: common.TitleCase(v), Value: v})
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "choice",
		Description: description,
		Required:    true,
		Choices:     choices,
	}
}
