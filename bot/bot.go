package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"wagerbot/bot/common"
	"wagerbot/bot/features/balance"
	"wagerbot/bot/features/bonus"
	"wagerbot/bot/features/games"
	"wagerbot/service"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string // empty registers commands globally
}

type Bot struct {
	config  Config
	session *discordgo.Session
	games   *games.Feature
	balance *balance.Feature
	bonus   *bonus.Feature
}

// New connects to Discord and registers the slash commands
func New(config Config, userService service.UserService, gamblingService service.GamblingService, bonusService service.BonusService) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:  config,
		session: dg,
		games:   games.New(gamblingService),
		balance: balance.New(userService),
		bonus:   bonus.New(bonusService),
	}

	dg.AddHandler(bot.handleCommands)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	log.WithField("guildID", config.GuildID).Info("Discord bot connected")
	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// Commands lists every slash command the bot serves
func Commands() []*discordgo.ApplicationCommand {
	return append(games.Commands(), balance.Command(), bonus.Command())
}

func (b *Bot) registerCommands() error {
	for _, cmd := range Commands() {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}
	return nil
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	log.WithFields(log.Fields{
		"command": name,
		"guildID": i.GuildID,
	}).Debug("Handling slash command")

	switch {
	case name == balance.CommandName:
		b.balance.HandleCommand(s, i)
	case name == bonus.CommandName:
		b.bonus.HandleCommand(s, i)
	case b.games.Handles(name):
		b.games.HandleCommand(s, i)
	default:
		common.RespondWithError(s, i, "Unknown command.")
	}
}
