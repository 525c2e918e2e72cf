package balance

import (
	"github.com/bwmarrin/discordgo"

	"wagerbot/service"
)

// CommandName is the slash command served by this feature
const CommandName = "balance"

// recentBetLimit caps the history shown under the balance
const recentBetLimit = 5

type Feature struct {
	userService service.UserService
}

func New(userService service.UserService) *Feature {
	return &Feature{
		userService: userService,
	}
}

// Command returns the slash command definition
func Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        CommandName,
		Description: "Check your wallet and recent games",
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleBalance(s, i)
}
