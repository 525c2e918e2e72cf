package common

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// InteractionUser returns the invoking user for guild and DM interactions alike
func InteractionUser(i *discordgo.InteractionCreate) (*discordgo.User, error) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User, nil
	}
	if i.User != nil {
		return i.User, nil
	}
	return nil, fmt.Errorf("interaction has no user")
}

// InteractionUserID returns the invoking user's Discord ID and username
func InteractionUserID(i *discordgo.InteractionCreate) (int64, string, error) {
	user, err := InteractionUser(i)
	if err != nil {
		return 0, "", err
	}

	discordID, err := strconv.ParseInt(user.ID, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("error parsing Discord ID %s: %w", user.ID, err)
	}
	return discordID, user.Username, nil
}
