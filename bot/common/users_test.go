package common

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionUserID(t *testing.T) {
	t.Run("guild member", func(t *testing.T) {
		i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Member: &discordgo.Member{User: &discordgo.User{ID: "123456789012345678", Username: "member"}},
		}}
		id, name, err := InteractionUserID(i)
		require.NoError(t, err)
		assert.Equal(t, int64(123456789012345678), id)
		assert.Equal(t, "member", name)
	})

	t.Run("direct message", func(t *testing.T) {
		i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			User: &discordgo.User{ID: "42", Username: "dm"},
		}}
		id, name, err := InteractionUserID(i)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.Equal(t, "dm", name)
	})

	t.Run("missing user", func(t *testing.T) {
		_, _, err := InteractionUserID(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}})
		assert.Error(t, err)
	})

	t.Run("bad id", func(t *testing.T) {
		i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			User: &discordgo.User{ID: "not-a-number"},
		}}
		_, _, err := InteractionUserID(i)
		assert.Error(t, err)
	})
}
