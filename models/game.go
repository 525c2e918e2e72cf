package models

import "strings"

// GameType names a wager command. The value doubles as the cooldown key.
type GameType string

const (
	GameFlip  GameType = "flip"
	GameDice  GameType = "dice"
	GameSlots GameType = "slots"
	GameRPS   GameType = "rps"
	GameBeg   GameType = "beg"
)

// AllGames lists every playable command
var AllGames = []GameType{GameFlip, GameDice, GameSlots, GameRPS, GameBeg}

// Player choices for games that take one
const (
	ChoiceHeads    = "heads"
	ChoiceTails    = "tails"
	ChoiceRock     = "rock"
	ChoicePaper    = "paper"
	ChoiceScissors = "scissors"
)

// RequiresBet reports whether the game stakes part of the wallet
func (g GameType) RequiresBet() bool {
	return g != GameBeg
}

// Choices returns the accepted choices, or nil if the game takes none
func (g GameType) Choices() []string {
	switch g {
	case GameFlip:
		return []string{ChoiceHeads, ChoiceTails}
	case GameRPS:
		return []string{ChoiceRock, ChoicePaper, ChoiceScissors}
	default:
		return nil
	}
}

// WagerRequest is a parsed game command
type WagerRequest struct {
	UserID   int64    `validate:"required"`
	Username string   `validate:"max=255"`
	Game     GameType `validate:"required,oneof=flip dice slots rps beg"`
	Amount   int64    `validate:"gte=0"`
	Choice   string   `validate:"max=16"`
}

// Normalize lower-cases and trims the free-text fields
func (r *WagerRequest) Normalize() {
	r.Game = GameType(strings.ToLower(strings.TrimSpace(string(r.Game))))
	r.Choice = strings.ToLower(strings.TrimSpace(r.Choice))
}
