package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Result is the tri-state result of a resolved wager
type Result string

const (
	ResultWin  Result = "win"
	ResultLose Result = "lose"
	ResultTie  Result = "tie"
)

// Slot match kinds
const (
	MatchThreeOfAKind = "three_of_a_kind"
	MatchTwoMatching  = "two_matching"
)

// OutcomeDetail carries the game-specific facts behind a result
type OutcomeDetail struct {
	CoinFace  string   `json:"coin_face,omitempty"`
	Forgiven  bool     `json:"forgiven,omitempty"` // flip won despite a wrong guess
	DieFace   int      `json:"die_face,omitempty"`
	Reels     []string `json:"reels,omitempty"`
	MatchKind string   `json:"match_kind,omitempty"`
	Choice    string   `json:"choice,omitempty"`
	BotChoice string   `json:"bot_choice,omitempty"`
	BegText   string   `json:"beg_text,omitempty"`
	BegEmoji  string   `json:"beg_emoji,omitempty"`
}

// WagerOutcome is what a game resolves to before anything is persisted
type WagerOutcome struct {
	Game          GameType
	Result        Result
	Bet           int64
	Multiplier    decimal.Decimal
	GrossWinnings int64
	BalanceDelta  int64
	BonusApplied  bool
	Detail        OutcomeDetail
}

// PlayResult is returned to the caller once an outcome is committed
type PlayResult struct {
	RoundID     uuid.UUID
	Outcome     *WagerOutcome
	NewBalance  int64
	WalletLimit int64
}
