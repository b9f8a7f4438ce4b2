package models

import "github.com/shopspring/decimal"

// Game types offered when recording a shared expense.
const (
	GameTypePoker     = "Poker"
	GameTypeBilliards = "Billiards"
	GameTypeBowling   = "Bowling"
	GameTypeOther     = "Other"
)

// GameTypes lists the game types in display order.
var GameTypes = []string{GameTypePoker, GameTypeBilliards, GameTypeBowling, GameTypeOther}

// GameExpense represents a shared cost paid by one player on behalf of the group.
type GameExpense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// PayerID is the player who paid the whole amount.
	PayerID string

	// TotalAmount is what the payer spent.
	TotalAmount decimal.Decimal

	// Description of the expense (e.g., "Pizza", "Table rental").
	Description string

	// GameType is a free label, usually one of GameTypes.
	GameType string

	// Participants is the ordered list of player IDs sharing the cost.
	// It may include the payer.
	Participants []string

	// SplitAmount is TotalAmount / max(len(Participants), 1), fixed at creation.
	SplitAmount decimal.Decimal

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
