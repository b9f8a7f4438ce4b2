package models

import "github.com/shopspring/decimal"

// Settlement represents a payment between players to clear debts.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// FromPlayerID is the player who paid (debtor settling up).
	FromPlayerID string

	// ToPlayerID is the player who received payment (creditor being paid).
	ToPlayerID string

	// Amount is the payment amount.
	Amount decimal.Decimal

	// Description is an optional note for the settlement.
	Description string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
