package models

import "github.com/shopspring/decimal"

// Debt represents an obligation of DebtorID towards CreditorID.
//
// A debt is created open and can only move to settled. Nothing else about it
// changes after creation.
type Debt struct {
	// ID is the unique identifier for the debt (UUID format).
	ID string

	// CreditorID is the player who is owed the money.
	CreditorID string

	// DebtorID is the player who owes the money.
	DebtorID string

	// Amount is always positive.
	Amount decimal.Decimal

	// Description is free text entered by the user or generated from an expense.
	Description string

	// CreatedAt is the Unix timestamp when the debt was recorded.
	CreatedAt int64

	// IsSettled is flipped to true once the debt has been paid.
	IsSettled bool

	// ExpenseID links back to the GameExpense that produced this debt.
	// Empty for debts entered directly.
	ExpenseID string
}
