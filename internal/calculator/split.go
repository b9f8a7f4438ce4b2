package calculator

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/gamenight/internal/models"
)

// ExpenseInput describes a shared expense before it is recorded.
type ExpenseInput struct {
	PayerID      string
	TotalAmount  decimal.Decimal
	Description  string
	GameType     string
	Participants []string
	CreatedAt    int64
}

// SplitAmount returns total / max(participants, 1).
// The quotient keeps decimal.DivisionPrecision fractional digits and is not
// rounded to minor currency units.
func SplitAmount(total decimal.Decimal, participants int) decimal.Decimal {
	return total.Div(decimal.NewFromInt(int64(max(participants, 1))))
}

// ExpenseDescription returns description, or a default built from the game type
// when description is empty.
func ExpenseDescription(description, gameType string) string {
	if description != "" {
		return description
	}
	if gameType == "" {
		gameType = models.GameTypeOther
	}
	return fmt.Sprintf("Expense for %s", gameType)
}

// SplitExpense builds the GameExpense record and one open debt per participant
// other than the payer. Every debt is for SplitAmount, owed to the payer and
// tagged with the new expense ID.
//
// Duplicate participant IDs are collapsed, keeping first-seen order.
func SplitExpense(in ExpenseInput) (*models.GameExpense, []*models.Debt) {
	if in.CreatedAt == 0 {
		in.CreatedAt = time.Now().Unix()
	}
	participants := uniqueIDs(in.Participants)
	description := ExpenseDescription(in.Description, in.GameType)

	expense := &models.GameExpense{
		ID:           uuid.New().String(),
		PayerID:      in.PayerID,
		TotalAmount:  in.TotalAmount,
		Description:  description,
		GameType:     in.GameType,
		Participants: participants,
		SplitAmount:  SplitAmount(in.TotalAmount, len(participants)),
		CreatedAt:    in.CreatedAt,
	}

	debts := make([]*models.Debt, 0, len(participants))
	for _, participant := range participants {
		if participant == in.PayerID {
			continue
		}
		debts = append(debts, &models.Debt{
			ID:          uuid.New().String(),
			CreditorID:  in.PayerID,
			DebtorID:    participant,
			Amount:      expense.SplitAmount,
			Description: fmt.Sprintf("Share of %s", description),
			CreatedAt:   in.CreatedAt,
			ExpenseID:   expense.ID,
		})
	}
	return expense, debts
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
