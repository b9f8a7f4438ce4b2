package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/gamenight/internal/calculator"
	"github.com/mmynk/gamenight/internal/models"
)

// ExpenseRequest describes a shared expense to record.
type ExpenseRequest struct {
	PayerID      string
	TotalAmount  decimal.Decimal
	Description  string // Defaults to "Expense for <GameType>"
	GameType     string
	Participants []string // May include the payer
}

// AddExpense records the expense and, in the same commit, one open debt per
// participant other than the payer. The returned debts are the ones created.
func (l *Ledger) AddExpense(ctx context.Context, req ExpenseRequest) (*models.GameExpense, []*models.Debt, error) {
	if req.PayerID == "" {
		return nil, nil, ErrMissingPlayer
	}
	if !req.TotalAmount.IsPositive() {
		return nil, nil, ErrInvalidAmount
	}
	if len(req.Participants) == 0 {
		return nil, nil, ErrNoParticipants
	}

	expense, debts := calculator.SplitExpense(calculator.ExpenseInput{
		PayerID:      req.PayerID,
		TotalAmount:  req.TotalAmount,
		Description:  req.Description,
		GameType:     req.GameType,
		Participants: req.Participants,
		CreatedAt:    l.timestamp(),
	})

	if err := l.write(func() error { return l.store.CreateExpense(ctx, expense, debts) }); err != nil {
		slog.Error("AddExpense failed", "payer_id", req.PayerID, "error", err)
		return nil, nil, fmt.Errorf("add expense: %w", err)
	}

	slog.Info("Expense added",
		"expense_id", expense.ID,
		"payer_id", expense.PayerID,
		"total", expense.TotalAmount.String(),
		"split", expense.SplitAmount.String(),
		"debts_count", len(debts),
	)

	events := make([]Event, 0, len(debts)+1)
	events = append(events, Event{Kind: EventExpenseAdded, RecordID: expense.ID, PlayerID: expense.PayerID, Amount: expense.TotalAmount})
	for _, d := range debts {
		events = append(events, Event{Kind: EventDebtAdded, RecordID: d.ID, Amount: d.Amount})
	}
	l.notify(events...)
	return expense, debts, nil
}

// Expenses returns every recorded expense.
func (l *Ledger) Expenses(ctx context.Context) ([]*models.GameExpense, error) {
	expenses, err := l.store.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// RecentExpenses returns up to limit expenses, newest first. A limit of zero
// or less returns them all.
func (l *Ledger) RecentExpenses(ctx context.Context, limit int) ([]*models.GameExpense, error) {
	expenses, err := l.Expenses(ctx)
	if err != nil {
		return nil, err
	}
	recent := make([]*models.GameExpense, 0, len(expenses))
	for i := len(expenses) - 1; i >= 0; i-- {
		recent = append(recent, expenses[i])
	}
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}
