package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/gamenight/internal/calculator"
	"github.com/mmynk/gamenight/internal/models"
)

func validatePair(a, b string) error {
	if a == "" || b == "" {
		return ErrMissingPlayer
	}
	if a == b {
		return ErrSelfDebt
	}
	return nil
}

// AddDebt records that debtorID owes creditorID amount.
func (l *Ledger) AddDebt(ctx context.Context, creditorID, debtorID string, amount decimal.Decimal, description string) (*models.Debt, error) {
	if err := validatePair(creditorID, debtorID); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	debt := &models.Debt{
		CreditorID:  creditorID,
		DebtorID:    debtorID,
		Amount:      amount,
		Description: description,
		CreatedAt:   l.timestamp(),
	}
	if err := l.write(func() error { return l.store.CreateDebt(ctx, debt) }); err != nil {
		slog.Error("AddDebt failed", "creditor_id", creditorID, "debtor_id", debtorID, "error", err)
		return nil, fmt.Errorf("add debt: %w", err)
	}

	slog.Info("Debt added",
		"debt_id", debt.ID,
		"creditor_id", creditorID,
		"debtor_id", debtorID,
		"amount", amount.String(),
	)
	l.notify(Event{Kind: EventDebtAdded, RecordID: debt.ID, Amount: amount})
	return debt, nil
}

// SettleDebt marks one debt as settled regardless of any payment.
// Settling an already settled debt returns it unchanged and emits nothing.
func (l *Ledger) SettleDebt(ctx context.Context, debtID string) (*models.Debt, error) {
	var (
		debt    *models.Debt
		changed bool
	)
	err := l.write(func() error {
		var err error
		debt, err = l.store.GetDebt(ctx, debtID)
		if err != nil {
			return err
		}
		if debt.IsSettled {
			return nil
		}
		if err := l.store.SettleDebts(ctx, debt.ID); err != nil {
			return err
		}
		debt.IsSettled = true
		changed = true
		return nil
	})
	if err != nil {
		slog.Error("SettleDebt failed", "debt_id", debtID, "error", err)
		return nil, fmt.Errorf("settle debt: %w", err)
	}

	if changed {
		slog.Info("Debt settled", "debt_id", debt.ID, "amount", debt.Amount.String())
		l.notify(Event{Kind: EventDebtSettled, RecordID: debt.ID, Amount: debt.Amount})
	}
	return debt, nil
}

// Debts returns every debt, settled or open.
func (l *Ledger) Debts(ctx context.Context) ([]*models.Debt, error) {
	debts, err := l.store.ListDebts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	return debts, nil
}

// NetBalance is what the player is owed minus what the player owes, over open debts.
func (l *Ledger) NetBalance(ctx context.Context, playerID string) (decimal.Decimal, error) {
	debts, err := l.Debts(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return calculator.NetBalance(debts, playerID), nil
}

// Partition splits the player's open debts into money owed to them and money they owe.
func (l *Ledger) Partition(ctx context.Context, playerID string) (owedToPlayer, playerOwes []*models.Debt, err error) {
	debts, err := l.Debts(ctx)
	if err != nil {
		return nil, nil, err
	}
	owedToPlayer, playerOwes = calculator.Partition(debts, playerID)
	return owedToPlayer, playerOwes, nil
}

// DebtsBetween returns the open debts between two players in either direction.
func (l *Ledger) DebtsBetween(ctx context.Context, a, b string) ([]*models.Debt, error) {
	debts, err := l.Debts(ctx)
	if err != nil {
		return nil, err
	}
	return calculator.DebtsBetween(debts, a, b), nil
}

// SuggestSettlements lists pairwise payment hints among playerIDs, or among the
// whole roster when no IDs are given. See calculator.SuggestSettlements.
func (l *Ledger) SuggestSettlements(ctx context.Context, playerIDs ...string) ([]calculator.Suggestion, error) {
	debts, err := l.Debts(ctx)
	if err != nil {
		return nil, err
	}
	if len(playerIDs) == 0 {
		if playerIDs, err = l.roster(ctx); err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
	}
	return calculator.SuggestSettlements(debts, playerIDs), nil
}

// SimplifiedTransfers returns a greedy transfer plan clearing every open
// balance in the roster.
func (l *Ledger) SimplifiedTransfers(ctx context.Context) ([]calculator.Suggestion, error) {
	debts, err := l.Debts(ctx)
	if err != nil {
		return nil, err
	}
	playerIDs, err := l.roster(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return calculator.SimplifyDebts(debts, playerIDs), nil
}
