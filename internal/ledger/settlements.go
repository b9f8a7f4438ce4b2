package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/gamenight/internal/calculator"
	"github.com/mmynk/gamenight/internal/models"
)

// RecordSettlement records a payment from fromID to toID and settles every
// open debt fromID owes toID that the amount covers on its own.
// Debts larger than the amount stay open; no debt is partially settled.
//
// It returns the settlement and the debts it settled.
func (l *Ledger) RecordSettlement(ctx context.Context, fromID, toID string, amount decimal.Decimal, description string) (*models.Settlement, []*models.Debt, error) {
	if err := validatePair(fromID, toID); err != nil {
		return nil, nil, err
	}
	if !amount.IsPositive() {
		return nil, nil, ErrInvalidAmount
	}
	if description == "" {
		description = l.settlementDescription
	}

	settlement := &models.Settlement{
		FromPlayerID: fromID,
		ToPlayerID:   toID,
		Amount:       amount,
		Description:  description,
		CreatedAt:    l.timestamp(),
	}

	var covered []*models.Debt
	err := l.write(func() error {
		debts, err := l.store.ListDebts(ctx)
		if err != nil {
			return err
		}
		covered = calculator.CoveredDebts(debts, fromID, toID, amount)

		ids := make([]string, len(covered))
		for i, d := range covered {
			ids[i] = d.ID
		}
		return l.store.CreateSettlement(ctx, settlement, ids)
	})
	if err != nil {
		slog.Error("RecordSettlement failed", "from_id", fromID, "to_id", toID, "error", err)
		return nil, nil, fmt.Errorf("record settlement: %w", err)
	}

	for _, d := range covered {
		d.IsSettled = true
	}

	if len(covered) == 0 {
		slog.Warn("Settlement covered no debts",
			"settlement_id", settlement.ID,
			"from_id", fromID,
			"to_id", toID,
			"amount", amount.String(),
		)
	} else {
		slog.Info("Settlement recorded",
			"settlement_id", settlement.ID,
			"amount", amount.String(),
			"settled_debts", len(covered),
		)
	}

	events := make([]Event, 0, len(covered)+1)
	events = append(events, Event{Kind: EventSettlementRecorded, RecordID: settlement.ID, PlayerID: fromID, Amount: amount})
	for _, d := range covered {
		events = append(events, Event{Kind: EventDebtSettled, RecordID: d.ID, Amount: d.Amount, Automatic: true})
	}
	l.notify(events...)
	return settlement, covered, nil
}

// Settlements returns every settlement, newest first.
func (l *Ledger) Settlements(ctx context.Context) ([]*models.Settlement, error) {
	settlements, err := l.store.ListSettlements(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}
	return settlements, nil
}

// SettlementsFor returns the settlements the player paid or received, newest first.
func (l *Ledger) SettlementsFor(ctx context.Context, playerID string) ([]*models.Settlement, error) {
	settlements, err := l.Settlements(ctx)
	if err != nil {
		return nil, err
	}
	var mine []*models.Settlement
	for _, s := range settlements {
		if s.FromPlayerID == playerID || s.ToPlayerID == playerID {
			mine = append(mine, s)
		}
	}
	return mine, nil
}
