package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/gamenight/internal/models"
)

// CreateExpense persists an expense, its participants and the debts it produced
// in one transaction.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.GameExpense, debts []*models.Debt) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, payer_id, total_amount, description, game_type, split_amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.PayerID, expense.TotalAmount.String(), expense.Description,
		expense.GameType, expense.SplitAmount.String(), expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, playerID := range expense.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_participants (expense_id, position, player_id) VALUES (?, ?, ?)",
			expense.ID, i, playerID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense participant: %w", err)
		}
	}

	for _, debt := range debts {
		debt.ExpenseID = expense.ID
		if err := insertDebt(ctx, tx, debt); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListExpenses retrieves all expenses with their participants, oldest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]*models.GameExpense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, payer_id, total_amount, description, game_type, split_amount, created_at
		 FROM expenses ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.GameExpense
	byID := make(map[string]*models.GameExpense)
	for rows.Next() {
		expense := &models.GameExpense{}
		if err := rows.Scan(&expense.ID, &expense.PayerID, &expense.TotalAmount, &expense.Description,
			&expense.GameType, &expense.SplitAmount, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
		byID[expense.ID] = expense
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	// Get participants for all expenses
	participantRows, err := s.db.QueryContext(ctx,
		"SELECT expense_id, player_id FROM expense_participants ORDER BY expense_id, position")
	if err != nil {
		return nil, fmt.Errorf("failed to get expense participants: %w", err)
	}
	defer participantRows.Close()

	for participantRows.Next() {
		var expenseID, playerID string
		if err := participantRows.Scan(&expenseID, &playerID); err != nil {
			return nil, fmt.Errorf("failed to scan expense participant: %w", err)
		}
		if expense, ok := byID[expenseID]; ok {
			expense.Participants = append(expense.Participants, playerID)
		}
	}
	if err := participantRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense participants: %w", err)
	}

	return expenses, nil
}
