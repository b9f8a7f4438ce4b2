package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/gamenight/internal/models"
	"github.com/mmynk/gamenight/internal/storage"
)

const debtColumns = `id, creditor_id, debtor_id, amount, description, created_at, is_settled, expense_id`

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateDebt persists a new debt to the database.
func (s *SQLiteStore) CreateDebt(ctx context.Context, debt *models.Debt) error {
	return insertDebt(ctx, s.db, debt)
}

func insertDebt(ctx context.Context, db execer, debt *models.Debt) error {
	if debt.ID == "" {
		debt.ID = uuid.New().String()
	}
	if debt.CreatedAt == 0 {
		debt.CreatedAt = time.Now().Unix()
	}

	var expenseID interface{} = nil
	if debt.ExpenseID != "" {
		expenseID = debt.ExpenseID
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO debts (`+debtColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		debt.ID, debt.CreditorID, debt.DebtorID, debt.Amount.String(), debt.Description,
		debt.CreatedAt, debt.IsSettled, expenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debt: %w", err)
	}
	return nil
}

func scanDebt(row rowScanner) (*models.Debt, error) {
	debt := &models.Debt{}
	var expenseID sql.NullString
	if err := row.Scan(&debt.ID, &debt.CreditorID, &debt.DebtorID, &debt.Amount, &debt.Description,
		&debt.CreatedAt, &debt.IsSettled, &expenseID); err != nil {
		return nil, err
	}
	if expenseID.Valid {
		debt.ExpenseID = expenseID.String
	}
	return debt, nil
}

// GetDebt retrieves a debt by ID.
func (s *SQLiteStore) GetDebt(ctx context.Context, debtID string) (*models.Debt, error) {
	debt, err := scanDebt(s.db.QueryRowContext(ctx,
		`SELECT `+debtColumns+` FROM debts WHERE id = ?`, debtID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("debt %s: %w", debtID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	return debt, nil
}

// ListDebts retrieves all debts, oldest first.
func (s *SQLiteStore) ListDebts(ctx context.Context) ([]*models.Debt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+debtColumns+` FROM debts ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []*models.Debt
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, debt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}
	return debts, nil
}

// SettleDebts flags debts as settled.
func (s *SQLiteStore) SettleDebts(ctx context.Context, debtIDs ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := settleDebts(ctx, tx, debtIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func settleDebts(ctx context.Context, db execer, debtIDs []string) error {
	for _, id := range debtIDs {
		res, err := db.ExecContext(ctx, "UPDATE debts SET is_settled = 1 WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to settle debt: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check settled debt: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("debt %s: %w", id, storage.ErrNotFound)
		}
	}
	return nil
}
