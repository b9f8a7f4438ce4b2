package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/gamenight/internal/models"
)

// CreateSettlement persists a new settlement and flags the debts it covered.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, settlement *models.Settlement, settledDebtIDs []string) error {
	// Generate ID if not set
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}

	var description interface{} = nil
	if settlement.Description != "" {
		description = settlement.Description
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO settlements (id, from_player_id, to_player_id, amount, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.FromPlayerID, settlement.ToPlayerID,
		settlement.Amount.String(), description, settlement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	if err := settleDebts(ctx, tx, settledDebtIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListSettlements retrieves all settlements, newest first.
func (s *SQLiteStore) ListSettlements(ctx context.Context) ([]*models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, from_player_id, to_player_id, amount, description, created_at
		 FROM settlements ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		settlement := &models.Settlement{}
		var description sql.NullString

		if err := rows.Scan(&settlement.ID, &settlement.FromPlayerID, &settlement.ToPlayerID,
			&settlement.Amount, &description, &settlement.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}

		if description.Valid {
			settlement.Description = description.String
		}

		settlements = append(settlements, settlement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}
