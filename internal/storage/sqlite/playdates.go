package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/gamenight/internal/models"
	"github.com/mmynk/gamenight/internal/storage"
)

// CreatePlayDate persists a scheduled game night.
func (s *SQLiteStore) CreatePlayDate(ctx context.Context, playDate *models.PlayDate) error {
	if playDate.ID == "" {
		playDate.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO play_dates (id, game_name, venue, starts_at) VALUES (?, ?, ?, ?)",
		playDate.ID, playDate.GameName, playDate.Venue, playDate.StartsAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert play date: %w", err)
	}
	return nil
}

// ListPlayDates retrieves all play dates ordered by start time.
func (s *SQLiteStore) ListPlayDates(ctx context.Context) ([]*models.PlayDate, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, game_name, venue, starts_at FROM play_dates ORDER BY starts_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list play dates: %w", err)
	}
	defer rows.Close()

	var playDates []*models.PlayDate
	for rows.Next() {
		pd := &models.PlayDate{}
		if err := rows.Scan(&pd.ID, &pd.GameName, &pd.Venue, &pd.StartsAt); err != nil {
			return nil, fmt.Errorf("failed to scan play date: %w", err)
		}
		playDates = append(playDates, pd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate play dates: %w", err)
	}
	return playDates, nil
}

// UpdatePlayDate rewrites an existing play date.
func (s *SQLiteStore) UpdatePlayDate(ctx context.Context, playDate *models.PlayDate) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE play_dates SET game_name = ?, venue = ?, starts_at = ? WHERE id = ?",
		playDate.GameName, playDate.Venue, playDate.StartsAt, playDate.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update play date: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated play date: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("play date %s: %w", playDate.ID, storage.ErrNotFound)
	}
	return nil
}

// DeletePlayDate removes a play date by ID.
func (s *SQLiteStore) DeletePlayDate(ctx context.Context, playDateID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM play_dates WHERE id = ?", playDateID)
	if err != nil {
		return fmt.Errorf("failed to delete play date: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted play date: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("play date %s: %w", playDateID, storage.ErrNotFound)
	}
	return nil
}
