package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmynk/gamenight/internal/models"
	"github.com/mmynk/gamenight/internal/schedule"
)

// AddPlayDate schedules a game night.
func (l *Ledger) AddPlayDate(ctx context.Context, gameName, venue string, startsAt time.Time) (*models.PlayDate, error) {
	gameName = strings.TrimSpace(gameName)
	if gameName == "" {
		return nil, ErrEmptyGameName
	}

	pd := &models.PlayDate{GameName: gameName, Venue: strings.TrimSpace(venue), StartsAt: startsAt.Unix()}
	if err := l.write(func() error { return l.store.CreatePlayDate(ctx, pd) }); err != nil {
		slog.Error("AddPlayDate failed", "game", gameName, "error", err)
		return nil, fmt.Errorf("add play date: %w", err)
	}

	slog.Info("Play date added", "play_date_id", pd.ID, "game", pd.GameName, "starts_at", startsAt)
	l.notify(Event{Kind: EventPlayDateAdded, RecordID: pd.ID})
	return pd, nil
}

// EditPlayDate replaces the game name, venue and start time of a scheduled
// game night. Unknown IDs yield an error wrapping storage.ErrNotFound.
func (l *Ledger) EditPlayDate(ctx context.Context, playDateID, gameName, venue string, startsAt time.Time) (*models.PlayDate, error) {
	gameName = strings.TrimSpace(gameName)
	if gameName == "" {
		return nil, ErrEmptyGameName
	}

	pd := &models.PlayDate{ID: playDateID, GameName: gameName, Venue: strings.TrimSpace(venue), StartsAt: startsAt.Unix()}
	if err := l.write(func() error { return l.store.UpdatePlayDate(ctx, pd) }); err != nil {
		slog.Error("EditPlayDate failed", "play_date_id", playDateID, "error", err)
		return nil, fmt.Errorf("edit play date: %w", err)
	}

	slog.Info("Play date updated", "play_date_id", pd.ID, "game", pd.GameName, "starts_at", startsAt)
	l.notify(Event{Kind: EventPlayDateUpdated, RecordID: pd.ID})
	return pd, nil
}

// RemovePlayDate deletes a scheduled game night.
func (l *Ledger) RemovePlayDate(ctx context.Context, playDateID string) error {
	if err := l.write(func() error { return l.store.DeletePlayDate(ctx, playDateID) }); err != nil {
		slog.Error("RemovePlayDate failed", "play_date_id", playDateID, "error", err)
		return fmt.Errorf("remove play date: %w", err)
	}
	slog.Info("Play date removed", "play_date_id", playDateID)
	l.notify(Event{Kind: EventPlayDateRemoved, RecordID: playDateID})
	return nil
}

// PlayDates returns every scheduled game night ordered by start time.
func (l *Ledger) PlayDates(ctx context.Context) ([]*models.PlayDate, error) {
	dates, err := l.store.ListPlayDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list play dates: %w", err)
	}
	return dates, nil
}

// NextPlayDate returns the first game night after the ledger's current time,
// or nil when nothing is scheduled.
func (l *Ledger) NextPlayDate(ctx context.Context) (*models.PlayDate, error) {
	dates, err := l.PlayDates(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.Next(dates, l.now()), nil
}
