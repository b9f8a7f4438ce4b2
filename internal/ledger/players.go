package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/gamenight/internal/calculator"
	"github.com/mmynk/gamenight/internal/models"
)

// Game names reported in score events.
const (
	GamePoker     = "poker"
	GameBowling   = "bowling"
	GameBilliards = "billiards"
)

// ScoreUpdate is the outcome of recording one player's game.
type ScoreUpdate struct {
	Game   string
	Points int
	Player *models.Player // Totals after the update
}

// AddPlayer adds a player to the group. An empty avatar gets the default one.
func (l *Ledger) AddPlayer(ctx context.Context, nick, avatar string) (*models.Player, error) {
	nick = strings.TrimSpace(nick)
	if nick == "" {
		return nil, ErrEmptyNick
	}
	if avatar == "" {
		avatar = models.DefaultAvatar
	}

	player := &models.Player{Nick: nick, Avatar: avatar, CreatedAt: l.timestamp()}
	if err := l.write(func() error { return l.store.CreatePlayer(ctx, player) }); err != nil {
		slog.Error("AddPlayer failed", "nick", nick, "error", err)
		return nil, fmt.Errorf("add player: %w", err)
	}

	slog.Info("Player added", "player_id", player.ID, "nick", player.Nick)
	l.notify(Event{Kind: EventPlayerAdded, RecordID: player.ID, PlayerID: player.ID})
	return player, nil
}

// Players returns the roster in the order players were added.
func (l *Ledger) Players(ctx context.Context) ([]*models.Player, error) {
	players, err := l.store.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

// Player looks up one player. Unknown IDs yield an error wrapping storage.ErrNotFound.
func (l *Ledger) Player(ctx context.Context, playerID string) (*models.Player, error) {
	player, err := l.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	return player, nil
}

// ApplyScore adds points to the player and counts one more game played.
// Both totals change together or not at all.
func (l *Ledger) ApplyScore(ctx context.Context, playerID, game string, points int) (*ScoreUpdate, error) {
	if playerID == "" {
		return nil, ErrMissingPlayer
	}
	if points < 0 {
		return nil, ErrInvalidPoints
	}

	var player *models.Player
	err := l.write(func() error {
		var err error
		player, err = l.store.AddPlayerPoints(ctx, playerID, points)
		return err
	})
	if err != nil {
		slog.Error("ApplyScore failed", "player_id", playerID, "game", game, "error", err)
		return nil, fmt.Errorf("apply score: %w", err)
	}

	slog.Info("Score applied",
		"player_id", playerID,
		"game", game,
		"points", points,
		"total_points", player.TotalPoints,
		"games_played", player.GamesPlayed,
	)
	l.notify(Event{Kind: EventScoreApplied, RecordID: playerID, PlayerID: playerID, Points: points, Game: game})
	return &ScoreUpdate{Game: game, Points: points, Player: player}, nil
}

// RecordPoker scores a poker night for one player and applies it.
func (l *Ledger) RecordPoker(ctx context.Context, playerID string, r calculator.PokerResult) (*ScoreUpdate, error) {
	return l.ApplyScore(ctx, playerID, GamePoker, calculator.PokerPoints(r))
}

// RecordBowling scores a bowling night for one player and applies it.
func (l *Ledger) RecordBowling(ctx context.Context, playerID string, r calculator.BowlingResult) (*ScoreUpdate, error) {
	return l.ApplyScore(ctx, playerID, GameBowling, calculator.BowlingPoints(r))
}

// RecordBilliards scores a billiards night for one player and applies it.
func (l *Ledger) RecordBilliards(ctx context.Context, playerID string, r calculator.BilliardsResult) (*ScoreUpdate, error) {
	return l.ApplyScore(ctx, playerID, GameBilliards, calculator.BilliardsPoints(r))
}

// Ranking returns every player ordered by total points.
func (l *Ledger) Ranking(ctx context.Context) ([]calculator.Standing, error) {
	players, err := l.Players(ctx)
	if err != nil {
		return nil, err
	}
	return calculator.Ranking(players), nil
}

// Stats returns group-wide totals.
func (l *Ledger) Stats(ctx context.Context) (calculator.GroupStats, error) {
	players, err := l.Players(ctx)
	if err != nil {
		return calculator.GroupStats{}, err
	}
	return calculator.Stats(players), nil
}
