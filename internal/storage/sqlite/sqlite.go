// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/gamenight/internal/models"
	"github.com/mmynk/gamenight/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	if err := runMigrations(dsn); err != nil {
		return nil, err
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreatePlayer persists a new player to the database.
func (s *SQLiteStore) CreatePlayer(ctx context.Context, player *models.Player) error {
	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	if player.CreatedAt == 0 {
		player.CreatedAt = time.Now().Unix()
	}
	if player.Avatar == "" {
		player.Avatar = models.DefaultAvatar
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO players (id, nick, total_points, games_played, avatar, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		player.ID, player.Nick, player.TotalPoints, player.GamesPlayed, player.Avatar, player.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

// GetPlayer retrieves a player by ID.
func (s *SQLiteStore) GetPlayer(ctx context.Context, playerID string) (*models.Player, error) {
	player := &models.Player{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, nick, total_points, games_played, avatar, created_at
		 FROM players WHERE id = ?`,
		playerID,
	).Scan(&player.ID, &player.Nick, &player.TotalPoints, &player.GamesPlayed, &player.Avatar, &player.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player %s: %w", playerID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// ListPlayers retrieves all players in the order they were added.
func (s *SQLiteStore) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, nick, total_points, games_played, avatar, created_at
		 FROM players ORDER BY created_at, rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		player := &models.Player{}
		if err := rows.Scan(&player.ID, &player.Nick, &player.TotalPoints, &player.GamesPlayed,
			&player.Avatar, &player.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}

// AddPlayerPoints adds points and one game to the player in a single statement.
func (s *SQLiteStore) AddPlayerPoints(ctx context.Context, playerID string, points int) (*models.Player, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE players SET total_points = total_points + ?, games_played = games_played + 1 WHERE id = ?`,
		points, playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add player points: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check updated player: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("player %s: %w", playerID, storage.ErrNotFound)
	}
	return s.GetPlayer(ctx, playerID)
}
