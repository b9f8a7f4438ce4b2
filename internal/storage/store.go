// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/gamenight/internal/models"
)

// ErrNotFound is returned, wrapped, when a record with the requested ID does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the persistence collaborator used by the ledger.
// This abstraction allows swapping storage backends (SQLite, in-memory, etc.)
// without changing the ledger.
//
// Create methods populate empty ID and CreatedAt fields before persisting.
type Store interface {
	// CreatePlayer persists a new player.
	CreatePlayer(ctx context.Context, player *models.Player) error

	// GetPlayer retrieves a player by ID.
	GetPlayer(ctx context.Context, playerID string) (*models.Player, error)

	// ListPlayers returns every player in creation order.
	ListPlayers(ctx context.Context) ([]*models.Player, error)

	// AddPlayerPoints adds points to the player's total and increments games
	// played by one in a single atomic update.
	AddPlayerPoints(ctx context.Context, playerID string, points int) (*models.Player, error)

	// CreateDebt persists a directly entered debt.
	CreateDebt(ctx context.Context, debt *models.Debt) error

	// GetDebt retrieves a debt by ID.
	GetDebt(ctx context.Context, debtID string) (*models.Debt, error)

	// ListDebts returns every debt, settled or not, oldest first.
	ListDebts(ctx context.Context) ([]*models.Debt, error)

	// SettleDebts flags the given debts as settled. Already settled debts stay settled.
	SettleDebts(ctx context.Context, debtIDs ...string) error

	// CreateExpense persists the expense together with the debts it produced,
	// all or nothing.
	CreateExpense(ctx context.Context, expense *models.GameExpense, debts []*models.Debt) error

	// ListExpenses returns every expense, oldest first.
	ListExpenses(ctx context.Context) ([]*models.GameExpense, error)

	// CreateSettlement persists the settlement and flags settledDebtIDs as
	// settled, all or nothing.
	CreateSettlement(ctx context.Context, settlement *models.Settlement, settledDebtIDs []string) error

	// ListSettlements returns every settlement, newest first.
	ListSettlements(ctx context.Context) ([]*models.Settlement, error)

	// CreatePlayDate persists a scheduled game night.
	CreatePlayDate(ctx context.Context, playDate *models.PlayDate) error

	// ListPlayDates returns every play date ordered by start time.
	ListPlayDates(ctx context.Context) ([]*models.PlayDate, error)

	// UpdatePlayDate replaces the game name, venue and start time of an
	// existing play date.
	UpdatePlayDate(ctx context.Context, playDate *models.PlayDate) error

	// DeletePlayDate removes a play date.
	DeletePlayDate(ctx context.Context, playDateID string) error

	// Close releases any resources held by the store.
	Close() error
}
