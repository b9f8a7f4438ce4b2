// Package memory provides an in-memory storage.Store for tests and dry runs.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/gamenight/internal/models"
	"github.com/mmynk/gamenight/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps every record in slices guarded by a single mutex.
// Records are copied on the way in and out so callers never share state with the store.
type Store struct {
	mu          sync.RWMutex
	players     []*models.Player
	debts       []*models.Debt
	expenses    []*models.GameExpense
	settlements []*models.Settlement
	playDates   []*models.PlayDate

	// FailWrites makes every mutating call return this error when set.
	FailWrites error
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Close is a no-op.
func (m *Store) Close() error { return nil }

// CreatePlayer stores a copy of the player.
func (m *Store) CreatePlayer(_ context.Context, player *models.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}

	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	if player.CreatedAt == 0 {
		player.CreatedAt = time.Now().Unix()
	}
	if player.Avatar == "" {
		player.Avatar = models.DefaultAvatar
	}
	p := *player
	m.players = append(m.players, &p)
	return nil
}

// GetPlayer retrieves a player by ID.
func (m *Store) GetPlayer(_ context.Context, playerID string) (*models.Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.getPlayerLocked(playerID)
}

func (m *Store) getPlayerLocked(playerID string) (*models.Player, error) {
	for _, p := range m.players {
		if p.ID == playerID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("player %s: %w", playerID, storage.ErrNotFound)
}

// ListPlayers returns every player in creation order.
func (m *Store) ListPlayers(_ context.Context) ([]*models.Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.Player, len(m.players))
	for i, p := range m.players {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

// AddPlayerPoints adds points and one game to the player.
func (m *Store) AddPlayerPoints(_ context.Context, playerID string, points int) (*models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return nil, m.FailWrites
	}
	for _, p := range m.players {
		if p.ID == playerID {
			p.TotalPoints += points
			p.GamesPlayed++
			cp := *p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("player %s: %w", playerID, storage.ErrNotFound)
}

// CreateDebt stores a copy of the debt.
func (m *Store) CreateDebt(_ context.Context, debt *models.Debt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.insertDebtLocked(debt)
	return nil
}

func (m *Store) insertDebtLocked(debt *models.Debt) {
	if debt.ID == "" {
		debt.ID = uuid.New().String()
	}
	if debt.CreatedAt == 0 {
		debt.CreatedAt = time.Now().Unix()
	}
	d := *debt
	m.debts = append(m.debts, &d)
}

// GetDebt retrieves a debt by ID.
func (m *Store) GetDebt(_ context.Context, debtID string) (*models.Debt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.debts {
		if d.ID == debtID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("debt %s: %w", debtID, storage.ErrNotFound)
}

// ListDebts returns every debt, oldest first.
func (m *Store) ListDebts(_ context.Context) ([]*models.Debt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.Debt, len(m.debts))
	for i, d := range m.debts {
		cp := *d
		out[i] = &cp
	}
	return out, nil
}

// SettleDebts flags debts as settled.
func (m *Store) SettleDebts(_ context.Context, debtIDs ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	return m.settleLocked(debtIDs)
}

// settleLocked checks every ID before flagging any, so a missing debt changes nothing.
func (m *Store) settleLocked(debtIDs []string) error {
	targets := make([]*models.Debt, 0, len(debtIDs))
	for _, id := range debtIDs {
		var found *models.Debt
		for _, d := range m.debts {
			if d.ID == id {
				found = d
				break
			}
		}
		if found == nil {
			return fmt.Errorf("debt %s: %w", id, storage.ErrNotFound)
		}
		targets = append(targets, found)
	}
	for _, d := range targets {
		d.IsSettled = true
	}
	return nil
}

// CreateExpense stores the expense and its debts.
func (m *Store) CreateExpense(_ context.Context, expense *models.GameExpense, debts []*models.Debt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	e := *expense
	e.Participants = append([]string(nil), expense.Participants...)
	m.expenses = append(m.expenses, &e)

	for _, debt := range debts {
		debt.ExpenseID = expense.ID
		m.insertDebtLocked(debt)
	}
	return nil
}

// ListExpenses returns every expense, oldest first.
func (m *Store) ListExpenses(_ context.Context) ([]*models.GameExpense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.GameExpense, len(m.expenses))
	for i, e := range m.expenses {
		cp := *e
		cp.Participants = append([]string(nil), e.Participants...)
		out[i] = &cp
	}
	return out, nil
}

// CreateSettlement stores the settlement and flags the debts it covered.
func (m *Store) CreateSettlement(_ context.Context, settlement *models.Settlement, settledDebtIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}

	if err := m.settleLocked(settledDebtIDs); err != nil {
		return err
	}
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}
	s := *settlement
	m.settlements = append(m.settlements, &s)
	return nil
}

// ListSettlements returns settlements newest first; equal timestamps keep
// the most recently inserted first.
func (m *Store) ListSettlements(_ context.Context) ([]*models.Settlement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.Settlement, 0, len(m.settlements))
	for i := len(m.settlements) - 1; i >= 0; i-- {
		cp := *m.settlements[i]
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

// CreatePlayDate stores a copy of the play date.
func (m *Store) CreatePlayDate(_ context.Context, playDate *models.PlayDate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	if playDate.ID == "" {
		playDate.ID = uuid.New().String()
	}
	pd := *playDate
	m.playDates = append(m.playDates, &pd)
	return nil
}

// ListPlayDates returns every play date ordered by start time.
func (m *Store) ListPlayDates(_ context.Context) ([]*models.PlayDate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.PlayDate, len(m.playDates))
	for i, pd := range m.playDates {
		cp := *pd
		out[i] = &cp
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartsAt < out[j].StartsAt })
	return out, nil
}

// UpdatePlayDate rewrites an existing play date.
func (m *Store) UpdatePlayDate(_ context.Context, playDate *models.PlayDate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	for i, pd := range m.playDates {
		if pd.ID == playDate.ID {
			cp := *playDate
			m.playDates[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("play date %s: %w", playDate.ID, storage.ErrNotFound)
}

// DeletePlayDate removes a play date by ID.
func (m *Store) DeletePlayDate(_ context.Context, playDateID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	for i, pd := range m.playDates {
		if pd.ID == playDateID {
			m.playDates = append(m.playDates[:i], m.playDates[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("play date %s: %w", playDateID, storage.ErrNotFound)
}
