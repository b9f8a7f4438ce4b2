// Package ledger is the game-night ledger: player scores, debts, shared
// expenses and settlements kept in a storage.Store.
//
// Every command validates its input, computes the new records with the pure
// functions in the calculator package, commits them through the store and then
// notifies observers. A command that fails to commit returns the error and
// emits no event. Commands are serialized by a mutex, so one Ledger is the
// single writer for its store.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/mmynk/gamenight/internal/storage"
)

// DefaultSettlementDescription is used when a settlement is recorded without one.
const DefaultSettlementDescription = "Settlement"

// Ledger exposes synchronous query and command methods over a store.
type Ledger struct {
	mu        sync.Mutex
	store     storage.Store
	now       func() time.Time
	observers []Observer

	settlementDescription string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used to stamp new records.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithObserver registers an observer at construction time.
func WithObserver(o Observer) Option {
	return func(l *Ledger) { l.observers = append(l.observers, o) }
}

// WithSettlementDescription sets the description used for settlements
// recorded without one.
func WithSettlementDescription(description string) Option {
	return func(l *Ledger) {
		if description != "" {
			l.settlementDescription = description
		}
	}
}

// New creates a Ledger backed by store.
func New(store storage.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:                 store,
		now:                   time.Now,
		settlementDescription: DefaultSettlementDescription,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Subscribe registers an observer for change notifications.
func (l *Ledger) Subscribe(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

// write runs fn while holding the writer lock.
func (l *Ledger) write(fn func() error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn()
}

// notify delivers events outside the writer lock so observers may query the ledger.
func (l *Ledger) notify(events ...Event) {
	l.mu.Lock()
	observers := append([]Observer(nil), l.observers...)
	l.mu.Unlock()

	for _, e := range events {
		for _, o := range observers {
			o.LedgerChanged(e)
		}
	}
}

func (l *Ledger) timestamp() int64 {
	return l.now().Unix()
}

// roster returns the IDs of every player in roster order.
func (l *Ledger) roster(ctx context.Context) ([]string, error) {
	players, err := l.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids, nil
}
