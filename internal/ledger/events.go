package ledger

import "github.com/shopspring/decimal"

// EventKind names what changed in the ledger.
type EventKind string

const (
	EventPlayerAdded        EventKind = "player_added"
	EventScoreApplied       EventKind = "score_applied"
	EventDebtAdded          EventKind = "debt_added"
	EventDebtSettled        EventKind = "debt_settled"
	EventExpenseAdded       EventKind = "expense_added"
	EventSettlementRecorded EventKind = "settlement_recorded"
	EventPlayDateAdded      EventKind = "play_date_added"
	EventPlayDateUpdated    EventKind = "play_date_updated"
	EventPlayDateRemoved    EventKind = "play_date_removed"
)

// Event describes one committed change.
type Event struct {
	Kind EventKind

	// RecordID is the ID of the created or changed record.
	RecordID string

	// PlayerID is set for player and score events.
	PlayerID string

	// Amount is set for debt, expense and settlement events.
	Amount decimal.Decimal

	// Points and Game are set for score events.
	Points int
	Game   string

	// Automatic marks a debt settled by settlement reconciliation
	// rather than by a direct settle action.
	Automatic bool
}

// Observer receives change notifications after each committed command.
type Observer interface {
	LedgerChanged(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// LedgerChanged calls f(e).
func (f ObserverFunc) LedgerChanged(e Event) { f(e) }
