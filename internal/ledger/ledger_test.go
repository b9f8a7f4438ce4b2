package ledger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/gamenight/internal/calculator"
	"github.com/mmynk/gamenight/internal/ledger"
	"github.com/mmynk/gamenight/internal/models"
	"github.com/mmynk/gamenight/internal/storage"
	"github.com/mmynk/gamenight/internal/storage/memory"
	"github.com/mmynk/gamenight/internal/storage/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

var fixedNow = time.Date(2025, time.March, 10, 20, 0, 0, 0, time.UTC)

type recorder struct {
	events []ledger.Event
}

func (r *recorder) LedgerChanged(e ledger.Event) { r.events = append(r.events, e) }

func (r *recorder) kinds() []ledger.EventKind {
	kinds := make([]ledger.EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func newTestLedger(t *testing.T) (*ledger.Ledger, *memory.Store, *recorder) {
	t.Helper()
	store := memory.New()
	rec := &recorder{}
	l := ledger.New(store,
		ledger.WithClock(func() time.Time { return fixedNow }),
		ledger.WithObserver(rec),
	)
	return l, store, rec
}

func addPlayers(t *testing.T, l *ledger.Ledger, nicks ...string) []*models.Player {
	t.Helper()
	players := make([]*models.Player, len(nicks))
	for i, nick := range nicks {
		p, err := l.AddPlayer(context.Background(), nick, "")
		require.NoError(t, err)
		players[i] = p
	}
	return players
}

func amount(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// =============================================================================
// PLAYERS & SCORES
// =============================================================================

func TestAddPlayer(t *testing.T) {
	l, _, rec := newTestLedger(t)
	ctx := context.Background()

	p, err := l.AddPlayer(ctx, "  Roza ", "")
	require.NoError(t, err)
	assert.Equal(t, "Roza", p.Nick)
	assert.Equal(t, models.DefaultAvatar, p.Avatar)
	assert.Equal(t, fixedNow.Unix(), p.CreatedAt)
	assert.Equal(t, []ledger.EventKind{ledger.EventPlayerAdded}, rec.kinds())

	_, err = l.AddPlayer(ctx, "   ", "")
	assert.ErrorIs(t, err, ledger.ErrEmptyNick)
}

func TestApplyScore_UpdatesPointsAndGamesTogether(t *testing.T) {
	l, _, rec := newTestLedger(t)
	ctx := context.Background()
	p := addPlayers(t, l, "Matylda")[0]

	update, err := l.RecordPoker(ctx, p.ID, calculator.PokerResult{Tokens: 10, MoneyCommitted: 5, FinalPosition: 1, TotalPlayers: 4})
	require.NoError(t, err)
	assert.Equal(t, 55, update.Points)
	assert.Equal(t, ledger.GamePoker, update.Game)
	assert.Equal(t, 55, update.Player.TotalPoints)
	assert.Equal(t, 1, update.Player.GamesPlayed)

	update, err = l.RecordBilliards(ctx, p.ID, calculator.BilliardsResult{GamesWon: 3, GamesPlayed: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, update.Points)
	assert.Equal(t, 55, update.Player.TotalPoints)
	assert.Equal(t, 2, update.Player.GamesPlayed, "a zero-point game still counts")

	update, err = l.RecordBowling(ctx, p.ID, calculator.BowlingResult{PointsScored: 300, GamesPlayed: 2, FinalPosition: 1, TotalPlayers: 3})
	require.NoError(t, err)
	assert.Equal(t, 1030, update.Points)
	assert.Equal(t, 1085, update.Player.TotalPoints)
	assert.Equal(t, 3, update.Player.GamesPlayed)

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, ledger.EventScoreApplied, last.Kind)
	assert.Equal(t, ledger.GameBowling, last.Game)
	assert.Equal(t, 1030, last.Points)
}

func TestApplyScore_Validation(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()
	p := addPlayers(t, l, "Olka")[0]

	_, err := l.ApplyScore(ctx, p.ID, ledger.GamePoker, -1)
	assert.ErrorIs(t, err, ledger.ErrInvalidPoints)

	_, err = l.ApplyScore(ctx, "", ledger.GamePoker, 10)
	assert.ErrorIs(t, err, ledger.ErrMissingPlayer)

	_, err = l.ApplyScore(ctx, "ghost", ledger.GamePoker, 10)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRankingAndStats(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()
	players := addPlayers(t, l, "Roza", "Matylda", "Martyna")

	_, err := l.ApplyScore(ctx, players[1].ID, ledger.GamePoker, 50)
	require.NoError(t, err)
	_, err = l.ApplyScore(ctx, players[2].ID, ledger.GamePoker, 20)
	require.NoError(t, err)

	standings, err := l.Ranking(ctx)
	require.NoError(t, err)
	require.Len(t, standings, 3)
	assert.Equal(t, "Matylda", standings[0].Player.Nick)
	assert.Equal(t, "Martyna", standings[1].Player.Nick)
	assert.Equal(t, "Roza", standings[2].Player.Nick)

	stats, err := l.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, calculator.GroupStats{Players: 3, TotalPoints: 70, TotalGames: 2, AveragePoints: 70.0 / 3}, stats)
}

// =============================================================================
// DEBTS
// =============================================================================

func TestAddDebt_Validation(t *testing.T) {
	l, _, rec := newTestLedger(t)
	ctx := context.Background()

	_, err := l.AddDebt(ctx, "a", "a", amount(10), "")
	assert.ErrorIs(t, err, ledger.ErrSelfDebt)

	_, err = l.AddDebt(ctx, "a", "b", decimal.Zero, "")
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

	_, err = l.AddDebt(ctx, "a", "b", amount(-5), "")
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

	_, err = l.AddDebt(ctx, "", "b", amount(5), "")
	assert.ErrorIs(t, err, ledger.ErrMissingPlayer)

	assert.Empty(t, rec.events, "rejected commands emit nothing")
}

func TestSettleDebt_ExcludedFromBalance(t *testing.T) {
	l, _, rec := newTestLedger(t)
	ctx := context.Background()
	players := addPlayers(t, l, "A", "B")
	a, b := players[0].ID, players[1].ID

	debt, err := l.AddDebt(ctx, a, b, amount(50), "Beer")
	require.NoError(t, err)

	balanceA, err := l.NetBalance(ctx, a)
	require.NoError(t, err)
	assert.True(t, balanceA.Equal(amount(50)), "got %s", balanceA)
	balanceB, err := l.NetBalance(ctx, b)
	require.NoError(t, err)
	assert.True(t, balanceB.Equal(amount(-50)), "got %s", balanceB)

	settled, err := l.SettleDebt(ctx, debt.ID)
	require.NoError(t, err)
	assert.True(t, settled.IsSettled)

	for _, id := range []string{a, b} {
		balance, err := l.NetBalance(ctx, id)
		require.NoError(t, err)
		assert.True(t, balance.IsZero(), "balance after settle = %s", balance)
	}

	owed, owes, err := l.Partition(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, owed)
	assert.Empty(t, owes)

	assert.Equal(t, ledger.EventDebtSettled, rec.events[len(rec.events)-1].Kind)
	assert.False(t, rec.events[len(rec.events)-1].Automatic)
}

func TestSettleDebt_Idempotent(t *testing.T) {
	l, store, rec := newTestLedger(t)
	ctx := context.Background()

	debt, err := l.AddDebt(ctx, "a", "b", amount(20), "")
	require.NoError(t, err)

	first, err := l.SettleDebt(ctx, debt.ID)
	require.NoError(t, err)
	eventsAfterFirst := len(rec.events)

	second, err := l.SettleDebt(ctx, debt.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, rec.events, eventsAfterFirst, "second settle is a no-op")

	stored, err := store.GetDebt(ctx, debt.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsSettled)

	_, err = l.SettleDebt(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSuggestSettlements(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()
	players := addPlayers(t, l, "A", "B", "C")
	a, b, c := players[0].ID, players[1].ID, players[2].ID

	_, err := l.AddDebt(ctx, a, b, amount(30), "")
	require.NoError(t, err)
	_, err = l.AddDebt(ctx, a, c, amount(30), "")
	require.NoError(t, err)
	_, err = l.AddDebt(ctx, c, b, amount(20), "")
	require.NoError(t, err)

	// A +60, B -50, C -10
	suggestions, err := l.SuggestSettlements(ctx)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, b, suggestions[0].FromPlayerID)
	assert.True(t, suggestions[0].Amount.Equal(amount(50)))
	assert.Equal(t, c, suggestions[1].FromPlayerID)
	assert.True(t, suggestions[1].Amount.Equal(amount(10)))

	onlyAB, err := l.SuggestSettlements(ctx, a, b)
	require.NoError(t, err)
	require.Len(t, onlyAB, 1)

	plan, err := l.SimplifiedTransfers(ctx)
	require.NoError(t, err)
	assert.Len(t, plan, 2)

	between, err := l.DebtsBetween(ctx, b, a)
	require.NoError(t, err)
	assert.Len(t, between, 1)
}

// =============================================================================
// EXPENSES
// =============================================================================

func TestAddExpense_SplitsIntoDebts(t *testing.T) {
	l, _, rec := newTestLedger(t)
	ctx := context.Background()
	players := addPlayers(t, l, "P1", "P2", "P3")
	p1, p2, p3 := players[0].ID, players[1].ID, players[2].ID
	rec.events = nil

	expense, debts, err := l.AddExpense(ctx, ledger.ExpenseRequest{
		PayerID:      p1,
		TotalAmount:  amount(100),
		GameType:     models.GameTypePoker,
		Participants: []string{p1, p2, p3},
	})
	require.NoError(t, err)

	third := amount(100).Div(amount(3))
	assert.True(t, expense.SplitAmount.Equal(third))
	assert.Equal(t, "Expense for Poker", expense.Description)
	require.Len(t, debts, 2)
	for _, d := range debts {
		assert.True(t, d.Amount.Equal(third))
		assert.Equal(t, p1, d.CreditorID)
		assert.Equal(t, expense.ID, d.ExpenseID)
	}

	assert.Equal(t, []ledger.EventKind{ledger.EventExpenseAdded, ledger.EventDebtAdded, ledger.EventDebtAdded}, rec.kinds())

	expenses, err := l.Expenses(ctx)
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
}

func TestAddExpense_RoundTrip(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()
	players := addPlayers(t, l, "P1", "P2", "P3")
	p1, p2, p3 := players[0].ID, players[1].ID, players[2].ID

	_, _, err := l.AddExpense(ctx, ledger.ExpenseRequest{
		PayerID:      p1,
		TotalAmount:  amount(90),
		Description:  "Table rental",
		Participants: []string{p1, p2, p3},
	})
	require.NoError(t, err)

	debts, err := l.Debts(ctx)
	require.NoError(t, err)
	require.Len(t, debts, 2)
	for _, d := range debts {
		assert.False(t, d.IsSettled)
		assert.Equal(t, p1, d.CreditorID)
		assert.True(t, d.Amount.Equal(amount(30)))
		assert.Equal(t, "Share of Table rental", d.Description)
	}

	want := map[string]int64{p1: 60, p2: -30, p3: -30}
	for id, v := range want {
		balance, err := l.NetBalance(ctx, id)
		require.NoError(t, err)
		assert.True(t, balance.Equal(amount(v)), "balance %s = %s, want %d", id, balance, v)
	}
}

func TestAddExpense_Validation(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	_, _, err := l.AddExpense(ctx, ledger.ExpenseRequest{PayerID: "p", TotalAmount: amount(10)})
	assert.ErrorIs(t, err, ledger.ErrNoParticipants)

	_, _, err = l.AddExpense(ctx, ledger.ExpenseRequest{PayerID: "p", Participants: []string{"q"}})
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

	_, _, err = l.AddExpense(ctx, ledger.ExpenseRequest{TotalAmount: amount(10), Participants: []string{"q"}})
	assert.ErrorIs(t, err, ledger.ErrMissingPlayer)

	expense, debts, err := l.AddExpense(ctx, ledger.ExpenseRequest{PayerID: "p", TotalAmount: amount(10), Participants: []string{"p"}})
	require.NoError(t, err)
	assert.NotEmpty(t, expense.ID)
	assert.Empty(t, debts, "self expense produces no debts")
}

// =============================================================================
// SETTLEMENTS
// =============================================================================

func TestRecordSettlement_CoversMatchingDebt(t *testing.T) {
	l, _, rec := newTestLedger(t)
	ctx := context.Background()

	debt, err := l.AddDebt(ctx, "A", "B", amount(50), "")
	require.NoError(t, err)
	rec.events = nil

	settlement, settled, err := l.RecordSettlement(ctx, "B", "A", amount(50), "pay")
	require.NoError(t, err)
	assert.Equal(t, "pay", settlement.Description)
	assert.Equal(t, fixedNow.Unix(), settlement.CreatedAt)
	require.Len(t, settled, 1)
	assert.Equal(t, debt.ID, settled[0].ID)
	assert.True(t, settled[0].IsSettled)

	debts, err := l.Debts(ctx)
	require.NoError(t, err)
	assert.True(t, debts[0].IsSettled)

	assert.Equal(t, []ledger.EventKind{ledger.EventSettlementRecorded, ledger.EventDebtSettled}, rec.kinds())
	assert.True(t, rec.events[1].Automatic)
}

func TestRecordSettlement_LeavesLargerDebtOpen(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	_, err := l.AddDebt(ctx, "A", "B", amount(80), "")
	require.NoError(t, err)

	settlement, settled, err := l.RecordSettlement(ctx, "B", "A", amount(50), "")
	require.NoError(t, err)
	assert.Empty(t, settled)
	assert.Equal(t, ledger.DefaultSettlementDescription, settlement.Description)

	debts, err := l.Debts(ctx)
	require.NoError(t, err)
	assert.False(t, debts[0].IsSettled, "50 does not cover 80")

	settlements, err := l.Settlements(ctx)
	require.NoError(t, err)
	assert.Len(t, settlements, 1, "the payment is recorded anyway")
}

func TestRecordSettlement_EachDebtComparedOnItsOwn(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	for _, v := range []int64{30, 40, 60} {
		_, err := l.AddDebt(ctx, "A", "B", amount(v), "")
		require.NoError(t, err)
	}
	_, err := l.AddDebt(ctx, "B", "A", amount(10), "")
	require.NoError(t, err)

	_, settled, err := l.RecordSettlement(ctx, "B", "A", amount(40), "")
	require.NoError(t, err)
	require.Len(t, settled, 2, "30 and 40 are each covered; sums are not checked")
	assert.True(t, settled[0].Amount.Equal(amount(30)))
	assert.True(t, settled[1].Amount.Equal(amount(40)))
}

func TestRecordSettlement_Validation(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	_, _, err := l.RecordSettlement(ctx, "A", "A", amount(5), "")
	assert.ErrorIs(t, err, ledger.ErrSelfDebt)

	_, _, err = l.RecordSettlement(ctx, "A", "B", amount(0), "")
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
}

func TestSettlementsFor(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	_, _, err := l.RecordSettlement(ctx, "A", "B", amount(5), "")
	require.NoError(t, err)
	_, _, err = l.RecordSettlement(ctx, "C", "A", amount(7), "")
	require.NoError(t, err)
	_, _, err = l.RecordSettlement(ctx, "B", "C", amount(9), "")
	require.NoError(t, err)

	mine, err := l.SettlementsFor(ctx, "A")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.True(t, mine[0].Amount.Equal(amount(7)), "newest first")
}

func TestWithSettlementDescription(t *testing.T) {
	l := ledger.New(memory.New(), ledger.WithSettlementDescription("Rozliczenie"))
	settlement, _, err := l.RecordSettlement(context.Background(), "A", "B", amount(1), "")
	require.NoError(t, err)
	assert.Equal(t, "Rozliczenie", settlement.Description)
}

// =============================================================================
// PERSISTENCE FAILURES & NOTIFICATION
// =============================================================================

func TestPersistenceFailure_ReturnsErrorWithoutEvent(t *testing.T) {
	l, store, rec := newTestLedger(t)
	ctx := context.Background()
	boom := errors.New("disk full")
	store.FailWrites = boom

	_, err := l.AddDebt(ctx, "A", "B", amount(10), "")
	assert.ErrorIs(t, err, boom)

	_, _, err = l.RecordSettlement(ctx, "B", "A", amount(10), "")
	assert.ErrorIs(t, err, boom)

	_, _, err = l.AddExpense(ctx, ledger.ExpenseRequest{PayerID: "A", TotalAmount: amount(10), Participants: []string{"A", "B"}})
	assert.ErrorIs(t, err, boom)

	assert.Empty(t, rec.events)

	store.FailWrites = nil
	debts, err := l.Debts(ctx)
	require.NoError(t, err)
	assert.Empty(t, debts, "failed commands leave nothing behind")
}

func TestSubscribe_ObserverMayQueryLedger(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	var balances []decimal.Decimal
	l.Subscribe(ledger.ObserverFunc(func(e ledger.Event) {
		if e.Kind != ledger.EventDebtAdded {
			return
		}
		balance, err := l.NetBalance(ctx, "A")
		require.NoError(t, err)
		balances = append(balances, balance)
	}))

	_, err := l.AddDebt(ctx, "A", "B", amount(10), "")
	require.NoError(t, err)
	_, err = l.AddDebt(ctx, "A", "C", amount(5), "")
	require.NoError(t, err)

	require.Len(t, balances, 2)
	assert.True(t, balances[0].Equal(amount(10)))
	assert.True(t, balances[1].Equal(amount(15)))
}

// =============================================================================
// CALENDAR
// =============================================================================

func TestPlayDates(t *testing.T) {
	l, _, rec := newTestLedger(t)
	ctx := context.Background()

	_, err := l.AddPlayDate(ctx, "", "Pub", fixedNow)
	assert.ErrorIs(t, err, ledger.ErrEmptyGameName)

	past, err := l.AddPlayDate(ctx, "Poker", "Kitchen", fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	soon, err := l.AddPlayDate(ctx, "Bowling", "Strike", fixedNow.Add(48*time.Hour))
	require.NoError(t, err)
	_, err = l.AddPlayDate(ctx, "Billiards", "Pub", fixedNow.Add(96*time.Hour))
	require.NoError(t, err)

	next, err := l.NextPlayDate(ctx)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, soon.ID, next.ID)

	require.NoError(t, l.RemovePlayDate(ctx, past.ID))
	assert.ErrorIs(t, l.RemovePlayDate(ctx, past.ID), storage.ErrNotFound)

	dates, err := l.PlayDates(ctx)
	require.NoError(t, err)
	assert.Len(t, dates, 2)
	assert.Contains(t, rec.kinds(), ledger.EventPlayDateRemoved)
}

// =============================================================================
// SQLITE INTEGRATION
// =============================================================================

func TestLedger_WithSQLiteStore(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	l := ledger.New(store, ledger.WithClock(func() time.Time { return fixedNow }))
	ctx := context.Background()
	players := addPlayers(t, l, "P1", "P2", "P3")
	p1, p2, p3 := players[0].ID, players[1].ID, players[2].ID

	_, debts, err := l.AddExpense(ctx, ledger.ExpenseRequest{
		PayerID:      p1,
		TotalAmount:  amount(90),
		GameType:     models.GameTypeBowling,
		Participants: []string{p1, p2, p3},
	})
	require.NoError(t, err)
	require.Len(t, debts, 2)

	_, settled, err := l.RecordSettlement(ctx, p2, p1, amount(30), "")
	require.NoError(t, err)
	require.Len(t, settled, 1)

	balance, err := l.NetBalance(ctx, p1)
	require.NoError(t, err)
	assert.True(t, balance.Equal(amount(30)), "got %s", balance)

	balance, err = l.NetBalance(ctx, p2)
	require.NoError(t, err)
	assert.True(t, balance.IsZero(), "got %s", balance)

	update, err := l.RecordPoker(ctx, p3, calculator.PokerResult{FinalPosition: 1, TotalPlayers: 3})
	require.NoError(t, err)
	assert.Equal(t, 30, update.Player.TotalPoints)
	assert.Equal(t, 1, update.Player.GamesPlayed)
}

func TestEditPlayDate(t *testing.T) {
	l, store, rec := newTestLedger(t)
	ctx := context.Background()

	pd, err := l.AddPlayDate(ctx, "Poker", "Kitchen", fixedNow.Add(time.Hour))
	require.NoError(t, err)

	_, err = l.EditPlayDate(ctx, pd.ID, "  ", "Pub", fixedNow)
	assert.ErrorIs(t, err, ledger.ErrEmptyGameName)

	_, err = l.EditPlayDate(ctx, "missing", "Poker", "", fixedNow)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	moved := fixedNow.Add(72 * time.Hour)
	edited, err := l.EditPlayDate(ctx, pd.ID, " Bowling ", "Strike", moved)
	require.NoError(t, err)
	assert.Equal(t, "Bowling", edited.GameName)
	assert.Equal(t, moved.Unix(), edited.StartsAt)

	dates, err := l.PlayDates(ctx)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, edited, dates[0])

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, ledger.EventPlayDateUpdated, last.Kind)
	assert.Equal(t, pd.ID, last.RecordID)

	store.FailWrites = errors.New("disk full")
	eventsBefore := len(rec.events)
	_, err = l.EditPlayDate(ctx, pd.ID, "Poker", "", fixedNow)
	assert.Error(t, err)
	assert.ErrorIs(t, l.RemovePlayDate(ctx, pd.ID), store.FailWrites)
	assert.Len(t, rec.events, eventsBefore)
}

func TestRecentExpenses(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	for _, desc := range []string{"Pizza", "Beer", "Table", "Chips"} {
		_, _, err := l.AddExpense(ctx, ledger.ExpenseRequest{
			PayerID:      "A",
			TotalAmount:  amount(10),
			Description:  desc,
			Participants: []string{"A", "B"},
		})
		require.NoError(t, err)
	}

	recent, err := l.RecentExpenses(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "Chips", recent[0].Description)
	assert.Equal(t, "Table", recent[1].Description)
	assert.Equal(t, "Beer", recent[2].Description)

	all, err := l.RecentExpenses(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestRemovePlayDate_LogsFailedCommit(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	l, _, _ := newTestLedger(t)
	err := l.RemovePlayDate(context.Background(), "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)

	assert.Contains(t, buf.String(), "RemovePlayDate failed")
	assert.Contains(t, buf.String(), "play_date_id=missing")
}
