// Package metrics exports ledger activity as Prometheus metrics.
//
// Counters are driven by ledger events through Observer. Snapshot gauges
// (players, open debts) are read from the ledger at collection time by
// Collector, so they are correct even for records created by an earlier run.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/mmynk/gamenight/internal/ledger"
)

const namespace = "gamenight"

// Observer counts ledger events.
type Observer struct {
	PlayersAdded       prometheus.Counter
	ScoresApplied      *prometheus.CounterVec
	PointsAwarded      *prometheus.CounterVec
	DebtsCreated       prometheus.Counter
	DebtsSettled       *prometheus.CounterVec
	ExpensesRecorded   prometheus.Counter
	SettlementsTotal   prometheus.Counter
	SettledAmountTotal prometheus.Counter
	PlayDatesScheduled prometheus.Gauge
}

var _ ledger.Observer = (*Observer)(nil)

// NewObserver creates the ledger counters and registers them with reg.
func NewObserver(reg prometheus.Registerer) *Observer {
	factory := promauto.With(reg)
	return &Observer{
		PlayersAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "players",
			Name:      "added_total",
			Help:      "Total players added to the group.",
		}),
		ScoresApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scores",
			Name:      "applied_total",
			Help:      "Total game results applied, by game.",
		}, []string{"game"}),
		PointsAwarded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scores",
			Name:      "points_total",
			Help:      "Total points awarded, by game.",
		}, []string{"game"}),
		DebtsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "debts",
			Name:      "created_total",
			Help:      "Total debts created, directly or by expense splits.",
		}),
		DebtsSettled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "debts",
			Name:      "settled_total",
			Help:      "Total debts settled, by how they were settled (manual, settlement).",
		}, []string{"via"}),
		ExpensesRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "expenses",
			Name:      "recorded_total",
			Help:      "Total shared expenses recorded.",
		}),
		SettlementsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlements",
			Name:      "recorded_total",
			Help:      "Total settlements recorded.",
		}),
		SettledAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlements",
			Name:      "amount_total",
			Help:      "Sum of all settlement amounts.",
		}),
		PlayDatesScheduled: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "calendar",
			Name:      "play_dates_net",
			Help:      "Play dates added minus play dates removed during this run.",
		}),
	}
}

// LedgerChanged implements ledger.Observer.
func (o *Observer) LedgerChanged(e ledger.Event) {
	switch e.Kind {
	case ledger.EventPlayerAdded:
		o.PlayersAdded.Inc()
	case ledger.EventScoreApplied:
		o.ScoresApplied.WithLabelValues(e.Game).Inc()
		o.PointsAwarded.WithLabelValues(e.Game).Add(float64(e.Points))
	case ledger.EventDebtAdded:
		o.DebtsCreated.Inc()
	case ledger.EventDebtSettled:
		via := "manual"
		if e.Automatic {
			via = "settlement"
		}
		o.DebtsSettled.WithLabelValues(via).Inc()
	case ledger.EventExpenseAdded:
		o.ExpensesRecorded.Inc()
	case ledger.EventSettlementRecorded:
		o.SettlementsTotal.Inc()
		o.SettledAmountTotal.Add(e.Amount.InexactFloat64())
	case ledger.EventPlayDateAdded:
		o.PlayDatesScheduled.Inc()
	case ledger.EventPlayDateRemoved:
		o.PlayDatesScheduled.Dec()
	}
}

// WriteText gathers every metric in g and writes it in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
