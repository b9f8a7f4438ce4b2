package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/gamenight/internal/calculator"
	"github.com/mmynk/gamenight/internal/models"
)

// Source is the read side of the ledger the collector needs.
type Source interface {
	Players(ctx context.Context) ([]*models.Player, error)
	Debts(ctx context.Context) ([]*models.Debt, error)
}

// Collector reports the ledger's current state on every scrape.
type Collector struct {
	source  Source
	timeout time.Duration

	players         *prometheus.Desc
	totalPoints     *prometheus.Desc
	gamesPlayed     *prometheus.Desc
	openDebts       *prometheus.Desc
	openDebtsAmount *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector reading from source.
func NewCollector(source Source) *Collector {
	return &Collector{
		source:  source,
		timeout: 5 * time.Second,
		players: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "players", "count"),
			"Number of players in the group.", nil, nil),
		totalPoints: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "players", "points"),
			"Sum of every player's total points.", nil, nil),
		gamesPlayed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "players", "games_played"),
			"Sum of every player's games played.", nil, nil),
		openDebts: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "debts", "open"),
			"Number of debts not yet settled.", nil, nil),
		openDebtsAmount: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "debts", "open_amount"),
			"Total amount of debts not yet settled.", nil, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.players
	ch <- c.totalPoints
	ch <- c.gamesPlayed
	ch <- c.openDebts
	ch <- c.openDebtsAmount
}

// Collect reads players and debts from the source. A failed read is logged and
// the affected metrics are reported as invalid.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	players, err := c.source.Players(ctx)
	if err != nil {
		slog.Error("Collecting player metrics failed", "error", err)
		ch <- prometheus.NewInvalidMetric(c.players, err)
	} else {
		stats := calculator.Stats(players)
		ch <- prometheus.MustNewConstMetric(c.players, prometheus.GaugeValue, float64(stats.Players))
		ch <- prometheus.MustNewConstMetric(c.totalPoints, prometheus.GaugeValue, float64(stats.TotalPoints))
		ch <- prometheus.MustNewConstMetric(c.gamesPlayed, prometheus.GaugeValue, float64(stats.TotalGames))
	}

	debts, err := c.source.Debts(ctx)
	if err != nil {
		slog.Error("Collecting debt metrics failed", "error", err)
		ch <- prometheus.NewInvalidMetric(c.openDebts, err)
		return
	}
	var open []*models.Debt
	for _, d := range debts {
		if !d.IsSettled {
			open = append(open, d)
		}
	}
	ch <- prometheus.MustNewConstMetric(c.openDebts, prometheus.GaugeValue, float64(len(open)))
	ch <- prometheus.MustNewConstMetric(c.openDebtsAmount, prometheus.GaugeValue, calculator.Total(open).InexactFloat64())
}
