package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mmynk/gamenight/internal/config"
	"github.com/mmynk/gamenight/internal/ledger"
	"github.com/mmynk/gamenight/internal/metrics"
	"github.com/mmynk/gamenight/internal/models"
	"github.com/mmynk/gamenight/internal/storage"
	"github.com/mmynk/gamenight/internal/storage/sqlite"
	"github.com/mmynk/gamenight/pkg/logging"
)

// app holds what every subcommand shares. It is filled in by the root
// command's pre-run hook.
type app struct {
	configPath  string
	dumpMetrics bool

	cfg      config.Config
	store    *sqlite.SQLiteStore
	ledger   *ledger.Ledger
	registry *prometheus.Registry
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gamenight",
		Short: "Scores, debts and settlements for game night",
		Long: `gamenight keeps the group's poker, bowling and billiards scores, splits shared
expenses into debts and records who paid whom.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ~/.gamenight/config.toml)")
	root.PersistentFlags().BoolVar(&a.dumpMetrics, "metrics", false, "Print metrics to stderr after the command")

	root.AddCommand(
		newPlayerCmd(a),
		newScoreCmd(a),
		newDebtCmd(a),
		newExpenseCmd(a),
		newSettleCmd(a),
		newBalanceCmd(a),
		newSuggestCmd(a),
		newRankingCmd(a),
		newPlayDateCmd(a),
		newStatsCmd(a),
	)
	return root
}

// execute runs the command line and releases the store whether or not the
// command succeeded.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(stderr); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (a *app) open() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	logging.Setup(cfg.Log.Level)

	store, err := sqlite.New(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	slog.Debug("Storage initialized", "database", cfg.Storage.Path)
	a.store = store

	a.registry = prometheus.NewRegistry()
	a.ledger = ledger.New(store,
		ledger.WithObserver(metrics.NewObserver(a.registry)),
		ledger.WithSettlementDescription(cfg.Ledger.SettlementDescription),
	)
	a.registry.MustRegister(metrics.NewCollector(a.ledger))
	return nil
}

func (a *app) close(stderr io.Writer) error {
	if a.store == nil {
		return nil
	}
	if a.dumpMetrics {
		if err := metrics.WriteText(stderr, a.registry); err != nil {
			slog.Error("Failed to write metrics", "error", err)
		}
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// player finds a player by ID or, case-insensitively, by nick.
func (a *app) player(ctx context.Context, ref string) (*models.Player, error) {
	players, err := a.ledger.Players(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		if p.ID == ref {
			return p, nil
		}
	}
	for _, p := range players {
		if strings.EqualFold(p.Nick, ref) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("player %q: %w", ref, storage.ErrNotFound)
}

func (a *app) players(ctx context.Context, refs []string) ([]*models.Player, error) {
	out := make([]*models.Player, 0, len(refs))
	for _, ref := range refs {
		p, err := a.player(ctx, strings.TrimSpace(ref))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// nicks maps player IDs to nicks for display.
func (a *app) nicks(ctx context.Context) (map[string]string, error) {
	players, err := a.ledger.Players(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Nick
	}
	return names, nil
}

func (a *app) money(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + a.cfg.Ledger.Currency
}

func nameOr(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return id
}
