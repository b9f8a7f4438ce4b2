package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmynk/gamenight/internal/calculator"
	"github.com/mmynk/gamenight/internal/input"
	"github.com/mmynk/gamenight/internal/ledger"
	"github.com/mmynk/gamenight/internal/models"
)

func newDebtCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debt",
		Short: "Record, list and settle debts",
	}

	var description string
	add := &cobra.Command{
		Use:   "add CREDITOR DEBTOR AMOUNT",
		Short: "Record that DEBTOR owes CREDITOR",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			creditor, err := a.player(ctx, args[0])
			if err != nil {
				return err
			}
			debtor, err := a.player(ctx, args[1])
			if err != nil {
				return err
			}
			debt, err := a.ledger.AddDebt(ctx, creditor.ID, debtor.ID, input.Amount(args[2]), description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s owes %s %s (%s)\n", debtor.Nick, creditor.Nick, a.money(debt.Amount), debt.ID)
			return nil
		},
	}
	add.Flags().StringVarP(&description, "description", "d", "", "What the debt is for")

	var all bool
	list := &cobra.Command{
		Use:   "list [PLAYER]",
		Short: "List open debts, optionally only those involving PLAYER",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			debts, err := a.ledger.Debts(ctx)
			if err != nil {
				return err
			}
			names, err := a.nicks(ctx)
			if err != nil {
				return err
			}
			var playerID string
			if len(args) == 1 {
				p, err := a.player(ctx, args[0])
				if err != nil {
					return err
				}
				playerID = p.ID
			}

			shown := 0
			for _, d := range debts {
				if d.IsSettled && !all {
					continue
				}
				if playerID != "" && d.CreditorID != playerID && d.DebtorID != playerID {
					continue
				}
				a.printDebt(cmd.OutOrStdout(), names, d)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No debts.")
			}
			return nil
		},
	}
	list.Flags().BoolVar(&all, "all", false, "Include settled debts")

	settle := &cobra.Command{
		Use:   "settle DEBT_ID",
		Short: "Mark a debt as settled without recording a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debt, err := a.ledger.SettleDebt(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Debt %s settled (%s)\n", debt.ID, a.money(debt.Amount))
			return nil
		},
	}

	cmd.AddCommand(add, list, settle)
	return cmd
}

func (a *app) printDebt(w io.Writer, names map[string]string, d *models.Debt) {
	state := "open"
	if d.IsSettled {
		state = "settled"
	}
	fmt.Fprintf(w, "%s  %s owes %s %s  %q [%s]\n",
		d.ID, nameOr(names, d.DebtorID), nameOr(names, d.CreditorID), a.money(d.Amount), d.Description, state)
}

func newExpenseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record shared expenses",
	}

	var (
		participants []string
		gameType     string
		description  string
	)
	add := &cobra.Command{
		Use:   "add PAYER AMOUNT",
		Short: "Split an expense evenly among participants",
		Long: `Split AMOUNT evenly among the participants (the payer may be one of them).
Every participant other than the payer gets an open debt to the payer for their share.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			payer, err := a.player(ctx, args[0])
			if err != nil {
				return err
			}
			members, err := a.players(ctx, participants)
			if err != nil {
				return err
			}
			ids := make([]string, len(members))
			for i, p := range members {
				ids[i] = p.ID
			}

			expense, debts, err := a.ledger.AddExpense(ctx, ledger.ExpenseRequest{
				PayerID:      payer.ID,
				TotalAmount:  input.Amount(args[1]),
				Description:  description,
				GameType:     gameType,
				Participants: ids,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s paid by %s, %s each\n",
				expense.Description, a.money(expense.TotalAmount), payer.Nick, a.money(expense.SplitAmount))
			fmt.Fprintf(out, "%d debts created\n", len(debts))
			return nil
		},
	}
	add.Flags().StringSliceVarP(&participants, "participants", "p", nil, "Participants (nicks or IDs, comma separated)")
	add.Flags().StringVarP(&gameType, "game", "g", models.GameTypeOther, "Game type (Poker, Billiards, Bowling, Other)")
	add.Flags().StringVarP(&description, "description", "d", "", "Description (default \"Expense for <game>\")")

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recent expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			expenses, err := a.ledger.RecentExpenses(ctx, limit)
			if err != nil {
				return err
			}
			names, err := a.nicks(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(expenses) == 0 {
				fmt.Fprintln(out, "No expenses.")
				return nil
			}
			for _, e := range expenses {
				fmt.Fprintf(out, "%s: %s paid by %s, %s each, %d participants\n",
					e.Description, a.money(e.TotalAmount), nameOr(names, e.PayerID), a.money(e.SplitAmount), len(e.Participants))
			}
			return nil
		},
	}
	list.Flags().IntVar(&limit, "limit", 3, "Show at most N expenses (0 for all)")

	cmd.AddCommand(add, list)
	return cmd
}

func newSettleCmd(a *app) *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "settle FROM TO AMOUNT",
		Short: "Record a payment from FROM to TO",
		Long: `Record a payment and settle every open debt FROM owes TO that the amount
covers on its own. Larger debts stay open.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			from, err := a.player(ctx, args[0])
			if err != nil {
				return err
			}
			to, err := a.player(ctx, args[1])
			if err != nil {
				return err
			}
			names, err := a.nicks(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			between, err := a.ledger.DebtsBetween(ctx, from.ID, to.ID)
			if err != nil {
				return err
			}
			if len(between) > 0 {
				fmt.Fprintf(out, "Open debts between %s and %s:\n", from.Nick, to.Nick)
				for _, d := range between {
					a.printDebt(out, names, d)
				}
			}

			settlement, settled, err := a.ledger.RecordSettlement(ctx, from.ID, to.ID, input.Amount(args[2]), description)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s paid %s %s (%s)\n", from.Nick, to.Nick, a.money(settlement.Amount), settlement.Description)
			fmt.Fprintf(out, "%d debts settled\n", len(settled))
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description (default from config)")
	return cmd
}

func newBalanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance PLAYER",
		Short: "Show what a player is owed and owes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := a.player(ctx, args[0])
			if err != nil {
				return err
			}
			names, err := a.nicks(ctx)
			if err != nil {
				return err
			}
			balance, err := a.ledger.NetBalance(ctx, p.ID)
			if err != nil {
				return err
			}
			owed, owes, err := a.ledger.Partition(ctx, p.ID)
			if err != nil {
				return err
			}
			history, err := a.ledger.SettlementsFor(ctx, p.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: net %s\n", p.Nick, a.money(balance))
			fmt.Fprintf(out, "Owed to %s: %s\n", p.Nick, a.money(calculator.Total(owed)))
			for _, d := range owed {
				a.printDebt(out, names, d)
			}
			fmt.Fprintf(out, "%s owes: %s\n", p.Nick, a.money(calculator.Total(owes)))
			for _, d := range owes {
				a.printDebt(out, names, d)
			}
			if len(history) > 0 {
				fmt.Fprintln(out, "Settlements:")
				for _, s := range history {
					fmt.Fprintf(out, "  %s -> %s %s  %q\n",
						nameOr(names, s.FromPlayerID), nameOr(names, s.ToPlayerID), a.money(s.Amount), s.Description)
				}
			}
			return nil
		},
	}
}

func newSuggestCmd(a *app) *cobra.Command {
	var simplify, all bool
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest payments that would clear balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			names, err := a.nicks(ctx)
			if err != nil {
				return err
			}

			var suggestions []calculator.Suggestion
			if simplify {
				suggestions, err = a.ledger.SimplifiedTransfers(ctx)
			} else {
				suggestions, err = a.ledger.SuggestSettlements(ctx)
			}
			if err != nil {
				return err
			}
			if limit := a.cfg.Ledger.SuggestionLimit; !all && !simplify && limit > 0 && len(suggestions) > limit {
				suggestions = suggestions[:limit]
			}

			out := cmd.OutOrStdout()
			if len(suggestions) == 0 {
				fmt.Fprintln(out, "Everyone is square.")
				return nil
			}
			for _, s := range suggestions {
				fmt.Fprintf(out, "%s pays %s %s\n", nameOr(names, s.FromPlayerID), nameOr(names, s.ToPlayerID), a.money(s.Amount))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&simplify, "simplify", false, "Use the greedy plan that clears every balance")
	cmd.Flags().BoolVar(&all, "all", false, "Do not cap pairwise suggestions")
	return cmd
}
