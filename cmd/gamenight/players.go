package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/gamenight/internal/calculator"
	"github.com/mmynk/gamenight/internal/input"
	"github.com/mmynk/gamenight/internal/ledger"
	"github.com/mmynk/gamenight/internal/models"
)

func newPlayerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Manage the group's players",
	}

	var avatar string
	var random bool
	add := &cobra.Command{
		Use:   "add NICK",
		Short: "Add a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if random {
				avatar = models.RandomAvatar()
			}
			p, err := a.ledger.AddPlayer(cmd.Context(), args[0], avatar)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) %s\n", p.Nick, p.Avatar, p.ID)
			return nil
		},
	}
	add.Flags().StringVar(&avatar, "avatar", "", "Avatar symbol name")
	add.Flags().BoolVar(&random, "random-avatar", false, "Pick a random avatar")

	list := &cobra.Command{
		Use:   "list",
		Short: "List players in the order they joined",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := a.ledger.Players(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(players) == 0 {
				fmt.Fprintln(out, "No players yet. Use 'gamenight player add NICK'.")
				return nil
			}
			for _, p := range players {
				fmt.Fprintf(out, "%-16s %6d pts %4d games  %s\n", p.Nick, p.TotalPoints, p.GamesPlayed, p.ID)
			}
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func newRankingCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Show players ordered by total points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			standings, err := a.ledger.Ranking(cmd.Context())
			if err != nil {
				return err
			}
			if top > 0 {
				standings = calculator.Top(standings, top)
			}
			for _, s := range standings {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %-16s %6d pts\n", s.Position, s.Player.Nick, s.Player.TotalPoints)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 0, "Show only the first N players (3 for the podium)")
	return cmd
}

func newScoreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Record one player's game result",
	}

	var tokens, money, position, players string
	poker := &cobra.Command{
		Use:   "poker PLAYER",
		Short: "Record a poker night",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.player(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			update, err := a.ledger.RecordPoker(cmd.Context(), p.ID, calculator.PokerResult{
				Tokens:         input.Count(tokens),
				MoneyCommitted: input.Count(money),
				FinalPosition:  input.Position(position),
				TotalPlayers:   input.Position(players),
			})
			if err != nil {
				return err
			}
			printScore(cmd, update)
			return nil
		},
	}
	poker.Flags().StringVar(&tokens, "tokens", "", "Tokens left at the end")
	poker.Flags().StringVar(&money, "money", "", "Money put into the game")
	poker.Flags().StringVar(&position, "position", "", "Final position (default 1)")
	poker.Flags().StringVar(&players, "players", "", "Players at the table (default 1)")

	var points, games, bowlPosition, bowlPlayers string
	bowling := &cobra.Command{
		Use:   "bowling PLAYER",
		Short: "Record a bowling night",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.player(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			update, err := a.ledger.RecordBowling(cmd.Context(), p.ID, calculator.BowlingResult{
				PointsScored:  input.Count(points),
				GamesPlayed:   input.Count(games),
				FinalPosition: input.Position(bowlPosition),
				TotalPlayers:  input.Position(bowlPlayers),
			})
			if err != nil {
				return err
			}
			printScore(cmd, update)
			return nil
		},
	}
	bowling.Flags().StringVar(&points, "points", "", "Pins scored")
	bowling.Flags().StringVar(&games, "games", "", "Games played")
	bowling.Flags().StringVar(&bowlPosition, "position", "", "Final position (default 1)")
	bowling.Flags().StringVar(&bowlPlayers, "players", "", "Players in the lane (default 1)")

	var won, played string
	billiards := &cobra.Command{
		Use:   "billiards PLAYER",
		Short: "Record a billiards night",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.player(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			update, err := a.ledger.RecordBilliards(cmd.Context(), p.ID, calculator.BilliardsResult{
				GamesWon:    input.Count(won),
				GamesPlayed: input.Count(played),
			})
			if err != nil {
				return err
			}
			printScore(cmd, update)
			return nil
		},
	}
	billiards.Flags().StringVar(&won, "won", "", "Games won")
	billiards.Flags().StringVar(&played, "games", "", "Games played")

	cmd.AddCommand(poker, bowling, billiards)
	return cmd
}

func printScore(cmd *cobra.Command, u *ledger.ScoreUpdate) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: +%d pts in %s (total %d pts, %d games)\n",
		u.Player.Nick, u.Points, u.Game, u.Player.TotalPoints, u.Player.GamesPlayed)
}
