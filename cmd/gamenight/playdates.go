package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/gamenight/internal/schedule"
)

const dateLayout = "2006-01-02 15:04"

func newPlayDateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "playdate",
		Aliases: []string{"calendar"},
		Short:   "Schedule game nights",
	}

	var venue string
	add := &cobra.Command{
		Use:   "add GAME \"YYYY-MM-DD HH:MM\"",
		Short: "Schedule a game night (local time)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			startsAt, err := time.ParseInLocation(dateLayout, args[1], time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q, want %s", args[1], dateLayout)
			}
			pd, err := a.ledger.AddPlayDate(cmd.Context(), args[0], venue, startsAt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %s on %s (%s)\n", pd.GameName, startsAt.Format(dateLayout), pd.ID)
			return nil
		},
	}
	add.Flags().StringVar(&venue, "venue", "", "Where the game night happens")

	list := &cobra.Command{
		Use:   "list",
		Short: "List scheduled game nights by month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := a.ledger.PlayDates(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(dates) == 0 {
				fmt.Fprintln(out, "Nothing scheduled.")
				return nil
			}
			for _, section := range schedule.GroupByMonth(dates, time.Local) {
				fmt.Fprintln(out, section.Title)
				for _, pd := range section.Dates {
					fmt.Fprintf(out, "  %s  %-10s %-16s %s\n",
						time.Unix(pd.StartsAt, 0).In(time.Local).Format(dateLayout), pd.GameName, pd.Venue, pd.ID)
				}
			}
			return nil
		},
	}

	next := &cobra.Command{
		Use:   "next",
		Short: "Show the next game night and how long until it starts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pd, err := a.ledger.NextPlayDate(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if pd == nil {
				fmt.Fprintln(out, "No upcoming game night.")
				return nil
			}
			startsAt := time.Unix(pd.StartsAt, 0).In(time.Local)
			fmt.Fprintf(out, "%s at %s on %s, in %s\n",
				pd.GameName, pd.Venue, startsAt.Format(dateLayout), schedule.Countdown(time.Now(), startsAt))
			return nil
		},
	}

	var editVenue string
	edit := &cobra.Command{
		Use:   "edit PLAY_DATE_ID GAME \"YYYY-MM-DD HH:MM\"",
		Short: "Change a scheduled game night (local time)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			startsAt, err := time.ParseInLocation(dateLayout, args[2], time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q, want %s", args[2], dateLayout)
			}
			pd, err := a.ledger.EditPlayDate(cmd.Context(), args[0], args[1], editVenue, startsAt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s on %s (%s)\n", pd.GameName, startsAt.Format(dateLayout), pd.ID)
			return nil
		},
	}
	edit.Flags().StringVar(&editVenue, "venue", "", "Where the game night happens")

	remove := &cobra.Command{
		Use:   "remove PLAY_DATE_ID",
		Short: "Remove a scheduled game night",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ledger.RemovePlayDate(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
			return nil
		},
	}

	cmd.AddCommand(add, list, next, edit, remove)
	return cmd
}
