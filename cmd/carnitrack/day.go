package carnitrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carnitrack/carnitrack/internal/service"
	"github.com/carnitrack/carnitrack/internal/store"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Save, load, and re-date the draft day",
}

var daySaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Archive the draft under its date with a targets snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			archived, err := service.SaveDay(st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d food rows, %d drink rows)\n", archived.Date, len(archived.FoodRows), len(archived.DrinkRows))
			return nil
		})
	},
}

var dayLoadCmd = &cobra.Command{
	Use:   "load <date>",
	Short: "Copy a saved day into the draft (replaces unsaved rows)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			draft, err := service.LoadDay(st, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Draft now editing %s; run \"day today\" to get back to a fresh draft\n", draft.Date)
			return nil
		})
	},
}

var dayDateCmd = &cobra.Command{
	Use:   "date <date>",
	Short: "Re-date the draft to log a past or future day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			draft, err := service.SetDraftDate(st, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Draft dated %s\n", draft.Date)
			return nil
		})
	},
}

var dayTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Discard the draft and start a fresh one for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			draft, err := service.ResetToToday(st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fresh draft for %s\n", draft.Date)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.AddCommand(daySaveCmd, dayLoadCmd, dayDateCmd, dayTodayCmd)
}
