package carnitrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carnitrack/carnitrack/internal/service"
	"github.com/carnitrack/carnitrack/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved days",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved dates, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			dates, err := service.ListDates(st)
			if err != nil {
				return err
			}
			if len(dates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved days")
				return nil
			}
			for _, date := range dates {
				fmt.Fprintln(cmd.OutOrStdout(), date)
			}
			return nil
		})
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <date>",
	Short: "Show a saved day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			day, err := service.GetDay(st, args[0])
			if err != nil {
				return err
			}
			if err := printDay(cmd.OutOrStdout(), st, day); err != nil {
				return err
			}
			if day.Targets != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Targets at save: %s kcal, protein %sg, fat %sg, carbs %sg\n",
					fmtKcal(day.Targets.Kcal), fmtKcal(day.Targets.ProteinG), fmtKcal(day.Targets.FatG), fmtKcal(day.Targets.CarbG))
			}
			return nil
		})
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete a saved day (irreversible)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.DeleteDay(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd)
}
