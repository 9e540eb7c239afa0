package carnitrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carnitrack/carnitrack/internal/service"
	"github.com/carnitrack/carnitrack/internal/store"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's totals against the computed targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			day, rolled, err := service.CurrentDraft(st)
			if err != nil {
				return err
			}
			if rolled {
				fmt.Fprintln(cmd.OutOrStdout(), "New day: draft reset.")
			}
			sums, err := service.SummarizeStored(st, day)
			if err != nil {
				return err
			}
			in, targets, err := service.CurrentTargets(st)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", day.Date)
			printSums(out, sums)
			if in.BodyWeight <= 0 {
				fmt.Fprintln(out, "No targets set (carnitrack targets set --help)")
				return nil
			}
			fmt.Fprintf(out, "Calories: %s / %s (%s)\n", fmtKcal(sums.TotalKcal()), fmtKcal(targets.Kcal), percentOf(sums.TotalKcal(), targets.Kcal))
			fmt.Fprintf(out, "Protein: %sg / %sg (%s)\n", fmtGrams(sums.ProteinG), fmtKcal(targets.ProteinG), percentOf(sums.ProteinG, targets.ProteinG))
			fmt.Fprintf(out, "Fat: %sg / %sg (%s)\n", fmtGrams(sums.FatG), fmtKcal(targets.FatG), percentOf(sums.FatG, targets.FatG))
			fmt.Fprintf(out, "Carbs: %sg / %sg (%s)\n", fmtGrams(sums.CarbG+sums.AlcoholCarbG), fmtKcal(targets.CarbG), percentOf(sums.CarbG+sums.AlcoholCarbG, targets.CarbG))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
