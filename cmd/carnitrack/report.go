package carnitrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carnitrack/carnitrack/internal/service"
	"github.com/carnitrack/carnitrack/internal/store"
)

var reportDays int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Average the last N saved days",
	Long:  "Averages run over saved days only: unsaved calendar days are absent from the window, not counted as zero.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			report, err := service.Report(st, reportDays)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(report.Days) == 0 {
				fmt.Fprintln(out, "No saved days to report on")
				return nil
			}
			fmt.Fprintln(out, "DATE\tKCAL\tPROTEIN\tFAT\tCARB\tDRINK KCAL")
			for _, day := range report.Days {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\t%s\n", day.Date,
					fmtKcal(day.Sums.FoodKcal), fmtGrams(day.Sums.ProteinG), fmtGrams(day.Sums.FatG), fmtGrams(day.Sums.CarbG), fmtKcal(day.Sums.AlcoholKcal))
			}
			fmt.Fprintf(out, "Average over %d saved day(s):\n", len(report.Days))
			printSums(out, report.Average)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntVar(&reportDays, "days", 7, "Window size in saved days")
}
