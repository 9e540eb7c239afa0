package carnitrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carnitrack/carnitrack/internal/service"
	"github.com/carnitrack/carnitrack/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check stored records for problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			report, err := service.Doctor(st)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(report.BadRecords) > 0 {
				fmt.Fprintf(out, "Unparseable records: %s\n", strings.Join(report.BadRecords, ", "))
			}
			fmt.Fprintf(out, "Archived days: %d\n", report.ArchivedDays)
			fmt.Fprintf(out, "Dangling food rows: %d\n", report.DanglingFoodRows)
			fmt.Fprintf(out, "Dangling drink rows: %d\n", report.DanglingDrinkRows)
			fmt.Fprintf(out, "Duplicate food names: %d\n", report.DuplicateFoodNames)
			fmt.Fprintf(out, "Duplicate drink names: %d\n", report.DuplicateDrinks)
			if report.Clean() {
				fmt.Fprintln(out, "All good.")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
