package carnitrack

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carnitrack/carnitrack/internal/service"
	"github.com/carnitrack/carnitrack/internal/store"
)

var (
	exportOut   string
	importForce bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export targets, catalogs, and history as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			doc, err := service.Export(st)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}
			if exportOut == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(exportOut, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON document, replacing each record it contains",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !importForce {
			return fmt.Errorf("import replaces stored records wholesale; re-run with --force")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		return withStore(func(st *store.Store) error {
			report, err := service.Import(st, data)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if report.TargetsReplaced {
				fmt.Fprintln(out, "Replaced targets")
			}
			if report.Foods > 0 {
				fmt.Fprintf(out, "Replaced food catalog (%d entries)\n", report.Foods)
			}
			if report.Drinks > 0 {
				fmt.Fprintf(out, "Replaced drink catalog (%d entries)\n", report.Drinks)
			}
			if report.HistoryDays > 0 {
				fmt.Fprintf(out, "Replaced history (%d days)\n", report.HistoryDays)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
	importCmd.Flags().BoolVar(&importForce, "force", false, "Confirm the destructive import")
}
