package carnitrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "carnitrack",
	Short: "carnitrack logs carnivore-diet macros from your terminal",
	Long:  "carnitrack is a local-first diet log: food and drink catalogs, a daily draft that rolls over at midnight, saved day history, and protein-per-bodyweight targets.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the carnitrack database")
}
