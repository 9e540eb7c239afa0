package carnitrack

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/carnitrack/carnitrack/internal/store"
	"github.com/carnitrack/carnitrack/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory for intake CSV drop files",
	Long:  "Ingests CSV files (header: Food,Grams) written into the directory, logging each line against today's draft. Runs until interrupted.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			logger := hclog.New(&hclog.LoggerOptions{
				Name:   "watch",
				Output: cmd.ErrOrStderr(),
				Level:  hclog.Info,
			})
			w, err := watch.New(st, args[0], logger)
			if err != nil {
				return fmt.Errorf("watch %s: %w", args[0], err)
			}
			defer w.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl-C to stop)\n", args[0])
			if err := w.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
