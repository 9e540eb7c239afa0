package carnitrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carnitrack/carnitrack/internal/app"
	"github.com/carnitrack/carnitrack/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local carnitrack database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveStorePath()
		if err != nil {
			return err
		}
		if err := app.EnsureStoreDir(path); err != nil {
			return err
		}

		st, err := store.Open(path)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(); err != nil {
			return err
		}
		// Seeds the catalogs on first run.
		if _, err := st.LoadFoods(); err != nil {
			return err
		}
		if _, err := st.LoadDrinks(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized carnitrack database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
