package carnitrack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carnitrack/carnitrack/internal/service"
	"github.com/carnitrack/carnitrack/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Edit today's draft",
}

var (
	logGrams  float64
	logAmount float64
	logUnit   string
	logFood   string
	logDrink  string
)

var logFoodCmd = &cobra.Command{
	Use:   "food <name>",
	Short: "Log a food row",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			food, err := resolveFood(st, args[0])
			if err != nil {
				return err
			}
			day, err := service.AddFoodRow(st, food.ID, logGrams)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s g of %s on %s\n", fmtGrams(logGrams), food.Name, day.Date)
			return nil
		})
	},
}

var logDrinkCmd = &cobra.Command{
	Use:   "drink <name>",
	Short: "Log a drink row",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			drink, err := resolveDrink(st, args[0])
			if err != nil {
				return err
			}
			day, err := service.AddDrinkRow(st, drink.ID, logUnit, logAmount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s x %s of %s on %s\n", fmtGrams(logAmount), logUnitOrMl(), drink.Name, day.Date)
			return nil
		})
	},
}

var logShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the draft rows and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			day, rolled, err := service.CurrentDraft(st)
			if err != nil {
				return err
			}
			if rolled {
				fmt.Fprintln(cmd.OutOrStdout(), "New day: draft reset.")
			}
			return printDay(cmd.OutOrStdout(), st, day)
		})
	},
}

var logEditFoodCmd = &cobra.Command{
	Use:   "edit-food <row>",
	Short: "Edit a food row by number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseRowNumber(args[0])
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			foodID := ""
			if logFood != "" {
				food, err := resolveFood(st, logFood)
				if err != nil {
					return err
				}
				foodID = food.ID
			}
			if _, err := service.UpdateFoodRow(st, index, foodID, logGrams); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated food row %d\n", index+1)
			return nil
		})
	},
}

var logEditDrinkCmd = &cobra.Command{
	Use:   "edit-drink <row>",
	Short: "Edit a drink row by number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseRowNumber(args[0])
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			drinkID := ""
			if logDrink != "" {
				drink, err := resolveDrink(st, logDrink)
				if err != nil {
					return err
				}
				drinkID = drink.ID
			}
			if _, err := service.UpdateDrinkRow(st, index, drinkID, logUnit, logAmount); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated drink row %d\n", index+1)
			return nil
		})
	},
}

var logRemoveFoodCmd = &cobra.Command{
	Use:   "remove-food <row>",
	Short: "Remove a food row by number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseRowNumber(args[0])
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			if _, err := service.RemoveFoodRow(st, index); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed food row %d\n", index+1)
			return nil
		})
	},
}

var logRemoveDrinkCmd = &cobra.Command{
	Use:   "remove-drink <row>",
	Short: "Remove a drink row by number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseRowNumber(args[0])
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			if _, err := service.RemoveDrinkRow(st, index); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed drink row %d\n", index+1)
			return nil
		})
	},
}

var logClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all draft rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			day, err := service.ClearDraft(st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared draft for %s\n", day.Date)
			return nil
		})
	},
}

func parseRowNumber(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid row number %q", arg)
	}
	return n - 1, nil
}

func logUnitOrMl() string {
	if logUnit == "" {
		return "ml"
	}
	return logUnit
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logFoodCmd, logDrinkCmd, logShowCmd, logEditFoodCmd, logEditDrinkCmd, logRemoveFoodCmd, logRemoveDrinkCmd, logClearCmd)

	logFoodCmd.Flags().Float64Var(&logGrams, "grams", 0, "Grams eaten")
	_ = logFoodCmd.MarkFlagRequired("grams")

	logDrinkCmd.Flags().Float64Var(&logAmount, "amount", 1, "Serving count or raw mL")
	logDrinkCmd.Flags().StringVar(&logUnit, "unit", "", "Serving unit (default ml)")

	logEditFoodCmd.Flags().Float64Var(&logGrams, "grams", 0, "Grams eaten")
	logEditFoodCmd.Flags().StringVar(&logFood, "food", "", "Re-point the row at another food")
	_ = logEditFoodCmd.MarkFlagRequired("grams")

	logEditDrinkCmd.Flags().Float64Var(&logAmount, "amount", 0, "Serving count or raw mL")
	logEditDrinkCmd.Flags().StringVar(&logUnit, "unit", "", "Serving unit (default ml)")
	logEditDrinkCmd.Flags().StringVar(&logDrink, "drink", "", "Re-point the row at another drink")
	_ = logEditDrinkCmd.MarkFlagRequired("amount")
}
