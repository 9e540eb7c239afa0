package carnitrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carnitrack/carnitrack/internal/service"
	"github.com/carnitrack/carnitrack/internal/store"
)

var drinkCmd = &cobra.Command{
	Use:   "drink",
	Short: "Manage the drink catalog (per 100 mL)",
}

var (
	drinkKcal    float64
	drinkCarb    float64
	drinkNewName string
)

var drinkAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a drink to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			drink, err := service.AddDrink(st, service.AddDrinkInput{
				Name:         args[0],
				KcalPer100ml: drinkKcal,
				CarbPer100ml: drinkCarb,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added drink %s\n", drink.Name)
			return nil
		})
	},
}

var drinkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the drink catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			drinks, err := service.ListDrinks(st)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tKCAL/100ML\tCARB/100ML")
			for _, d := range drinks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", d.Name, fmtKcal(d.KcalPer100ml), fmtGrams(d.CarbPer100ml))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Serving units: %s\n", strings.Join(service.ServingUnits(), ", "))
			return nil
		})
	},
}

var drinkEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a drink; unset flags keep their current value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			drink, err := resolveDrink(st, args[0])
			if err != nil {
				return err
			}
			in := service.UpdateDrinkInput{
				ID:           drink.ID,
				Name:         drink.Name,
				KcalPer100ml: drink.KcalPer100ml,
				CarbPer100ml: drink.CarbPer100ml,
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				in.Name = drinkNewName
			}
			if flags.Changed("kcal") {
				in.KcalPer100ml = drinkKcal
			}
			if flags.Changed("carb") {
				in.CarbPer100ml = drinkCarb
			}
			updated, err := service.UpdateDrink(st, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated drink %s\n", updated.Name)
			return nil
		})
	},
}

var drinkDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a drink; logged rows keep their amount but go blank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			drink, err := resolveDrink(st, args[0])
			if err != nil {
				return err
			}
			if err := service.DeleteDrink(st, drink.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted drink %s\n", drink.Name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(drinkCmd)
	drinkCmd.AddCommand(drinkAddCmd, drinkListCmd, drinkEditCmd, drinkDeleteCmd)

	drinkAddCmd.Flags().Float64Var(&drinkKcal, "kcal", 0, "Calories per 100 mL")
	drinkAddCmd.Flags().Float64Var(&drinkCarb, "carb", 0, "Carb grams per 100 mL")
	_ = drinkAddCmd.MarkFlagRequired("kcal")

	drinkEditCmd.Flags().StringVar(&drinkNewName, "name", "", "New name")
	drinkEditCmd.Flags().Float64Var(&drinkKcal, "kcal", 0, "Calories per 100 mL")
	drinkEditCmd.Flags().Float64Var(&drinkCarb, "carb", 0, "Carb grams per 100 mL")
}
