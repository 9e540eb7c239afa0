package carnitrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carnitrack/carnitrack/internal/service"
	"github.com/carnitrack/carnitrack/internal/store"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the food catalog (per 100 g)",
}

var (
	foodKcal    float64
	foodProtein float64
	foodFat     float64
	foodCarb    float64
	foodNewName string
)

var foodAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a food to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			food, err := service.AddFood(st, service.AddFoodInput{
				Name:           args[0],
				KcalPer100g:    foodKcal,
				ProteinPer100g: foodProtein,
				FatPer100g:     foodFat,
				CarbPer100g:    foodCarb,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added food %s\n", food.Name)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the food catalog grouped by first letter",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			foods, err := service.ListFoods(st)
			if err != nil {
				return err
			}
			byName := map[string]int{}
			names := make([]string, 0, len(foods))
			for i, f := range foods {
				names = append(names, f.Name)
				byName[f.Name] = i
			}
			for _, group := range service.GroupNamesByLetter(names) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", group.Letter)
				for _, name := range group.Names {
					f := foods[byName[name]]
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%s kcal\tP %sg\tF %sg\tC %sg\n",
						f.Name, fmtKcal(f.KcalPer100g), fmtGrams(f.ProteinPer100g), fmtGrams(f.FatPer100g), fmtGrams(f.CarbPer100g))
				}
			}
			return nil
		})
	},
}

var foodEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a food; unset flags keep their current value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			food, err := resolveFood(st, args[0])
			if err != nil {
				return err
			}
			in := service.UpdateFoodInput{
				ID:             food.ID,
				Name:           food.Name,
				KcalPer100g:    food.KcalPer100g,
				ProteinPer100g: food.ProteinPer100g,
				FatPer100g:     food.FatPer100g,
				CarbPer100g:    food.CarbPer100g,
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				in.Name = foodNewName
			}
			if flags.Changed("kcal") {
				in.KcalPer100g = foodKcal
			}
			if flags.Changed("protein") {
				in.ProteinPer100g = foodProtein
			}
			if flags.Changed("fat") {
				in.FatPer100g = foodFat
			}
			if flags.Changed("carb") {
				in.CarbPer100g = foodCarb
			}
			updated, err := service.UpdateFood(st, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated food %s\n", updated.Name)
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a food; logged rows keep their grams but go blank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			food, err := resolveFood(st, args[0])
			if err != nil {
				return err
			}
			if err := service.DeleteFood(st, food.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food %s\n", food.Name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodEditCmd, foodDeleteCmd)

	foodAddCmd.Flags().Float64Var(&foodKcal, "kcal", 0, "Calories per 100 g")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein grams per 100 g")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat grams per 100 g")
	foodAddCmd.Flags().Float64Var(&foodCarb, "carb", 0, "Carb grams per 100 g")
	_ = foodAddCmd.MarkFlagRequired("kcal")

	foodEditCmd.Flags().StringVar(&foodNewName, "name", "", "New name")
	foodEditCmd.Flags().Float64Var(&foodKcal, "kcal", 0, "Calories per 100 g")
	foodEditCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein grams per 100 g")
	foodEditCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat grams per 100 g")
	foodEditCmd.Flags().Float64Var(&foodCarb, "carb", 0, "Carb grams per 100 g")
}
