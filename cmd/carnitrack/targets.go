package carnitrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carnitrack/carnitrack/internal/service"
	"github.com/carnitrack/carnitrack/internal/store"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Manage the macro target basis",
}

var (
	targetsWeight       float64
	targetsWeightUnit   string
	targetsProteinPerKg float64
	targetsCalories     float64
	targetsCarbs        float64
)

var targetsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set body weight and goals; targets derive from these",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			in, err := service.SetTargets(st, service.SetTargetsInput{
				BodyWeight:     targetsWeight,
				BodyWeightUnit: targetsWeightUnit,
				ProteinPerKg:   targetsProteinPerKg,
				CalorieGoal:    targetsCalories,
				CarbGoal:       targetsCarbs,
			})
			if err != nil {
				return err
			}
			computed := service.ComputeTargets(in)
			fmt.Fprintf(cmd.OutOrStdout(), "Targets: %s kcal, protein %sg, fat %sg, carbs %sg\n",
				fmtKcal(computed.Kcal), fmtKcal(computed.ProteinG), fmtKcal(computed.FatG), fmtKcal(computed.CarbG))
			return nil
		})
	},
}

var targetsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored basis and the derived targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			in, computed, err := service.CurrentTargets(st)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if in.BodyWeight <= 0 {
				fmt.Fprintln(out, "No targets set")
				return nil
			}
			fmt.Fprintf(out, "Body weight: %s %s\n", fmtGrams(in.BodyWeight), in.BodyWeightUnit)
			fmt.Fprintf(out, "Protein per kg: %s\n", fmtGrams(in.ProteinPerKg))
			fmt.Fprintf(out, "Calorie goal: %s\n", fmtKcal(in.CalorieGoal))
			fmt.Fprintf(out, "Carb goal: %s\n", fmtKcal(in.CarbGoal))
			fmt.Fprintf(out, "Computed: %s kcal, protein %sg, fat %sg, carbs %sg\n",
				fmtKcal(computed.Kcal), fmtKcal(computed.ProteinG), fmtKcal(computed.FatG), fmtKcal(computed.CarbG))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
	targetsCmd.AddCommand(targetsSetCmd, targetsShowCmd)

	targetsSetCmd.Flags().Float64Var(&targetsWeight, "weight", 0, "Body weight")
	targetsSetCmd.Flags().StringVar(&targetsWeightUnit, "unit", "kg", "Body weight unit (kg or lb)")
	targetsSetCmd.Flags().Float64Var(&targetsProteinPerKg, "protein-per-kg", 2.0, "Protein grams per kg of body weight")
	targetsSetCmd.Flags().Float64Var(&targetsCalories, "calories", 0, "Total calorie goal")
	targetsSetCmd.Flags().Float64Var(&targetsCarbs, "carbs", 0, "Carb goal grams")
	_ = targetsSetCmd.MarkFlagRequired("weight")
	_ = targetsSetCmd.MarkFlagRequired("calories")
}
