package carnitrack

import (
	"fmt"
	"io"
	"math"

	"github.com/carnitrack/carnitrack/internal/app"
	"github.com/carnitrack/carnitrack/internal/model"
	"github.com/carnitrack/carnitrack/internal/service"
	"github.com/carnitrack/carnitrack/internal/store"
)

func resolveStorePath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultStorePath()
}

func withStore(run func(*store.Store) error) error {
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
	return run(st)
}

func resolveFood(st *store.Store, nameOrID string) (model.Food, error) {
	foods, err := st.LoadFoods()
	if err != nil {
		return model.Food{}, err
	}
	if f, ok := model.FoodByName(foods, nameOrID); ok {
		return f, nil
	}
	if f, ok := model.FoodByID(foods, nameOrID); ok {
		return f, nil
	}
	return model.Food{}, fmt.Errorf("food %q not found", nameOrID)
}

func resolveDrink(st *store.Store, nameOrID string) (model.Drink, error) {
	drinks, err := st.LoadDrinks()
	if err != nil {
		return model.Drink{}, err
	}
	if d, ok := model.DrinkByName(drinks, nameOrID); ok {
		return d, nil
	}
	if d, ok := model.DrinkByID(drinks, nameOrID); ok {
		return d, nil
	}
	return model.Drink{}, fmt.Errorf("drink %q not found", nameOrID)
}

// Rounding happens here and only here: grams to one decimal, calories to
// whole numbers. Stored and summed values keep full precision.
func fmtGrams(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func fmtKcal(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

func printSums(w io.Writer, sums model.Sums) {
	fmt.Fprintf(w, "Food: %s kcal  (protein %sg, fat %sg, carbs %sg)\n",
		fmtKcal(sums.FoodKcal), fmtGrams(sums.ProteinG), fmtGrams(sums.FatG), fmtGrams(sums.CarbG))
	fmt.Fprintf(w, "Drinks: %s kcal  (carbs %sg)\n", fmtKcal(sums.AlcoholKcal), fmtGrams(sums.AlcoholCarbG))
	fmt.Fprintf(w, "Total: %s kcal\n", fmtKcal(sums.TotalKcal()))
}

func percentOf(actual, target float64) string {
	if target <= 0 || math.IsNaN(target) {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", actual/target*100)
}

func printDay(w io.Writer, st *store.Store, day model.Day) error {
	foods, err := st.LoadFoods()
	if err != nil {
		return err
	}
	drinks, err := st.LoadDrinks()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Date: %s\n", day.Date)
	if len(day.FoodRows) == 0 && len(day.DrinkRows) == 0 {
		fmt.Fprintln(w, "No entries yet.")
	}
	if len(day.FoodRows) > 0 {
		fmt.Fprintln(w, "#\tFOOD\tGRAMS")
		for i, row := range day.FoodRows {
			name := ""
			if f, ok := model.FoodByID(foods, row.FoodID); ok {
				name = f.Name
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, name, fmtGrams(row.Grams))
		}
	}
	if len(day.DrinkRows) > 0 {
		fmt.Fprintln(w, "#\tDRINK\tAMOUNT\tUNIT\tML")
		for i, row := range day.DrinkRows {
			name := ""
			if d, ok := model.DrinkByID(drinks, row.DrinkID); ok {
				name = d.Name
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, name, fmtGrams(row.Amount), row.Unit, fmtGrams(service.EffectiveVolumeMl(row)))
		}
	}
	printSums(w, service.Summarize(day, foods, drinks))
	return nil
}
