package service

import (
	"github.com/carnitrack/carnitrack/internal/model"
	"github.com/carnitrack/carnitrack/internal/store"
)

type DoctorReport struct {
	BadRecords         []string `json:"bad_records,omitempty"`
	DanglingFoodRows   int      `json:"dangling_food_rows"`
	DanglingDrinkRows  int      `json:"dangling_drink_rows"`
	DuplicateFoodNames int      `json:"duplicate_food_names"`
	DuplicateDrinks    int      `json:"duplicate_drink_names"`
	ArchivedDays       int      `json:"archived_days"`
}

func (r DoctorReport) Clean() bool {
	return len(r.BadRecords) == 0 &&
		r.DanglingFoodRows == 0 && r.DanglingDrinkRows == 0 &&
		r.DuplicateFoodNames == 0 && r.DuplicateDrinks == 0
}

// Doctor scans the stored records for the problems worth knowing about:
// records that no longer parse, rows whose catalog reference dangles, and
// duplicate catalog names that slipped in through an old import. Nothing is
// repaired; dangling rows are legal (they display blank and sum to zero).
func Doctor(st *store.Store) (DoctorReport, error) {
	var report DoctorReport

	for _, name := range store.RecordNames {
		if err := st.CheckRecord(name); err != nil {
			report.BadRecords = append(report.BadRecords, name)
		}
	}

	foods, err := st.LoadFoods()
	if err != nil {
		return report, err
	}
	drinks, err := st.LoadDrinks()
	if err != nil {
		return report, err
	}
	report.DuplicateFoodNames = countDuplicateNames(foodNames(foods))
	report.DuplicateDrinks = countDuplicateNames(drinkNames(drinks))

	draft, err := st.LoadDraft()
	if err != nil {
		return report, err
	}
	history, err := st.LoadHistory()
	if err != nil {
		return report, err
	}
	report.ArchivedDays = len(history)

	days := make([]model.Day, 0, len(history)+1)
	days = append(days, draft)
	for _, day := range history {
		days = append(days, day)
	}
	for _, day := range days {
		for _, row := range day.FoodRows {
			if _, ok := model.FoodByID(foods, row.FoodID); !ok {
				report.DanglingFoodRows++
			}
		}
		for _, row := range day.DrinkRows {
			if _, ok := model.DrinkByID(drinks, row.DrinkID); !ok {
				report.DanglingDrinkRows++
			}
		}
	}
	return report, nil
}

func foodNames(foods []model.Food) []string {
	names := make([]string, 0, len(foods))
	for _, f := range foods {
		names = append(names, f.Name)
	}
	return names
}

func drinkNames(drinks []model.Drink) []string {
	names := make([]string, 0, len(drinks))
	for _, d := range drinks {
		names = append(names, d.Name)
	}
	return names
}

func countDuplicateNames(names []string) int {
	seen := map[string]int{}
	for _, name := range names {
		seen[normalizeName(name)]++
	}
	duplicates := 0
	for _, n := range seen {
		if n > 1 {
			duplicates += n - 1
		}
	}
	return duplicates
}
