package service

import (
	"github.com/carnitrack/carnitrack/internal/model"
	"github.com/carnitrack/carnitrack/internal/store"
)

// Summarize totals a day's rows against the catalogs. It is pure and
// order-independent, and it never fails: a row whose reference does not
// resolve contributes zero. Sums keep full float precision; rounding is a
// display concern.
func Summarize(day model.Day, foods []model.Food, drinks []model.Drink) model.Sums {
	var sums model.Sums
	for _, row := range day.FoodRows {
		food, ok := model.FoodByID(foods, row.FoodID)
		if !ok {
			continue
		}
		scale := row.Grams / 100
		sums.FoodKcal += food.KcalPer100g * scale
		sums.ProteinG += food.ProteinPer100g * scale
		sums.FatG += food.FatPer100g * scale
		sums.CarbG += food.CarbPer100g * scale
	}
	for _, row := range day.DrinkRows {
		drink, ok := model.DrinkByID(drinks, row.DrinkID)
		if !ok {
			continue
		}
		scale := EffectiveVolumeMl(row) / 100
		sums.AlcoholKcal += drink.KcalPer100ml * scale
		sums.AlcoholCarbG += drink.CarbPer100ml * scale
	}
	return sums
}

// SummarizeStored is the store-backed convenience used by commands.
func SummarizeStored(st *store.Store, day model.Day) (model.Sums, error) {
	foods, err := st.LoadFoods()
	if err != nil {
		return model.Sums{}, err
	}
	drinks, err := st.LoadDrinks()
	if err != nil {
		return model.Sums{}, err
	}
	return Summarize(day, foods, drinks), nil
}
