package store

import "github.com/carnitrack/carnitrack/internal/model"

// Older exports and app versions stored rows keyed by catalog name, and
// drink rows as {drink, ml} with the volume already effective. These raw
// shapes are accepted on load and upgraded once, here, rather than sniffed
// throughout the code.

type rawFoodRow struct {
	FoodID string  `json:"food_id"`
	Food   string  `json:"food"`
	Grams  float64 `json:"grams"`
}

type rawDrinkRow struct {
	DrinkID string  `json:"drink_id"`
	Drink   string  `json:"drink"`
	Unit    string  `json:"unit"`
	Amount  float64 `json:"amount"`
	Ml      float64 `json:"ml"`
}

type rawDay struct {
	Date      string                 `json:"date"`
	FoodRows  []rawFoodRow           `json:"food_rows"`
	DrinkRows []rawDrinkRow          `json:"drink_rows"`
	Targets   *model.ComputedTargets `json:"targets"`
	Pinned    bool                   `json:"pinned"`
}

func upgradeDay(raw rawDay, foods []model.Food, drinks []model.Drink) model.Day {
	day := model.Day{
		Date:      raw.Date,
		FoodRows:  make([]model.FoodRow, 0, len(raw.FoodRows)),
		DrinkRows: make([]model.DrinkRow, 0, len(raw.DrinkRows)),
		Targets:   raw.Targets,
		Pinned:    raw.Pinned,
	}
	for _, r := range raw.FoodRows {
		day.FoodRows = append(day.FoodRows, upgradeFoodRow(r, foods))
	}
	for _, r := range raw.DrinkRows {
		day.DrinkRows = append(day.DrinkRows, upgradeDrinkRow(r, drinks))
	}
	return day
}

func upgradeFoodRow(raw rawFoodRow, foods []model.Food) model.FoodRow {
	row := model.FoodRow{FoodID: raw.FoodID, Grams: raw.Grams}
	if row.FoodID == "" && raw.Food != "" {
		if f, ok := model.FoodByName(foods, raw.Food); ok {
			row.FoodID = f.ID
		}
		// An unresolvable name stays blank: the row keeps its quantity and
		// contributes nothing.
	}
	return row
}

func upgradeDrinkRow(raw rawDrinkRow, drinks []model.Drink) model.DrinkRow {
	row := model.DrinkRow{DrinkID: raw.DrinkID, Unit: raw.Unit, Amount: raw.Amount}
	if row.Unit == "" && row.Amount == 0 && raw.Ml != 0 {
		// Legacy {drink, ml}: the raw value is already an effective volume.
		row.Unit = "ml"
		row.Amount = raw.Ml
	}
	if row.DrinkID == "" && raw.Drink != "" {
		if d, ok := model.DrinkByName(drinks, raw.Drink); ok {
			row.DrinkID = d.ID
		}
	}
	return row
}
