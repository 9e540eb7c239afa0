package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carnitrack/carnitrack/internal/model"
	"github.com/carnitrack/carnitrack/internal/store"
)

// Export/import documents carry catalog names alongside IDs so a document
// survives re-import into a store whose generated IDs differ.

type ExportFoodRow struct {
	FoodID string  `json:"food_id,omitempty"`
	Food   string  `json:"food,omitempty"`
	Grams  float64 `json:"grams"`
}

type ExportDrinkRow struct {
	DrinkID string  `json:"drink_id,omitempty"`
	Drink   string  `json:"drink,omitempty"`
	Unit    string  `json:"unit,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
	Ml      float64 `json:"ml,omitempty"`
}

type ExportDay struct {
	FoodRows  []ExportFoodRow        `json:"food_rows"`
	DrinkRows []ExportDrinkRow       `json:"drink_rows"`
	Targets   *model.ComputedTargets `json:"targets,omitempty"`
}

type ExportDocument struct {
	Targets *model.TargetsInput  `json:"targets,omitempty"`
	Foods   []model.Food         `json:"foods,omitempty"`
	Drinks  []model.Drink        `json:"drinks,omitempty"`
	History map[string]ExportDay `json:"history,omitempty"`
}

func Export(st *store.Store) (*ExportDocument, error) {
	foods, err := st.LoadFoods()
	if err != nil {
		return nil, err
	}
	drinks, err := st.LoadDrinks()
	if err != nil {
		return nil, err
	}
	targets, err := st.LoadTargets()
	if err != nil {
		return nil, err
	}
	history, err := st.LoadHistory()
	if err != nil {
		return nil, err
	}

	doc := &ExportDocument{
		Targets: &targets,
		Foods:   foods,
		Drinks:  drinks,
		History: make(map[string]ExportDay, len(history)),
	}
	for date, day := range history {
		out := ExportDay{
			FoodRows:  make([]ExportFoodRow, 0, len(day.FoodRows)),
			DrinkRows: make([]ExportDrinkRow, 0, len(day.DrinkRows)),
			Targets:   day.Targets,
		}
		for _, row := range day.FoodRows {
			name := ""
			if f, ok := model.FoodByID(foods, row.FoodID); ok {
				name = f.Name
			}
			out.FoodRows = append(out.FoodRows, ExportFoodRow{FoodID: row.FoodID, Food: name, Grams: row.Grams})
		}
		for _, row := range day.DrinkRows {
			name := ""
			if d, ok := model.DrinkByID(drinks, row.DrinkID); ok {
				name = d.Name
			}
			out.DrinkRows = append(out.DrinkRows, ExportDrinkRow{DrinkID: row.DrinkID, Drink: name, Unit: row.Unit, Amount: row.Amount})
		}
		doc.History[date] = out
	}
	return doc, nil
}

type ImportReport struct {
	TargetsReplaced bool `json:"targets_replaced"`
	Foods           int  `json:"foods"`
	Drinks          int  `json:"drinks"`
	HistoryDays     int  `json:"history_days"`
}

// Import parses and validates the whole document before writing anything:
// a malformed document aborts with no partial merge. Each present top-level
// field wholesale-replaces its persisted record; absent fields stay as they
// are. A document whose top-level keys are all dates is accepted directly
// as a history mapping.
func Import(st *store.Store, data []byte) (ImportReport, error) {
	var report ImportReport

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return report, fmt.Errorf("parse import document: %w", err)
	}

	var doc ExportDocument
	if isBareHistory(top) {
		var history map[string]ExportDay
		if err := json.Unmarshal(data, &history); err != nil {
			return report, fmt.Errorf("parse history mapping: %w", err)
		}
		doc.History = history
		top = map[string]json.RawMessage{"history": nil}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return report, fmt.Errorf("parse import document: %w", err)
		}
	}

	_, hasTargets := top["targets"]
	_, hasFoods := top["foods"]
	_, hasDrinks := top["drinks"]
	_, hasHistory := top["history"]

	if hasTargets && doc.Targets != nil {
		if err := validateImportedTargets(*doc.Targets); err != nil {
			return report, err
		}
	}
	if hasFoods {
		if err := validateImportedFoods(doc.Foods); err != nil {
			return report, err
		}
	}
	if hasDrinks {
		if err := validateImportedDrinks(doc.Drinks); err != nil {
			return report, err
		}
	}
	if hasHistory {
		for date := range doc.History {
			if _, err := validateDate(date); err != nil {
				return report, fmt.Errorf("history key %q: %w", date, err)
			}
		}
	}

	// Rows resolve against the catalogs that will be in effect after the
	// import, not the ones being replaced.
	foods, err := st.LoadFoods()
	if err != nil {
		return report, err
	}
	drinks, err := st.LoadDrinks()
	if err != nil {
		return report, err
	}
	if hasFoods {
		foods = doc.Foods
	}
	if hasDrinks {
		drinks = doc.Drinks
	}

	if hasTargets && doc.Targets != nil {
		if err := st.SaveTargets(*doc.Targets); err != nil {
			return report, err
		}
		report.TargetsReplaced = true
	}
	if hasFoods {
		sortFoods(foods)
		if err := st.SaveFoods(foods); err != nil {
			return report, err
		}
		report.Foods = len(foods)
	}
	if hasDrinks {
		sortDrinks(drinks)
		if err := st.SaveDrinks(drinks); err != nil {
			return report, err
		}
		report.Drinks = len(drinks)
	}
	if hasHistory {
		history := make(model.History, len(doc.History))
		for date, day := range doc.History {
			history[date] = importedDay(date, day, foods, drinks)
		}
		if err := st.SaveHistory(history); err != nil {
			return report, err
		}
		report.HistoryDays = len(history)
	}
	return report, nil
}

func isBareHistory(top map[string]json.RawMessage) bool {
	if len(top) == 0 {
		return false
	}
	for key := range top {
		if !datePattern.MatchString(key) {
			return false
		}
	}
	return true
}

func importedDay(date string, day ExportDay, foods []model.Food, drinks []model.Drink) model.Day {
	out := model.Day{
		Date:      date,
		FoodRows:  make([]model.FoodRow, 0, len(day.FoodRows)),
		DrinkRows: make([]model.DrinkRow, 0, len(day.DrinkRows)),
		Targets:   day.Targets,
	}
	for _, row := range day.FoodRows {
		id := row.FoodID
		if _, ok := model.FoodByID(foods, id); !ok {
			id = ""
			if f, ok := model.FoodByName(foods, row.Food); ok {
				id = f.ID
			}
		}
		out.FoodRows = append(out.FoodRows, model.FoodRow{FoodID: id, Grams: row.Grams})
	}
	for _, row := range day.DrinkRows {
		unit, amount := row.Unit, row.Amount
		if unit == "" && amount == 0 && row.Ml != 0 {
			unit = "ml"
			amount = row.Ml
		}
		id := row.DrinkID
		if _, ok := model.DrinkByID(drinks, id); !ok {
			id = ""
			if d, ok := model.DrinkByName(drinks, row.Drink); ok {
				id = d.ID
			}
		}
		out.DrinkRows = append(out.DrinkRows, model.DrinkRow{DrinkID: id, Unit: unit, Amount: amount})
	}
	return out
}

func validateImportedTargets(in model.TargetsInput) error {
	if err := validateNonNegative("body weight", in.BodyWeight); err != nil {
		return err
	}
	switch in.BodyWeightUnit {
	case "", model.WeightUnitKg, model.WeightUnitLb:
	default:
		return fmt.Errorf("unknown body weight unit %q in targets", in.BodyWeightUnit)
	}
	if err := validateNonNegative("protein per kg", in.ProteinPerKg); err != nil {
		return err
	}
	if err := validateNonNegative("calorie goal", in.CalorieGoal); err != nil {
		return err
	}
	return validateNonNegative("carb goal", in.CarbGoal)
}

func validateImportedFoods(foods []model.Food) error {
	seen := map[string]bool{}
	for i := range foods {
		f := &foods[i]
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("imported food without a name")
		}
		key := normalizeName(f.Name)
		if seen[key] {
			return fmt.Errorf("imported foods contain duplicate name %q", f.Name)
		}
		seen[key] = true
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		if err := validateFoodNutrients(f.KcalPer100g, f.ProteinPer100g, f.FatPer100g, f.CarbPer100g); err != nil {
			return fmt.Errorf("imported food %q: %w", f.Name, err)
		}
	}
	return nil
}

func validateImportedDrinks(drinks []model.Drink) error {
	seen := map[string]bool{}
	for i := range drinks {
		d := &drinks[i]
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("imported drink without a name")
		}
		key := normalizeName(d.Name)
		if seen[key] {
			return fmt.Errorf("imported drinks contain duplicate name %q", d.Name)
		}
		seen[key] = true
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		if err := validateDrinkNutrients(d.KcalPer100ml, d.CarbPer100ml); err != nil {
			return fmt.Errorf("imported drink %q: %w", d.Name, err)
		}
	}
	return nil
}
