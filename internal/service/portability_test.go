package service_test

import (
	"encoding/json"
	"testing"

	"github.com/carnitrack/carnitrack/internal/service"
)

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	src := newTestStore(t)

	food, err := service.AddFood(src, service.AddFoodInput{Name: "Test steak", KcalPer100g: 200, ProteinPer100g: 20})
	if err != nil {
		t.Fatalf("add food: %v", err)
	}
	if _, err := service.SetTargets(src, service.SetTargetsInput{
		BodyWeight: 90, ProteinPerKg: 2.2, CalorieGoal: 2100, CarbGoal: 10,
	}); err != nil {
		t.Fatalf("set targets: %v", err)
	}
	saveDayWithKcal(t, src, food.ID, "2026-08-20", 500)

	doc, err := service.Export(src)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if doc.History["2026-08-20"].FoodRows[0].Food != "Test steak" {
		t.Fatalf("export should carry names alongside IDs: %+v", doc.History["2026-08-20"])
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal export: %v", err)
	}

	dst := newTestStore(t)
	report, err := service.Import(dst, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !report.TargetsReplaced || report.HistoryDays != 1 {
		t.Fatalf("unexpected import report: %+v", report)
	}

	basis, _, err := service.CurrentTargets(dst)
	if err != nil {
		t.Fatalf("current targets: %v", err)
	}
	if basis.BodyWeight != 90 || basis.CalorieGoal != 2100 {
		t.Fatalf("targets did not survive the round trip: %+v", basis)
	}

	day, err := service.GetDay(dst, "2026-08-20")
	if err != nil {
		t.Fatalf("get imported day: %v", err)
	}
	sums, err := service.SummarizeStored(dst, day)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !almostEqual(sums.FoodKcal, 1000) {
		t.Fatalf("imported day kcal = %v, want 1000", sums.FoodKcal)
	}
}

func TestImportResolvesRowsByNameWhenIDsDiffer(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	// The document's rows reference an ID from another install; the name
	// is the portable key and resolves against the imported catalog.
	data := []byte(`{
		"foods": [{"name": "Test steak", "kcal_per_100g": 200, "protein_per_100g": 20}],
		"history": {
			"2026-08-20": {
				"food_rows": [{"food_id": "foreign-id", "food": "test STEAK", "grams": 300}],
				"drink_rows": []
			}
		}
	}`)

	if _, err := service.Import(st, data); err != nil {
		t.Fatalf("import: %v", err)
	}
	day, err := service.GetDay(st, "2026-08-20")
	if err != nil {
		t.Fatalf("get day: %v", err)
	}
	sums, err := service.SummarizeStored(st, day)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !almostEqual(sums.FoodKcal, 600) {
		t.Fatalf("row should resolve by name, got %v kcal", sums.FoodKcal)
	}
}

func TestImportBareHistoryMapping(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	foods, err := st.LoadFoods()
	if err != nil {
		t.Fatalf("load foods: %v", err)
	}
	drinksBefore, err := st.LoadDrinks()
	if err != nil {
		t.Fatalf("load drinks: %v", err)
	}

	// A top-level object whose keys are all dates is accepted directly as
	// the history mapping. Legacy {drink, ml} rows are upgraded on the way.
	data := []byte(`{
		"2026-08-20": {
			"food_rows": [{"food": "Ribeye", "grams": 200}],
			"drink_rows": [{"drink": "Beer", "ml": 375}]
		}
	}`)
	report, err := service.Import(st, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.HistoryDays != 1 || report.Foods != 0 || report.Drinks != 0 || report.TargetsReplaced {
		t.Fatalf("bare history should only touch history: %+v", report)
	}

	day, err := service.GetDay(st, "2026-08-20")
	if err != nil {
		t.Fatalf("get day: %v", err)
	}
	if len(day.FoodRows) != 1 || day.FoodRows[0].FoodID != foods[0].ID {
		t.Fatalf("name-keyed row should resolve against the seeded catalog: %+v", day.FoodRows)
	}
	if day.DrinkRows[0].Unit != "ml" || day.DrinkRows[0].Amount != 375 {
		t.Fatalf("legacy ml row not upgraded: %+v", day.DrinkRows[0])
	}

	drinksAfter, err := st.LoadDrinks()
	if err != nil {
		t.Fatalf("load drinks: %v", err)
	}
	if len(drinksAfter) != len(drinksBefore) {
		t.Fatal("bare history import must not touch the drink catalog")
	}
}

func TestImportWholesaleReplacesPresentFields(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if _, err := service.AddFood(st, service.AddFoodInput{Name: "Keep me?", KcalPer100g: 100}); err != nil {
		t.Fatalf("add food: %v", err)
	}

	data := []byte(`{"foods": [{"name": "Only food", "kcal_per_100g": 150}]}`)
	report, err := service.Import(st, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Foods != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}

	foods, err := service.ListFoods(st)
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}
	if len(foods) != 1 || foods[0].Name != "Only food" {
		t.Fatalf("present field should wholesale-replace the record, got %+v", foods)
	}
	if foods[0].ID == "" {
		t.Fatal("imported food without an ID should get one minted")
	}

	// Absent fields stay untouched.
	drinks, err := service.ListDrinks(st)
	if err != nil {
		t.Fatalf("list drinks: %v", err)
	}
	if len(drinks) == 0 {
		t.Fatal("absent drinks field must leave the seeded catalog alone")
	}
}

func TestImportMalformedDocumentChangesNothing(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	before, err := service.ListFoods(st)
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}

	cases := []struct {
		name string
		data string
	}{
		{"not json", `{"foods": [`},
		{"not an object", `[1, 2, 3]`},
		{"duplicate food names", `{"foods": [{"name": "A", "kcal_per_100g": 1}, {"name": "a", "kcal_per_100g": 2}]}`},
		{"negative nutrient", `{"foods": [{"name": "A", "kcal_per_100g": -5}]}`},
		{"nameless drink", `{"drinks": [{"kcal_per_100ml": 43}]}`},
		{"bad history key", `{"history": {"not-a-date": {"food_rows": [], "drink_rows": []}}}`},
		{"bad targets unit", `{"targets": {"body_weight": 80, "body_weight_unit": "stone"}}`},
	}
	for _, tc := range cases {
		if _, err := service.Import(st, []byte(tc.data)); err == nil {
			t.Errorf("%s: expected import error, got none", tc.name)
		}
	}

	after, err := service.ListFoods(st)
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("failed imports must not change the catalog: %d -> %d foods", len(before), len(after))
	}
	history, err := st.LoadHistory()
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("failed imports must not write history: %+v", history)
	}
}
