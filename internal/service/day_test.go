package service_test

import (
	"testing"
	"time"

	"github.com/carnitrack/carnitrack/internal/model"
	"github.com/carnitrack/carnitrack/internal/service"
	"github.com/carnitrack/carnitrack/internal/store"
)

func yesterday() string {
	return time.Now().AddDate(0, 0, -1).Format("2006-01-02")
}

func TestCurrentDraftRollsOverStaleDraft(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	foods, err := st.LoadFoods()
	if err != nil {
		t.Fatalf("load foods: %v", err)
	}
	stale := model.Day{
		Date:     yesterday(),
		FoodRows: []model.FoodRow{{FoodID: foods[0].ID, Grams: 400}},
	}
	if err := st.SaveDraft(stale); err != nil {
		t.Fatalf("save stale draft: %v", err)
	}

	draft, rolled, err := service.CurrentDraft(st)
	if err != nil {
		t.Fatalf("current draft: %v", err)
	}
	if !rolled {
		t.Fatal("expected rollover for a stale draft")
	}
	if draft.Date != store.Today() || len(draft.FoodRows) != 0 || len(draft.DrinkRows) != 0 {
		t.Fatalf("expected a fresh empty draft for today, got %+v", draft)
	}

	// The unsaved rows are gone, not moved anywhere.
	history, err := st.LoadHistory()
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("rollover must not archive anything, got %+v", history)
	}

	// Second load sees the already-reset draft.
	_, rolled, err = service.CurrentDraft(st)
	if err != nil {
		t.Fatalf("current draft: %v", err)
	}
	if rolled {
		t.Fatal("rollover should not repeat")
	}
}

func TestSetDraftDatePinsAcrossLoads(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	foods, err := st.LoadFoods()
	if err != nil {
		t.Fatalf("load foods: %v", err)
	}

	past := "2026-08-15"
	if _, err := service.SetDraftDate(st, past); err != nil {
		t.Fatalf("set draft date: %v", err)
	}
	if _, err := service.AddFoodRow(st, foods[0].ID, 250); err != nil {
		t.Fatalf("add food row: %v", err)
	}

	// A deliberately re-dated draft survives subsequent loads instead of
	// being rolled over.
	draft, rolled, err := service.CurrentDraft(st)
	if err != nil {
		t.Fatalf("current draft: %v", err)
	}
	if rolled {
		t.Fatal("pinned draft must not roll over")
	}
	if draft.Date != past || len(draft.FoodRows) != 1 {
		t.Fatalf("expected pinned draft for %s with 1 row, got %+v", past, draft)
	}

	fresh, err := service.ResetToToday(st)
	if err != nil {
		t.Fatalf("reset to today: %v", err)
	}
	if fresh.Date != store.Today() || len(fresh.FoodRows) != 0 {
		t.Fatalf("expected fresh draft for today, got %+v", fresh)
	}
}

func TestSetDraftDateToTodayUnpins(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if _, err := service.SetDraftDate(st, "2026-08-15"); err != nil {
		t.Fatalf("pin draft: %v", err)
	}
	draft, err := service.SetDraftDate(st, store.Today())
	if err != nil {
		t.Fatalf("re-date to today: %v", err)
	}
	if draft.Pinned {
		t.Fatal("re-dating to today should unpin the draft")
	}
}

func TestSetDraftDateRejectsMalformedDate(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	for _, bad := range []string{"", "today", "2026-8-1", "15/08/2026"} {
		if _, err := service.SetDraftDate(st, bad); err == nil {
			t.Errorf("expected error for date %q", bad)
		}
	}
}

func TestFoodRowLifecycle(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	foods, err := st.LoadFoods()
	if err != nil {
		t.Fatalf("load foods: %v", err)
	}

	if _, err := service.AddFoodRow(st, foods[0].ID, 0); err == nil {
		t.Fatal("expected error for zero grams")
	}
	if _, err := service.AddFoodRow(st, "no-such-food", 100); err == nil {
		t.Fatal("expected error for unknown food")
	}

	if _, err := service.AddFoodRow(st, foods[0].ID, 250); err != nil {
		t.Fatalf("add row: %v", err)
	}
	draft, err := service.UpdateFoodRow(st, 0, foods[1].ID, 300)
	if err != nil {
		t.Fatalf("update row: %v", err)
	}
	if draft.FoodRows[0].FoodID != foods[1].ID || draft.FoodRows[0].Grams != 300 {
		t.Fatalf("unexpected row after update: %+v", draft.FoodRows[0])
	}

	if _, err := service.UpdateFoodRow(st, 5, "", 100); err == nil {
		t.Fatal("expected error for out-of-range row")
	}
	if _, err := service.RemoveFoodRow(st, 5); err == nil {
		t.Fatal("expected error for out-of-range row")
	}

	draft, err = service.RemoveFoodRow(st, 0)
	if err != nil {
		t.Fatalf("remove row: %v", err)
	}
	if len(draft.FoodRows) != 0 {
		t.Fatalf("expected no rows left, got %+v", draft.FoodRows)
	}
}

func TestDrinkRowLifecycle(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	drinks, err := st.LoadDrinks()
	if err != nil {
		t.Fatalf("load drinks: %v", err)
	}

	if _, err := service.AddDrinkRow(st, drinks[0].ID, "goblet", 1); err == nil {
		t.Fatal("expected error for unknown unit")
	}
	if _, err := service.AddDrinkRow(st, "no-such-drink", "pint", 1); err == nil {
		t.Fatal("expected error for unknown drink")
	}

	draft, err := service.AddDrinkRow(st, drinks[0].ID, "", 330)
	if err != nil {
		t.Fatalf("add drink row: %v", err)
	}
	if draft.DrinkRows[0].Unit != "ml" {
		t.Fatalf("empty unit should default to ml, got %q", draft.DrinkRows[0].Unit)
	}

	draft, err = service.UpdateDrinkRow(st, 0, "", "pint", 2)
	if err != nil {
		t.Fatalf("update drink row: %v", err)
	}
	if draft.DrinkRows[0].Unit != "pint" || draft.DrinkRows[0].Amount != 2 {
		t.Fatalf("unexpected row after update: %+v", draft.DrinkRows[0])
	}

	draft, err = service.RemoveDrinkRow(st, 0)
	if err != nil {
		t.Fatalf("remove drink row: %v", err)
	}
	if len(draft.DrinkRows) != 0 {
		t.Fatalf("expected no rows left, got %+v", draft.DrinkRows)
	}
}

func TestClearDraftKeepsDate(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	foods, err := st.LoadFoods()
	if err != nil {
		t.Fatalf("load foods: %v", err)
	}
	if _, err := service.AddFoodRow(st, foods[0].ID, 100); err != nil {
		t.Fatalf("add row: %v", err)
	}
	draft, err := service.ClearDraft(st)
	if err != nil {
		t.Fatalf("clear draft: %v", err)
	}
	if len(draft.FoodRows) != 0 || len(draft.DrinkRows) != 0 {
		t.Fatalf("expected cleared rows, got %+v", draft)
	}
	if draft.Date != store.Today() {
		t.Fatalf("clear should keep the date, got %q", draft.Date)
	}
}
