package service

import (
	"fmt"

	"github.com/carnitrack/carnitrack/internal/model"
	"github.com/carnitrack/carnitrack/internal/store"
)

// CurrentDraft loads the draft and applies the rollover rule: a draft dated
// anything other than today is replaced with a fresh empty draft for today.
// Unsaved rows on the old date are gone for good; saving a day is the
// explicit step, there is no silent carry-over past midnight. Drafts pinned
// to a date by SetDraftDate or LoadDay are exempt until reset. The second
// return reports whether a rollover happened.
func CurrentDraft(st *store.Store) (model.Day, bool, error) {
	draft, err := st.LoadDraft()
	if err != nil {
		return model.Day{}, false, err
	}
	today := store.Today()
	if draft.Date == today || draft.Pinned {
		return draft, false, nil
	}
	draft = store.EmptyDraft()
	if err := st.SaveDraft(draft); err != nil {
		return model.Day{}, false, err
	}
	return draft, true, nil
}

// SetDraftDate re-dates the draft without touching its rows, so a past or
// future day can be logged and then saved under that date. The draft stays
// pinned to that date across invocations; ResetToToday unpins it.
func SetDraftDate(st *store.Store, date string) (model.Day, error) {
	date, err := validateDate(date)
	if err != nil {
		return model.Day{}, err
	}
	draft, _, err := CurrentDraft(st)
	if err != nil {
		return model.Day{}, err
	}
	draft.Date = date
	draft.Pinned = date != store.Today()
	if err := st.SaveDraft(draft); err != nil {
		return model.Day{}, err
	}
	return draft, nil
}

// ResetToToday discards the draft, pinned or not, and starts a fresh empty
// one for today.
func ResetToToday(st *store.Store) (model.Day, error) {
	draft := store.EmptyDraft()
	if err := st.SaveDraft(draft); err != nil {
		return model.Day{}, err
	}
	return draft, nil
}

func ClearDraft(st *store.Store) (model.Day, error) {
	draft, _, err := CurrentDraft(st)
	if err != nil {
		return model.Day{}, err
	}
	draft.FoodRows = []model.FoodRow{}
	draft.DrinkRows = []model.DrinkRow{}
	if err := st.SaveDraft(draft); err != nil {
		return model.Day{}, err
	}
	return draft, nil
}

func AddFoodRow(st *store.Store, foodID string, grams float64) (model.Day, error) {
	if err := validatePositive("grams", grams); err != nil {
		return model.Day{}, err
	}
	foods, err := st.LoadFoods()
	if err != nil {
		return model.Day{}, err
	}
	if _, ok := model.FoodByID(foods, foodID); !ok {
		return model.Day{}, fmt.Errorf("food %q not found", foodID)
	}
	draft, _, err := CurrentDraft(st)
	if err != nil {
		return model.Day{}, err
	}
	draft.FoodRows = append(draft.FoodRows, model.FoodRow{FoodID: foodID, Grams: grams})
	if err := st.SaveDraft(draft); err != nil {
		return model.Day{}, err
	}
	return draft, nil
}

func UpdateFoodRow(st *store.Store, index int, foodID string, grams float64) (model.Day, error) {
	if err := validatePositive("grams", grams); err != nil {
		return model.Day{}, err
	}
	draft, _, err := CurrentDraft(st)
	if err != nil {
		return model.Day{}, err
	}
	if index < 0 || index >= len(draft.FoodRows) {
		return model.Day{}, fmt.Errorf("no food row %d", index+1)
	}
	if foodID != "" {
		foods, err := st.LoadFoods()
		if err != nil {
			return model.Day{}, err
		}
		if _, ok := model.FoodByID(foods, foodID); !ok {
			return model.Day{}, fmt.Errorf("food %q not found", foodID)
		}
		draft.FoodRows[index].FoodID = foodID
	}
	draft.FoodRows[index].Grams = grams
	if err := st.SaveDraft(draft); err != nil {
		return model.Day{}, err
	}
	return draft, nil
}

func RemoveFoodRow(st *store.Store, index int) (model.Day, error) {
	draft, _, err := CurrentDraft(st)
	if err != nil {
		return model.Day{}, err
	}
	if index < 0 || index >= len(draft.FoodRows) {
		return model.Day{}, fmt.Errorf("no food row %d", index+1)
	}
	draft.FoodRows = append(draft.FoodRows[:index], draft.FoodRows[index+1:]...)
	if err := st.SaveDraft(draft); err != nil {
		return model.Day{}, err
	}
	return draft, nil
}

func AddDrinkRow(st *store.Store, drinkID, unit string, amount float64) (model.Day, error) {
	if err := validatePositive("amount", amount); err != nil {
		return model.Day{}, err
	}
	unit, err := NormalizeServingUnit(unit)
	if err != nil {
		return model.Day{}, err
	}
	drinks, err := st.LoadDrinks()
	if err != nil {
		return model.Day{}, err
	}
	if _, ok := model.DrinkByID(drinks, drinkID); !ok {
		return model.Day{}, fmt.Errorf("drink %q not found", drinkID)
	}
	draft, _, err := CurrentDraft(st)
	if err != nil {
		return model.Day{}, err
	}
	draft.DrinkRows = append(draft.DrinkRows, model.DrinkRow{DrinkID: drinkID, Unit: unit, Amount: amount})
	if err := st.SaveDraft(draft); err != nil {
		return model.Day{}, err
	}
	return draft, nil
}

func UpdateDrinkRow(st *store.Store, index int, drinkID, unit string, amount float64) (model.Day, error) {
	if err := validatePositive("amount", amount); err != nil {
		return model.Day{}, err
	}
	unit, err := NormalizeServingUnit(unit)
	if err != nil {
		return model.Day{}, err
	}
	draft, _, err := CurrentDraft(st)
	if err != nil {
		return model.Day{}, err
	}
	if index < 0 || index >= len(draft.DrinkRows) {
		return model.Day{}, fmt.Errorf("no drink row %d", index+1)
	}
	if drinkID != "" {
		drinks, err := st.LoadDrinks()
		if err != nil {
			return model.Day{}, err
		}
		if _, ok := model.DrinkByID(drinks, drinkID); !ok {
			return model.Day{}, fmt.Errorf("drink %q not found", drinkID)
		}
		draft.DrinkRows[index].DrinkID = drinkID
	}
	draft.DrinkRows[index].Unit = unit
	draft.DrinkRows[index].Amount = amount
	if err := st.SaveDraft(draft); err != nil {
		return model.Day{}, err
	}
	return draft, nil
}

func RemoveDrinkRow(st *store.Store, index int) (model.Day, error) {
	draft, _, err := CurrentDraft(st)
	if err != nil {
		return model.Day{}, err
	}
	if index < 0 || index >= len(draft.DrinkRows) {
		return model.Day{}, fmt.Errorf("no drink row %d", index+1)
	}
	draft.DrinkRows = append(draft.DrinkRows[:index], draft.DrinkRows[index+1:]...)
	if err := st.SaveDraft(draft); err != nil {
		return model.Day{}, err
	}
	return draft, nil
}
