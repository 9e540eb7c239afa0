package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/carnitrack/carnitrack/internal/model"
)

const (
	RecordFoods   = "foods"
	RecordDrinks  = "drinks"
	RecordTargets = "targets"
	RecordDraft   = "draft"
	RecordHistory = "history"
)

// RecordNames lists every top-level record in load order.
var RecordNames = []string{RecordFoods, RecordDrinks, RecordTargets, RecordDraft, RecordHistory}

// Today is the local calendar date key used for drafts and history.
func Today() string {
	return time.Now().Format("2006-01-02")
}

func EmptyDraft() model.Day {
	return model.Day{Date: Today(), FoodRows: []model.FoodRow{}, DrinkRows: []model.DrinkRow{}}
}

func DefaultTargets() model.TargetsInput {
	return model.TargetsInput{BodyWeightUnit: model.WeightUnitKg}
}

// LoadFoods returns the food catalog, seeding the built-in defaults when no
// record exists. The seed is persisted immediately so the generated IDs stay
// stable across loads. An unreadable record falls back the same way and is
// logged, never surfaced as a failure.
func (s *Store) LoadFoods() ([]model.Food, error) {
	body, ok, err := s.getRecord(RecordFoods)
	if err != nil {
		return nil, err
	}
	if ok {
		var foods []model.Food
		if err := json.Unmarshal([]byte(body), &foods); err == nil {
			return foods, nil
		}
		s.log.Warn("food catalog record unreadable, reseeding defaults", "error", err)
	}
	foods := seedFoods()
	if err := s.SaveFoods(foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *Store) SaveFoods(foods []model.Food) error {
	return s.saveJSON(RecordFoods, foods)
}

func (s *Store) LoadDrinks() ([]model.Drink, error) {
	body, ok, err := s.getRecord(RecordDrinks)
	if err != nil {
		return nil, err
	}
	if ok {
		var drinks []model.Drink
		if err := json.Unmarshal([]byte(body), &drinks); err == nil {
			return drinks, nil
		}
		s.log.Warn("drink catalog record unreadable, reseeding defaults", "error", err)
	}
	drinks := seedDrinks()
	if err := s.SaveDrinks(drinks); err != nil {
		return nil, err
	}
	return drinks, nil
}

func (s *Store) SaveDrinks(drinks []model.Drink) error {
	return s.saveJSON(RecordDrinks, drinks)
}

func (s *Store) LoadTargets() (model.TargetsInput, error) {
	body, ok, err := s.getRecord(RecordTargets)
	if err != nil {
		return model.TargetsInput{}, err
	}
	if ok {
		var in model.TargetsInput
		if err := json.Unmarshal([]byte(body), &in); err == nil {
			if in.BodyWeightUnit == "" {
				in.BodyWeightUnit = model.WeightUnitKg
			}
			return in, nil
		}
		s.log.Warn("targets record unreadable, using defaults", "error", err)
	}
	return DefaultTargets(), nil
}

func (s *Store) SaveTargets(in model.TargetsInput) error {
	return s.saveJSON(RecordTargets, in)
}

// LoadDraft returns the stored draft upgraded to the current row shape.
// Missing or unreadable records yield an empty draft dated today; the
// rollover decision itself lives in the service layer.
func (s *Store) LoadDraft() (model.Day, error) {
	body, ok, err := s.getRecord(RecordDraft)
	if err != nil {
		return model.Day{}, err
	}
	if !ok {
		return EmptyDraft(), nil
	}
	var raw rawDay
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		s.log.Warn("draft record unreadable, starting an empty draft", "error", err)
		return EmptyDraft(), nil
	}
	if raw.Date == "" {
		s.log.Warn("draft record has no date, starting an empty draft")
		return EmptyDraft(), nil
	}
	foods, err := s.LoadFoods()
	if err != nil {
		return model.Day{}, err
	}
	drinks, err := s.LoadDrinks()
	if err != nil {
		return model.Day{}, err
	}
	return upgradeDay(raw, foods, drinks), nil
}

func (s *Store) SaveDraft(day model.Day) error {
	return s.saveJSON(RecordDraft, day)
}

func (s *Store) LoadHistory() (model.History, error) {
	body, ok, err := s.getRecord(RecordHistory)
	if err != nil {
		return nil, err
	}
	if !ok {
		return model.History{}, nil
	}
	var raw map[string]rawDay
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		s.log.Warn("history record unreadable, starting an empty history", "error", err)
		return model.History{}, nil
	}
	foods, err := s.LoadFoods()
	if err != nil {
		return nil, err
	}
	drinks, err := s.LoadDrinks()
	if err != nil {
		return nil, err
	}
	history := make(model.History, len(raw))
	for date, day := range raw {
		day.Date = date
		history[date] = upgradeDay(day, foods, drinks)
	}
	return history, nil
}

func (s *Store) SaveHistory(history model.History) error {
	return s.saveJSON(RecordHistory, history)
}

// CheckRecord reports whether a stored record parses against its expected
// shape. A missing record is fine.
func (s *Store) CheckRecord(name string) error {
	body, ok, err := s.getRecord(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	var target any
	switch name {
	case RecordFoods:
		target = &[]model.Food{}
	case RecordDrinks:
		target = &[]model.Drink{}
	case RecordTargets:
		target = &model.TargetsInput{}
	case RecordDraft:
		target = &rawDay{}
	case RecordHistory:
		target = &map[string]rawDay{}
	default:
		return fmt.Errorf("unknown record %q", name)
	}
	if err := json.Unmarshal([]byte(body), target); err != nil {
		return fmt.Errorf("record %q does not parse: %w", name, err)
	}
	return nil
}

func (s *Store) saveJSON(name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", name, err)
	}
	return s.putRecord(name, string(body))
}
