package service

import (
	"fmt"
	"sort"

	"github.com/carnitrack/carnitrack/internal/model"
	"github.com/carnitrack/carnitrack/internal/store"
)

// SaveDay archives the current draft under its own date, together with a
// snapshot of the targets derived from the persisted basis. Saving twice on
// the same date overwrites the earlier archive.
func SaveDay(st *store.Store) (model.Day, error) {
	draft, _, err := CurrentDraft(st)
	if err != nil {
		return model.Day{}, err
	}
	_, computed, err := CurrentTargets(st)
	if err != nil {
		return model.Day{}, err
	}
	history, err := st.LoadHistory()
	if err != nil {
		return model.Day{}, err
	}
	archived := model.Day{
		Date:      draft.Date,
		FoodRows:  append([]model.FoodRow(nil), draft.FoodRows...),
		DrinkRows: append([]model.DrinkRow(nil), draft.DrinkRows...),
		Targets:   &computed,
	}
	history[archived.Date] = archived
	if err := st.SaveHistory(history); err != nil {
		return model.Day{}, err
	}
	return archived, nil
}

// LoadDay copies an archived day's rows into the draft and re-dates the
// draft to match. The archive entry stays. Whatever was in the draft is
// replaced without ceremony.
func LoadDay(st *store.Store, date string) (model.Day, error) {
	date, err := validateDate(date)
	if err != nil {
		return model.Day{}, err
	}
	history, err := st.LoadHistory()
	if err != nil {
		return model.Day{}, err
	}
	archived, ok := history[date]
	if !ok {
		return model.Day{}, fmt.Errorf("no saved day for %s", date)
	}
	draft := model.Day{
		Date:      date,
		FoodRows:  append([]model.FoodRow(nil), archived.FoodRows...),
		DrinkRows: append([]model.DrinkRow(nil), archived.DrinkRows...),
		Pinned:    date != store.Today(),
	}
	if err := st.SaveDraft(draft); err != nil {
		return model.Day{}, err
	}
	return draft, nil
}

func GetDay(st *store.Store, date string) (model.Day, error) {
	date, err := validateDate(date)
	if err != nil {
		return model.Day{}, err
	}
	history, err := st.LoadHistory()
	if err != nil {
		return model.Day{}, err
	}
	day, ok := history[date]
	if !ok {
		return model.Day{}, fmt.Errorf("no saved day for %s", date)
	}
	return day, nil
}

func DeleteDay(st *store.Store, date string) error {
	date, err := validateDate(date)
	if err != nil {
		return err
	}
	history, err := st.LoadHistory()
	if err != nil {
		return err
	}
	if _, ok := history[date]; !ok {
		return fmt.Errorf("no saved day for %s", date)
	}
	delete(history, date)
	return st.SaveHistory(history)
}

// ListDates returns all archived dates newest-first, the order the log view
// wants. The trailing report re-sorts its window chronologically.
func ListDates(st *store.Store) ([]string, error) {
	history, err := st.LoadHistory()
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(history))
	for date := range history {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}

type ReportDay struct {
	Date string     `json:"date"`
	Sums model.Sums `json:"sums"`
}

// TrailingReport aggregates the last N saved days. Days counts saved days
// only; calendar gaps are absent from the window, not zero-filled.
type TrailingReport struct {
	Days    []ReportDay `json:"days"`
	Total   model.Sums  `json:"total"`
	Average model.Sums  `json:"average"`
}

func Report(st *store.Store, lastN int) (*TrailingReport, error) {
	if lastN <= 0 {
		return nil, fmt.Errorf("window must be > 0 days")
	}
	history, err := st.LoadHistory()
	if err != nil {
		return nil, err
	}
	foods, err := st.LoadFoods()
	if err != nil {
		return nil, err
	}
	drinks, err := st.LoadDrinks()
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(history))
	for date := range history {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > lastN {
		dates = dates[len(dates)-lastN:]
	}

	report := &TrailingReport{Days: make([]ReportDay, 0, len(dates))}
	for _, date := range dates {
		sums := Summarize(history[date], foods, drinks)
		report.Days = append(report.Days, ReportDay{Date: date, Sums: sums})
		report.Total.FoodKcal += sums.FoodKcal
		report.Total.ProteinG += sums.ProteinG
		report.Total.FatG += sums.FatG
		report.Total.CarbG += sums.CarbG
		report.Total.AlcoholKcal += sums.AlcoholKcal
		report.Total.AlcoholCarbG += sums.AlcoholCarbG
	}
	if n := float64(len(report.Days)); n > 0 {
		report.Average = model.Sums{
			FoodKcal:     report.Total.FoodKcal / n,
			ProteinG:     report.Total.ProteinG / n,
			FatG:         report.Total.FatG / n,
			CarbG:        report.Total.CarbG / n,
			AlcoholKcal:  report.Total.AlcoholKcal / n,
			AlcoholCarbG: report.Total.AlcoholCarbG / n,
		}
	}
	return report, nil
}
