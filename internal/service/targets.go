package service

import (
	"fmt"
	"math"

	"github.com/carnitrack/carnitrack/internal/model"
	"github.com/carnitrack/carnitrack/internal/store"
)

const (
	lbToKg         = 0.45359237
	kcalPerGramPro = 4
	kcalPerGramCho = 4
	kcalPerGramFat = 9
)

type SetTargetsInput struct {
	BodyWeight     float64
	BodyWeightUnit string
	ProteinPerKg   float64
	CalorieGoal    float64
	CarbGoal       float64
}

// SetTargets validates and persists the targets basis. Computed targets are
// re-derived from it on demand, never stored on their own.
func SetTargets(st *store.Store, in SetTargetsInput) (model.TargetsInput, error) {
	if err := validateFinite("body weight", in.BodyWeight); err != nil {
		return model.TargetsInput{}, err
	}
	if in.BodyWeight <= 0 {
		return model.TargetsInput{}, fmt.Errorf("body weight must be > 0")
	}
	unit, err := normalizeWeightUnit(in.BodyWeightUnit)
	if err != nil {
		return model.TargetsInput{}, err
	}
	if err := validateNonNegative("protein per kg", in.ProteinPerKg); err != nil {
		return model.TargetsInput{}, err
	}
	if err := validateNonNegative("calorie goal", in.CalorieGoal); err != nil {
		return model.TargetsInput{}, err
	}
	if err := validateNonNegative("carb goal", in.CarbGoal); err != nil {
		return model.TargetsInput{}, err
	}

	targets := model.TargetsInput{
		BodyWeight:     in.BodyWeight,
		BodyWeightUnit: unit,
		ProteinPerKg:   in.ProteinPerKg,
		CalorieGoal:    in.CalorieGoal,
		CarbGoal:       in.CarbGoal,
	}
	if err := st.SaveTargets(targets); err != nil {
		return model.TargetsInput{}, err
	}
	return targets, nil
}

// ComputeTargets derives the macro targets. Protein comes from body weight,
// carbs are taken as given, and fat gets whatever calories remain after
// both, floored at zero so an over-committed protein goal never produces a
// negative fat target. Outputs are rounded to whole numbers.
func ComputeTargets(in model.TargetsInput) model.ComputedTargets {
	weightKg := in.BodyWeight
	if in.BodyWeightUnit == model.WeightUnitLb {
		weightKg = in.BodyWeight * lbToKg
	}
	proteinG := weightKg * in.ProteinPerKg
	carbG := in.CarbGoal
	fatKcal := in.CalorieGoal - proteinG*kcalPerGramPro - carbG*kcalPerGramCho
	if fatKcal < 0 {
		fatKcal = 0
	}
	return model.ComputedTargets{
		Kcal:     math.Round(in.CalorieGoal),
		ProteinG: math.Round(proteinG),
		FatG:     math.Round(fatKcal / kcalPerGramFat),
		CarbG:    math.Round(carbG),
	}
}

// CurrentTargets loads the persisted basis and derives from it.
func CurrentTargets(st *store.Store) (model.TargetsInput, model.ComputedTargets, error) {
	in, err := st.LoadTargets()
	if err != nil {
		return model.TargetsInput{}, model.ComputedTargets{}, err
	}
	return in, ComputeTargets(in), nil
}

func normalizeWeightUnit(unit string) (string, error) {
	switch unit {
	case "", model.WeightUnitKg:
		return model.WeightUnitKg, nil
	case "lbs", model.WeightUnitLb:
		return model.WeightUnitLb, nil
	}
	return "", fmt.Errorf("unknown body weight unit %q (use kg or lb)", unit)
}
