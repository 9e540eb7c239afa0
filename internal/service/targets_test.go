package service_test

import (
	"testing"

	"github.com/carnitrack/carnitrack/internal/model"
	"github.com/carnitrack/carnitrack/internal/service"
)

func TestComputeTargets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   model.TargetsInput
		want model.ComputedTargets
	}{
		{
			name: "typical basis",
			in: model.TargetsInput{
				BodyWeight:     100,
				BodyWeightUnit: model.WeightUnitKg,
				ProteinPerKg:   2.0,
				CalorieGoal:    2200,
				CarbGoal:       20,
			},
			// 200g protein = 800 kcal, 20g carbs = 80 kcal, leaving
			// 1320 kcal for fat = 146.67g, rounded to 147.
			want: model.ComputedTargets{Kcal: 2200, ProteinG: 200, FatG: 147, CarbG: 20},
		},
		{
			name: "fat floored at zero",
			in: model.TargetsInput{
				BodyWeight:     150,
				BodyWeightUnit: model.WeightUnitKg,
				ProteinPerKg:   3.0,
				CalorieGoal:    1000,
				CarbGoal:       0,
			},
			want: model.ComputedTargets{Kcal: 1000, ProteinG: 450, FatG: 0, CarbG: 0},
		},
		{
			name: "pounds converted before protein",
			in: model.TargetsInput{
				BodyWeight:     220,
				BodyWeightUnit: model.WeightUnitLb,
				ProteinPerKg:   2.0,
				CalorieGoal:    2400,
				CarbGoal:       0,
			},
			// 220 lb = 99.79 kg, protein 199.58g rounds to 200.
			want: model.ComputedTargets{Kcal: 2400, ProteinG: 200, FatG: 178, CarbG: 0},
		},
		{
			name: "zero basis",
			in:   model.TargetsInput{BodyWeightUnit: model.WeightUnitKg},
			want: model.ComputedTargets{},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := service.ComputeTargets(tc.in)
			if got != tc.want {
				t.Fatalf("ComputeTargets(%+v) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSetTargetsPersistsBasis(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	saved, err := service.SetTargets(st, service.SetTargetsInput{
		BodyWeight:     100,
		BodyWeightUnit: "kg",
		ProteinPerKg:   2.0,
		CalorieGoal:    2200,
		CarbGoal:       20,
	})
	if err != nil {
		t.Fatalf("set targets: %v", err)
	}
	if saved.BodyWeight != 100 || saved.BodyWeightUnit != model.WeightUnitKg {
		t.Fatalf("unexpected saved basis: %+v", saved)
	}

	basis, computed, err := service.CurrentTargets(st)
	if err != nil {
		t.Fatalf("current targets: %v", err)
	}
	if basis != saved {
		t.Fatalf("reloaded basis %+v does not match saved %+v", basis, saved)
	}
	want := model.ComputedTargets{Kcal: 2200, ProteinG: 200, FatG: 147, CarbG: 20}
	if computed != want {
		t.Fatalf("computed targets = %+v, want %+v", computed, want)
	}
}

func TestSetTargetsAcceptsLbsAlias(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	saved, err := service.SetTargets(st, service.SetTargetsInput{
		BodyWeight:     220,
		BodyWeightUnit: "lbs",
		ProteinPerKg:   2.0,
		CalorieGoal:    2400,
	})
	if err != nil {
		t.Fatalf("set targets: %v", err)
	}
	if saved.BodyWeightUnit != model.WeightUnitLb {
		t.Fatalf("expected unit normalized to %q, got %q", model.WeightUnitLb, saved.BodyWeightUnit)
	}
}

func TestSetTargetsRejectsBadInput(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	cases := []struct {
		name string
		in   service.SetTargetsInput
	}{
		{"zero weight", service.SetTargetsInput{BodyWeight: 0, CalorieGoal: 2000}},
		{"negative weight", service.SetTargetsInput{BodyWeight: -80, CalorieGoal: 2000}},
		{"unknown unit", service.SetTargetsInput{BodyWeight: 80, BodyWeightUnit: "stone", CalorieGoal: 2000}},
		{"negative protein", service.SetTargetsInput{BodyWeight: 80, ProteinPerKg: -1, CalorieGoal: 2000}},
		{"negative calories", service.SetTargetsInput{BodyWeight: 80, CalorieGoal: -100}},
		{"negative carbs", service.SetTargetsInput{BodyWeight: 80, CalorieGoal: 2000, CarbGoal: -5}},
	}
	for _, tc := range cases {
		if _, err := service.SetTargets(st, tc.in); err == nil {
			t.Errorf("%s: expected validation error, got none", tc.name)
		}
	}
}

func TestDefaultTargetsUnitIsKg(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	basis, _, err := service.CurrentTargets(st)
	if err != nil {
		t.Fatalf("current targets: %v", err)
	}
	if basis.BodyWeightUnit != model.WeightUnitKg {
		t.Fatalf("expected default unit kg, got %q", basis.BodyWeightUnit)
	}
}
