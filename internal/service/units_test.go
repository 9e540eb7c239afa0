package service_test

import (
	"math"
	"testing"

	"github.com/carnitrack/carnitrack/internal/model"
	"github.com/carnitrack/carnitrack/internal/service"
)

func TestEffectiveVolumeMl(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		row  model.DrinkRow
		want float64
	}{
		{"raw ml", model.DrinkRow{Unit: "ml", Amount: 330}, 330},
		{"shot", model.DrinkRow{Unit: "shot", Amount: 2}, 60},
		{"stubby", model.DrinkRow{Unit: "stubby", Amount: 1}, 375},
		{"schooner", model.DrinkRow{Unit: "schooner", Amount: 2}, 850},
		{"pint", model.DrinkRow{Unit: "pint", Amount: 1}, 570},
		{"unit case and spacing ignored", model.DrinkRow{Unit: " Pint ", Amount: 1}, 570},
		{"unknown unit treated as ml", model.DrinkRow{Unit: "goblet", Amount: 200}, 200},
		{"empty unit treated as ml", model.DrinkRow{Amount: 50}, 50},
		{"negative amount clamped", model.DrinkRow{Unit: "pint", Amount: -2}, 0},
		{"nan amount clamped", model.DrinkRow{Unit: "ml", Amount: math.NaN()}, 0},
		{"inf amount clamped", model.DrinkRow{Unit: "ml", Amount: math.Inf(1)}, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := service.EffectiveVolumeMl(tc.row); got != tc.want {
				t.Fatalf("EffectiveVolumeMl(%+v) = %v, want %v", tc.row, got, tc.want)
			}
		})
	}
}

func TestNormalizeServingUnit(t *testing.T) {
	t.Parallel()

	if unit, err := service.NormalizeServingUnit(""); err != nil || unit != "ml" {
		t.Fatalf("empty unit: got %q, %v; want ml default", unit, err)
	}
	if unit, err := service.NormalizeServingUnit(" Schooner "); err != nil || unit != "schooner" {
		t.Fatalf("mixed case unit: got %q, %v", unit, err)
	}
	if _, err := service.NormalizeServingUnit("goblet"); err == nil {
		t.Fatal("expected error for unknown unit on input, got none")
	}
}

func TestServingUnitsOrderedBySize(t *testing.T) {
	t.Parallel()

	units := service.ServingUnits()
	want := []string{"ml", "shot", "stubby", "schooner", "pint"}
	if len(units) != len(want) {
		t.Fatalf("ServingUnits() = %v, want %v", units, want)
	}
	for i := range want {
		if units[i] != want[i] {
			t.Fatalf("ServingUnits() = %v, want %v", units, want)
		}
	}
}
