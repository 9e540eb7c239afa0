package service_test

import (
	"testing"

	"github.com/carnitrack/carnitrack/internal/service"
)

func TestDoctorCleanStore(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	report, err := service.Doctor(st)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !report.Clean() {
		t.Fatalf("fresh store should be clean: %+v", report)
	}
	if report.ArchivedDays != 0 {
		t.Fatalf("fresh store has no archive, got %d days", report.ArchivedDays)
	}
}

func TestDoctorCountsDanglingRows(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	food, err := service.AddFood(st, service.AddFoodInput{Name: "Gone soon", KcalPer100g: 100})
	if err != nil {
		t.Fatalf("add food: %v", err)
	}
	if _, err := service.AddFoodRow(st, food.ID, 150); err != nil {
		t.Fatalf("add row: %v", err)
	}
	if _, err := service.SaveDay(st); err != nil {
		t.Fatalf("save day: %v", err)
	}
	if err := service.DeleteFood(st, food.ID); err != nil {
		t.Fatalf("delete food: %v", err)
	}

	report, err := service.Doctor(st)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	// The row dangles in both the draft and the archived copy.
	if report.DanglingFoodRows != 2 {
		t.Fatalf("dangling food rows = %d, want 2: %+v", report.DanglingFoodRows, report)
	}
	if report.ArchivedDays != 1 {
		t.Fatalf("archived days = %d, want 1", report.ArchivedDays)
	}
	if report.Clean() {
		t.Fatal("report with dangling rows must not be clean")
	}
}
