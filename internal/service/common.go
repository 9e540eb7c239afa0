package service

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func validateFinite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number", name)
	}
	return nil
}

func validateNonNegative(name string, value float64) error {
	if err := validateFinite(name, value); err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validatePositive(name string, value float64) error {
	if err := validateFinite(name, value); err != nil {
		return err
	}
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

func validateDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if !datePattern.MatchString(date) {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}
