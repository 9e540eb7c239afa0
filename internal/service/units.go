package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/carnitrack/carnitrack/internal/model"
)

// Serving units for drink rows. Container sizes are fixed configuration,
// not computed.
var servingUnits = map[string]float64{
	"ml":       1,
	"shot":     30,
	"stubby":   375,
	"schooner": 425,
	"pint":     570,
}

const defaultServingUnit = "ml"

// ServingUnits lists the known unit names, raw mL first, then by size.
func ServingUnits() []string {
	names := make([]string, 0, len(servingUnits))
	for name := range servingUnits {
		if name != defaultServingUnit {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return servingUnits[names[i]] < servingUnits[names[j]] })
	return append([]string{defaultServingUnit}, names...)
}

func NormalizeServingUnit(unit string) (string, error) {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		return defaultServingUnit, nil
	}
	if _, ok := servingUnits[u]; !ok {
		return "", fmt.Errorf("unknown serving unit %q (known: %s)", unit, strings.Join(ServingUnits(), ", "))
	}
	return u, nil
}

// EffectiveVolumeMl converts a drink row to its volume in mL. There is no
// error path: an unknown unit is treated as raw mL and a missing or
// non-finite amount as zero.
func EffectiveVolumeMl(row model.DrinkRow) float64 {
	amount := row.Amount
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		amount = 0
	}
	factor, ok := servingUnits[strings.ToLower(strings.TrimSpace(row.Unit))]
	if !ok {
		factor = 1
	}
	return amount * factor
}
