package model

// Food is a catalog entry giving nutrient density per 100 g. The ID is
// assigned at creation and never changes; rows reference foods by ID so a
// rename needs no sweep over logged days.
type Food struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	KcalPer100g    float64 `json:"kcal_per_100g"`
	ProteinPer100g float64 `json:"protein_per_100g"`
	FatPer100g     float64 `json:"fat_per_100g"`
	CarbPer100g    float64 `json:"carb_per_100g"`
}

// Drink is a catalog entry giving nutrient density per 100 mL. Drinks carry
// no protein/fat fields.
type Drink struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	KcalPer100ml float64 `json:"kcal_per_100ml"`
	CarbPer100ml float64 `json:"carb_per_100ml"`
}

// FoodRow is one logged food consumption. A FoodID that no longer resolves
// against the catalog contributes nothing and displays blank.
type FoodRow struct {
	FoodID string  `json:"food_id"`
	Grams  float64 `json:"grams"`
}

// DrinkRow is one logged drink consumption. Unit names a serving size from
// the fixed table in the service package; effective volume is
// Amount x mL-per-unit.
type DrinkRow struct {
	DrinkID string  `json:"drink_id"`
	Unit    string  `json:"unit"`
	Amount  float64 `json:"amount"`
}

// Day is a dated log, either the single mutable draft or a frozen archive
// entry. Targets is set only on archived days, snapshotting the computed
// targets in effect when the day was saved.
type Day struct {
	Date      string           `json:"date"`
	FoodRows  []FoodRow        `json:"food_rows"`
	DrinkRows []DrinkRow       `json:"drink_rows"`
	Targets   *ComputedTargets `json:"targets,omitempty"`
	// Pinned marks a draft deliberately re-dated to log a past or future
	// day; pinned drafts are exempt from the midnight rollover. Archived
	// days never carry it.
	Pinned bool `json:"pinned,omitempty"`
}

const (
	WeightUnitKg = "kg"
	WeightUnitLb = "lb"
)

// TargetsInput is the user-entered basis for the computed macro targets.
type TargetsInput struct {
	BodyWeight     float64 `json:"body_weight"`
	BodyWeightUnit string  `json:"body_weight_unit"`
	ProteinPerKg   float64 `json:"protein_per_kg"`
	CalorieGoal    float64 `json:"calorie_goal"`
	CarbGoal       float64 `json:"carb_goal"`
}

// ComputedTargets is derived from TargetsInput and never stored on its own,
// only as a snapshot on an archived day.
type ComputedTargets struct {
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbG    float64 `json:"carb_g"`
}

// Sums are the aggregated nutrient totals for one day. Drinks accumulate
// into the alcohol fields only.
type Sums struct {
	FoodKcal     float64 `json:"food_kcal"`
	ProteinG     float64 `json:"protein_g"`
	FatG         float64 `json:"fat_g"`
	CarbG        float64 `json:"carb_g"`
	AlcoholKcal  float64 `json:"alcohol_kcal"`
	AlcoholCarbG float64 `json:"alcohol_carb_g"`
}

func (s Sums) TotalKcal() float64 {
	return s.FoodKcal + s.AlcoholKcal
}

// History maps date (YYYY-MM-DD) to the archived day saved under it.
type History map[string]Day
