package store

import (
	"github.com/google/uuid"

	"github.com/carnitrack/carnitrack/internal/model"
)

// Built-in catalogs installed when no persisted record exists. Values are
// per 100 g (foods) and per 100 mL (drinks).

func seedFoods() []model.Food {
	return []model.Food{
		{ID: uuid.NewString(), Name: "Ribeye", KcalPer100g: 291, ProteinPer100g: 24, FatPer100g: 21.8, CarbPer100g: 0},
		{ID: uuid.NewString(), Name: "Scotch fillet", KcalPer100g: 280, ProteinPer100g: 24, FatPer100g: 20, CarbPer100g: 0},
		{ID: uuid.NewString(), Name: "T-bone", KcalPer100g: 247, ProteinPer100g: 24, FatPer100g: 16.6, CarbPer100g: 0},
		{ID: uuid.NewString(), Name: "Minced beef", KcalPer100g: 250, ProteinPer100g: 20, FatPer100g: 19, CarbPer100g: 0},
		{ID: uuid.NewString(), Name: "Eggs (whole)", KcalPer100g: 143, ProteinPer100g: 13, FatPer100g: 9.5, CarbPer100g: 0.7},
		{ID: uuid.NewString(), Name: "Salmon", KcalPer100g: 208, ProteinPer100g: 20, FatPer100g: 13, CarbPer100g: 0},
		{ID: uuid.NewString(), Name: "Butter", KcalPer100g: 717, ProteinPer100g: 0.9, FatPer100g: 81, CarbPer100g: 0.1},
	}
}

func seedDrinks() []model.Drink {
	return []model.Drink{
		{ID: uuid.NewString(), Name: "Beer", KcalPer100ml: 43, CarbPer100ml: 3.6},
		{ID: uuid.NewString(), Name: "Dry red wine", KcalPer100ml: 85, CarbPer100ml: 2.6},
		{ID: uuid.NewString(), Name: "Whisky", KcalPer100ml: 250, CarbPer100ml: 0},
	}
}
