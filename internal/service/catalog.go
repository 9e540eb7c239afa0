package service

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/carnitrack/carnitrack/internal/model"
	"github.com/carnitrack/carnitrack/internal/store"
)

type AddFoodInput struct {
	Name           string
	KcalPer100g    float64
	ProteinPer100g float64
	FatPer100g     float64
	CarbPer100g    float64
}

func AddFood(st *store.Store, in AddFoodInput) (model.Food, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Food{}, fmt.Errorf("food name is required")
	}
	if err := validateFoodNutrients(in.KcalPer100g, in.ProteinPer100g, in.FatPer100g, in.CarbPer100g); err != nil {
		return model.Food{}, err
	}
	foods, err := st.LoadFoods()
	if err != nil {
		return model.Food{}, err
	}
	if _, exists := model.FoodByName(foods, name); exists {
		return model.Food{}, fmt.Errorf("food %q already exists", name)
	}
	food := model.Food{
		ID:             uuid.NewString(),
		Name:           name,
		KcalPer100g:    in.KcalPer100g,
		ProteinPer100g: in.ProteinPer100g,
		FatPer100g:     in.FatPer100g,
		CarbPer100g:    in.CarbPer100g,
	}
	foods = append(foods, food)
	sortFoods(foods)
	if err := st.SaveFoods(foods); err != nil {
		return model.Food{}, err
	}
	return food, nil
}

type UpdateFoodInput struct {
	ID             string
	Name           string
	KcalPer100g    float64
	ProteinPer100g float64
	FatPer100g     float64
	CarbPer100g    float64
}

// UpdateFood may rename an entry. Rows reference foods by immutable ID, so
// no sweep over the draft or history is needed for the rename to take
// effect everywhere.
func UpdateFood(st *store.Store, in UpdateFoodInput) (model.Food, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Food{}, fmt.Errorf("food name is required")
	}
	if err := validateFoodNutrients(in.KcalPer100g, in.ProteinPer100g, in.FatPer100g, in.CarbPer100g); err != nil {
		return model.Food{}, err
	}
	foods, err := st.LoadFoods()
	if err != nil {
		return model.Food{}, err
	}
	idx := -1
	for i := range foods {
		if foods[i].ID == in.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Food{}, fmt.Errorf("food %q not found", in.ID)
	}
	if other, exists := model.FoodByName(foods, name); exists && other.ID != in.ID {
		return model.Food{}, fmt.Errorf("food %q already exists", name)
	}
	foods[idx].Name = name
	foods[idx].KcalPer100g = in.KcalPer100g
	foods[idx].ProteinPer100g = in.ProteinPer100g
	foods[idx].FatPer100g = in.FatPer100g
	foods[idx].CarbPer100g = in.CarbPer100g
	updated := foods[idx]
	sortFoods(foods)
	if err := st.SaveFoods(foods); err != nil {
		return model.Food{}, err
	}
	return updated, nil
}

// DeleteFood removes a catalog entry. Rows that referenced it keep their
// quantity; the dangling ID resolves to a blank name and a zero
// contribution from then on.
func DeleteFood(st *store.Store, id string) error {
	foods, err := st.LoadFoods()
	if err != nil {
		return err
	}
	kept := foods[:0]
	found := false
	for _, f := range foods {
		if f.ID == id {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return fmt.Errorf("food %q not found", id)
	}
	return st.SaveFoods(kept)
}

func ListFoods(st *store.Store) ([]model.Food, error) {
	foods, err := st.LoadFoods()
	if err != nil {
		return nil, err
	}
	sortFoods(foods)
	return foods, nil
}

type AddDrinkInput struct {
	Name         string
	KcalPer100ml float64
	CarbPer100ml float64
}

func AddDrink(st *store.Store, in AddDrinkInput) (model.Drink, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Drink{}, fmt.Errorf("drink name is required")
	}
	if err := validateDrinkNutrients(in.KcalPer100ml, in.CarbPer100ml); err != nil {
		return model.Drink{}, err
	}
	drinks, err := st.LoadDrinks()
	if err != nil {
		return model.Drink{}, err
	}
	if _, exists := model.DrinkByName(drinks, name); exists {
		return model.Drink{}, fmt.Errorf("drink %q already exists", name)
	}
	drink := model.Drink{
		ID:           uuid.NewString(),
		Name:         name,
		KcalPer100ml: in.KcalPer100ml,
		CarbPer100ml: in.CarbPer100ml,
	}
	drinks = append(drinks, drink)
	sortDrinks(drinks)
	if err := st.SaveDrinks(drinks); err != nil {
		return model.Drink{}, err
	}
	return drink, nil
}

type UpdateDrinkInput struct {
	ID           string
	Name         string
	KcalPer100ml float64
	CarbPer100ml float64
}

func UpdateDrink(st *store.Store, in UpdateDrinkInput) (model.Drink, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Drink{}, fmt.Errorf("drink name is required")
	}
	if err := validateDrinkNutrients(in.KcalPer100ml, in.CarbPer100ml); err != nil {
		return model.Drink{}, err
	}
	drinks, err := st.LoadDrinks()
	if err != nil {
		return model.Drink{}, err
	}
	idx := -1
	for i := range drinks {
		if drinks[i].ID == in.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Drink{}, fmt.Errorf("drink %q not found", in.ID)
	}
	if other, exists := model.DrinkByName(drinks, name); exists && other.ID != in.ID {
		return model.Drink{}, fmt.Errorf("drink %q already exists", name)
	}
	drinks[idx].Name = name
	drinks[idx].KcalPer100ml = in.KcalPer100ml
	drinks[idx].CarbPer100ml = in.CarbPer100ml
	updated := drinks[idx]
	sortDrinks(drinks)
	if err := st.SaveDrinks(drinks); err != nil {
		return model.Drink{}, err
	}
	return updated, nil
}

func DeleteDrink(st *store.Store, id string) error {
	drinks, err := st.LoadDrinks()
	if err != nil {
		return err
	}
	kept := drinks[:0]
	found := false
	for _, d := range drinks {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return fmt.Errorf("drink %q not found", id)
	}
	return st.SaveDrinks(kept)
}

func ListDrinks(st *store.Store) ([]model.Drink, error) {
	drinks, err := st.LoadDrinks()
	if err != nil {
		return nil, err
	}
	sortDrinks(drinks)
	return drinks, nil
}

// CatalogGroup is one first-letter display bucket. Names that do not start
// with a letter fall into the "#" bucket.
type CatalogGroup struct {
	Letter string
	Names  []string
}

func GroupNamesByLetter(names []string) []CatalogGroup {
	buckets := map[string][]string{}
	for _, name := range names {
		letter := "#"
		for _, r := range name {
			if unicode.IsLetter(r) {
				letter = strings.ToUpper(string(r))
			}
			break
		}
		buckets[letter] = append(buckets[letter], name)
	}
	letters := make([]string, 0, len(buckets))
	for letter := range buckets {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	groups := make([]CatalogGroup, 0, len(letters))
	for _, letter := range letters {
		groups = append(groups, CatalogGroup{Letter: letter, Names: buckets[letter]})
	}
	return groups
}

func validateFoodNutrients(kcal, protein, fat, carb float64) error {
	if err := validateNonNegative("kcal per 100g", kcal); err != nil {
		return err
	}
	if err := validateNonNegative("protein per 100g", protein); err != nil {
		return err
	}
	if err := validateNonNegative("fat per 100g", fat); err != nil {
		return err
	}
	return validateNonNegative("carb per 100g", carb)
}

func validateDrinkNutrients(kcal, carb float64) error {
	if err := validateNonNegative("kcal per 100ml", kcal); err != nil {
		return err
	}
	return validateNonNegative("carb per 100ml", carb)
}

func sortFoods(foods []model.Food) {
	sort.Slice(foods, func(i, j int) bool {
		return strings.ToLower(foods[i].Name) < strings.ToLower(foods[j].Name)
	})
}

func sortDrinks(drinks []model.Drink) {
	sort.Slice(drinks, func(i, j int) bool {
		return strings.ToLower(drinks[i].Name) < strings.ToLower(drinks[j].Name)
	})
}
