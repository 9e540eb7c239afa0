package model

import "strings"

func FoodByID(foods []Food, id string) (Food, bool) {
	for _, f := range foods {
		if f.ID == id && id != "" {
			return f, true
		}
	}
	return Food{}, false
}

func DrinkByID(drinks []Drink, id string) (Drink, bool) {
	for _, d := range drinks {
		if d.ID == id && id != "" {
			return d, true
		}
	}
	return Drink{}, false
}

// FoodByName matches case-insensitively; names are unique under that rule.
func FoodByName(foods []Food, name string) (Food, bool) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return Food{}, false
	}
	for _, f := range foods {
		if strings.ToLower(f.Name) == name {
			return f, true
		}
	}
	return Food{}, false
}

func DrinkByName(drinks []Drink, name string) (Drink, bool) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return Drink{}, false
	}
	for _, d := range drinks {
		if strings.ToLower(d.Name) == name {
			return d, true
		}
	}
	return Drink{}, false
}
