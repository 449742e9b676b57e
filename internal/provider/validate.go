package provider

import (
	"fmt"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
)

// CheckProfile verifies that a nutrition profile carries every catalog key.
// The provider contract marks all keys required; a hole here means the
// response violated its schema and must not be defaulted away.
func CheckProfile(cat *catalog.Catalog, n model.NutritionMap) error {
	if n == nil {
		return fmt.Errorf("nutrition profile missing")
	}
	for _, key := range cat.Keys() {
		if _, ok := n[key]; !ok {
			return fmt.Errorf("nutrition profile missing required key %q", key)
		}
	}
	return nil
}

// CheckMealPlan verifies the two-meal plan response shape.
func CheckMealPlan(cat *catalog.Catalog, p *MealPlan) error {
	if p == nil || p.Lunch == nil || p.Dinner == nil {
		return fmt.Errorf("meal plan must contain both lunch and dinner")
	}
	if err := CheckProfile(cat, p.Lunch.Nutrition); err != nil {
		return fmt.Errorf("lunch: %w", err)
	}
	if err := CheckProfile(cat, p.Dinner.Nutrition); err != nil {
		return fmt.Errorf("dinner: %w", err)
	}
	return nil
}
