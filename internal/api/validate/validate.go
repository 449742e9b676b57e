// Package validate holds request validation for the planner API. All
// failures wrap model.ErrValidation so the transport layer can map them to
// 400 without inspecting messages.
package validate

import (
	"fmt"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", model.ErrValidation, fmt.Sprintf(format, args...))
}

func NonEmpty(field, v string) error {
	if v == "" {
		return invalid("%s is required", field)
	}
	return nil
}

// Nutrition rejects negative amounts. Unknown keys pass through untouched;
// aggregation simply ignores keys the catalog does not track.
func Nutrition(n model.NutritionMap) error {
	for key, v := range n {
		if v < 0 {
			return invalid("nutrition value for %s must not be negative", key)
		}
	}
	return nil
}

// MealLog validates an inbound log request.
func MealLog(req *model.MealLogRequest) error {
	if err := NonEmpty("meal_name", req.MealName); err != nil {
		return err
	}
	if err := NonEmpty("meal_type", req.MealType); err != nil {
		return err
	}
	if req.Calories < 0 {
		return invalid("calories must not be negative")
	}
	return Nutrition(req.Nutrition)
}

// Override validates an override patch. Keys must be tracked nutrients so a
// typo cannot silently create dead data.
func Override(cat *catalog.Catalog, override model.NutritionMap) error {
	for key, v := range override {
		if !cat.Has(key) {
			return invalid("unknown nutrient %q", key)
		}
		if v < 0 {
			return invalid("nutrition value for %s must not be negative", key)
		}
	}
	return nil
}

// Preferences validates a preference payload.
func Preferences(p *model.UserPreferences) error {
	if p.CookingTimePreference <= 0 {
		return invalid("cooking_time_preference must be positive")
	}
	if err := NonEmpty("meal_complexity", p.MealComplexity); err != nil {
		return err
	}
	return nil
}

// CustomMeal validates a custom-meal concept.
func CustomMeal(req *model.CustomMealRequest) error {
	if err := NonEmpty("name", req.Name); err != nil {
		return err
	}
	if err := NonEmpty("base_description", req.BaseDescription); err != nil {
		return err
	}
	if err := NonEmpty("meal_type", req.MealType); err != nil {
		return err
	}
	if req.CookingTime <= 0 {
		return invalid("cooking_time must be positive")
	}
	return nil
}

// ManualMeal validates a manual-entry estimation request.
func ManualMeal(req *model.ManualMealRequest) error {
	if err := NonEmpty("meal_name", req.MealName); err != nil {
		return err
	}
	if err := NonEmpty("meal_type", req.MealType); err != nil {
		return err
	}
	if err := NonEmpty("description", req.Description); err != nil {
		return err
	}
	return NonEmpty("approximate_weight", req.ApproximateWeight)
}

// ListLogsQuery bounds listing parameters, applying defaults for zero values.
func ListLogsQuery(req *model.ListLogsRequest) error {
	if req.Limit == 0 {
		req.Limit = 10
	}
	if req.Days == 0 {
		req.Days = 7
	}
	if req.Limit < 1 || req.Limit > 100 {
		return invalid("limit must be between 1 and 100")
	}
	if req.Days < 1 || req.Days > 36500 {
		return invalid("days must be between 1 and 36500")
	}
	if req.Offset < 0 {
		return invalid("offset must not be negative")
	}
	return nil
}
