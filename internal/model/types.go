package model

import "time"

// NutritionMap holds per-nutrient amounts keyed by catalog nutrient key.
type NutritionMap map[string]float64

// Clone returns a copy of the map. A nil map clones to an empty one.
func (n NutritionMap) Clone() NutritionMap {
	out := make(NutritionMap, len(n))
	for k, v := range n {
		out[k] = v
	}
	return out
}

// MealLogEntry is a logged meal for one day. OverrideNutrition, when present,
// takes precedence per key over BaseNutrition for every downstream computation.
type MealLogEntry struct {
	ID                string       `json:"id"`
	MealName          string       `json:"meal_name"`
	MealType          string       `json:"meal_type"`
	Calories          float64      `json:"calories"`
	BaseNutrition     NutritionMap `json:"nutrition"`
	OverrideNutrition NutritionMap `json:"override_nutrition,omitempty"`
	MealDate          string       `json:"meal_date"`
	MealTime          string       `json:"meal_time"`
	WasSuggested      bool         `json:"was_suggested"`
	Notes             *string      `json:"notes,omitempty"`
	CreationTime      time.Time    `json:"creation_time"`
}

// UserPreferences is the latest saved preference record, or defaults when
// nothing has been saved yet.
type UserPreferences struct {
	PreferredIngredients  []string `json:"preferred_ingredients"`
	DietaryRestrictions   []string `json:"dietary_restrictions"`
	CookingTimePreference int      `json:"cooking_time_preference"`
	MealComplexity        string   `json:"meal_complexity"`
}

// CustomMeal is a user- or AI-authored recipe. Immutable once stored.
type CustomMeal struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	MealType     string       `json:"meal_type"`
	CookingTime  int          `json:"cooking_time"`
	Ingredients  []string     `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	Tags         []string     `json:"tags"`
	Nutrition    NutritionMap `json:"nutrition"`
	CreationTime time.Time    `json:"creation_time"`
}

// MealLogRequest is the inbound payload for logging a meal.
type MealLogRequest struct {
	MealName     string       `json:"meal_name"`
	MealType     string       `json:"meal_type"`
	Calories     float64      `json:"calories"`
	Nutrition    NutritionMap `json:"nutrition"`
	MealDate     string       `json:"meal_date,omitempty"`
	MealTime     string       `json:"meal_time,omitempty"`
	WasSuggested bool         `json:"was_suggested"`
	Notes        *string      `json:"notes,omitempty"`
}

// GenerationRequest carries per-request preference overrides for plan generation.
type GenerationRequest struct {
	Preferences  []string `json:"preferences"`
	Restrictions []string `json:"restrictions"`
}

// CustomMealRequest describes a meal concept to be completed into a full recipe.
type CustomMealRequest struct {
	Name                 string   `json:"name"`
	BaseDescription      string   `json:"base_description"`
	MealType             string   `json:"meal_type"`
	PreferredIngredients []string `json:"preferred_ingredients"`
	AvoidIngredients     []string `json:"avoid_ingredients"`
	CookingTime          int      `json:"cooking_time"`
	Cuisine              *string  `json:"cuisine,omitempty"`
	NutritionFocus       []string `json:"nutrition_focus"`
	DietaryNotes         *string  `json:"dietary_notes,omitempty"`
}

// ManualMealRequest describes a meal whose nutrition should be estimated
// from free text before logging.
type ManualMealRequest struct {
	MealName          string `json:"meal_name"`
	MealType          string `json:"meal_type"`
	Description       string `json:"description"`
	ApproximateWeight string `json:"approximate_weight"`
	MealDate          string `json:"meal_date,omitempty"`
	MealTime          string `json:"meal_time,omitempty"`
}

// ListLogsRequest captures filters used when listing log entries.
type ListLogsRequest struct {
	Limit  int
	Days   int
	Offset int
}
