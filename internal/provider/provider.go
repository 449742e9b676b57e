// Package provider defines the external suggestion-provider contract: the
// structured payloads sent to the generation model and the responses expected
// back. How the model reasons is out of scope; the contract is strict JSON.
package provider

import (
	"context"

	"github.com/nutriweek/nutriweek/internal/model"
)

// Message is one chat turn sent to the provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SuggestedMeal is one generated meal with a complete nutrient profile.
type SuggestedMeal struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	MealType     string             `json:"meal_type"`
	Calories     float64            `json:"calories"`
	PrepTime     float64            `json:"prepTime"`
	Ingredients  []string           `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Nutrition    model.NutritionMap `json:"nutrition"`
}

// MealPlan is the two-meal response for plan generation.
type MealPlan struct {
	Lunch  *SuggestedMeal `json:"lunch"`
	Dinner *SuggestedMeal `json:"dinner"`
}

// CompletedRecipe is the response for custom-meal completion.
type CompletedRecipe struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	MealType     string             `json:"meal_type"`
	PrepTime     float64            `json:"prepTime"`
	Ingredients  []string           `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Tags         []string           `json:"tags"`
	Nutrition    model.NutritionMap `json:"nutrition"`
}

// NutritionEstimate is the response for manual-entry estimation.
type NutritionEstimate struct {
	Nutrition            model.NutritionMap `json:"nutrition"`
	Ingredients          []string           `json:"ingredients"`
	EstimatedWeightGrams float64            `json:"estimated_weight_grams"`
}

// SuggestionProvider is the external generation collaborator. Every call is a
// bounded blocking round-trip; transport failures and schema-invalid responses
// surface as errors wrapping model.ErrUpstream and are never retried.
type SuggestionProvider interface {
	SuggestMeals(ctx context.Context, messages []Message) (*MealPlan, error)
	CompleteRecipe(ctx context.Context, messages []Message) (*CompletedRecipe, error)
	EstimateNutrition(ctx context.Context, messages []Message) (*NutritionEstimate, error)
}

// HealthPinger is implemented by providers that can verify reachability.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}
