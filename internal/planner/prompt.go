package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nutriweek/nutriweek/internal/model"
	"github.com/nutriweek/nutriweek/internal/provider"
)

const plannerSystemPrompt = "You are a clinical nutritionist and chef. Create simple, achievable recipes " +
	"with supermarket ingredients, adapting to user preferences, restrictions, " +
	"and nutrient deficits. Always provide precise nutrition details."

const recipeSystemPrompt = "You are a culinary R&D chef and registered dietitian. " +
	"Transform rough meal ideas into complete, well-balanced recipes " +
	"with precise nutrition data."

const estimatorSystemPrompt = "You are a registered dietitian. Estimate complete nutrition facts for meals " +
	"based on a user's description and portion size. Return precise macronutrients, " +
	"vitamins, minerals, and calories."

// planPromptData is the JSON context block embedded in the plan user prompt.
type planPromptData struct {
	RemainingNeeds model.NutritionMap  `json:"remaining_needs"`
	Preferences    []string            `json:"preferences"`
	Restrictions   []string            `json:"restrictions"`
	CustomMeals    []CustomMealSummary `json:"custom_meals"`
	RecentLogs     []RecentLogSummary  `json:"recent_logs"`
	Targets        struct {
		LunchCalories  float64 `json:"lunch_calories"`
		DinnerCalories float64 `json:"dinner_calories"`
	} `json:"targets"`
	LimitNutrients []limitPromptEntry `json:"limit_nutrients"`
}

type limitPromptEntry struct {
	Key             string  `json:"key"`
	Label           string  `json:"label"`
	Unit            string  `json:"unit"`
	RemainingBuffer float64 `json:"remaining_buffer"`
	Max             float64 `json:"max"`
	Current         float64 `json:"current"`
}

// buildPlanMessages renders the meal-plan prompt. Focus nutrients steer the
// model toward deficits; limit nutrients are named explicitly as ceilings so
// the model does not treat their remaining buffers as goals.
func buildPlanMessages(ctx GenerationContext) ([]provider.Message, error) {
	data := planPromptData{
		RemainingNeeds: ctx.Remaining,
		Preferences:    ctx.Preferences,
		Restrictions:   ctx.Restrictions,
		CustomMeals:    ctx.CustomMeals,
		RecentLogs:     ctx.RecentLogs,
	}
	data.Targets.LunchCalories = ctx.CalorieTargets.Lunch
	data.Targets.DinnerCalories = ctx.CalorieTargets.Dinner
	for _, l := range ctx.Limits {
		data.LimitNutrients = append(data.LimitNutrients, limitPromptEntry{
			Key:             l.Key,
			Label:           l.Label,
			Unit:            l.Unit,
			RemainingBuffer: l.RemainingBuffer,
			Max:             l.Ceiling,
			Current:         l.Current,
		})
	}

	blob, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal generation context: %w", err)
	}

	focusText := strings.Join(ctx.FocusLabels, ", ")
	if focusText == "" {
		focusText = "balanced coverage"
	}

	var limitParts []string
	for _, l := range ctx.Limits {
		limitParts = append(limitParts, fmt.Sprintf("%s (stay under %v%s, ~%v%s remaining)",
			l.Label, l.Ceiling, l.Unit, l.RemainingBuffer, l.Unit))
	}
	limitText := strings.Join(limitParts, ", ")
	if limitText == "" {
		limitText = "standard upper limits"
	}

	userPrompt := "Plan two nourishing meals (lunch and dinner) for today's nutrition gaps.\n" +
		fmt.Sprintf("Focus especially on: %s.\n", focusText) +
		fmt.Sprintf("Avoid pushing upper-limit nutrients: %s. Treat their remaining buffers as ceilings, not goals.\n", limitText) +
		"Use the provided JSON data as the single source of truth and respond with JSON only." +
		"\n\nDATA:\n" + string(blob)

	return []provider.Message{
		{Role: "system", Content: plannerSystemPrompt},
		{Role: "user", Content: userPrompt},
	}, nil
}

// buildRecipeMessages renders the custom-meal completion prompt.
func buildRecipeMessages(req model.CustomMealRequest) ([]provider.Message, error) {
	blob, err := json.MarshalIndent(map[string]interface{}{
		"name":                  req.Name,
		"meal_type":             req.MealType,
		"base_description":      req.BaseDescription,
		"preferred_ingredients": req.PreferredIngredients,
		"avoid_ingredients":     req.AvoidIngredients,
		"cuisine":               req.Cuisine,
		"cooking_time":          req.CookingTime,
		"nutrition_focus":       req.NutritionFocus,
		"dietary_notes":         req.DietaryNotes,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal recipe request: %w", err)
	}
	return []provider.Message{
		{Role: "system", Content: recipeSystemPrompt},
		{Role: "user", Content: "Convert this user meal concept into a ready-to-cook recipe. " +
			"Keep ingredients accessible, minimize prep complexity, and describe " +
			"clear cooking instructions. Output only JSON matching the schema." +
			"\n\nDATA:\n" + string(blob)},
	}, nil
}

// buildEstimateMessages renders the manual-entry estimation prompt.
func buildEstimateMessages(req model.ManualMealRequest) []provider.Message {
	userPrompt := fmt.Sprintf(
		"Meal name: %s\nMeal type: %s\nDescription: %s\nApproximate portion/weight: %s\n"+
			"Respond with JSON only that matches the provided schema.",
		req.MealName, req.MealType, req.Description, req.ApproximateWeight)
	return []provider.Message{
		{Role: "system", Content: estimatorSystemPrompt},
		{Role: "user", Content: userPrompt},
	}
}
