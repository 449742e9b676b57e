package planner

import (
	"time"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
	"github.com/nutriweek/nutriweek/internal/nutrition"
)

// Up to this many stored recipes are summarized for the generation model.
const customMealContextLimit = 12

// Only the most recent logs are shown to the model; the full week already
// flows in through the remaining-needs map.
const recentLogContextSize = 5

// RecentLogSummary is a compact view of one logged meal for prompt context.
type RecentLogSummary struct {
	Meal     string  `json:"meal"`
	Type     string  `json:"type"`
	Calories float64 `json:"calories"`
}

// CustomMealSummary reduces a stored recipe to the fields the generation
// model can act on. Nutrition keeps only the scoring subset to bound prompt
// size.
type CustomMealSummary struct {
	Name        string             `json:"name"`
	MealType    string             `json:"meal_type"`
	CookingTime int                `json:"cooking_time"`
	Tags        []string           `json:"tags"`
	Nutrition   model.NutritionMap `json:"nutrition"`
}

// GenerationContext is everything the prompt builder needs to ask for a meal
// plan: merged preferences, ranked deficits, limit ceilings and today's
// calorie budget.
type GenerationContext struct {
	Preferences    []string
	Restrictions   []string
	FocusLabels    []string
	FocusDetails   []nutrition.FocusDetail
	Remaining      model.NutritionMap
	Limits         []nutrition.LimitGuidance
	CalorieTargets nutrition.CalorieTargets
	RecentLogs     []RecentLogSummary
	CustomMeals    []CustomMealSummary
}

// BuildGenerationContext assembles the generation context from one consistent
// weekly snapshot. Request preferences replace stored ones when non-empty;
// request restrictions are appended to stored ones, never replacing them.
func BuildGenerationContext(
	cat *catalog.Catalog,
	req model.GenerationRequest,
	targets model.NutritionMap,
	totals model.NutritionMap,
	entries []*model.MealLogEntry,
	weekStart time.Time,
	today time.Time,
	stored model.UserPreferences,
	customMeals []*model.CustomMeal,
) GenerationContext {
	preferred := req.Preferences
	if len(preferred) == 0 {
		preferred = stored.PreferredIngredients
	}
	restrictions := append(append([]string{}, stored.DietaryRestrictions...), req.Restrictions...)

	gaps := nutrition.AnalyzeGaps(cat, targets, totals)
	labels := make([]string, 0, len(gaps.Focus))
	for _, f := range gaps.Focus {
		labels = append(labels, f.Label)
	}

	weeklyCalories := targets["calories"]
	ctx := GenerationContext{
		Preferences:    preferred,
		Restrictions:   restrictions,
		FocusLabels:    labels,
		FocusDetails:   gaps.FocusDetails,
		Remaining:      gaps.Remaining,
		Limits:         gaps.Limits,
		CalorieTargets: nutrition.DailyCalorieTargets(weeklyCalories, totals["calories"], weekStart, today),
	}

	start := len(entries) - recentLogContextSize
	if start < 0 {
		start = 0
	}
	for _, e := range entries[start:] {
		ctx.RecentLogs = append(ctx.RecentLogs, RecentLogSummary{
			Meal:     e.MealName,
			Type:     e.MealType,
			Calories: e.Calories,
		})
	}

	for _, m := range customMeals {
		reduced := make(model.NutritionMap, len(catalog.ScoringNutrients))
		for _, key := range catalog.ScoringNutrients {
			reduced[key] = m.Nutrition[key]
		}
		ctx.CustomMeals = append(ctx.CustomMeals, CustomMealSummary{
			Name:        m.Name,
			MealType:    m.MealType,
			CookingTime: m.CookingTime,
			Tags:        m.Tags,
			Nutrition:   reduced,
		})
	}
	return ctx
}
