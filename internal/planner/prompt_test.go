package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
	"github.com/nutriweek/nutriweek/internal/nutrition"
)

func TestBuildPlanMessages(t *testing.T) {
	cat := catalog.Default()
	weekStart := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	genCtx := BuildGenerationContext(cat, model.GenerationRequest{},
		cat.DefaultWeeklyTargets(), nutrition.SumTotals(cat, nil), nil,
		weekStart, weekStart, catalog.DefaultPreferences(), nil)

	messages, err := buildPlanMessages(genCtx)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "system", messages[0].Role)
	assert.Contains(t, messages[0].Content, "clinical nutritionist and chef")

	assert.Equal(t, "user", messages[1].Role)
	user := messages[1].Content
	assert.Contains(t, user, "Focus especially on: "+genCtx.FocusLabels[0])
	assert.Contains(t, user, "Treat their remaining buffers as ceilings, not goals.")
	assert.Contains(t, user, "Sodium (stay under 14000mg, ~14000mg remaining)")
	assert.Contains(t, user, "\"remaining_needs\"")
	assert.Contains(t, user, "\"limit_nutrients\"")
	assert.Contains(t, user, "\"lunch_calories\": 1050")
}

func TestBuildPlanMessagesFallbacks(t *testing.T) {
	// No focus and no limits: both prompt clauses fall back to generic text.
	genCtx := GenerationContext{
		Remaining:      model.NutritionMap{},
		CalorieTargets: nutrition.CalorieTargets{Lunch: 600, Dinner: 700},
	}

	messages, err := buildPlanMessages(genCtx)
	require.NoError(t, err)

	user := messages[1].Content
	assert.Contains(t, user, "Focus especially on: balanced coverage.")
	assert.Contains(t, user, "Avoid pushing upper-limit nutrients: standard upper limits.")
}

func TestBuildRecipeMessages(t *testing.T) {
	cuisine := "thai"
	messages, err := buildRecipeMessages(model.CustomMealRequest{
		Name:                 "Green curry",
		BaseDescription:      "a light curry",
		MealType:             "dinner",
		PreferredIngredients: []string{"chicken"},
		CookingTime:          35,
		Cuisine:              &cuisine,
	})
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Contains(t, messages[0].Content, "culinary R&D chef")
	assert.Contains(t, messages[1].Content, "ready-to-cook recipe")
	assert.Contains(t, messages[1].Content, "\"name\": \"Green curry\"")
	assert.Contains(t, messages[1].Content, "\"cuisine\": \"thai\"")
}

func TestBuildEstimateMessages(t *testing.T) {
	messages := buildEstimateMessages(model.ManualMealRequest{
		MealName:          "Pad thai",
		MealType:          "dinner",
		Description:       "takeout noodles with shrimp",
		ApproximateWeight: "400g",
	})
	require.Len(t, messages, 2)

	assert.Contains(t, messages[0].Content, "registered dietitian")
	assert.Contains(t, messages[1].Content, "Meal name: Pad thai")
	assert.Contains(t, messages[1].Content, "Approximate portion/weight: 400g")
}
