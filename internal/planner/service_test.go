package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
	"github.com/nutriweek/nutriweek/internal/provider"
)

// Wednesday afternoon; the week starts Monday 2026-08-24.
var testNow = time.Date(2026, time.August, 26, 13, 45, 0, 0, time.UTC)

func newTestService(st *memStore, prov *mockProvider) *Service {
	return New(catalog.Default(), st, prov, zerolog.Nop()).
		WithClock(func() time.Time { return testNow })
}

func fullNutrition(cat *catalog.Catalog) model.NutritionMap {
	out := make(model.NutritionMap, cat.Len())
	for _, key := range cat.Keys() {
		out[key] = 1
	}
	return out
}

func TestWeeklyProgressEmptyWeek(t *testing.T) {
	svc := newTestService(newMemStore(), &mockProvider{})

	progress, err := svc.WeeklyProgress(context.Background())
	require.NoError(t, err)

	assert.Len(t, progress, catalog.Default().Len())
	assert.Equal(t, 0.0, progress["calories"].Current)
	assert.Equal(t, 14000.0, progress["calories"].Target)
}

func TestWeeklyProgressCountsOnlyThisWeek(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, &mockProvider{})
	ctx := context.Background()

	_, err := svc.LogMeal(ctx, model.MealLogRequest{
		MealName: "in week", MealType: "lunch", Calories: 500,
		Nutrition: model.NutritionMap{"calories": 500}, MealDate: "2026-08-25",
	})
	require.NoError(t, err)
	_, err = svc.LogMeal(ctx, model.MealLogRequest{
		MealName: "last week", MealType: "lunch", Calories: 999,
		Nutrition: model.NutritionMap{"calories": 999}, MealDate: "2026-08-20",
	})
	require.NoError(t, err)

	progress, err := svc.WeeklyProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 500.0, progress["calories"].Current)
}

func TestLogMealDefaults(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, &mockProvider{})

	entry, err := svc.LogMeal(context.Background(), model.MealLogRequest{
		MealName:  "Oatmeal",
		MealType:  "breakfast",
		Calories:  250,
		Nutrition: model.NutritionMap{"fiber": 6},
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-26", entry.MealDate)
	assert.Equal(t, "13:45", entry.MealTime)
	// Calories are mirrored into the profile when absent.
	assert.Equal(t, 250.0, entry.BaseNutrition["calories"])
	assert.Equal(t, 6.0, entry.BaseNutrition["fiber"])
}

func TestLogMealKeepsExplicitProfileCalories(t *testing.T) {
	svc := newTestService(newMemStore(), &mockProvider{})

	entry, err := svc.LogMeal(context.Background(), model.MealLogRequest{
		MealName:  "Salad",
		MealType:  "lunch",
		Calories:  300,
		Nutrition: model.NutritionMap{"calories": 280},
	})
	require.NoError(t, err)
	assert.Equal(t, 280.0, entry.BaseNutrition["calories"])
	assert.Equal(t, 300.0, entry.Calories)
}

func TestGenerateMealPlan(t *testing.T) {
	cat := catalog.Default()
	plan := &provider.MealPlan{
		Lunch:  &provider.SuggestedMeal{Name: "Lentil salad", MealType: "lunch", Nutrition: fullNutrition(cat)},
		Dinner: &provider.SuggestedMeal{Name: "Salmon bowl", MealType: "dinner", Nutrition: fullNutrition(cat)},
	}
	prov := &mockProvider{plan: plan}
	svc := newTestService(newMemStore(), prov)

	got, err := svc.GenerateMealPlan(context.Background(), model.GenerationRequest{})
	require.NoError(t, err)

	assert.Equal(t, "Lentil salad", got.Lunch.Name)
	assert.Equal(t, "Salmon bowl", got.Dinner.Name)
	assert.Len(t, got.Focus.Labels, 5)
	assert.Len(t, got.Focus.Deficits, 5)
	assert.Len(t, got.Remaining, cat.Len())
	assert.Equal(t, testNow, got.GeneratedAt)
	// Wednesday with nothing eaten: 14000 over 4 remaining days caps at 135%.
	assert.Equal(t, 1215.0, got.CalorieTargets.Lunch)
	assert.Equal(t, 1485.0, got.CalorieTargets.Dinner)

	require.Len(t, prov.lastMessages, 2)
	assert.Contains(t, prov.lastMessages[1].Content, "chicken")
}

func TestGenerateMealPlanProviderErrorSurfaces(t *testing.T) {
	provErr := errors.New("upstream provider error: status 503")
	svc := newTestService(newMemStore(), &mockProvider{err: provErr})

	_, err := svc.GenerateMealPlan(context.Background(), model.GenerationRequest{})
	assert.ErrorIs(t, err, provErr)
}

func TestCreateCustomMealDefaultsFromRequest(t *testing.T) {
	cat := catalog.Default()
	prov := &mockProvider{recipe: &provider.CompletedRecipe{
		Name:         "Green curry",
		Description:  "light curry",
		Ingredients:  []string{"a", "b", "c", "d", "e"},
		Instructions: []string{"1", "2", "3", "4"},
		Nutrition:    fullNutrition(cat),
	}}
	st := newMemStore()
	svc := newTestService(st, prov)

	got, err := svc.CreateCustomMeal(context.Background(), model.CustomMealRequest{
		Name:            "Green curry",
		BaseDescription: "a light curry",
		MealType:        "dinner",
		CookingTime:     35,
	})
	require.NoError(t, err)

	// Missing provider fields fall back to the request.
	assert.Equal(t, "dinner", got.Meal.MealType)
	assert.Equal(t, 35, got.Meal.CookingTime)
	assert.Equal(t, []string{}, got.Meal.Tags)
	assert.NotEmpty(t, got.Meal.ID)
	require.Len(t, st.meals, 1)
}

func TestLogManualMeal(t *testing.T) {
	cat := catalog.Default()
	nutritionProfile := fullNutrition(cat)
	nutritionProfile["calories"] = 640
	prov := &mockProvider{estimate: &provider.NutritionEstimate{
		Nutrition:            nutritionProfile,
		Ingredients:          []string{"noodles", "shrimp"},
		EstimatedWeightGrams: 400,
	}}
	st := newMemStore()
	svc := newTestService(st, prov)

	got, err := svc.LogManualMeal(context.Background(), model.ManualMealRequest{
		MealName:          "Pad thai",
		MealType:          "dinner",
		Description:       "takeout noodles with shrimp",
		ApproximateWeight: "400g",
	})
	require.NoError(t, err)

	assert.True(t, got.Success)
	assert.Equal(t, "Pad thai", got.MealName)
	assert.Equal(t, 640.0, got.Nutrition["calories"])

	require.Len(t, st.entries, 1)
	entry := st.entries[0]
	assert.Equal(t, 640.0, entry.Calories)
	assert.False(t, entry.WasSuggested)
	require.NotNil(t, entry.Notes)
	assert.Equal(t, "Manual entry: takeout noodles with shrimp | Portion: 400g", *entry.Notes)
}

func TestListLogsFormatting(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, &mockProvider{})
	ctx := context.Background()

	entry, err := svc.LogMeal(ctx, model.MealLogRequest{
		MealName:  "Chili",
		MealType:  "dinner",
		Calories:  700,
		Nutrition: model.NutritionMap{"calories": 700},
		MealDate:  "2026-08-25",
		MealTime:  "19:15",
	})
	require.NoError(t, err)

	_, err = svc.PatchOverride(ctx, entry.ID, model.NutritionMap{"calories": 650})
	require.NoError(t, err)

	got, err := svc.ListLogs(ctx, model.ListLogsRequest{Limit: 10, Days: 7})
	require.NoError(t, err)
	require.Len(t, got, 1)

	row := got[0]
	assert.Equal(t, "Chili", row.Meal)
	assert.Equal(t, 650.0, row.Calories) // override shows through
	assert.Equal(t, "Dinner", row.Type)
	assert.Equal(t, "Tue", row.Day)
	assert.Equal(t, "Aug 25", row.Date)
	assert.Equal(t, "19:15", row.Time)
	assert.True(t, row.HasOverride)
}

func TestPreferencesDefaultsUntilSaved(t *testing.T) {
	svc := newTestService(newMemStore(), &mockProvider{})
	ctx := context.Background()

	got, err := svc.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultPreferences(), got)

	saved, err := svc.SavePreferences(ctx, model.UserPreferences{
		PreferredIngredients:  []string{"salmon"},
		DietaryRestrictions:   []string{},
		CookingTimePreference: 45,
		MealComplexity:        "moderate",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"salmon"}, saved.PreferredIngredients)

	got, err = svc.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45, got.CookingTimePreference)
}

func TestDeleteLogMissing(t *testing.T) {
	svc := newTestService(newMemStore(), &mockProvider{})
	assert.ErrorIs(t, svc.DeleteLog(context.Background(), "missing"), model.ErrNotFound)
}
