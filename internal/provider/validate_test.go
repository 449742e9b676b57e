package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
)

func completeProfile(cat *catalog.Catalog) model.NutritionMap {
	out := make(model.NutritionMap, cat.Len())
	for _, key := range cat.Keys() {
		out[key] = 1
	}
	return out
}

func TestCheckProfile(t *testing.T) {
	cat := catalog.Default()

	assert.NoError(t, CheckProfile(cat, completeProfile(cat)))
	assert.Error(t, CheckProfile(cat, nil))

	partial := completeProfile(cat)
	delete(partial, "vitamin_b12")
	assert.Error(t, CheckProfile(cat, partial))

	// Zero is a legitimate amount; only absence fails.
	zeroed := completeProfile(cat)
	zeroed["iron"] = 0
	assert.NoError(t, CheckProfile(cat, zeroed))
}

func TestCheckMealPlan(t *testing.T) {
	cat := catalog.Default()
	meal := &SuggestedMeal{Name: "m", Nutrition: completeProfile(cat)}

	assert.NoError(t, CheckMealPlan(cat, &MealPlan{Lunch: meal, Dinner: meal}))
	assert.Error(t, CheckMealPlan(cat, nil))
	assert.Error(t, CheckMealPlan(cat, &MealPlan{Lunch: meal}))
	assert.Error(t, CheckMealPlan(cat, &MealPlan{Dinner: meal}))

	thin := &SuggestedMeal{Name: "thin", Nutrition: model.NutritionMap{"calories": 1}}
	assert.Error(t, CheckMealPlan(cat, &MealPlan{Lunch: thin, Dinner: meal}))
}
