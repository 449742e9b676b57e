package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
)

func TestMealLog(t *testing.T) {
	valid := model.MealLogRequest{
		MealName:  "Soup",
		MealType:  "lunch",
		Calories:  200,
		Nutrition: model.NutritionMap{"calories": 200},
	}
	assert.NoError(t, MealLog(&valid))

	cases := []struct {
		name string
		mut  func(r *model.MealLogRequest)
	}{
		{"missing name", func(r *model.MealLogRequest) { r.MealName = "" }},
		{"missing type", func(r *model.MealLogRequest) { r.MealType = "" }},
		{"negative calories", func(r *model.MealLogRequest) { r.Calories = -1 }},
		{"negative nutrient", func(r *model.MealLogRequest) { r.Nutrition = model.NutritionMap{"iron": -2} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mut(&req)
			err := MealLog(&req)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrValidation)
		})
	}
}

func TestOverride(t *testing.T) {
	cat := catalog.Default()

	assert.NoError(t, Override(cat, model.NutritionMap{"calories": 500}))
	assert.NoError(t, Override(cat, nil))

	assert.ErrorIs(t, Override(cat, model.NutritionMap{"caffeine": 80}), model.ErrValidation)
	assert.ErrorIs(t, Override(cat, model.NutritionMap{"iron": -1}), model.ErrValidation)
}

func TestListLogsQuery(t *testing.T) {
	req := model.ListLogsRequest{}
	require.NoError(t, ListLogsQuery(&req))
	assert.Equal(t, 10, req.Limit)
	assert.Equal(t, 7, req.Days)

	for _, bad := range []model.ListLogsRequest{
		{Limit: -1},
		{Limit: 101},
		{Days: -1},
		{Days: 40000},
		{Offset: -1},
	} {
		bad := bad
		assert.ErrorIs(t, ListLogsQuery(&bad), model.ErrValidation)
	}
}

func TestPreferences(t *testing.T) {
	assert.NoError(t, Preferences(&model.UserPreferences{
		CookingTimePreference: 30,
		MealComplexity:        "simple",
	}))
	assert.ErrorIs(t, Preferences(&model.UserPreferences{MealComplexity: "simple"}), model.ErrValidation)
	assert.ErrorIs(t, Preferences(&model.UserPreferences{CookingTimePreference: 30}), model.ErrValidation)
}

func TestCustomMeal(t *testing.T) {
	valid := model.CustomMealRequest{
		Name:            "Curry",
		BaseDescription: "a curry",
		MealType:        "dinner",
		CookingTime:     35,
	}
	assert.NoError(t, CustomMeal(&valid))

	missingTime := valid
	missingTime.CookingTime = 0
	assert.ErrorIs(t, CustomMeal(&missingTime), model.ErrValidation)
}

func TestManualMeal(t *testing.T) {
	valid := model.ManualMealRequest{
		MealName:          "Pad thai",
		MealType:          "dinner",
		Description:       "noodles",
		ApproximateWeight: "400g",
	}
	assert.NoError(t, ManualMeal(&valid))

	missingWeight := valid
	missingWeight.ApproximateWeight = ""
	assert.ErrorIs(t, ManualMeal(&missingWeight), model.ErrValidation)
}
