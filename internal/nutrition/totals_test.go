package nutrition

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
)

func TestSumTotalsEmptyWeek(t *testing.T) {
	cat := catalog.Default()

	totals := SumTotals(cat, nil)

	assert.Len(t, totals, cat.Len())
	for key, v := range totals {
		assert.Equal(t, 0.0, v, key)
	}
}

func TestSumTotalsOverrideWins(t *testing.T) {
	cat := catalog.Default()
	entries := []*model.MealLogEntry{
		{
			BaseNutrition:     model.NutritionMap{"calories": 500, "protein": 30},
			OverrideNutrition: model.NutritionMap{"calories": 450},
		},
		{
			BaseNutrition: model.NutritionMap{"calories": 600, "iron": 4},
		},
	}

	totals := SumTotals(cat, entries)

	assert.Equal(t, 1050.0, totals["calories"])
	assert.Equal(t, 30.0, totals["protein"])
	assert.Equal(t, 4.0, totals["iron"])
}

func TestSumTotalsIgnoresUntrackedKeys(t *testing.T) {
	cat := catalog.Default()
	entries := []*model.MealLogEntry{
		{BaseNutrition: model.NutritionMap{"caffeine": 80, "calories": 100}},
	}

	totals := SumTotals(cat, entries)

	assert.Equal(t, 100.0, totals["calories"])
	_, tracked := totals["caffeine"]
	assert.False(t, tracked)
}

func TestEffectiveOverlaysPerKey(t *testing.T) {
	base := model.NutritionMap{"calories": 500, "protein": 30}
	override := model.NutritionMap{"protein": 25, "fiber": 8}

	eff := Effective(base, override)

	assert.Equal(t, 500.0, eff["calories"])
	assert.Equal(t, 25.0, eff["protein"])
	assert.Equal(t, 8.0, eff["fiber"])
	// Inputs stay untouched.
	assert.Equal(t, 30.0, base["protein"])
}

func TestParseNutrition(t *testing.T) {
	log := zerolog.Nop()

	got := ParseNutrition([]byte(`{"calories": 500}`), "id-1", log)
	assert.Equal(t, 500.0, got["calories"])

	assert.Empty(t, ParseNutrition([]byte(`not json`), "id-2", log))
	assert.Empty(t, ParseNutrition(nil, "id-3", log))
	assert.Empty(t, ParseNutrition([]byte(`null`), "id-4", log))
}
