package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
)

func TestAnalyzeGapsEmptyWeek(t *testing.T) {
	cat := catalog.Default()
	targets := cat.DefaultWeeklyTargets()

	res := AnalyzeGaps(cat, targets, SumTotals(cat, nil))

	// Every goal nutrient is at 100% deficit; only the five largest are kept
	// and limit nutrients never rank.
	assert.Len(t, res.Focus, 5)
	for _, f := range res.Focus {
		n, ok := cat.Get(f.Key)
		require.True(t, ok)
		assert.False(t, n.IsLimit, f.Key)
		assert.Equal(t, 1.0, f.Ratio, f.Key)
	}

	// All ratios tie at 1.0, so catalog order decides.
	keys := cat.Keys()
	assert.Equal(t, keys[0], res.Focus[0].Key)

	assert.Len(t, res.Limits, 6)
	assert.Len(t, res.Remaining, cat.Len())
}

func TestAnalyzeGapsThreshold(t *testing.T) {
	cat := catalog.Default()
	targets := cat.DefaultWeeklyTargets()

	// Leave every nutrient within 8% of target except iron.
	totals := make(model.NutritionMap, cat.Len())
	for _, n := range cat.Nutrients() {
		totals[n.Key] = n.WeeklyTarget * 0.95
	}
	totals["iron"] = 0

	res := AnalyzeGaps(cat, targets, totals)

	require.Len(t, res.Focus, 1)
	assert.Equal(t, "iron", res.Focus[0].Key)
	assert.Equal(t, "Iron", res.Focus[0].Label)
	assert.InDelta(t, 1.0, res.Focus[0].Ratio, 1e-9)

	require.Len(t, res.FocusDetails, 1)
	assert.Equal(t, 126.0, res.FocusDetails[0].Remaining)
	assert.Equal(t, "mg", res.FocusDetails[0].Unit)
}

func TestAnalyzeGapsLimitNutrientsNeverRank(t *testing.T) {
	cat := catalog.Default()
	targets := cat.DefaultWeeklyTargets()

	// Cover every goal nutrient; leave the limit nutrients untouched so their
	// buffers are wide open.
	totals := make(model.NutritionMap, cat.Len())
	for _, n := range cat.Nutrients() {
		if !n.IsLimit {
			totals[n.Key] = n.WeeklyTarget
		}
	}

	res := AnalyzeGaps(cat, targets, totals)

	assert.Empty(t, res.Focus)
	require.Len(t, res.Limits, 6)
	for _, l := range res.Limits {
		assert.Equal(t, l.Ceiling, l.RemainingBuffer, l.Key)
		assert.Equal(t, 0.0, l.Current, l.Key)
	}
}

func TestAnalyzeGapsOverconsumedClampsToZero(t *testing.T) {
	cat := catalog.Default()
	targets := cat.DefaultWeeklyTargets()

	totals := make(model.NutritionMap)
	totals["sodium"] = 20000 // past the ceiling
	totals["protein"] = 900  // past the goal

	res := AnalyzeGaps(cat, targets, totals)

	assert.Equal(t, 0.0, res.Remaining["sodium"])
	assert.Equal(t, 0.0, res.Remaining["protein"])

	for _, l := range res.Limits {
		if l.Key == "sodium" {
			assert.Equal(t, 0.0, l.RemainingBuffer)
			assert.Equal(t, 20000.0, l.Current)
		}
	}
	for _, f := range res.Focus {
		assert.NotEqual(t, "protein", f.Key)
	}
}

func TestAnalyzeGapsRanksByRatio(t *testing.T) {
	cat := catalog.Default()
	targets := cat.DefaultWeeklyTargets()

	totals := make(model.NutritionMap, cat.Len())
	for _, n := range cat.Nutrients() {
		totals[n.Key] = n.WeeklyTarget // fully covered
	}
	totals["fiber"] = 175 * 0.5     // 50% gap
	totals["vitamin_c"] = 700 * 0.2 // 80% gap
	totals["zinc"] = 70 * 0.7       // 30% gap

	res := AnalyzeGaps(cat, targets, totals)

	require.Len(t, res.Focus, 3)
	assert.Equal(t, "vitamin_c", res.Focus[0].Key)
	assert.Equal(t, "fiber", res.Focus[1].Key)
	assert.Equal(t, "zinc", res.Focus[2].Key)
}
