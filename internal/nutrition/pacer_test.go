package nutrition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDailyCalorieTargetsFreshWeek(t *testing.T) {
	weekStart := date(2026, time.August, 24) // Monday

	got := DailyCalorieTargets(14000, 0, weekStart, weekStart)

	// 14000 remaining over 6 remaining days, within the pacing band.
	assert.Equal(t, 1050.0, got.Lunch)
	assert.Equal(t, 1283.3, got.Dinner)
}

func TestDailyCalorieTargetsBudgetSpent(t *testing.T) {
	weekStart := date(2026, time.August, 24)

	got := DailyCalorieTargets(14000, 14000, weekStart, weekStart.AddDate(0, 0, 3))

	// Planned daily scales to 75% of the flat average once the budget is met.
	assert.Equal(t, 675.0, got.Lunch)
	assert.Equal(t, 825.0, got.Dinner)
}

func TestDailyCalorieTargetsClampsHigh(t *testing.T) {
	weekStart := date(2026, time.August, 24)

	// Nothing eaten by Sunday: the whole budget lands on one day, but pacing
	// caps the plan at 135% of the flat daily average.
	got := DailyCalorieTargets(14000, 0, weekStart, weekStart.AddDate(0, 0, 6))

	assert.Equal(t, 1215.0, got.Lunch)
	assert.Equal(t, 1485.0, got.Dinner)
}

func TestDailyCalorieTargetsClampsLow(t *testing.T) {
	weekStart := date(2026, time.August, 24)

	// Nearly done early in the week; the 85% floor holds the plan up.
	got := DailyCalorieTargets(14000, 13000, weekStart, weekStart)

	// floor: 0.85 * 2000 = 1700 planned daily
	assert.Equal(t, 765.0, got.Lunch)
	assert.Equal(t, 935.0, got.Dinner)
}

func TestDailyCalorieTargetsMealFloors(t *testing.T) {
	weekStart := date(2026, time.August, 24)

	got := DailyCalorieTargets(5000, 5000, weekStart, weekStart)

	assert.Equal(t, 350.0, got.Lunch)
	assert.Equal(t, 400.0, got.Dinner)
}

func TestDailyCalorieTargetsClampsElapsedDays(t *testing.T) {
	weekStart := date(2026, time.August, 24)

	// A reference date before the week start behaves like day zero.
	early := DailyCalorieTargets(14000, 0, weekStart, weekStart.AddDate(0, 0, -3))
	assert.Equal(t, DailyCalorieTargets(14000, 0, weekStart, weekStart), early)

	// Far past the week end, today still counts as the final day.
	late := DailyCalorieTargets(14000, 0, weekStart, weekStart.AddDate(0, 0, 20))
	assert.Equal(t, DailyCalorieTargets(14000, 0, weekStart, weekStart.AddDate(0, 0, 6)), late)
}
