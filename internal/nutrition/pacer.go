package nutrition

import "time"

// Meal calorie splits and floors. Floors keep suggested meals from being
// nutritionally trivial even when the weekly budget is spent.
const (
	lunchShare  = 0.45
	dinnerShare = 0.55
	lunchFloor  = 350
	dinnerFloor = 400
)

// CalorieTargets is today's planned lunch/dinner calorie budget.
type CalorieTargets struct {
	Lunch  float64 `json:"lunch"`
	Dinner float64 `json:"dinner"`
}

// DailyCalorieTargets derives today's lunch/dinner calorie targets from the
// weekly budget and consumption so far. Today always counts as one of the
// remaining days. Pacing is smoothed to [0.85, 1.35] of the flat daily
// average so one big deficit day never produces an extreme single-day target;
// once the weekly budget is met the plan scales down to 75% of the average.
func DailyCalorieTargets(weeklyTarget, consumed float64, weekStart, today time.Time) CalorieTargets {
	dailyDefault := weeklyTarget / 7

	daysElapsed := int(today.Sub(weekStart).Hours() / 24)
	if daysElapsed < 0 {
		daysElapsed = 0
	}
	if daysElapsed > 6 {
		daysElapsed = 6
	}
	daysRemaining := 7 - (daysElapsed + 1)
	if daysRemaining < 1 {
		daysRemaining = 1
	}

	remaining := weeklyTarget - consumed
	if remaining < 0 {
		remaining = 0
	}

	var plannedDaily float64
	if remaining <= 0 {
		plannedDaily = dailyDefault * 0.75
	} else {
		plannedDaily = remaining / float64(daysRemaining)
		if low := dailyDefault * 0.85; plannedDaily < low {
			plannedDaily = low
		}
		if high := dailyDefault * 1.35; plannedDaily > high {
			plannedDaily = high
		}
	}

	lunch := round1(plannedDaily * lunchShare)
	if lunch < lunchFloor {
		lunch = lunchFloor
	}
	dinner := round1(plannedDaily * dinnerShare)
	if dinner < dinnerFloor {
		dinner = dinnerFloor
	}
	return CalorieTargets{Lunch: lunch, Dinner: dinner}
}
