// Package nutrition implements the weekly accounting engine: totals
// aggregation, progress, gap/focus ranking and calorie pacing. Everything in
// this package is a pure function over its inputs.
package nutrition

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
)

// Effective returns the entry's effective nutrition: base values with override
// values overlaid per key. Override replaces, never merges.
func Effective(base, override model.NutritionMap) model.NutritionMap {
	out := base.Clone()
	for k, v := range override {
		out[k] = v
	}
	return out
}

// SumTotals reduces the week's log entries into per-nutrient totals. Every
// catalog key is present in the result, defaulting to 0 when never logged.
func SumTotals(cat *catalog.Catalog, entries []*model.MealLogEntry) model.NutritionMap {
	totals := make(model.NutritionMap, cat.Len())
	for _, key := range cat.Keys() {
		totals[key] = 0
	}
	for _, e := range entries {
		eff := Effective(e.BaseNutrition, e.OverrideNutrition)
		for key := range totals {
			totals[key] += eff[key]
		}
	}
	return totals
}

// ParseNutrition decodes a stored nutrition blob. A corrupt blob is recovered
// as an empty map so one bad row never aborts a whole aggregation; the
// recovery is logged with the owning entry id.
func ParseNutrition(raw []byte, entryID string, log zerolog.Logger) model.NutritionMap {
	if len(raw) == 0 {
		return model.NutritionMap{}
	}
	var out model.NutritionMap
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn().Err(err).Str("entry_id", entryID).Msg("corrupt nutrition blob, treating as empty")
		return model.NutritionMap{}
	}
	if out == nil {
		return model.NutritionMap{}
	}
	return out
}
