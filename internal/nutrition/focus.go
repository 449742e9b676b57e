package nutrition

import (
	"sort"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
)

// Nutrients already within this fraction of their weekly target are not
// considered in focus.
const focusThreshold = 0.08

// Up to this many deficits are emphasized per generated plan.
const maxFocus = 5

// FocusEntry is a goal nutrient selected for meal-plan emphasis.
type FocusEntry struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Ratio float64 `json:"ratio"`
}

// FocusDetail carries the absolute numbers behind a focus entry for prompt
// construction.
type FocusDetail struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	Unit      string  `json:"unit"`
	Remaining float64 `json:"remaining"`
	Target    float64 `json:"target"`
}

// LimitGuidance models a ceiling nutrient: the buffer left before the ceiling
// is hit, not a deficit to close.
type LimitGuidance struct {
	Key             string  `json:"key"`
	Label           string  `json:"label"`
	Unit            string  `json:"unit"`
	RemainingBuffer float64 `json:"remaining_buffer"`
	Ceiling         float64 `json:"max"`
	Current         float64 `json:"current"`
}

// GapAnalysis is the result of ranking a week's remaining needs.
type GapAnalysis struct {
	// Remaining holds max(target-consumed, 0) for every catalog key,
	// limit nutrients included.
	Remaining model.NutritionMap
	// Focus is the ranked deficit selection, largest relative gap first.
	Focus []FocusEntry
	// FocusDetails parallels Focus.
	FocusDetails []FocusDetail
	// Limits carries ceiling guidance for every limit nutrient.
	Limits []LimitGuidance
}

// AnalyzeGaps computes remaining needs and ranks goal-nutrient deficits by
// remaining-to-target ratio. Limit nutrients never enter the ranking; they are
// split out as guidance instead, so the focus threshold can change without
// re-admitting them. Ties keep catalog order (stable sort over an
// insertion-ordered slice).
func AnalyzeGaps(cat *catalog.Catalog, targets, totals model.NutritionMap) GapAnalysis {
	res := GapAnalysis{Remaining: make(model.NutritionMap, cat.Len())}

	type candidate struct {
		nutrient catalog.Nutrient
		ratio    float64
		gap      float64
		target   float64
	}
	var candidates []candidate

	for _, n := range cat.Nutrients() {
		target := n.WeeklyTarget
		if v, ok := targets[n.Key]; ok {
			target = v
		}
		consumed := totals[n.Key]
		gap := target - consumed
		if gap < 0 {
			gap = 0
		}
		res.Remaining[n.Key] = gap

		if n.IsLimit {
			res.Limits = append(res.Limits, LimitGuidance{
				Key:             n.Key,
				Label:           n.Name,
				Unit:            n.Unit,
				RemainingBuffer: round2(gap),
				Ceiling:         target,
				Current:         round2(consumed),
			})
			continue
		}

		ratio := 0.0
		if target != 0 {
			ratio = gap / target
		}
		if ratio > focusThreshold {
			candidates = append(candidates, candidate{nutrient: n, ratio: ratio, gap: gap, target: target})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ratio > candidates[j].ratio
	})
	if len(candidates) > maxFocus {
		candidates = candidates[:maxFocus]
	}

	for _, c := range candidates {
		res.Focus = append(res.Focus, FocusEntry{
			Key:   c.nutrient.Key,
			Label: c.nutrient.Name,
			Ratio: c.ratio,
		})
		res.FocusDetails = append(res.FocusDetails, FocusDetail{
			Key:       c.nutrient.Key,
			Label:     c.nutrient.Name,
			Unit:      c.nutrient.Unit,
			Remaining: round2(c.gap),
			Target:    c.target,
		})
	}
	return res
}
