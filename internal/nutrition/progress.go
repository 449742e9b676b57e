package nutrition

import (
	"math"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
)

// NutrientProgress is one nutrient's weekly progress view.
type NutrientProgress struct {
	Current  float64 `json:"current"`
	Target   float64 `json:"target"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Name     string  `json:"name,omitempty"`
	IsLimit  bool    `json:"isLimit,omitempty"`
}

// Progress combines weekly targets and consumed totals into a per-nutrient
// progress map covering every catalog entry.
func Progress(cat *catalog.Catalog, targets, totals model.NutritionMap) map[string]NutrientProgress {
	out := make(map[string]NutrientProgress, cat.Len())
	for _, n := range cat.Nutrients() {
		target := n.WeeklyTarget
		if v, ok := targets[n.Key]; ok {
			target = v
		}
		out[n.Key] = NutrientProgress{
			Current:  round2(totals[n.Key]),
			Target:   target,
			Unit:     n.Unit,
			Category: string(n.Category),
			Name:     n.Name,
			IsLimit:  n.IsLimit,
		}
	}
	return out
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
