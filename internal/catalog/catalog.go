// Package catalog defines the immutable registry of tracked nutrients.
package catalog

import "github.com/nutriweek/nutriweek/internal/model"

// Category groups nutrients for display and reporting.
type Category string

const (
	CategoryMacro   Category = "macro"
	CategoryVitamin Category = "vitamin"
	CategoryMineral Category = "mineral"
	CategoryLipid   Category = "lipid"
	CategoryCarb    Category = "carb"
)

// Nutrient describes one tracked nutrient. IsLimit marks ceiling nutrients
// (do not exceed) as opposed to goal nutrients (reach the target).
type Nutrient struct {
	Key          string
	Name         string
	Unit         string
	Category     Category
	WeeklyTarget float64
	IsLimit      bool
}

// Catalog is an ordered, immutable set of nutrient definitions. Order is
// significant: focus ranking ties break on catalog position.
type Catalog struct {
	nutrients []Nutrient
	byKey     map[string]int
}

// New builds a catalog from definitions. Duplicate keys and non-positive
// weekly targets panic: the catalog is static process-wide data and a bad
// definition is a programming error.
func New(defs []Nutrient) *Catalog {
	c := &Catalog{nutrients: defs, byKey: make(map[string]int, len(defs))}
	for i, n := range defs {
		if n.WeeklyTarget <= 0 {
			panic("catalog: weekly target must be positive: " + n.Key)
		}
		if _, dup := c.byKey[n.Key]; dup {
			panic("catalog: duplicate nutrient key: " + n.Key)
		}
		c.byKey[n.Key] = i
	}
	return c
}

// Nutrients returns the definitions in catalog order.
func (c *Catalog) Nutrients() []Nutrient { return c.nutrients }

// Get returns the definition for a key.
func (c *Catalog) Get(key string) (Nutrient, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Nutrient{}, false
	}
	return c.nutrients[i], true
}

// Has reports whether the key is tracked.
func (c *Catalog) Has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// Len returns the number of tracked nutrients.
func (c *Catalog) Len() int { return len(c.nutrients) }

// Keys returns all nutrient keys in catalog order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.nutrients))
	for i, n := range c.nutrients {
		out[i] = n.Key
	}
	return out
}

// DefaultWeeklyTargets returns a fresh map of weekly targets keyed by nutrient.
func (c *Catalog) DefaultWeeklyTargets() model.NutritionMap {
	out := make(model.NutritionMap, len(c.nutrients))
	for _, n := range c.nutrients {
		out[n.Key] = n.WeeklyTarget
	}
	return out
}

// ScoringNutrients is the fixed subset used when summarizing custom meals for
// the generation context.
var ScoringNutrients = []string{
	"calories", "protein", "fiber", "iron", "vitamin_c",
	"vitamin_d", "calcium", "potassium", "magnesium", "vitamin_b12",
}

// DefaultPreferences are used until the user saves their own.
func DefaultPreferences() model.UserPreferences {
	return model.UserPreferences{
		PreferredIngredients:  []string{"chicken", "vegetables", "quinoa"},
		DietaryRestrictions:   []string{},
		CookingTimePreference: 30,
		MealComplexity:        "simple",
	}
}

// Default returns the standard weekly catalog (7x daily reference values).
func Default() *Catalog {
	return New([]Nutrient{
		{Key: "calories", Name: "Calories", Unit: "kcal", Category: CategoryMacro, WeeklyTarget: 14000},
		{Key: "protein", Name: "Protein", Unit: "g", Category: CategoryMacro, WeeklyTarget: 700},
		{Key: "carbs", Name: "Carbohydrates", Unit: "g", Category: CategoryMacro, WeeklyTarget: 1400},
		{Key: "fat", Name: "Fat", Unit: "g", Category: CategoryMacro, WeeklyTarget: 466},
		{Key: "fiber", Name: "Fiber", Unit: "g", Category: CategoryMacro, WeeklyTarget: 175},
		{Key: "vitamin_a", Name: "Vitamin A", Unit: "mcg", Category: CategoryVitamin, WeeklyTarget: 3500},
		{Key: "vitamin_c", Name: "Vitamin C", Unit: "mg", Category: CategoryVitamin, WeeklyTarget: 700},
		{Key: "vitamin_d", Name: "Vitamin D", Unit: "mcg", Category: CategoryVitamin, WeeklyTarget: 70},
		{Key: "vitamin_e", Name: "Vitamin E", Unit: "mg", Category: CategoryVitamin, WeeklyTarget: 105},
		{Key: "vitamin_k", Name: "Vitamin K", Unit: "mcg", Category: CategoryVitamin, WeeklyTarget: 770},
		{Key: "thiamin", Name: "Thiamin (B1)", Unit: "mg", Category: CategoryVitamin, WeeklyTarget: 10.5},
		{Key: "riboflavin", Name: "Riboflavin (B2)", Unit: "mg", Category: CategoryVitamin, WeeklyTarget: 12.6},
		{Key: "niacin", Name: "Niacin (B3)", Unit: "mg", Category: CategoryVitamin, WeeklyTarget: 105},
		{Key: "vitamin_b6", Name: "Vitamin B6", Unit: "mg", Category: CategoryVitamin, WeeklyTarget: 10.5},
		{Key: "folate", Name: "Folate (B9)", Unit: "mcg", Category: CategoryVitamin, WeeklyTarget: 2800},
		{Key: "vitamin_b12", Name: "Vitamin B12", Unit: "mcg", Category: CategoryVitamin, WeeklyTarget: 17.5},
		{Key: "calcium", Name: "Calcium", Unit: "mg", Category: CategoryMineral, WeeklyTarget: 7000},
		{Key: "iron", Name: "Iron", Unit: "mg", Category: CategoryMineral, WeeklyTarget: 126},
		{Key: "magnesium", Name: "Magnesium", Unit: "mg", Category: CategoryMineral, WeeklyTarget: 2800},
		{Key: "phosphorus", Name: "Phosphorus", Unit: "mg", Category: CategoryMineral, WeeklyTarget: 4900},
		{Key: "potassium", Name: "Potassium", Unit: "mg", Category: CategoryMineral, WeeklyTarget: 24500},
		{Key: "sodium", Name: "Sodium", Unit: "mg", Category: CategoryMineral, WeeklyTarget: 14000, IsLimit: true},
		{Key: "zinc", Name: "Zinc", Unit: "mg", Category: CategoryMineral, WeeklyTarget: 70},
		{Key: "copper", Name: "Copper", Unit: "mg", Category: CategoryMineral, WeeklyTarget: 17.5},
		{Key: "selenium", Name: "Selenium", Unit: "mcg", Category: CategoryMineral, WeeklyTarget: 385},
		{Key: "cholesterol", Name: "Cholesterol", Unit: "mg", Category: CategoryLipid, WeeklyTarget: 1400, IsLimit: true},
		{Key: "saturated_fat", Name: "Saturated Fat", Unit: "g", Category: CategoryLipid, WeeklyTarget: 140, IsLimit: true},
		{Key: "trans_fat", Name: "Trans Fat", Unit: "g", Category: CategoryLipid, WeeklyTarget: 7, IsLimit: true},
		{Key: "omega_3", Name: "Omega-3", Unit: "g", Category: CategoryLipid, WeeklyTarget: 17.5},
		{Key: "omega_6", Name: "Omega-6", Unit: "g", Category: CategoryLipid, WeeklyTarget: 87.5},
		{Key: "sugar", Name: "Sugar", Unit: "g", Category: CategoryCarb, WeeklyTarget: 210, IsLimit: true},
		{Key: "added_sugar", Name: "Added Sugar", Unit: "g", Category: CategoryCarb, WeeklyTarget: 140, IsLimit: true},
	})
}
