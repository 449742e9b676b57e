package openai

import "github.com/nutriweek/nutriweek/internal/catalog"

// jsonSchema is a minimal JSON Schema object for the Responses API strict
// output format.
type jsonSchema struct {
	Type                 string                `json:"type"`
	Description          string                `json:"description,omitempty"`
	Properties           map[string]jsonSchema `json:"properties,omitempty"`
	Items                *jsonSchema           `json:"items,omitempty"`
	Required             []string              `json:"required,omitempty"`
	MinItems             int                   `json:"minItems,omitempty"`
	AdditionalProperties *bool                 `json:"additionalProperties,omitempty"`
}

func objectSchema(props map[string]jsonSchema, required []string) jsonSchema {
	no := false
	return jsonSchema{
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: &no,
	}
}

func stringArray(minItems int) jsonSchema {
	return jsonSchema{Type: "array", Items: &jsonSchema{Type: "string"}, MinItems: minItems}
}

// nutritionSchema requires every catalog nutrient: the provider must not omit
// any key, so holes are schema violations rather than silent zeros.
func nutritionSchema(cat *catalog.Catalog) jsonSchema {
	props := make(map[string]jsonSchema, cat.Len())
	for _, n := range cat.Nutrients() {
		props[n.Key] = jsonSchema{Type: "number", Description: n.Name}
	}
	return objectSchema(props, cat.Keys())
}

func mealSchema(cat *catalog.Catalog) jsonSchema {
	return objectSchema(map[string]jsonSchema{
		"name":         {Type: "string"},
		"description":  {Type: "string"},
		"meal_type":    {Type: "string"},
		"calories":     {Type: "number"},
		"prepTime":     {Type: "number"},
		"ingredients":  stringArray(0),
		"instructions": stringArray(0),
		"nutrition":    nutritionSchema(cat),
	}, []string{"name", "description", "meal_type", "calories", "prepTime", "ingredients", "instructions", "nutrition"})
}

func mealPlanSchema(cat *catalog.Catalog) jsonSchema {
	return objectSchema(map[string]jsonSchema{
		"lunch":  mealSchema(cat),
		"dinner": mealSchema(cat),
	}, []string{"lunch", "dinner"})
}

func recipeSchema(cat *catalog.Catalog) jsonSchema {
	tags := stringArray(0)
	tags.Description = "Short descriptors like high-protein, iron-rich, vegan."
	return objectSchema(map[string]jsonSchema{
		"name":         {Type: "string"},
		"description":  {Type: "string"},
		"meal_type":    {Type: "string"},
		"prepTime":     {Type: "number"},
		"ingredients":  stringArray(5),
		"instructions": stringArray(4),
		"tags":         tags,
		"nutrition":    nutritionSchema(cat),
	}, []string{"name", "description", "meal_type", "prepTime", "ingredients", "instructions", "nutrition"})
}

func estimateSchema(cat *catalog.Catalog) jsonSchema {
	return objectSchema(map[string]jsonSchema{
		"nutrition":              nutritionSchema(cat),
		"ingredients":            stringArray(0),
		"estimated_weight_grams": {Type: "number"},
	}, []string{"nutrition", "ingredients", "estimated_weight_grams"})
}
