// Package planner orchestrates weekly progress, meal logging and AI-backed
// meal generation over the store and suggestion provider.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
	"github.com/nutriweek/nutriweek/internal/nutrition"
	"github.com/nutriweek/nutriweek/internal/provider"
	"github.com/nutriweek/nutriweek/internal/store"
)

// Service wires the catalog, store and suggestion provider into the planner
// operations the API exposes.
type Service struct {
	cat      *catalog.Catalog
	store    store.Store
	provider provider.SuggestionProvider
	log      zerolog.Logger
	now      func() time.Time
}

// New builds a planner service. now defaults to time.Now and exists so tests
// can pin the week.
func New(cat *catalog.Catalog, st store.Store, p provider.SuggestionProvider, log zerolog.Logger) *Service {
	return &Service{cat: cat, store: st, provider: p, log: log, now: time.Now}
}

// WithClock overrides the service clock.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// snapshot is one consistent view of the current week: its targets and every
// log entry dated inside it.
type snapshot struct {
	weekStart time.Time
	targets   model.NutritionMap
	entries   []*model.MealLogEntry
	totals    model.NutritionMap
}

func (s *Service) weeklySnapshot(ctx context.Context) (*snapshot, error) {
	weekStart := nutrition.WeekStart(s.now())
	targets, err := s.store.Targets().GetOrCreate(ctx, weekStart, s.cat.DefaultWeeklyTargets())
	if err != nil {
		return nil, fmt.Errorf("load weekly targets: %w", err)
	}
	entries, err := s.store.Logs().ListWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("load weekly logs: %w", err)
	}
	return &snapshot{
		weekStart: weekStart,
		targets:   targets,
		entries:   entries,
		totals:    nutrition.SumTotals(s.cat, entries),
	}, nil
}

// WeeklyProgress returns per-nutrient progress for the current week. A week
// with no logs reports zero current for every nutrient.
func (s *Service) WeeklyProgress(ctx context.Context) (map[string]nutrition.NutrientProgress, error) {
	snap, err := s.weeklySnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return nutrition.Progress(s.cat, snap.targets, snap.totals), nil
}

// PlanFocus reports which deficits a generated plan emphasized.
type PlanFocus struct {
	Labels   []string                `json:"labels"`
	Deficits []nutrition.FocusDetail `json:"deficits"`
}

// GeneratedPlan is the response for one plan generation.
type GeneratedPlan struct {
	Lunch          *provider.SuggestedMeal  `json:"lunch"`
	Dinner         *provider.SuggestedMeal  `json:"dinner"`
	Focus          PlanFocus                `json:"focus"`
	Remaining      model.NutritionMap       `json:"remaining"`
	CalorieTargets nutrition.CalorieTargets `json:"calorie_targets"`
	GeneratedAt    time.Time                `json:"generated_at"`
}

// GenerateMealPlan builds the generation context from the current week,
// requests a two-meal plan from the provider and returns it alongside the
// focus and pacing data that shaped it. Provider failures surface unchanged;
// nothing is logged to the store.
func (s *Service) GenerateMealPlan(ctx context.Context, req model.GenerationRequest) (*GeneratedPlan, error) {
	snap, err := s.weeklySnapshot(ctx)
	if err != nil {
		return nil, err
	}
	prefs, err := s.loadPreferences(ctx)
	if err != nil {
		return nil, err
	}
	customMeals, err := s.store.CustomMeals().List(ctx, customMealContextLimit)
	if err != nil {
		return nil, fmt.Errorf("load custom meals: %w", err)
	}

	genCtx := BuildGenerationContext(s.cat, req, snap.targets, snap.totals, snap.entries,
		snap.weekStart, s.now().UTC(), prefs, customMeals)
	messages, err := buildPlanMessages(genCtx)
	if err != nil {
		return nil, err
	}

	plan, err := s.provider.SuggestMeals(ctx, messages)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Strs("focus", genCtx.FocusLabels).
		Float64("lunch_calories", genCtx.CalorieTargets.Lunch).
		Float64("dinner_calories", genCtx.CalorieTargets.Dinner).
		Msg("generated meal plan")

	deficits := genCtx.FocusDetails
	if deficits == nil {
		deficits = []nutrition.FocusDetail{}
	}
	labels := genCtx.FocusLabels
	if labels == nil {
		labels = []string{}
	}
	return &GeneratedPlan{
		Lunch:          plan.Lunch,
		Dinner:         plan.Dinner,
		Focus:          PlanFocus{Labels: labels, Deficits: deficits},
		Remaining:      genCtx.Remaining,
		CalorieTargets: genCtx.CalorieTargets,
		GeneratedAt:    s.now().UTC(),
	}, nil
}

// CustomMealResult pairs the stored record with the recipe the provider
// produced for it.
type CustomMealResult struct {
	Meal   *model.CustomMeal         `json:"meal"`
	Recipe *provider.CompletedRecipe `json:"recipe"`
}

// CreateCustomMeal completes a meal concept into a full recipe via the
// provider and stores it. Provider fields missing from the response fall back
// to the request.
func (s *Service) CreateCustomMeal(ctx context.Context, req model.CustomMealRequest) (*CustomMealResult, error) {
	messages, err := buildRecipeMessages(req)
	if err != nil {
		return nil, err
	}
	recipe, err := s.provider.CompleteRecipe(ctx, messages)
	if err != nil {
		return nil, err
	}
	if recipe.MealType == "" {
		recipe.MealType = req.MealType
	}
	if recipe.MealType == "" {
		recipe.MealType = "meal"
	}
	if recipe.PrepTime == 0 {
		recipe.PrepTime = float64(req.CookingTime)
	}
	if recipe.Tags == nil {
		recipe.Tags = []string{}
	}

	cookingTime := int(recipe.PrepTime)
	if cookingTime == 0 {
		cookingTime = 30
	}
	meal := &model.CustomMeal{
		ID:           uuid.NewString(),
		Name:         recipe.Name,
		Description:  recipe.Description,
		MealType:     recipe.MealType,
		CookingTime:  cookingTime,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		Tags:         recipe.Tags,
		Nutrition:    recipe.Nutrition,
		CreationTime: s.now().UTC(),
	}
	stored, err := s.store.CustomMeals().Insert(ctx, meal)
	if err != nil {
		return nil, fmt.Errorf("store custom meal: %w", err)
	}
	return &CustomMealResult{Meal: stored, Recipe: recipe}, nil
}

// ManualLogResult reports a manual entry that was estimated and logged.
type ManualLogResult struct {
	Success   bool               `json:"success"`
	ID        string             `json:"id"`
	MealName  string             `json:"meal_name"`
	Nutrition model.NutritionMap `json:"nutrition"`
}

// LogManualMeal estimates nutrition for a described meal and logs the result.
// The estimate's provenance is preserved in the entry notes.
func (s *Service) LogManualMeal(ctx context.Context, req model.ManualMealRequest) (*ManualLogResult, error) {
	estimate, err := s.provider.EstimateNutrition(ctx, buildEstimateMessages(req))
	if err != nil {
		return nil, err
	}

	notes := fmt.Sprintf("Manual entry: %s | Portion: %s", req.Description, req.ApproximateWeight)
	entry, err := s.LogMeal(ctx, model.MealLogRequest{
		MealName:  req.MealName,
		MealType:  req.MealType,
		Calories:  estimate.Nutrition["calories"],
		Nutrition: estimate.Nutrition,
		MealDate:  req.MealDate,
		MealTime:  req.MealTime,
		Notes:     &notes,
	})
	if err != nil {
		return nil, err
	}
	return &ManualLogResult{
		Success:   true,
		ID:        entry.ID,
		MealName:  entry.MealName,
		Nutrition: estimate.Nutrition,
	}, nil
}

// LogMeal persists one meal log entry. Date defaults to today and time to the
// current clock; the calories field is mirrored into the nutrition profile
// when the profile does not carry its own value.
func (s *Service) LogMeal(ctx context.Context, req model.MealLogRequest) (*model.MealLogEntry, error) {
	now := s.now()
	mealDate := req.MealDate
	if mealDate == "" {
		mealDate = now.UTC().Format(nutrition.DateLayout)
	}
	mealTime := req.MealTime
	if mealTime == "" {
		mealTime = now.Format("15:04")
	}
	nutritionProfile := req.Nutrition.Clone()
	if _, ok := nutritionProfile["calories"]; !ok {
		nutritionProfile["calories"] = req.Calories
	}

	entry := &model.MealLogEntry{
		ID:            uuid.NewString(),
		MealName:      req.MealName,
		MealType:      req.MealType,
		Calories:      req.Calories,
		BaseNutrition: nutritionProfile,
		MealDate:      mealDate,
		MealTime:      mealTime,
		WasSuggested:  req.WasSuggested,
		Notes:         req.Notes,
		CreationTime:  now.UTC(),
	}
	stored, err := s.store.Logs().Insert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("store meal log: %w", err)
	}
	return stored, nil
}

// GetLog returns one log entry by id.
func (s *Service) GetLog(ctx context.Context, id string) (*model.MealLogEntry, error) {
	return s.store.Logs().Get(ctx, id)
}

// FormattedLogEntry is the compact listing view of a log entry. Calories
// reflect the effective nutrition, so overrides show through.
type FormattedLogEntry struct {
	ID          string  `json:"id"`
	Time        string  `json:"time"`
	Meal        string  `json:"meal"`
	Calories    float64 `json:"calories"`
	Type        string  `json:"type"`
	Day         string  `json:"day"`
	Date        string  `json:"date"`
	HasOverride bool    `json:"hasOverride"`
}

// ListLogs returns recent log entries formatted for display, newest first.
func (s *Service) ListLogs(ctx context.Context, req model.ListLogsRequest) ([]FormattedLogEntry, error) {
	since := s.now().UTC().AddDate(0, 0, -req.Days)
	entries, err := s.store.Logs().ListSince(ctx, since, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}
	formatted := make([]FormattedLogEntry, 0, len(entries))
	for _, e := range entries {
		effective := nutrition.Effective(e.BaseNutrition, e.OverrideNutrition)
		calories, ok := effective["calories"]
		if !ok {
			calories = e.Calories
		}
		var dayLabel, dateLabel string
		if parsed, err := time.Parse(nutrition.DateLayout, e.MealDate); err == nil {
			dayLabel = parsed.Format("Mon")
			dateLabel = parsed.Format("Jan 02")
		}
		mealType := e.MealType
		if mealType == "" {
			mealType = "meal"
		}
		formatted = append(formatted, FormattedLogEntry{
			ID:          e.ID,
			Time:        e.MealTime,
			Meal:        e.MealName,
			Calories:    calories,
			Type:        capitalize(mealType),
			Day:         dayLabel,
			Date:        dateLabel,
			HasOverride: len(e.OverrideNutrition) > 0,
		})
	}
	return formatted, nil
}

// PatchOverride replaces an entry's override nutrition, last writer wins.
func (s *Service) PatchOverride(ctx context.Context, id string, override model.NutritionMap) (*model.MealLogEntry, error) {
	return s.store.Logs().PatchOverride(ctx, id, override)
}

// DeleteLog removes a log entry.
func (s *Service) DeleteLog(ctx context.Context, id string) error {
	return s.store.Logs().Delete(ctx, id)
}

// GetPreferences returns the latest saved preferences, or the defaults when
// nothing has been saved yet.
func (s *Service) GetPreferences(ctx context.Context) (model.UserPreferences, error) {
	return s.loadPreferences(ctx)
}

// SavePreferences appends a new preference record and returns it.
func (s *Service) SavePreferences(ctx context.Context, p model.UserPreferences) (model.UserPreferences, error) {
	saved, err := s.store.Preferences().Save(ctx, p)
	if err != nil {
		return model.UserPreferences{}, fmt.Errorf("save preferences: %w", err)
	}
	return *saved, nil
}

func (s *Service) loadPreferences(ctx context.Context) (model.UserPreferences, error) {
	stored, err := s.store.Preferences().Latest(ctx)
	if err != nil {
		return model.UserPreferences{}, fmt.Errorf("load preferences: %w", err)
	}
	if stored == nil {
		return catalog.DefaultPreferences(), nil
	}
	return *stored, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
