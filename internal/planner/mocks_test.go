package planner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutriweek/nutriweek/internal/model"
	"github.com/nutriweek/nutriweek/internal/provider"
	"github.com/nutriweek/nutriweek/internal/store"
)

// memStore is an in-memory store.Store used by planner tests.
type memStore struct {
	entries []*model.MealLogEntry
	targets map[string]model.NutritionMap
	prefs   []*model.UserPreferences
	meals   []*model.CustomMeal
}

func newMemStore() *memStore {
	return &memStore{targets: map[string]model.NutritionMap{}}
}

func (m *memStore) Logs() store.Logs               { return (*memLogs)(m) }
func (m *memStore) Targets() store.Targets         { return (*memTargets)(m) }
func (m *memStore) Preferences() store.Preferences { return (*memPrefs)(m) }
func (m *memStore) CustomMeals() store.CustomMeals { return (*memMeals)(m) }

type memLogs memStore

func (l *memLogs) Insert(_ context.Context, e *model.MealLogEntry) (*model.MealLogEntry, error) {
	out := *e
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	l.entries = append(l.entries, &out)
	return &out, nil
}

func (l *memLogs) Get(_ context.Context, id string) (*model.MealLogEntry, error) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, model.ErrNotFound
}

func (l *memLogs) ListSince(_ context.Context, since time.Time, limit, offset int) ([]*model.MealLogEntry, error) {
	cutoff := since.Format("2006-01-02")
	var out []*model.MealLogEntry
	for _, e := range l.entries {
		if e.MealDate >= cutoff {
			out = append(out, e)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (l *memLogs) ListWeek(_ context.Context, weekStart time.Time) ([]*model.MealLogEntry, error) {
	start := weekStart.Format("2006-01-02")
	end := weekStart.AddDate(0, 0, 7).Format("2006-01-02")
	var out []*model.MealLogEntry
	for _, e := range l.entries {
		if e.MealDate >= start && e.MealDate < end {
			out = append(out, e)
		}
	}
	return out, nil
}

func (l *memLogs) PatchOverride(_ context.Context, id string, override model.NutritionMap) (*model.MealLogEntry, error) {
	for _, e := range l.entries {
		if e.ID == id {
			e.OverrideNutrition = override
			return e, nil
		}
	}
	return nil, model.ErrNotFound
}

func (l *memLogs) Delete(_ context.Context, id string) error {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}

type memTargets memStore

func (t *memTargets) GetOrCreate(_ context.Context, weekStart time.Time, defaults model.NutritionMap) (model.NutritionMap, error) {
	key := weekStart.Format("2006-01-02")
	if existing, ok := t.targets[key]; ok {
		return existing, nil
	}
	t.targets[key] = defaults.Clone()
	return defaults.Clone(), nil
}

type memPrefs memStore

func (p *memPrefs) Save(_ context.Context, prefs model.UserPreferences) (*model.UserPreferences, error) {
	cp := prefs
	p.prefs = append(p.prefs, &cp)
	return &cp, nil
}

func (p *memPrefs) Latest(_ context.Context) (*model.UserPreferences, error) {
	if len(p.prefs) == 0 {
		return nil, nil
	}
	return p.prefs[len(p.prefs)-1], nil
}

type memMeals memStore

func (m *memMeals) Insert(_ context.Context, meal *model.CustomMeal) (*model.CustomMeal, error) {
	out := *meal
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	m.meals = append(m.meals, &out)
	return &out, nil
}

func (m *memMeals) List(_ context.Context, limit int) ([]*model.CustomMeal, error) {
	if len(m.meals) > limit {
		return m.meals[:limit], nil
	}
	return m.meals, nil
}

// mockProvider records messages and returns canned responses.
type mockProvider struct {
	plan     *provider.MealPlan
	recipe   *provider.CompletedRecipe
	estimate *provider.NutritionEstimate
	err      error

	lastMessages []provider.Message
}

func (p *mockProvider) SuggestMeals(_ context.Context, messages []provider.Message) (*provider.MealPlan, error) {
	p.lastMessages = messages
	return p.plan, p.err
}

func (p *mockProvider) CompleteRecipe(_ context.Context, messages []provider.Message) (*provider.CompletedRecipe, error) {
	p.lastMessages = messages
	return p.recipe, p.err
}

func (p *mockProvider) EstimateNutrition(_ context.Context, messages []provider.Message) (*provider.NutritionEstimate, error) {
	p.lastMessages = messages
	return p.estimate, p.err
}
