// Package store defines the persistence contract required by the planner.
// Implementations live under internal/store/<driver>/ (sqlite, postgres).
package store

import (
	"context"
	"time"

	"github.com/nutriweek/nutriweek/internal/model"
)

// Store exposes persistence operations required by the planner service.
type Store interface {
	Logs() Logs
	Targets() Targets
	Preferences() Preferences
	CustomMeals() CustomMeals
}

// Logs manages meal log entries. Absent ids surface model.ErrNotFound.
type Logs interface {
	Insert(ctx context.Context, e *model.MealLogEntry) (*model.MealLogEntry, error)
	Get(ctx context.Context, id string) (*model.MealLogEntry, error)
	// ListSince returns entries dated on or after since, newest first.
	ListSince(ctx context.Context, since time.Time, limit, offset int) ([]*model.MealLogEntry, error)
	// ListWeek returns every entry dated within [weekStart, weekStart+7d).
	ListWeek(ctx context.Context, weekStart time.Time) ([]*model.MealLogEntry, error)
	// PatchOverride replaces the override blob (last writer wins) and
	// returns the updated entry. It never creates a row.
	PatchOverride(ctx context.Context, id string, override model.NutritionMap) (*model.MealLogEntry, error)
	Delete(ctx context.Context, id string) error
}

// Targets manages per-week nutrient targets, keyed by week-start date.
type Targets interface {
	// GetOrCreate returns the stored targets for the week, creating them
	// from defaults when the week has not been seen before. Stored targets
	// are immutable afterwards.
	GetOrCreate(ctx context.Context, weekStart time.Time, defaults model.NutritionMap) (model.NutritionMap, error)
}

// Preferences stores user preference records, latest write wins on read.
type Preferences interface {
	Save(ctx context.Context, p model.UserPreferences) (*model.UserPreferences, error)
	// Latest returns the most recently saved record, or (nil, nil) when
	// nothing has been saved yet.
	Latest(ctx context.Context) (*model.UserPreferences, error)
}

// CustomMeals stores immutable recipe records.
type CustomMeals interface {
	Insert(ctx context.Context, m *model.CustomMeal) (*model.CustomMeal, error)
	// List returns up to limit meals, newest first.
	List(ctx context.Context, limit int) ([]*model.CustomMeal, error)
}

// HealthPinger is implemented by adapters that can verify connectivity.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}
