// Package sqlite implements the store contract on a local SQLite database.
// Nutrition profiles are stored as JSON blobs, mirroring the wire shape.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nutriweek/nutriweek/internal/model"
	"github.com/nutriweek/nutriweek/internal/nutrition"
	"github.com/nutriweek/nutriweek/internal/store"
)

type sqliteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

// New constructs a SQLite-backed store over an open connection and applies
// the embedded DDL.
func New(ctx context.Context, db *sql.DB, log zerolog.Logger) (store.Store, error) {
	for _, stmt := range store.DefaultDDLStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, err
		}
	}
	return &sqliteStore{db: db, log: log}, nil
}

func (s *sqliteStore) Logs() store.Logs               { return &logs{db: s.db, log: s.log} }
func (s *sqliteStore) Targets() store.Targets         { return &targets{db: s.db} }
func (s *sqliteStore) Preferences() store.Preferences { return &preferences{db: s.db} }
func (s *sqliteStore) CustomMeals() store.CustomMeals { return &customMeals{db: s.db, log: s.log} }

// HealthPing implements store.HealthPinger.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- Logs ---

type logs struct {
	db  *sql.DB
	log zerolog.Logger
}

func (l *logs) Insert(ctx context.Context, e *model.MealLogEntry) (*model.MealLogEntry, error) {
	id := e.ID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	baseJSON, err := json.Marshal(e.BaseNutrition)
	if err != nil {
		return nil, err
	}
	var overrideJSON interface{}
	if e.OverrideNutrition != nil {
		b, err := json.Marshal(e.OverrideNutrition)
		if err != nil {
			return nil, err
		}
		overrideJSON = string(b)
	}
	_, err = l.db.ExecContext(ctx, `
        INSERT INTO meal_logs (id, meal_name, meal_type, calories, nutrition, meal_date, meal_time, was_suggested, notes, override_nutrition, creation_time)
        VALUES (?,?,?,?,?,?,?,?,?,?,?)
    `, id, e.MealName, e.MealType, e.Calories, string(baseJSON), e.MealDate, e.MealTime, boolToInt(e.WasSuggested), e.Notes, overrideJSON, now)
	if err != nil {
		return nil, err
	}
	out := *e
	out.ID = id
	out.CreationTime = now
	return &out, nil
}

const logColumns = `id, meal_name, meal_type, calories, nutrition, meal_date, meal_time, was_suggested, notes, override_nutrition, creation_time`

func (l *logs) Get(ctx context.Context, id string) (*model.MealLogEntry, error) {
	row := l.db.QueryRowContext(ctx, `SELECT `+logColumns+` FROM meal_logs WHERE id = ?`, id)
	e, err := l.scan(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	return e, err
}

func (l *logs) ListSince(ctx context.Context, since time.Time, limit, offset int) ([]*model.MealLogEntry, error) {
	rows, err := l.db.QueryContext(ctx, `
        SELECT `+logColumns+` FROM meal_logs
        WHERE meal_date >= ?
        ORDER BY meal_date DESC, meal_time DESC
        LIMIT ? OFFSET ?
    `, since.Format(nutrition.DateLayout), limit, offset)
	if err != nil {
		return nil, err
	}
	return l.collect(rows)
}

func (l *logs) ListWeek(ctx context.Context, weekStart time.Time) ([]*model.MealLogEntry, error) {
	weekEnd := weekStart.AddDate(0, 0, 7)
	rows, err := l.db.QueryContext(ctx, `
        SELECT `+logColumns+` FROM meal_logs
        WHERE meal_date >= ? AND meal_date < ?
        ORDER BY meal_date, meal_time
    `, weekStart.Format(nutrition.DateLayout), weekEnd.Format(nutrition.DateLayout))
	if err != nil {
		return nil, err
	}
	return l.collect(rows)
}

func (l *logs) PatchOverride(ctx context.Context, id string, override model.NutritionMap) (*model.MealLogEntry, error) {
	var overrideJSON interface{}
	if len(override) > 0 {
		b, err := json.Marshal(override)
		if err != nil {
			return nil, err
		}
		overrideJSON = string(b)
	}
	res, err := l.db.ExecContext(ctx, `UPDATE meal_logs SET override_nutrition = ? WHERE id = ?`, overrideJSON, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return l.Get(ctx, id)
}

func (l *logs) Delete(ctx context.Context, id string) error {
	res, err := l.db.ExecContext(ctx, `DELETE FROM meal_logs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (l *logs) collect(rows *sql.Rows) ([]*model.MealLogEntry, error) {
	defer func() { _ = rows.Close() }()
	var out []*model.MealLogEntry
	for rows.Next() {
		e, err := l.scan(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (l *logs) scan(scan func(...interface{}) error) (*model.MealLogEntry, error) {
	var e model.MealLogEntry
	var base string
	var override sql.NullString
	var mealTime sql.NullString
	var suggested int
	if err := scan(&e.ID, &e.MealName, &e.MealType, &e.Calories, &base, &e.MealDate, &mealTime, &suggested, &e.Notes, &override, &e.CreationTime); err != nil {
		return nil, err
	}
	e.MealTime = mealTime.String
	e.WasSuggested = suggested != 0
	e.BaseNutrition = nutrition.ParseNutrition([]byte(base), e.ID, l.log)
	if override.Valid {
		e.OverrideNutrition = nutrition.ParseNutrition([]byte(override.String), e.ID, l.log)
	}
	return &e, nil
}

// --- Targets ---

type targets struct{ db *sql.DB }

func (t *targets) GetOrCreate(ctx context.Context, weekStart time.Time, defaults model.NutritionMap) (model.NutritionMap, error) {
	key := weekStart.Format(nutrition.DateLayout)
	var data string
	err := t.db.QueryRowContext(ctx, `SELECT data FROM weekly_targets WHERE week_start = ?`, key).Scan(&data)
	switch {
	case err == nil:
		var out model.NutritionMap
		if err := json.Unmarshal([]byte(data), &out); err != nil {
			return nil, err
		}
		return out, nil
	case errors.Is(err, sql.ErrNoRows):
		b, err := json.Marshal(defaults)
		if err != nil {
			return nil, err
		}
		// Concurrent first reads of a week may race; the existing row wins.
		if _, err := t.db.ExecContext(ctx, `INSERT OR IGNORE INTO weekly_targets (week_start, data, creation_time) VALUES (?,?,?)`,
			key, string(b), time.Now().UTC()); err != nil {
			return nil, err
		}
		return defaults.Clone(), nil
	default:
		return nil, err
	}
}

// --- Preferences ---

type preferences struct{ db *sql.DB }

func (p *preferences) Save(ctx context.Context, prefs model.UserPreferences) (*model.UserPreferences, error) {
	ingredients, err := json.Marshal(prefs.PreferredIngredients)
	if err != nil {
		return nil, err
	}
	restrictions, err := json.Marshal(prefs.DietaryRestrictions)
	if err != nil {
		return nil, err
	}
	_, err = p.db.ExecContext(ctx, `
        INSERT INTO user_preferences (id, preferred_ingredients, dietary_restrictions, cooking_time_preference, meal_complexity, updated_at)
        VALUES (?,?,?,?,?,?)
    `, uuid.New().String(), string(ingredients), string(restrictions), prefs.CookingTimePreference, prefs.MealComplexity, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return p.Latest(ctx)
}

func (p *preferences) Latest(ctx context.Context) (*model.UserPreferences, error) {
	var ingredients, restrictions string
	var out model.UserPreferences
	err := p.db.QueryRowContext(ctx, `
        SELECT preferred_ingredients, dietary_restrictions, cooking_time_preference, meal_complexity
        FROM user_preferences ORDER BY updated_at DESC LIMIT 1
    `).Scan(&ingredients, &restrictions, &out.CookingTimePreference, &out.MealComplexity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(ingredients), &out.PreferredIngredients); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(restrictions), &out.DietaryRestrictions); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Custom meals ---

type customMeals struct {
	db  *sql.DB
	log zerolog.Logger
}

func (c *customMeals) Insert(ctx context.Context, m *model.CustomMeal) (*model.CustomMeal, error) {
	id := m.ID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	ingredients, err := json.Marshal(m.Ingredients)
	if err != nil {
		return nil, err
	}
	instructions, err := json.Marshal(m.Instructions)
	if err != nil {
		return nil, err
	}
	tags, err := json.Marshal(m.Tags)
	if err != nil {
		return nil, err
	}
	nutritionJSON, err := json.Marshal(m.Nutrition)
	if err != nil {
		return nil, err
	}
	_, err = c.db.ExecContext(ctx, `
        INSERT INTO custom_meals (id, name, description, meal_type, cooking_time, ingredients, instructions, tags, nutrition, creation_time)
        VALUES (?,?,?,?,?,?,?,?,?,?)
    `, id, m.Name, m.Description, m.MealType, m.CookingTime, string(ingredients), string(instructions), string(tags), string(nutritionJSON), now)
	if err != nil {
		return nil, err
	}
	out := *m
	out.ID = id
	out.CreationTime = now
	return &out, nil
}

func (c *customMeals) List(ctx context.Context, limit int) ([]*model.CustomMeal, error) {
	rows, err := c.db.QueryContext(ctx, `
        SELECT id, name, description, meal_type, cooking_time, ingredients, instructions, tags, nutrition, creation_time
        FROM custom_meals ORDER BY creation_time DESC LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.CustomMeal
	for rows.Next() {
		var m model.CustomMeal
		var ingredients, instructions, nutritionJSON string
		var tags sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.MealType, &m.CookingTime, &ingredients, &instructions, &tags, &nutritionJSON, &m.CreationTime); err != nil {
			return nil, err
		}
		decodeList(ingredients, &m.Ingredients)
		decodeList(instructions, &m.Instructions)
		if tags.Valid {
			decodeList(tags.String, &m.Tags)
		}
		if m.Tags == nil {
			m.Tags = []string{}
		}
		m.Nutrition = nutrition.ParseNutrition([]byte(nutritionJSON), m.ID, c.log)
		out = append(out, &m)
	}
	return out, rows.Err()
}

// decodeList best-effort decodes a stored string list, leaving an empty slice
// on corruption; same recovery policy as nutrition blobs.
func decodeList(raw string, dst *[]string) {
	if err := json.Unmarshal([]byte(raw), dst); err != nil || *dst == nil {
		*dst = []string{}
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
