package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	respond "github.com/nutriweek/nutriweek/internal/api/respond"
	"github.com/nutriweek/nutriweek/internal/api/validate"
	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/model"
	"github.com/nutriweek/nutriweek/internal/planner"
)

// LogHandler is the HTTP transport for meal log operations.
type LogHandler struct {
	svc *planner.Service
	cat *catalog.Catalog
}

func NewLogHandler(svc *planner.Service, cat *catalog.Catalog) *LogHandler {
	return &LogHandler{svc: svc, cat: cat}
}

// CreateLog POST /api/meals/log
func (h *LogHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	var req model.MealLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.MealLog(&req); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	entry, err := h.svc.LogMeal(r.Context(), req)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      entry.ID,
		"message": "Meal logged successfully",
	})
}

// ListLogs GET /api/meals/log
func (h *LogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	var req model.ListLogsRequest
	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"limit", &req.Limit},
		{"days", &req.Days},
		{"offset", &req.Offset},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			respond.WriteBadRequest(w, p.name+" must be an integer")
			return
		}
		*p.dst = v
	}
	if err := validate.ListLogsQuery(&req); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	entries, err := h.svc.ListLogs(r.Context(), req)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, entries)
}

// GetLog GET /api/meals/log/{logId}
func (h *LogHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetLog(r.Context(), mux.Vars(r)["logId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, entry)
}

// PatchLog PATCH /api/meals/log/{logId}
func (h *LogHandler) PatchLog(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OverrideNutrition model.NutritionMap `json:"override_nutrition"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Override(h.cat, req.OverrideNutrition); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	entry, err := h.svc.PatchOverride(r.Context(), mux.Vars(r)["logId"], req.OverrideNutrition)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, entry)
}

// DeleteLog DELETE /api/meals/log/{logId}
func (h *LogHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["logId"]
	if err := h.svc.DeleteLog(r.Context(), id); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"id":      id,
		"message": "Meal deleted",
	})
}
