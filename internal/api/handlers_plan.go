package api

import (
	"encoding/json"
	"io"
	"net/http"

	respond "github.com/nutriweek/nutriweek/internal/api/respond"
	"github.com/nutriweek/nutriweek/internal/api/validate"
	"github.com/nutriweek/nutriweek/internal/model"
	"github.com/nutriweek/nutriweek/internal/planner"
)

// PlanHandler serves weekly progress and AI meal generation.
type PlanHandler struct {
	svc *planner.Service
}

func NewPlanHandler(svc *planner.Service) *PlanHandler { return &PlanHandler{svc: svc} }

// GetProgress GET /api/nutrition/progress
func (h *PlanHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.svc.WeeklyProgress(r.Context())
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, progress)
}

// GeneratePlan POST /api/meals/generate
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req model.GenerationRequest
	// An empty body means "no per-request overrides".
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	plan, err := h.svc.GenerateMealPlan(r.Context(), req)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, plan)
}

// CreateCustomMeal POST /api/meals/custom
func (h *PlanHandler) CreateCustomMeal(w http.ResponseWriter, r *http.Request) {
	var req model.CustomMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CustomMeal(&req); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	result, err := h.svc.CreateCustomMeal(r.Context(), req)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, result)
}

// CreateManualMeal POST /api/meals/manual
func (h *PlanHandler) CreateManualMeal(w http.ResponseWriter, r *http.Request) {
	var req model.ManualMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.ManualMeal(&req); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	result, err := h.svc.LogManualMeal(r.Context(), req)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, result)
}
