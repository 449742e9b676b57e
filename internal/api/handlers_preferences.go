package api

import (
	"encoding/json"
	"net/http"

	respond "github.com/nutriweek/nutriweek/internal/api/respond"
	"github.com/nutriweek/nutriweek/internal/api/validate"
	"github.com/nutriweek/nutriweek/internal/model"
	"github.com/nutriweek/nutriweek/internal/planner"
)

// PreferencesHandler is the HTTP transport for user preferences.
type PreferencesHandler struct {
	svc *planner.Service
}

func NewPreferencesHandler(svc *planner.Service) *PreferencesHandler {
	return &PreferencesHandler{svc: svc}
}

// GetPreferences GET /api/preferences
func (h *PreferencesHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.GetPreferences(r.Context())
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, prefs)
}

// SavePreferences POST|PUT /api/preferences
func (h *PreferencesHandler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	var req model.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Preferences(&req); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	saved, err := h.svc.SavePreferences(r.Context(), req)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, saved)
}
