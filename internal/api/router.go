package api

import (
	"github.com/gorilla/mux"

	"github.com/nutriweek/nutriweek/internal/api/recovery"
	"github.com/nutriweek/nutriweek/internal/catalog"
	"github.com/nutriweek/nutriweek/internal/planner"
)

// NewRouter wires all API routes over the planner service.
func NewRouter(svc *planner.Service, cat *catalog.Catalog) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	healthHandler := NewHealthHandler()
	planHandler := NewPlanHandler(svc)
	logHandler := NewLogHandler(svc, cat)
	prefHandler := NewPreferencesHandler(svc)

	// Health endpoint
	router.HandleFunc("/health", healthHandler.CheckHealth).Methods("GET")

	// Preferences endpoints
	router.HandleFunc("/api/preferences", prefHandler.GetPreferences).Methods("GET")
	router.HandleFunc("/api/preferences", prefHandler.SavePreferences).Methods("POST", "PUT")

	// Weekly progress endpoint
	router.HandleFunc("/api/nutrition/progress", planHandler.GetProgress).Methods("GET")

	// Meal log endpoints
	router.HandleFunc("/api/meals/log", logHandler.CreateLog).Methods("POST")
	router.HandleFunc("/api/meals/log", logHandler.ListLogs).Methods("GET")
	router.HandleFunc("/api/meals/log/{logId}", logHandler.GetLog).Methods("GET")
	router.HandleFunc("/api/meals/log/{logId}", logHandler.PatchLog).Methods("PATCH")
	router.HandleFunc("/api/meals/log/{logId}", logHandler.DeleteLog).Methods("DELETE")

	// Generation endpoints
	router.HandleFunc("/api/meals/generate", planHandler.GeneratePlan).Methods("POST")
	router.HandleFunc("/api/meals/custom", planHandler.CreateCustomMeal).Methods("POST")
	router.HandleFunc("/api/meals/manual", planHandler.CreateManualMeal).Methods("POST")

	return router
}
