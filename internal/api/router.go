package api

import (
	"github.com/gorilla/mux"

	"github.com/kamyarmaaf/planner/internal/api/recovery"
	"github.com/kamyarmaaf/planner/internal/auth"
	"github.com/kamyarmaaf/planner/internal/services"
)

// Deps carries everything the router needs wired.
type Deps struct {
	Planner         *services.PlannerService
	Profiles        *services.ProfileService
	Contact         *services.ContactService
	Health          *HealthHandler
	Authorizer      auth.Authorizer
	DefaultTimezone string
}

// NewRouter creates the HTTP router with all API routes.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	planHandler := NewPlanHandler(d.Planner, d.DefaultTimezone)
	aiHandler := NewAIHandler(d.Planner, d.DefaultTimezone)
	profileHandler := NewProfileHandler(d.Profiles)
	contactHandler := NewContactHandler(d.Contact)

	// Health endpoint (unauthenticated)
	router.HandleFunc("/api/health", d.Health.CheckHealth).Methods("GET")

	// Contact endpoints (unauthenticated; original site exposes the form
	// without a session)
	router.HandleFunc("/api/contact", contactHandler.CreateMessage).Methods("POST")
	router.HandleFunc("/api/contact", contactHandler.ListMessages).Methods("GET")

	// Authenticated surface
	authed := router.PathPrefix("/api").Subrouter()
	authed.Use(AuthMiddleware(d.Authorizer))

	authed.HandleFunc("/plan/generate", planHandler.GeneratePlan).Methods("POST")
	authed.HandleFunc("/plan/today", planHandler.GetToday).Methods("GET")
	authed.HandleFunc("/plan/comprehensive", planHandler.GetComprehensive).Methods("GET")
	authed.HandleFunc("/plan/comprehensive", planHandler.SaveComprehensive).Methods("POST")
	authed.HandleFunc("/plan/update-task", planHandler.UpdateTask).Methods("POST")
	authed.HandleFunc("/plan", planHandler.GetPlan).Methods("GET")

	authed.HandleFunc("/ai/daily-tasks", aiHandler.GenerateDailyTasks).Methods("POST")
	authed.HandleFunc("/ai/daily-tasks/toggle", aiHandler.ToggleDailyTask).Methods("POST")

	authed.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	authed.HandleFunc("/profile", profileHandler.SaveProfile).Methods("POST")

	return router
}
