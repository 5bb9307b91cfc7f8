package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	respond "github.com/kamyarmaaf/planner/internal/api/respond"
	"github.com/kamyarmaaf/planner/internal/api/validate"
	"github.com/kamyarmaaf/planner/internal/model"
	"github.com/kamyarmaaf/planner/internal/services"
)

// PlanHandler serves the plan generation, retrieval and update endpoints.
type PlanHandler struct {
	svc             *services.PlannerService
	defaultTimezone string
}

func NewPlanHandler(svc *services.PlannerService, defaultTimezone string) *PlanHandler {
	return &PlanHandler{svc: svc, defaultTimezone: defaultTimezone}
}

func (h *PlanHandler) resolve(date, timezone string) (string, string) {
	if timezone == "" {
		timezone = h.defaultTimezone
	}
	if date == "" {
		date = model.DailyKey(nowIn(timezone))
	}
	return date, timezone
}

// nowIn returns the current wall-clock time in the named zone, falling back
// to UTC for unknown names.
func nowIn(timezone string) time.Time {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Now().UTC()
	}
	return time.Now().In(loc)
}

// GeneratePlan handles POST /api/plan/generate.
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "no actor")
		return
	}
	var in struct {
		Date     string `json:"date"`
		Timezone string `json:"timezone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	date, timezone := h.resolve(in.Date, in.Timezone)
	if err := validate.Date(date); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	plan, err := h.svc.GenerateTimeline(r.Context(), actor.UserID, date, timezone)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusAccepted, plan)
}

// GetPlan handles GET /api/plan?date=YYYY-MM-DD.
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "no actor")
		return
	}
	date := r.URL.Query().Get("date")
	if err := validate.DateKey(date); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	doc, err := h.svc.GetPlan(r.Context(), actor.UserID, date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, doc)
}

// GetToday handles GET /api/plan/today.
func (h *PlanHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "no actor")
		return
	}
	timezone := r.URL.Query().Get("timezone")
	if timezone == "" {
		timezone = h.defaultTimezone
	}
	date := model.DailyKey(nowIn(timezone))

	doc, err := h.svc.GetPlan(r.Context(), actor.UserID, date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, doc)
}

// SaveComprehensive handles POST /api/plan/comprehensive.
func (h *PlanHandler) SaveComprehensive(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "no actor")
		return
	}
	var in struct {
		Timezone   string              `json:"timezone"`
		LongTerm   *model.LongTermPlan `json:"long_term_plan"`
		Monthly    *model.MonthlyPlan  `json:"monthly_plan"`
		DailyTasks []model.Task        `json:"daily_tasks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if in.LongTerm == nil && in.Monthly == nil && in.DailyTasks == nil {
		respond.WriteBadRequest(w, "at least one plan section is required")
		return
	}
	_, timezone := h.resolve("", in.Timezone)

	saved, err := h.svc.SaveComprehensive(r.Context(), actor.UserID, timezone, nowIn(timezone), services.ComprehensiveInput{
		LongTerm:   in.LongTerm,
		Monthly:    in.Monthly,
		DailyTasks: in.DailyTasks,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"saved": saved})
}

// GetComprehensive handles GET /api/plan/comprehensive.
func (h *PlanHandler) GetComprehensive(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "no actor")
		return
	}
	timezone := r.URL.Query().Get("timezone")
	if timezone == "" {
		timezone = h.defaultTimezone
	}

	view, err := h.svc.Comprehensive(r.Context(), actor.UserID, nowIn(timezone))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, view)
}

// UpdateTask handles POST /api/plan/update-task.
func (h *PlanHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "no actor")
		return
	}
	var in struct {
		Date      string `json:"date"`
		TaskID    string `json:"taskId"`
		Completed bool   `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	date, _ := h.resolve(in.Date, "")
	if err := validate.TaskUpdate(date, in.TaskID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	task, err := h.svc.UpdateTask(r.Context(), actor.UserID, date, in.TaskID, in.Completed)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}

// writeServiceError maps service errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, err.Error())
	case errors.Is(err, model.ErrValidation):
		respond.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrCorruptPlan):
		respond.WriteInternalError(w, "stored plan is unreadable")
	default:
		respond.WriteInternalError(w, err.Error())
	}
}
