package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	respond "github.com/kamyarmaaf/planner/internal/api/respond"
	"github.com/kamyarmaaf/planner/internal/api/validate"
	"github.com/kamyarmaaf/planner/internal/model"
	"github.com/kamyarmaaf/planner/internal/services"
)

// AIHandler serves the daily-tasks generation endpoints.
type AIHandler struct {
	svc             *services.PlannerService
	defaultTimezone string
}

func NewAIHandler(svc *services.PlannerService, defaultTimezone string) *AIHandler {
	return &AIHandler{svc: svc, defaultTimezone: defaultTimezone}
}

// GenerateDailyTasks handles POST /api/ai/daily-tasks.
func (h *AIHandler) GenerateDailyTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "no actor")
		return
	}
	var in struct {
		Date     string `json:"date"`
		Timezone string `json:"timezone"`
	}
	// Body is optional; an empty body means "today".
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if in.Timezone == "" {
		in.Timezone = h.defaultTimezone
	}
	if in.Date == "" {
		in.Date = model.DailyKey(nowIn(in.Timezone))
	}
	if err := validate.Date(in.Date); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	tasks, err := h.svc.GenerateDailyTasks(r.Context(), actor.UserID, in.Date, in.Timezone)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"date":        in.Date,
		"daily_tasks": tasks,
	})
}

// ToggleDailyTask handles POST /api/ai/daily-tasks/toggle. It is the legacy
// toggle route; the update itself goes through the same engine as
// /api/plan/update-task.
func (h *AIHandler) ToggleDailyTask(w http.ResponseWriter, r *http.Request) {
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
	if in.Date == "" {
		in.Date = model.DailyKey(nowIn(h.defaultTimezone))
	}
	if err := validate.TaskUpdate(in.Date, in.TaskID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	task, err := h.svc.UpdateTask(r.Context(), actor.UserID, in.Date, in.TaskID, in.Completed)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"task": task})
}
