package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/kamyarmaaf/planner/internal/auth"
	"github.com/kamyarmaaf/planner/internal/model"
	"github.com/kamyarmaaf/planner/internal/planner"
	"github.com/kamyarmaaf/planner/internal/services"
	"github.com/kamyarmaaf/planner/internal/store/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	st, err := sqlite.NewWithDB(db)
	require.NoError(t, err)

	gen := planner.NewGenerator(nil, zerolog.Nop())
	router := NewRouter(Deps{
		Planner:         services.NewPlannerService(st, gen),
		Profiles:        services.NewProfileService(st),
		Contact:         services.NewContactService(st),
		Health:          NewHealthHandler(st),
		Authorizer:      auth.NewDevAuthorizer(),
		DefaultTimezone: "UTC",
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func saveProfile(t *testing.T, srv *httptest.Server, token string) {
	t.Helper()
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/profile", token, map[string]interface{}{
		"workStudy": "Engineer",
		"hobbies":   "chess",
		"sports":    "yoga",
		"location":  "Berlin",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	require.Equal(t, "healthy", body["status"])
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/plan/today")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	saveProfile(t, srv, "alice")

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/profile", "alice", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p model.Profile
	decode(t, resp, &p)
	require.Equal(t, "alice", p.UserID)
	require.Equal(t, "Engineer", p.WorkStudy)
	require.NotNil(t, p.AIContext)
}

func TestProfileValidation(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/profile", "alice", map[string]interface{}{
		"workStudy": "",
	})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateAndFetchPlan(t *testing.T) {
	srv := newTestServer(t)
	saveProfile(t, srv, "alice")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/plan/generate", "alice", map[string]string{
		"date": "2025-06-01",
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var plan model.TimelinePlan
	decode(t, resp, &plan)
	require.Len(t, plan.Items, 11)
	require.Equal(t, "Yoga session", plan.Items[5].Title)

	get := doJSON(t, http.MethodGet, srv.URL+"/api/plan?date=2025-06-01", "alice", nil)
	require.Equal(t, http.StatusOK, get.StatusCode)

	var doc model.PlanDocument
	decode(t, get, &doc)
	require.Equal(t, "2025-06-01", doc.DateKey)
	require.True(t, json.Valid(doc.PlanJSON))
}

func TestGetPlanMissing(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/plan?date=2031-01-01", "alice", nil)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetPlanBadDate(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/plan?date=tomorrow", "alice", nil)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGeneratePlanWithoutProfile(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/plan/generate", "bob", map[string]string{
		"date": "2025-06-01",
	})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateTaskMaterializesTemplate(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/plan/update-task", "alice", map[string]interface{}{
		"date":      "2025-06-01",
		"taskId":    "3",
		"completed": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Task model.Task `json:"task"`
	}
	decode(t, resp, &body)
	require.Equal(t, "Morning Workout", body.Task.Title)
	require.True(t, body.Task.Completed)

	get := doJSON(t, http.MethodGet, srv.URL+"/api/plan?date=2025-06-01", "alice", nil)
	require.Equal(t, http.StatusOK, get.StatusCode)
	var doc model.PlanDocument
	decode(t, get, &doc)
	var payload struct {
		DailyTasks []model.Task `json:"daily_tasks"`
	}
	require.NoError(t, json.Unmarshal(doc.PlanJSON, &payload))
	require.Len(t, payload.DailyTasks, 9)
}

func TestDailyTasksFallbackFlow(t *testing.T) {
	srv := newTestServer(t)
	saveProfile(t, srv, "alice")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/ai/daily-tasks", "alice", map[string]string{
		"date": "2025-06-01",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Date       string       `json:"date"`
		DailyTasks []model.Task `json:"daily_tasks"`
	}
	decode(t, resp, &body)
	require.Equal(t, "2025-06-01", body.Date)
	require.Len(t, body.DailyTasks, 3)

	// Fallback lists are not persisted.
	get := doJSON(t, http.MethodGet, srv.URL+"/api/plan?date=2025-06-01", "alice", nil)
	defer func() { _ = get.Body.Close() }()
	require.Equal(t, http.StatusNotFound, get.StatusCode)
}

func TestComprehensiveRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/plan/comprehensive", "alice", map[string]interface{}{
		"long_term_plan": map[string]interface{}{
			"description": "Run a marathon",
			"milestones":  []string{"10k", "half"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	get := doJSON(t, http.MethodGet, srv.URL+"/api/plan/comprehensive", "alice", nil)
	require.Equal(t, http.StatusOK, get.StatusCode)

	var view struct {
		LongTerm *model.LongTermPlan `json:"long_term_plan"`
		Monthly  json.RawMessage     `json:"monthly_plan"`
	}
	decode(t, get, &view)
	require.NotNil(t, view.LongTerm)
	require.Equal(t, "Run a marathon", view.LongTerm.Description)
	require.Equal(t, "null", string(view.Monthly))
}

func TestComprehensiveEmptyBodyRejected(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/plan/comprehensive", "alice", map[string]interface{}{})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContactFlow(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/contact", "", map[string]string{
		"name":    "Sam",
		"email":   "sam@example.com",
		"subject": "Hello",
		"message": "Great app",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	list := doJSON(t, http.MethodGet, srv.URL+"/api/contact", "", nil)
	require.Equal(t, http.StatusOK, list.StatusCode)

	var body struct {
		Messages []model.Message `json:"messages"`
	}
	decode(t, list, &body)
	require.Len(t, body.Messages, 1)
}
