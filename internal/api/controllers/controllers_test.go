package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidayplanner/internal/config"
	"holidayplanner/internal/models/db_models"
	"holidayplanner/internal/models/request_models"
	"holidayplanner/internal/repositories"
	"holidayplanner/internal/services"
	mem "holidayplanner/pkg/memcache"
	"holidayplanner/pkg/middleware"
	"holidayplanner/pkg/utils"
)

type stubCompletion struct {
	reply string
	calls int
}

func (s *stubCompletion) Provider() string { return "stub" }

func (s *stubCompletion) Complete(context.Context, utils.CompletionRequest) (string, error) {
	s.calls++
	return s.reply, nil
}

type testEnv struct {
	router     *gin.Engine
	schedules  services.ScheduleServiceInterface
	completion *stubCompletion
	token      string
}

func newTestEnv(t *testing.T, apiKey string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repositories.NewScheduleRepository(filepath.Join(t.TempDir(), "schedule-data.json"))
	require.NoError(t, repo.Save(db_models.Schedule{
		1: {
			{Date: "2025-10-11", StartTime: 12, Duration: 1.5, Label: "Arrive PHX", Category: db_models.CategoryFlight},
			{Date: "2025-10-11", StartTime: 13.5, Duration: 2, Label: "Drive to Sedona", Category: db_models.CategoryDriving},
		},
	}))
	schedules := services.NewScheduleService(repo, mem.NewViewCache(0, time.Minute))
	completion := &stubCompletion{}
	ai := services.NewAIScheduleService(completion, schedules, apiKey, "gpt-4o")
	accounts := services.NewAccountService(config.AuthConfig{Username: "planner", Password: "hunter2", JWTSecret: "secret"})

	scheduleController := NewScheduleController(schedules)
	aiController := NewAIScheduleController(ai, schedules)
	accountController := NewAccountController(accounts)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.POST("/auth/login", accountController.Login)
	group := r.Group("/schedule")
	group.GET("", scheduleController.GetSchedule)
	group.GET("/days", scheduleController.GetDayViews)
	group.GET("/summary", scheduleController.GetSummary)
	group.GET("/categories", scheduleController.GetCategories)
	edit := group.Group("", middleware.JWTAuthMiddleware(accounts))
	edit.PUT("", scheduleController.ReplaceSchedule)
	edit.POST("/days", scheduleController.AddDay)
	edit.DELETE("/days/:day", scheduleController.DeleteDay)
	edit.POST("/days/:day/activities", scheduleController.AddActivity)
	edit.PUT("/days/:day/activities/:index", scheduleController.UpdateActivity)
	edit.DELETE("/days/:day/activities/:index", scheduleController.DeleteActivity)
	edit.POST("/ai", aiController.UpdateScheduleHandler)

	session, err := accounts.Login(request_models.LoginRequest{Username: "planner", Password: "hunter2"})
	require.NoError(t, err)

	return &testEnv{router: r, schedules: schedules, completion: completion, token: session.Token}
}

func (e *testEnv) do(t *testing.T, method, path, body string, auth bool) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func TestGetScheduleIsPublic(t *testing.T) {
	env := newTestEnv(t, "sk-test")

	w, resp := env.do(t, http.MethodGet, "/schedule", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.TraceID)
	assert.Contains(t, w.Body.String(), "Drive to Sedona")
}

func TestEditsRequireSession(t *testing.T) {
	env := newTestEnv(t, "sk-test")

	w, _ := env.do(t, http.MethodPost, "/schedule/days", "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	env := newTestEnv(t, "sk-test")

	w, resp := env.do(t, http.MethodPost, "/auth/login", `{"username":"planner","password":"hunter2"}`, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.SessionCookie+"=")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")

	w, resp = env.do(t, http.MethodPost, "/auth/login", `{"username":"planner","password":"nope"}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, utils.KindUnauthorized, resp.Kind)
}

func TestActivityLifecycle(t *testing.T) {
	env := newTestEnv(t, "sk-test")

	w, _ := env.do(t, http.MethodPost, "/schedule/days/1/activities",
		`{"date":"2025-10-11","start":"09:30","duration":1,"label":"Breakfast","category":"Eating"}`, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := env.schedules.LoadSchedule()
	require.NoError(t, err)
	require.Len(t, stored[1], 3)
	assert.Equal(t, "Breakfast", stored[1][0].Label)
	assert.Equal(t, 9.5, stored[1][0].StartTime)

	w, _ = env.do(t, http.MethodPut, "/schedule/days/1/activities/2",
		`{"date":"2025-10-11","startTime":14,"duration":3,"label":"Scenic drive","category":"Driving"}`, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = env.do(t, http.MethodDelete, "/schedule/days/1/activities/0", "", true)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err = env.schedules.LoadSchedule()
	require.NoError(t, err)
	require.Len(t, stored[1], 2)
	assert.Equal(t, "Scenic drive", stored[1][1].Label)
}

func TestActivityErrors(t *testing.T) {
	env := newTestEnv(t, "sk-test")

	w, resp := env.do(t, http.MethodPost, "/schedule/days/1/activities",
		`{"date":"2025-10-11","startTime":9,"duration":1,"label":"Nap","category":"Sleeping"}`, true)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, utils.KindValidation, resp.Kind)

	w, resp = env.do(t, http.MethodPost, "/schedule/days/9/activities",
		`{"date":"2025-10-11","startTime":9,"duration":1,"label":"Walk","category":"Hiking"}`, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, utils.KindNotFound, resp.Kind)

	w, _ = env.do(t, http.MethodDelete, "/schedule/days/one/activities/0", "", true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = env.do(t, http.MethodPost, "/schedule/days/1/activities", `{"date":"2025-10-11","duration":1,"category":"Hiking"}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDays(t *testing.T) {
	env := newTestEnv(t, "sk-test")

	w, resp := env.do(t, http.MethodDelete, "/schedule/days/1", "", true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.ErrLastDay.Error(), resp.Message)

	w, resp = env.do(t, http.MethodPost, "/schedule/days", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Day 2 added", resp.Message)

	w, _ = env.do(t, http.MethodDelete, "/schedule/days/1", "", true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReplaceSchedule(t *testing.T) {
	env := newTestEnv(t, "sk-test")

	w, resp := env.do(t, http.MethodPut, "/schedule", `{"1":"not-an-array"}`, true)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "day 1 activities should be an array", resp.Message)

	w, _ = env.do(t, http.MethodPut, "/schedule",
		`{"4":[{"date":"2025-10-14","startTime":8,"duration":4,"label":"Rafting","category":"Rafting"}]}`, true)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := env.schedules.LoadSchedule()
	require.NoError(t, err)
	assert.Equal(t, []int{4}, stored.SortedDays())
}

func TestViews(t *testing.T) {
	env := newTestEnv(t, "sk-test")

	w, _ := env.do(t, http.MethodGet, "/schedule/days", "", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"start":"13:30"`)
	assert.Contains(t, w.Body.String(), `"end":"15:30"`)

	w, _ = env.do(t, http.MethodGet, "/schedule/summary", "", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_hours":3.5`)

	w, _ = env.do(t, http.MethodGet, "/schedule/categories", "", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"Hotel/Rest"`)
}

func TestAIUpdate(t *testing.T) {
	env := newTestEnv(t, "sk-test")
	env.completion.reply = `{"schedule":{"1":[{"date":"2025-10-11","startTime":12,"duration":1.5,"label":"Arrive PHX","category":"Flight"}]},"explanation":"Removed the drive."}`

	w, resp := env.do(t, http.MethodPost, "/schedule/ai", `{"prompt":"remove the drive"}`, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Removed the drive.", resp.Message)

	stored, err := env.schedules.LoadSchedule()
	require.NoError(t, err)
	assert.Len(t, stored[1], 1)
}

func TestAIUpdateFailures(t *testing.T) {
	env := newTestEnv(t, "")

	w, resp := env.do(t, http.MethodPost, "/schedule/ai", `{"prompt":"add a hike"}`, true)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, utils.KindConfiguration, resp.Kind)
	assert.Zero(t, env.completion.calls)

	env = newTestEnv(t, "sk-test")
	env.completion.reply = "no json here"
	w, resp = env.do(t, http.MethodPost, "/schedule/ai", `{"prompt":"add a hike"}`, true)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "AI returned invalid response. Please try rephrasing your request.", resp.Message)

	w, _ = env.do(t, http.MethodPost, "/schedule/ai", `{"model":"gpt-4o"}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = env.do(t, http.MethodPost, "/schedule/ai", `{"prompt":"add a hike","currentSchedule":[]}`, true)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "schedule should be an object", resp.Message)
}
