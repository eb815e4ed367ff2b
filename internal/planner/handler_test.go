package planner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/weekplan/internal/metrics"
	"github.com/2beens/weekplan/internal/planner"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRouter(t *testing.T) (*mux.Router, *planner.Store) {
	t.Helper()

	store := planner.NewStore(context.Background(), &memSlot{})
	handler := planner.NewHandler(store, metrics.NewTestManager())

	router := mux.NewRouter()
	handler.SetupRoutes(router)
	return router, store
}

func getListResponse(t *testing.T, rec *httptest.ResponseRecorder) planner.ListResponse {
	t.Helper()
	var listResponse planner.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResponse))
	return listResponse
}

func TestHandler_List(t *testing.T) {
	router, _ := newTestRouter(t)

	req, err := http.NewRequest("GET", "/planner/sessions", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	listResponse := getListResponse(t, rec)
	assert.Equal(t, 6, listResponse.Total)
	assert.Len(t, listResponse.Sessions, 6)
}

func TestHandler_Create(t *testing.T) {
	router, _ := newTestRouter(t)

	draft := planner.SessionDraft{
		Name:      "Hill Sprints",
		Focus:     planner.FocusConditioning,
		Intensity: planner.IntensityHigh,
		Day:       planner.Friday,
		Start:     "17:30",
		Duration:  25,
		Location:  "Park",
	}
	draftJson, err := json.Marshal(draft)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", "/planner/sessions", bytes.NewReader(draftJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	listResponse := getListResponse(t, rec)
	assert.Equal(t, 7, listResponse.Total)
}

func TestHandler_Create_InvalidContentType(t *testing.T) {
	router, _ := newTestRouter(t)

	req, err := http.NewRequest("POST", "/planner/sessions", bytes.NewReader([]byte("{}")))
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Create_MissingRequiredFields(t *testing.T) {
	router, _ := newTestRouter(t)

	req, err := http.NewRequest("POST", "/planner/sessions", bytes.NewReader([]byte(`{"name":"No Day"}`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Update(t *testing.T) {
	router, store := newTestRouter(t)
	target := store.Sessions()[0]

	draft := planner.SessionDraft{
		Name:     "Renamed Session",
		Focus:    target.Focus,
		Day:      target.Day,
		Start:    target.Start,
		Duration: target.Duration,
	}
	draftJson, err := json.Marshal(draft)
	require.NoError(t, err)

	req, err := http.NewRequest("PUT", "/planner/sessions/"+target.ID, bytes.NewReader(draftJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated *planner.Session
	for _, s := range store.Sessions() {
		if s.ID == target.ID {
			updated = &s
			break
		}
	}
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed Session", updated.Name)
}

func TestHandler_Remove(t *testing.T) {
	router, store := newTestRouter(t)
	target := store.Sessions()[0]

	req, err := http.NewRequest("DELETE", "/planner/sessions/"+target.ID, nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	listResponse := getListResponse(t, rec)
	assert.Equal(t, 5, listResponse.Total)
}

func TestHandler_ToggleCompleted(t *testing.T) {
	router, store := newTestRouter(t)
	target := store.Sessions()[0]
	require.False(t, target.Completed)

	req, err := http.NewRequest("POST", "/planner/sessions/"+target.ID+"/toggle", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	listResponse := getListResponse(t, rec)
	assert.True(t, listResponse.Sessions[0].Completed)
}

func TestHandler_AutoBalance(t *testing.T) {
	router, store := newTestRouter(t)
	store.Remove(context.Background(), store.Sessions()[0].ID)
	require.Len(t, store.Sessions(), 5)

	req, err := http.NewRequest("POST", "/planner/autobalance", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	listResponse := getListResponse(t, rec)
	assert.Equal(t, 6, listResponse.Total)
}

func TestHandler_Week(t *testing.T) {
	router, _ := newTestRouter(t)

	req, err := http.NewRequest("GET", "/planner/week", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var week []planner.WeekDayView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &week))
	require.Len(t, week, 7)

	// default week: Monday 07:00 + 60min
	require.NotEmpty(t, week[0].Sessions)
	assert.Equal(t, "08:00", week[0].Sessions[0].End)
	assert.Empty(t, week[4].Sessions) // Friday is a rest day
}

func TestHandler_Stats(t *testing.T) {
	router, store := newTestRouter(t)
	store.ToggleCompleted(context.Background(), store.Sessions()[0].ID)

	req, err := http.NewRequest("GET", "/planner/stats", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats planner.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))

	require.Len(t, stats.FocusVolumes, 6)
	assert.Equal(t, planner.WeeklyMinutes(store.Sessions()), stats.WeeklyMinutes)
	assert.Equal(t, 17, stats.CompletionRate) // 1 of 6, rounded
}

func TestHandler_Templates(t *testing.T) {
	router, _ := newTestRouter(t)

	req, err := http.NewRequest("GET", "/planner/templates", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var templates []planner.Template
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &templates))
	assert.Len(t, templates, 6)
}
