package planner

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/weekplan/internal/metrics"
	"github.com/2beens/weekplan/internal/telemetry/tracing"
	"github.com/2beens/weekplan/pkg"
)

type ListResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type StatsResponse struct {
	FocusVolumes   []FocusVolume `json:"focusVolumes"`
	WeeklyMinutes  int           `json:"weeklyMinutes"`
	CompletionRate int           `json:"completionRate"`
}

// ScheduledSession is a session plus its derived wall-clock end time,
// used by the weekly view.
type ScheduledSession struct {
	Session
	End string `json:"end"`
}

type WeekDayView struct {
	Day      Day                `json:"day"`
	Sessions []ScheduledSession `json:"sessions"`
}

type Handler struct {
	store   *Store
	metrics *metrics.Manager
}

func NewHandler(store *Store, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		store:   store,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/planner/sessions", handler.HandleList).Methods("GET", "OPTIONS").Name("list-sessions")
	router.HandleFunc("/planner/sessions", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-session")
	router.HandleFunc("/planner/sessions/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-session")
	router.HandleFunc("/planner/sessions/{id}", handler.HandleRemove).Methods("DELETE", "OPTIONS").Name("remove-session")
	router.HandleFunc("/planner/sessions/{id}/toggle", handler.HandleToggleCompleted).Methods("POST", "OPTIONS").Name("toggle-session")
	router.HandleFunc("/planner/autobalance", handler.HandleAutoBalance).Methods("POST", "OPTIONS").Name("auto-balance")
	router.HandleFunc("/planner/week", handler.HandleWeek).Methods("GET", "OPTIONS").Name("week-view")
	router.HandleFunc("/planner/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("week-stats")
	router.HandleFunc("/planner/templates", handler.HandleTemplates).Methods("GET", "OPTIONS").Name("session-templates")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.list")
	defer span.End()

	handler.writeSessions(w, handler.store.Sessions(), http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.create")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var draft SessionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Tracef("new session, unmarshal json params: %s", err)
		http.Error(w, "add session failed", http.StatusBadRequest)
		return
	}

	if draft.Name == "" || draft.Day == "" || draft.Start == "" {
		http.Error(w, "error, session name, day or start empty", http.StatusBadRequest)
		return
	}

	sessions := handler.store.Create(ctx, draft)
	handler.metrics.CounterSessionsCreated.Inc()

	log.Debugf("new session added: [%s] [%s %s]", draft.Name, draft.Day, draft.Start)
	handler.writeSessions(w, sessions, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var draft SessionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Tracef("update session, unmarshal json params: %s", err)
		http.Error(w, "update session failed", http.StatusBadRequest)
		return
	}

	// unknown id is a defined no-op, the snapshot comes back unchanged
	sessions := handler.store.Update(ctx, id, draft)

	log.Debugf("session updated: [%s]", id)
	handler.writeSessions(w, sessions, http.StatusOK)
}

func (handler *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.remove")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	sessions := handler.store.Remove(ctx, id)
	handler.metrics.CounterSessionsRemoved.Inc()

	log.Debugf("session removed: [%s]", id)
	handler.writeSessions(w, sessions, http.StatusOK)
}

func (handler *Handler) HandleToggleCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.toggle")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	sessions := handler.store.ToggleCompleted(ctx, id)
	handler.metrics.CounterCompletionToggles.Inc()

	handler.writeSessions(w, sessions, http.StatusOK)
}

func (handler *Handler) HandleAutoBalance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.autoBalance")
	defer span.End()

	sessions := handler.store.AutoBalance(ctx)
	handler.metrics.CounterAutoBalanceResets.Inc()

	log.Debugf("auto-balance: week reset to %d seeded sessions", len(sessions))
	handler.writeSessions(w, sessions, http.StatusOK)
}

func (handler *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.week")
	defer span.End()

	groups := GroupByDay(handler.store.Sessions())
	week := make([]WeekDayView, 0, len(groups))
	for _, group := range groups {
		daySessions := make([]ScheduledSession, 0, len(group.Sessions))
		for _, session := range group.Sessions {
			daySessions = append(daySessions, ScheduledSession{
				Session: session,
				End:     EndTime(session.Start, session.Duration),
			})
		}
		week = append(week, WeekDayView{
			Day:      group.Day,
			Sessions: daySessions,
		})
	}

	weekJson, err := json.Marshal(week)
	if err != nil {
		log.Errorf("failed to marshal week view: %s", err)
		http.Error(w, "failed to marshal week view", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, weekJson, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.stats")
	defer span.End()

	sessions := handler.store.Sessions()
	statsResponse := StatsResponse{
		FocusVolumes:   FocusVolumes(sessions),
		WeeklyMinutes:  WeeklyMinutes(sessions),
		CompletionRate: CompletionRate(sessions),
	}

	statsJson, err := json.Marshal(statsResponse)
	if err != nil {
		log.Errorf("failed to marshal week stats: %s", err)
		http.Error(w, "failed to marshal week stats", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) HandleTemplates(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.templates")
	defer span.End()

	templatesJson, err := json.Marshal(Templates())
	if err != nil {
		log.Errorf("failed to marshal session templates: %s", err)
		http.Error(w, "failed to marshal session templates", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, templatesJson, http.StatusOK)
}

func (handler *Handler) writeSessions(w http.ResponseWriter, sessions []Session, statusCode int) {
	listJson, err := json.Marshal(ListResponse{
		Sessions: sessions,
		Total:    len(sessions),
	})
	if err != nil {
		log.Errorf("failed to marshal sessions: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, statusCode)
}
