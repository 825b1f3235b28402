package workouts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/metrics"
	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/tracing"
	"github.com/DustinBergman/workout-app-sub002/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=workouts_test

type sessionsRepo interface {
	Add(ctx context.Context, session *Session) (*Session, error)
	Get(ctx context.Context, id int) (*Session, error)
	Finish(ctx context.Context, id int, finishedAt time.Time, mood *int) error
	List(ctx context.Context, params ListParams) (_ []Session, total int, err error)
}

type SessionsListResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type FinishSessionRequest struct {
	Mood *int `json:"mood,omitempty"`
}

type Handler struct {
	repo    sessionsRepo
	metrics *metrics.Manager
}

func NewHandler(repo sessionsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts", handler.HandleAdd).
		Methods("POST", "OPTIONS").Name("new-workout")
	router.HandleFunc("/workouts/{id}", handler.HandleGet).
		Methods("GET", "OPTIONS").Name("get-workout")
	router.HandleFunc("/workouts/{id}/finish", handler.HandleFinish).
		Methods("PUT", "OPTIONS").Name("finish-workout")
	router.HandleFunc("/workouts/list/page/{page}/size/{size}", handler.HandleList).
		Methods("GET", "OPTIONS").Name("list-workouts")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Errorf("new workout session, unmarshal json params: %s", err)
		http.Error(w, "add workout session failed", http.StatusBadRequest)
		return
	}

	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}
	for _, ex := range session.Exercises {
		if ex.ExerciseID == "" {
			http.Error(w, "error, exercise id empty", http.StatusBadRequest)
			return
		}
		for _, set := range ex.Sets {
			if set.Weight < 0 || set.Reps < 0 {
				http.Error(w, "error, negative weight or reps", http.StatusBadRequest)
				return
			}
		}
	}

	addedSession, err := handler.repo.Add(ctx, &session)
	if err != nil {
		log.Errorf("failed to add workout session: %s", err)
		http.Error(w, "error, failed to add workout session", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSessionsLogged.Inc()
	log.Debugf("new workout session added: %d", addedSession.ID)

	sessionJson, err := json.Marshal(addedSession)
	if err != nil {
		log.Errorf("failed to marshal added workout session: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(sessionJson))
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid session id", http.StatusBadRequest)
		return
	}

	session, err := handler.repo.Get(ctx, id)
	if err != nil {
		if err == ErrSessionNotFound {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout session %d: %s", id, err)
		http.Error(w, "failed to get workout session", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("failed to marshal workout session: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(sessionJson))
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.finish")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid session id", http.StatusBadRequest)
		return
	}

	var finishReq FinishSessionRequest
	if r.Body != nil {
		// body is optional, mood only
		if err := json.NewDecoder(r.Body).Decode(&finishReq); err != nil && err.Error() != "EOF" {
			log.Errorf("finish workout session, unmarshal json params: %s", err)
			http.Error(w, "finish workout session failed", http.StatusBadRequest)
			return
		}
	}

	if finishReq.Mood != nil && (*finishReq.Mood < 1 || *finishReq.Mood > 5) {
		http.Error(w, "error, mood must be between 1 and 5", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Finish(ctx, id, time.Now(), finishReq.Mood); err != nil {
		if err == ErrSessionNotFound {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to finish workout session %d: %s", id, err)
		http.Error(w, "failed to finish workout session", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"finishedId": `+strconv.Itoa(id)+`}`)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil || page < 1 {
		http.Error(w, "error, invalid page", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil || size < 1 {
		http.Error(w, "error, invalid size", http.StatusBadRequest)
		return
	}

	sessions, total, err := handler.repo.List(ctx, ListParams{Page: page, Size: size})
	if err != nil {
		log.Errorf("failed to list workout sessions: %s", err)
		http.Error(w, "failed to list workout sessions", http.StatusInternalServerError)
		return
	}

	resp := SessionsListResponse{
		Sessions: sessions,
		Total:    total,
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal workout sessions: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}
