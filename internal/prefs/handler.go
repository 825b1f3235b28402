package prefs

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/tracing"
	"github.com/DustinBergman/workout-app-sub002/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=prefs_test

type prefsRepo interface {
	Get(ctx context.Context) (*Preferences, error)
	Update(ctx context.Context, p *Preferences) error
}

type Handler struct {
	repo prefsRepo
}

func NewHandler(repo prefsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/prefs", handler.HandleGet).
		Methods("GET", "OPTIONS").Name("get-prefs")
	router.HandleFunc("/prefs", handler.HandleUpdate).
		Methods("PUT", "OPTIONS").Name("update-prefs")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.prefs.get")
	defer span.End()

	prefs, err := handler.repo.Get(ctx)
	if err != nil {
		log.Errorf("failed to get preferences: %s", err)
		http.Error(w, "failed to get preferences", http.StatusInternalServerError)
		return
	}

	prefsJson, err := json.Marshal(prefs)
	if err != nil {
		log.Errorf("failed to marshal preferences: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(prefsJson))
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.prefs.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var prefs Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		log.Errorf("update preferences, unmarshal json params: %s", err)
		http.Error(w, "update preferences failed", http.StatusBadRequest)
		return
	}

	if !prefs.Experience.Valid() {
		http.Error(w, "error, invalid experience level", http.StatusBadRequest)
		return
	}
	if !prefs.Unit.Valid() {
		http.Error(w, "error, invalid weight unit", http.StatusBadRequest)
		return
	}
	if !prefs.Goal.Valid() {
		http.Error(w, "error, invalid goal", http.StatusBadRequest)
		return
	}
	if prefs.WeeklyGoal < 0 {
		http.Error(w, "error, weekly goal must not be negative", http.StatusBadRequest)
		return
	}
	prefs.UpdatedAt = time.Now()

	if err := handler.repo.Update(ctx, &prefs); err != nil {
		log.Errorf("failed to update preferences: %s", err)
		http.Error(w, "failed to update preferences", http.StatusInternalServerError)
		return
	}

	prefsJson, err := json.Marshal(prefs)
	if err != nil {
		log.Errorf("failed to marshal preferences: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(prefsJson))
}
