package bodyweight

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/metrics"
	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/tracing"
	"github.com/DustinBergman/workout-app-sub002/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const defaultListWindowDays = 60

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=bodyweight_test

type weightsRepo interface {
	Add(ctx context.Context, entry *Entry) (*Entry, error)
	ListSince(ctx context.Context, from time.Time) ([]Entry, error)
}

type Handler struct {
	repo    weightsRepo
	metrics *metrics.Manager
}

func NewHandler(repo weightsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/bodyweight", handler.HandleAdd).
		Methods("POST", "OPTIONS").Name("new-weight-entry")
	router.HandleFunc("/bodyweight", handler.HandleList).
		Methods("GET", "OPTIONS").Name("list-weight-entries")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("new weight entry, unmarshal json params: %s", err)
		http.Error(w, "add weight entry failed", http.StatusBadRequest)
		return
	}

	if entry.Weight <= 0 {
		http.Error(w, "error, weight must be positive", http.StatusBadRequest)
		return
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}

	addedEntry, err := handler.repo.Add(ctx, &entry)
	if errors.Is(err, ErrEntryExists) {
		http.Error(w, "error, weight entry for that day exists", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("failed to add weight entry: %s", err)
		http.Error(w, "error, failed to add weight entry", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWeightEntries.Inc()

	entryJson, err := json.Marshal(addedEntry)
	if err != nil {
		log.Errorf("failed to marshal weight entry: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(entryJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.list")
	defer span.End()

	from := time.Now().AddDate(0, 0, -defaultListWindowDays)
	entries, err := handler.repo.ListSince(ctx, from)
	if err != nil {
		log.Errorf("failed to list weight entries: %s", err)
		http.Error(w, "failed to list weight entries", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("failed to marshal weight entries: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(entriesJson))
}
