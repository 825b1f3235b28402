package progression

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/DustinBergman/workout-app-sub002/internal/bodyweight"
	"github.com/DustinBergman/workout-app-sub002/internal/prefs"
	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/metrics"
	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/tracing"
	"github.com/DustinBergman/workout-app-sub002/internal/workouts"
	"github.com/DustinBergman/workout-app-sub002/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	defaultTargetReps = 8
	// suggestions are stable within a day (the engine runs on history,
	// not on the live session), so cache until the day is over
	suggestionCacheTTL = 24 * time.Hour
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=progression_test

type recommender interface {
	Recommend(ctx context.Context, in Input) (*ProgressionConfig, error)
}

type exerciseAnalyzer interface {
	Analyze(ctx context.Context, exerciseID string) (*ExerciseAnalysis, error)
}

type sessionsProvider interface {
	ListAll(ctx context.Context) ([]workouts.Session, error)
}

type weightsProvider interface {
	ListSince(ctx context.Context, from time.Time) ([]bodyweight.Entry, error)
}

type prefsProvider interface {
	Get(ctx context.Context) (*prefs.Preferences, error)
}

type Handler struct {
	engine      recommender
	analyzer    exerciseAnalyzer
	sessions    sessionsProvider
	weights     weightsProvider
	prefs       prefsProvider
	redisClient *redis.Client
	metrics     *metrics.Manager

	// injectable for deterministic tests
	NowFunc func() time.Time
}

func NewHandler(
	engine recommender,
	analyzer exerciseAnalyzer,
	sessions sessionsProvider,
	weights weightsProvider,
	prefsRepo prefsProvider,
	redisClient *redis.Client,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		engine:      engine,
		analyzer:    analyzer,
		sessions:    sessions,
		weights:     weights,
		prefs:       prefsRepo,
		redisClient: redisClient,
		metrics:     metricsManager,
		NowFunc:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/progression/{exerciseId}", handler.HandleSuggest).
		Methods("GET", "OPTIONS").Name("progression-suggest")
}

// HandleSuggest computes (or serves the cached) progression suggestion
// for one exercise.
func (handler *Handler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.suggest")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID := vars["exerciseId"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	targetReps := defaultTargetReps
	if repsParam := r.URL.Query().Get("target_reps"); repsParam != "" {
		reps, err := strconv.Atoi(repsParam)
		if err != nil || reps <= 0 {
			http.Error(w, "error, invalid target reps", http.StatusBadRequest)
			return
		}
		targetReps = reps
	}

	cacheKey := suggestionCacheKey(exerciseID, targetReps, handler.NowFunc())
	if handler.redisClient != nil {
		if cached, err := handler.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			handler.metrics.CounterSuggestionCacheHits.Inc()
			pkg.WriteJSONResponseOK(w, cached)
			return
		}
	}

	suggestion, err := handler.computeSuggestion(ctx, exerciseID, targetReps)
	if err != nil {
		log.Errorf("progression suggestion for [%s]: %s", exerciseID, err)
		http.Error(w, "failed to compute progression suggestion", http.StatusInternalServerError)
		return
	}

	suggestionJson, err := json.Marshal(suggestion)
	if err != nil {
		log.Errorf("marshal progression suggestion: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	if handler.redisClient != nil {
		if err := handler.redisClient.Set(ctx, cacheKey, string(suggestionJson), suggestionCacheTTL).Err(); err != nil {
			log.Warnf("cache progression suggestion [%s]: %s", cacheKey, err)
		}
	}

	handler.metrics.CounterSuggestions.
		WithLabelValues(string(suggestion.Config.Confidence)).Inc()

	pkg.WriteJSONResponseOK(w, string(suggestionJson))
}

func (handler *Handler) computeSuggestion(
	ctx context.Context,
	exerciseID string,
	targetReps int,
) (*Suggestion, error) {
	lifterPrefs, err := handler.prefs.Get(ctx)
	if err != nil {
		log.Warnf("get preferences, using defaults: %s", err)
		lifterPrefs = prefs.Defaults()
	}

	sessions, err := handler.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := handler.NowFunc()
	weightEntries, err := handler.weights.ListSince(ctx, now.AddDate(0, 0, -bodyWeightWindowDays))
	if err != nil {
		log.Warnf("get body weight entries, skipping body weight factor: %s", err)
		weightEntries = nil
	}

	analysis, err := handler.analyzer.Analyze(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	config, err := handler.engine.Recommend(ctx, Input{
		ExerciseID:    exerciseID,
		Analysis:      analysis,
		RecentSets:    RecentExerciseSets(sessions, exerciseID, recentSessionsCap),
		TargetReps:    targetReps,
		Experience:    lifterPrefs.Experience,
		Unit:          lifterPrefs.Unit,
		Goal:          lifterPrefs.Goal,
		Sessions:      sessions,
		WeeklyGoal:    lifterPrefs.WeeklyGoal,
		WeightEntries: weightEntries,
	})
	if err != nil {
		return nil, err
	}

	return BuildSuggestion(exerciseID, config, targetReps, lifterPrefs.Unit), nil
}

func suggestionCacheKey(exerciseID string, targetReps int, now time.Time) string {
	return "progression::" + exerciseID +
		"::reps-" + strconv.Itoa(targetReps) +
		"::" + now.Format("2006-01-02")
}
