package progression_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DustinBergman/workout-app-sub002/internal/bodyweight"
	"github.com/DustinBergman/workout-app-sub002/internal/prefs"
	"github.com/DustinBergman/workout-app-sub002/internal/progression"
	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/metrics"
	"github.com/DustinBergman/workout-app-sub002/internal/workouts"

	"github.com/go-redis/redismock/v8"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_HandleSuggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	engineMock := NewMockrecommender(ctrl)
	analyzerMock := NewMockexerciseAnalyzer(ctrl)
	sessionsMock := NewMocksessionsProvider(ctrl)
	weightsMock := NewMockweightsProvider(ctrl)
	prefsMock := NewMockprefsProvider(ctrl)

	handler := progression.NewHandler(
		engineMock, analyzerMock, sessionsMock, weightsMock, prefsMock,
		nil, metrics.NewTestManager(),
	)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	handler.NowFunc = func() time.Time { return now }

	router := mux.NewRouter()
	handler.SetupRoutes(router)

	lifterPrefs := &prefs.Preferences{
		Experience: prefs.ExperienceIntermediate,
		Unit:       prefs.UnitKilograms,
		Goal:       prefs.GoalBuild,
		WeeklyGoal: 3,
	}
	prefsMock.EXPECT().Get(gomock.Any()).Return(lifterPrefs, nil)

	sessions := []workouts.Session{
		{
			ID:        1,
			StartedAt: now.AddDate(0, 0, -2),
			Exercises: []workouts.LoggedExercise{
				{ExerciseID: "bench-press", Sets: []workouts.Set{{Weight: 100, Reps: 8}}},
			},
		},
	}
	sessionsMock.EXPECT().ListAll(gomock.Any()).Return(sessions, nil)

	weightEntries := []bodyweight.Entry{
		{Date: now.AddDate(0, 0, -3), Weight: 80, Unit: "kg"},
	}
	weightsMock.EXPECT().
		ListSince(gomock.Any(), now.AddDate(0, 0, -60)).
		Return(weightEntries, nil)

	analysis := &progression.ExerciseAnalysis{
		ExerciseID: "bench-press",
		Weekly: []progression.WeeklyPerformance{
			{WeeksAgo: 0, MaxWeight: 100},
		},
	}
	analyzerMock.EXPECT().Analyze(gomock.Any(), "bench-press").Return(analysis, nil)

	engineMock.EXPECT().
		Recommend(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in progression.Input) (*progression.ProgressionConfig, error) {
			assert.Equal(t, "bench-press", in.ExerciseID)
			assert.Equal(t, analysis, in.Analysis)
			assert.Equal(t, 5, in.TargetReps)
			assert.Equal(t, prefs.ExperienceIntermediate, in.Experience)
			assert.Equal(t, prefs.UnitKilograms, in.Unit)
			assert.Equal(t, prefs.GoalBuild, in.Goal)
			assert.Equal(t, 3, in.WeeklyGoal)
			assert.Equal(t, sessions, in.Sessions)
			assert.Equal(t, weightEntries, in.WeightEntries)
			require.Len(t, in.RecentSets, 1)
			return &progression.ProgressionConfig{
				Baseline:            100,
				Increment:           2.5,
				CompositeMultiplier: 1.0,
				Factors:             []progression.Factor{},
				Confidence:          progression.ConfidenceMedium,
			}, nil
		})

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/progression/bench-press?target_reps=5", nil)
	require.NoError(t, err)

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var suggestion progression.Suggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestion))
	assert.Equal(t, "bench-press", suggestion.ExerciseID)
	assert.Equal(t, 102.5, suggestion.Weight)
	assert.Equal(t, 5, suggestion.Reps)
	assert.Equal(t, prefs.UnitKilograms, suggestion.Unit)
	assert.Equal(t, progression.ConfidenceMedium, suggestion.Config.Confidence)
}

func TestHandler_HandleSuggest_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	engineMock := NewMockrecommender(ctrl)
	analyzerMock := NewMockexerciseAnalyzer(ctrl)
	sessionsMock := NewMocksessionsProvider(ctrl)
	weightsMock := NewMockweightsProvider(ctrl)
	prefsMock := NewMockprefsProvider(ctrl)

	db, redisMock := redismock.NewClientMock()
	handler := progression.NewHandler(
		engineMock, analyzerMock, sessionsMock, weightsMock, prefsMock,
		db, metrics.NewTestManager(),
	)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	handler.NowFunc = func() time.Time { return now }

	router := mux.NewRouter()
	handler.SetupRoutes(router)

	cachedSuggestion := `{"exerciseId":"bench-press","weight":105,"reps":8}`
	redisMock.ExpectGet("progression::bench-press::reps-8::2025-06-15").
		SetVal(cachedSuggestion)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/progression/bench-press", nil)
	require.NoError(t, err)

	// no repo or engine expectations: a cache hit must not touch them
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, cachedSuggestion, rec.Body.String())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_HandleSuggest_PrefsFallBackToDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	engineMock := NewMockrecommender(ctrl)
	analyzerMock := NewMockexerciseAnalyzer(ctrl)
	sessionsMock := NewMocksessionsProvider(ctrl)
	weightsMock := NewMockweightsProvider(ctrl)
	prefsMock := NewMockprefsProvider(ctrl)

	handler := progression.NewHandler(
		engineMock, analyzerMock, sessionsMock, weightsMock, prefsMock,
		nil, metrics.NewTestManager(),
	)
	router := mux.NewRouter()
	handler.SetupRoutes(router)

	prefsMock.EXPECT().Get(gomock.Any()).Return(nil, assert.AnError)
	sessionsMock.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	weightsMock.EXPECT().ListSince(gomock.Any(), gomock.Any()).Return(nil, nil)
	analyzerMock.EXPECT().
		Analyze(gomock.Any(), "bench-press").
		Return(&progression.ExerciseAnalysis{ExerciseID: "bench-press"}, nil)
	engineMock.EXPECT().
		Recommend(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in progression.Input) (*progression.ProgressionConfig, error) {
			defaults := prefs.Defaults()
			assert.Equal(t, defaults.Experience, in.Experience)
			assert.Equal(t, defaults.Unit, in.Unit)
			assert.Equal(t, defaults.Goal, in.Goal)
			return &progression.ProgressionConfig{
				Increment:           2.5,
				CompositeMultiplier: 1.0,
				Confidence:          progression.ConfidenceLow,
			}, nil
		})

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/progression/bench-press", nil)
	require.NoError(t, err)

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_HandleSuggest_InvalidTargetReps(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := progression.NewHandler(
		NewMockrecommender(ctrl),
		NewMockexerciseAnalyzer(ctrl),
		NewMocksessionsProvider(ctrl),
		NewMockweightsProvider(ctrl),
		NewMockprefsProvider(ctrl),
		nil, metrics.NewTestManager(),
	)
	router := mux.NewRouter()
	handler.SetupRoutes(router)

	for _, repsParam := range []string{"0", "-3", "abc"} {
		rec := httptest.NewRecorder()
		req, err := http.NewRequest("GET", "/progression/bench-press?target_reps="+repsParam, nil)
		require.NoError(t, err)

		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_HandleSuggest_AnalyzerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	engineMock := NewMockrecommender(ctrl)
	analyzerMock := NewMockexerciseAnalyzer(ctrl)
	sessionsMock := NewMocksessionsProvider(ctrl)
	weightsMock := NewMockweightsProvider(ctrl)
	prefsMock := NewMockprefsProvider(ctrl)

	handler := progression.NewHandler(
		engineMock, analyzerMock, sessionsMock, weightsMock, prefsMock,
		nil, metrics.NewTestManager(),
	)
	router := mux.NewRouter()
	handler.SetupRoutes(router)

	prefsMock.EXPECT().Get(gomock.Any()).Return(prefs.Defaults(), nil)
	sessionsMock.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	weightsMock.EXPECT().ListSince(gomock.Any(), gomock.Any()).Return(nil, nil)
	analyzerMock.EXPECT().
		Analyze(gomock.Any(), "bench-press").
		Return(nil, assert.AnError)

	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/progression/bench-press", nil)
	require.NoError(t, err)

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
