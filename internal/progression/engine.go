package progression

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/DustinBergman/workout-app-sub002/internal/bodyweight"
	"github.com/DustinBergman/workout-app-sub002/internal/catalog"
	"github.com/DustinBergman/workout-app-sub002/internal/prefs"
	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/tracing"
	"github.com/DustinBergman/workout-app-sub002/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

// ErrInvalidInput marks malformed engine input (negative or non-finite
// numbers). Upstream collaborators validate their own data, so hitting
// this in production means a contract violation.
var ErrInvalidInput = errors.New("invalid progression input")

const (
	// recentSessionsCap limits how many recent sessions of raw sets the
	// factor calculators consider.
	recentSessionsCap = 5

	minCompositeMultiplier = 0.5
	maxCompositeMultiplier = 1.5

	// confidence thresholds
	minSessionsMediumConfidence = 3
	minSessionsHighConfidence   = 5
	minWeeksHighConfidence      = 3
)

// defaultIncrements maps experience level x weight unit to the default
// per-session increment: coarser for beginners and for pound plates,
// finer for advanced lifters and kilogram plates.
var defaultIncrements = map[prefs.ExperienceLevel]map[prefs.WeightUnit]float64{
	prefs.ExperienceBeginner: {
		prefs.UnitKilograms: 2.5,
		prefs.UnitPounds:    5.0,
	},
	prefs.ExperienceIntermediate: {
		prefs.UnitKilograms: 1.25,
		prefs.UnitPounds:    2.5,
	},
	prefs.ExperienceAdvanced: {
		prefs.UnitKilograms: 1.0,
		prefs.UnitPounds:    2.0,
	},
}

//go:generate mockgen -source=engine.go -destination=engine_mocks_test.go -package=progression_test

// exerciseCatalog resolves an exercise id to its catalog entry
// (category and muscle groups).
type exerciseCatalog interface {
	Exercise(ctx context.Context, exerciseID string) (*catalog.Exercise, error)
}

// Engine computes personalized progression recommendations. Apart from
// the read-only catalog lookup it is a pure function of its inputs, so a
// single Engine may be used concurrently for any number of exercises.
type Engine struct {
	catalog exerciseCatalog

	// injectable for deterministic tests
	NowFunc func() time.Time
}

func NewEngine(catalog exerciseCatalog) *Engine {
	return &Engine{
		catalog: catalog,
		NowFunc: time.Now,
	}
}

// Input is everything the engine needs for one exercise: its weekly
// performance summary, its recent raw sets, and the lifter's
// cross-cutting history and preferences. Slices are ordered
// most-recent-first.
type Input struct {
	ExerciseID string
	// Analysis is the weekly performance summary; nil means no weekly
	// history exists for this exercise.
	Analysis *ExerciseAnalysis
	// RecentSets holds raw sets per recent session of this exercise.
	RecentSets [][]Set
	TargetReps int
	Experience prefs.ExperienceLevel
	Unit       prefs.WeightUnit
	Goal       prefs.Goal
	// Sessions is the lifter's full session history, all exercises.
	Sessions []workouts.Session
	// WeeklyGoal is the weekly training-frequency goal; 0 means unset.
	WeeklyGoal int
	// WeightEntries is the lifter's body-weight history.
	WeightEntries []bodyweight.Entry
}

func (in *Input) validate() error {
	if in.ExerciseID == "" {
		return fmt.Errorf("%w: empty exercise id", ErrInvalidInput)
	}
	if in.TargetReps < 0 {
		return fmt.Errorf("%w: negative target reps", ErrInvalidInput)
	}
	for _, sets := range in.RecentSets {
		for _, s := range sets {
			if s.Weight < 0 || math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
				return fmt.Errorf("%w: bad set weight %f", ErrInvalidInput, s.Weight)
			}
			if s.Reps < 0 {
				return fmt.Errorf("%w: negative set reps", ErrInvalidInput)
			}
		}
	}
	for _, entry := range in.WeightEntries {
		if entry.Weight < 0 || math.IsNaN(entry.Weight) || math.IsInf(entry.Weight, 0) {
			return fmt.Errorf("%w: bad body weight %f", ErrInvalidInput, entry.Weight)
		}
	}
	return nil
}

// Recommend runs the full progression computation for one exercise.
// Sparse data never produces an error, only neutral fallbacks; the only
// error condition is malformed input.
func (e *Engine) Recommend(ctx context.Context, in Input) (_ *ProgressionConfig, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.engine.recommend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", in.ExerciseID))

	if err := in.validate(); err != nil {
		return nil, err
	}

	recent := in.RecentSets
	if len(recent) > recentSessionsCap {
		recent = recent[:recentSessionsCap]
	}

	var weekly []WeeklyPerformance
	if in.Analysis != nil {
		weekly = in.Analysis.Weekly
	}

	defaultIncrement := DefaultIncrement(in.Experience, in.Unit)

	// no exercise history whatsoever: never fabricate a trend from nothing
	if len(weekly) == 0 && len(recent) == 0 {
		return &ProgressionConfig{
			Baseline:            0,
			Increment:           defaultIncrement,
			CompositeMultiplier: neutralMultiplier,
			Factors:             []Factor{},
			Confidence:          ConfidenceLow,
		}, nil
	}

	baseline := WeightedBaseline(sessionMaxWeights(recent), baselineDecay)
	trend := DetectTrend(weekly, defaultIncrement)
	confidence := confidenceFor(len(recent), len(weekly))
	increment := blendIncrement(confidence, defaultIncrement, trend)

	now := e.NowFunc()
	factors := []Factor{
		SuccessRateFactor(recent, in.TargetReps),
		ConsistencyFactor(in.Sessions, in.WeeklyGoal, now),
		e.recoveryFactor(ctx, in.ExerciseID, in.Sessions, now),
		BodyWeightFactor(in.WeightEntries, in.Goal, now),
		MoodFactor(in.Sessions),
	}

	composite := 1.0
	for _, f := range factors {
		composite *= f.Multiplier
	}
	composite = clamp(composite, minCompositeMultiplier, maxCompositeMultiplier)

	// only non-neutral factors are surfaced, for explainability
	active := make([]Factor, 0, len(factors))
	for _, f := range factors {
		if f.Multiplier != neutralMultiplier {
			active = append(active, f)
		}
	}

	span.SetAttributes(
		attribute.String("confidence", string(confidence)),
		attribute.Float64("composite_multiplier", composite),
	)

	return &ProgressionConfig{
		Baseline:            baseline,
		Increment:           increment,
		CompositeMultiplier: composite,
		Factors:             active,
		Confidence:          confidence,
	}, nil
}

// DefaultIncrement resolves the per-session increment for an experience
// level and weight unit, falling back to the intermediate kilogram value
// for unknown combinations.
func DefaultIncrement(level prefs.ExperienceLevel, unit prefs.WeightUnit) float64 {
	if byUnit, ok := defaultIncrements[level]; ok {
		if inc, ok := byUnit[unit]; ok {
			return inc
		}
	}
	return defaultIncrements[prefs.ExperienceIntermediate][prefs.UnitKilograms]
}

func confidenceFor(recentSessions, weeklyPoints int) Confidence {
	switch {
	case weeklyPoints == 0 || recentSessions < minSessionsMediumConfidence:
		return ConfidenceLow
	case recentSessions >= minSessionsHighConfidence && weeklyPoints >= minWeeksHighConfidence:
		return ConfidenceHigh
	default:
		return ConfidenceMedium
	}
}

// blendIncrement interpolates between the default and the trend-fitted
// increment using the confidence tier's blend weight. A non-adaptive
// trend always yields the pure default.
func blendIncrement(confidence Confidence, defaultIncrement float64, trend Trend) float64 {
	if !trend.IsAdaptive {
		return defaultIncrement
	}
	w := confidence.AdaptiveBlendWeight()
	return (1-w)*defaultIncrement + w*trend.Increment
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
