package progression

import (
	"context"
	"time"

	"github.com/DustinBergman/workout-app-sub002/internal/telemetry/tracing"
	"github.com/DustinBergman/workout-app-sub002/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

const (
	// analyzerMaxWeeks bounds how far back the weekly aggregation looks.
	analyzerMaxWeeks = 12
	// minWeeksForClassification is the minimum number of weeks with data
	// needed to call a direction at all.
	minWeeksForClassification = 3
	// classificationBandPct is the relative band around zero change
	// within which the exercise counts as plateaued.
	classificationBandPct = 0.02
	// plateauRecentWeeks and plateauBandPct drive the plateau signal:
	// max weight flat across the most recent weeks.
	plateauRecentWeeks = 3
	plateauBandPct     = 0.01
)

//go:generate mockgen -source=analyzer.go -destination=analyzer_mocks_test.go -package=progression_test

type sessionsRepo interface {
	ListAll(ctx context.Context) ([]workouts.Session, error)
}

// Analyzer summarizes raw session history into per-week aggregates and a
// progress classification for one exercise.
type Analyzer struct {
	sessions sessionsRepo

	// injectable for deterministic tests
	NowFunc func() time.Time
}

func NewAnalyzer(sessions sessionsRepo) *Analyzer {
	return &Analyzer{
		sessions: sessions,
		NowFunc:  time.Now,
	}
}

// Analyze builds the ExerciseAnalysis for one exercise from the lifter's
// full session history.
func (a *Analyzer) Analyze(ctx context.Context, exerciseID string) (_ *ExerciseAnalysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.analyzer.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	sessions, err := a.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return a.analyzeSessions(exerciseID, sessions), nil
}

func (a *Analyzer) analyzeSessions(exerciseID string, sessions []workouts.Session) *ExerciseAnalysis {
	now := a.NowFunc()

	type weekAgg struct {
		sessions  int
		weightSum float64
		repsSum   float64
		maxWeight float64
		totalSets int
		bestE1RM  float64
	}
	week2agg := make(map[int]*weekAgg)

	for i := range sessions {
		s := &sessions[i]
		sets := s.SetsFor(exerciseID)
		if len(sets) == 0 {
			continue
		}

		weeksAgo := int(now.Sub(s.StartedAt).Hours() / 24 / 7)
		if weeksAgo < 0 || weeksAgo >= analyzerMaxWeeks {
			continue
		}

		agg, ok := week2agg[weeksAgo]
		if !ok {
			agg = &weekAgg{}
			week2agg[weeksAgo] = agg
		}

		agg.sessions++
		for _, set := range sets {
			agg.weightSum += set.Weight
			agg.repsSum += float64(set.Reps)
			agg.totalSets++
			if set.Weight > agg.maxWeight {
				agg.maxWeight = set.Weight
			}
			if e1rm := epleyOneRepMax(set.Weight, set.Reps); e1rm > agg.bestE1RM {
				agg.bestE1RM = e1rm
			}
		}
	}

	analysis := &ExerciseAnalysis{
		ExerciseID: exerciseID,
		Weekly:     make([]WeeklyPerformance, 0, len(week2agg)),
	}

	// most-recent-first
	for weeksAgo := 0; weeksAgo < analyzerMaxWeeks; weeksAgo++ {
		agg, ok := week2agg[weeksAgo]
		if !ok {
			continue
		}
		analysis.Weekly = append(analysis.Weekly, WeeklyPerformance{
			WeeksAgo:           weeksAgo,
			Sessions:           agg.sessions,
			AvgWeight:          agg.weightSum / float64(agg.totalSets),
			AvgReps:            agg.repsSum / float64(agg.totalSets),
			MaxWeight:          agg.maxWeight,
			TotalSets:          agg.totalSets,
			EstimatedOneRepMax: agg.bestE1RM,
		})
	}

	a.classify(analysis)
	return analysis
}

func (a *Analyzer) classify(analysis *ExerciseAnalysis) {
	weekly := analysis.Weekly
	if len(weekly) < minWeeksForClassification {
		analysis.Status = StatusInsufficientData
		return
	}

	newest := weekly[0]
	oldest := weekly[len(weekly)-1]
	analysis.MaxWeightDelta = newest.MaxWeight - oldest.MaxWeight
	analysis.AvgRepsDelta = newest.AvgReps - oldest.AvgReps

	band := classificationBandPct * oldest.MaxWeight
	switch {
	case analysis.MaxWeightDelta > band:
		analysis.Status = StatusImproving
	case analysis.MaxWeightDelta < -band:
		analysis.Status = StatusDeclining
	default:
		analysis.Status = StatusPlateau
	}

	analysis.PlateauSignal = plateauSignal(weekly)
}

// plateauSignal reports whether the max weight was flat across the most
// recent weeks with data.
func plateauSignal(weekly []WeeklyPerformance) bool {
	if len(weekly) < plateauRecentWeeks {
		return false
	}
	recent := weekly[:plateauRecentWeeks]
	lo, hi := recent[0].MaxWeight, recent[0].MaxWeight
	for _, w := range recent[1:] {
		if w.MaxWeight < lo {
			lo = w.MaxWeight
		}
		if w.MaxWeight > hi {
			hi = w.MaxWeight
		}
	}
	return hi-lo <= plateauBandPct*hi
}

// epleyOneRepMax estimates the one-rep max from a set, using the Epley
// formula. A single rep is the lift itself.
func epleyOneRepMax(weight float64, reps int) float64 {
	if reps <= 1 {
		return weight
	}
	return weight * (1 + float64(reps)/30)
}

// RecentExerciseSets extracts the raw sets of up to maxSessions most
// recent sessions that contain the exercise, most-recent-first, in the
// shape the engine's factor calculators expect.
func RecentExerciseSets(sessions []workouts.Session, exerciseID string, maxSessions int) [][]Set {
	var recent [][]Set
	for i := range sessions {
		sets := sessions[i].SetsFor(exerciseID)
		if len(sets) == 0 {
			continue
		}
		converted := make([]Set, 0, len(sets))
		for _, s := range sets {
			converted = append(converted, Set{Weight: s.Weight, Reps: s.Reps})
		}
		recent = append(recent, converted)
		if len(recent) == maxSessions {
			break
		}
	}
	return recent
}
