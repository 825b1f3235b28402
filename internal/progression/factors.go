package progression

import (
	"context"
	"time"

	"github.com/DustinBergman/workout-app-sub002/internal/bodyweight"
	"github.com/DustinBergman/workout-app-sub002/internal/prefs"
	"github.com/DustinBergman/workout-app-sub002/internal/workouts"

	log "github.com/sirupsen/logrus"
)

const (
	neutralMultiplier = 1.0

	// success rate
	FactorSuccessRate     = "success_rate"
	workingSetThreshold   = 0.9 // sets below 90% of the session max are warm-ups
	successAggressiveRate = 0.9
	successBackOffRate    = 0.4

	// consistency
	FactorConsistency      = "consistency"
	consistencyWindowDays  = 14
	consistencyBonusRate   = 1.0
	consistencyPenaltyRate = 0.5

	// recovery
	FactorRecovery          = "recovery"
	recoveryInsufficientDay = 2
	recoveryOptimalMinDays  = 5
	recoveryOptimalMaxDays  = 7

	// body weight
	FactorBodyWeight        = "body_weight"
	bodyWeightWindowDays    = 60
	bodyWeightStableBandPct = 0.01

	// mood
	FactorMood         = "mood"
	moodRecentSessions = 5
)

// Body-weight trend classifications reported in Factor.Detail.
const (
	TrendGaining = "gaining"
	TrendLosing  = "losing"
	TrendStable  = "stable"
	TrendUnknown = "unknown"
)

func neutralFactor(name string) Factor {
	return Factor{Name: name, Multiplier: neutralMultiplier}
}

// SuccessRateFactor judges rep success over working sets of up to the 5
// most recent sessions of the exercise. Per session, sets below 90% of
// that session's own max weight are discarded as warm-ups before
// checking the target rep count. A full success rate allows aggressive
// progression (1.2); a rate well under half backs the suggestion off
// (0.5); the interior interpolates linearly.
func SuccessRateFactor(recentSessions [][]Set, targetReps int) Factor {
	var workingSets, successfulSets int
	for _, sets := range recentSessions {
		if len(sets) == 0 {
			continue
		}
		sessionMax := sets[0].Weight
		for _, s := range sets[1:] {
			if s.Weight > sessionMax {
				sessionMax = s.Weight
			}
		}
		for _, s := range sets {
			if s.Weight < workingSetThreshold*sessionMax {
				continue
			}
			workingSets++
			if s.Reps >= targetReps {
				successfulSets++
			}
		}
	}

	if workingSets == 0 {
		return neutralFactor(FactorSuccessRate)
	}

	successRate := float64(successfulSets) / float64(workingSets)

	var multiplier float64
	switch {
	case successRate >= successAggressiveRate:
		multiplier = 1.2
	case successRate < successBackOffRate:
		multiplier = 0.5
	default:
		// linear between the two pinned extremes
		multiplier = 0.5 + (successRate-successBackOffRate)/
			(successAggressiveRate-successBackOffRate)*0.7
	}

	return Factor{
		Name:       FactorSuccessRate,
		Multiplier: multiplier,
		Metric:     &successRate,
	}
}

// ConsistencyFactor rewards hitting the weekly training-frequency goal
// over the trailing 14 days and penalizes adherence under half of it.
// Only sessions with a completion time count; no goal means neutral.
func ConsistencyFactor(sessions []workouts.Session, weeklyGoal int, now time.Time) Factor {
	if weeklyGoal <= 0 {
		return neutralFactor(FactorConsistency)
	}

	windowStart := now.AddDate(0, 0, -consistencyWindowDays)
	var completed int
	for i := range sessions {
		s := &sessions[i]
		if !s.Completed() || s.StartedAt.Before(windowStart) {
			continue
		}
		completed++
	}

	adherenceRate := float64(completed) / float64(weeklyGoal*2)

	multiplier := neutralMultiplier
	switch {
	case adherenceRate >= consistencyBonusRate:
		multiplier = 1.05
	case adherenceRate < consistencyPenaltyRate:
		multiplier = 0.8
	}

	return Factor{
		Name:       FactorConsistency,
		Multiplier: multiplier,
		Metric:     &adherenceRate,
	}
}

// recoveryFactor checks how long ago any muscle group of the target
// exercise was last trained. Cardio exercises have no muscular recovery
// concept and stay neutral; catalog lookup failures degrade to neutral
// as well, since a missing catalog entry must never block a suggestion.
func (e *Engine) recoveryFactor(
	ctx context.Context,
	exerciseID string,
	sessions []workouts.Session,
	now time.Time,
) Factor {
	target, err := e.catalog.Exercise(ctx, exerciseID)
	if err != nil {
		log.Warnf("progression: recovery factor, resolve exercise [%s]: %s", exerciseID, err)
		return neutralFactor(FactorRecovery)
	}
	if target.IsCardio() {
		return neutralFactor(FactorRecovery)
	}

	// sessions are ordered most-recent-first
	for i := range sessions {
		s := &sessions[i]
		if !s.Completed() {
			continue
		}
		overlap := false
		for _, logged := range s.Exercises {
			ex, err := e.catalog.Exercise(ctx, logged.ExerciseID)
			if err != nil {
				log.Tracef("progression: recovery factor, resolve exercise [%s]: %s", logged.ExerciseID, err)
				continue
			}
			if target.SharesMuscleGroup(ex) {
				overlap = true
				break
			}
		}
		if !overlap {
			continue
		}

		days := now.Sub(s.StartedAt).Hours() / 24
		multiplier := neutralMultiplier
		switch {
		case days < recoveryInsufficientDay:
			multiplier = 0.9
		case days >= recoveryOptimalMinDays && days <= recoveryOptimalMaxDays:
			multiplier = 1.05
		}
		return Factor{
			Name:       FactorRecovery,
			Multiplier: multiplier,
			Metric:     &days,
		}
	}

	return neutralFactor(FactorRecovery)
}

// BodyWeightFactor classifies the body-weight trend over the trailing 60
// days and adjusts goal-aware: gaining while building supports
// progression, losing while building likely limits it, losing while the
// goal is weight loss is expected and not penalized. Entries older than
// 60 days are excluded entirely.
func BodyWeightFactor(entries []bodyweight.Entry, goal prefs.Goal, now time.Time) Factor {
	windowStart := now.AddDate(0, 0, -bodyWeightWindowDays)
	var qualifying []bodyweight.Entry
	for _, entry := range entries {
		if entry.Date.Before(windowStart) {
			continue
		}
		qualifying = append(qualifying, entry)
	}

	if len(qualifying) < 2 {
		f := neutralFactor(FactorBodyWeight)
		f.Detail = TrendUnknown
		return f
	}

	oldest, newest := qualifying[0], qualifying[0]
	for _, entry := range qualifying[1:] {
		if entry.Date.Before(oldest.Date) {
			oldest = entry
		}
		if entry.Date.After(newest.Date) {
			newest = entry
		}
	}

	delta := newest.Weight - oldest.Weight
	band := bodyWeightStableBandPct * oldest.Weight

	trend := TrendStable
	switch {
	case delta > band:
		trend = TrendGaining
	case delta < -band:
		trend = TrendLosing
	}

	multiplier := neutralMultiplier
	switch {
	case trend == TrendGaining && goal == prefs.GoalBuild:
		multiplier = 1.05
	case trend == TrendLosing && goal == prefs.GoalBuild:
		multiplier = 0.9
	case trend == TrendLosing && goal == prefs.GoalLose:
		multiplier = neutralMultiplier // expected, not penalized
	}

	return Factor{
		Name:       FactorBodyWeight,
		Multiplier: multiplier,
		Metric:     &delta,
		Detail:     trend,
	}
}

// MoodFactor averages the subjective mood of the 5 most recent sessions
// that carry one and maps the average to tiers; a run of poor sessions
// is a strong signal to hold back.
func MoodFactor(sessions []workouts.Session) Factor {
	var moodSum, moodCount int
	for i := range sessions {
		if sessions[i].Mood == nil {
			continue
		}
		moodSum += *sessions[i].Mood
		moodCount++
		if moodCount == moodRecentSessions {
			break
		}
	}

	if moodCount == 0 {
		return neutralFactor(FactorMood)
	}

	avgMood := float64(moodSum) / float64(moodCount)

	multiplier := neutralMultiplier
	switch {
	case avgMood >= 4.0:
		multiplier = 1.1
	case avgMood >= 3.0:
		multiplier = neutralMultiplier
	case avgMood >= 2.0:
		multiplier = 0.85
	default:
		multiplier = 0.7
	}

	return Factor{
		Name:       FactorMood,
		Multiplier: multiplier,
		Metric:     &avgMood,
	}
}
