package workouts

import "time"

// Set is a single logged set of an exercise.
type Set struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// LoggedExercise groups the sets logged for one exercise within a
// session, in the order they were performed.
type LoggedExercise struct {
	ExerciseID string `json:"exerciseId"`
	Sets       []Set  `json:"sets"`
}

// Session is one workout session. FinishedAt is nil while the session is
// still in progress; Mood is the optional subjective rating the lifter
// gave the session, 1 (awful) to 5 (great).
type Session struct {
	ID         int              `json:"id"`
	StartedAt  time.Time        `json:"startedAt"`
	FinishedAt *time.Time       `json:"finishedAt,omitempty"`
	Mood       *int             `json:"mood,omitempty"`
	Exercises  []LoggedExercise `json:"exercises"`
}

func (s *Session) Completed() bool {
	return s.FinishedAt != nil
}

// SetsFor returns all sets logged for the given exercise in this
// session, or nil when the exercise was not performed.
func (s *Session) SetsFor(exerciseID string) []Set {
	var sets []Set
	for _, ex := range s.Exercises {
		if ex.ExerciseID == exerciseID {
			sets = append(sets, ex.Sets...)
		}
	}
	return sets
}
