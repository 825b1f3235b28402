package catalog

import "time"

// Category splits the catalog into strength exercises, which carry
// muscle groups, and cardio exercises, which have no muscular recovery
// concept.
type Category string

const (
	CategoryStrength Category = "strength"
	CategoryCardio   Category = "cardio"
)

// Exercise is one catalog entry.
type Exercise struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     Category  `json:"category"`
	MuscleGroups []string  `json:"muscleGroups"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (e *Exercise) IsCardio() bool {
	return e.Category == CategoryCardio
}

// SharesMuscleGroup reports whether the two exercises overlap in at
// least one muscle group. Cardio exercises never overlap.
func (e *Exercise) SharesMuscleGroup(other *Exercise) bool {
	if e.IsCardio() || other.IsCardio() {
		return false
	}
	for _, mg := range e.MuscleGroups {
		for _, otherMg := range other.MuscleGroups {
			if mg == otherMg {
				return true
			}
		}
	}
	return false
}
