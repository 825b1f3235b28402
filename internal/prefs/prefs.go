package prefs

import "time"

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

func (e ExperienceLevel) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

type WeightUnit string

const (
	UnitKilograms WeightUnit = "kg"
	UnitPounds    WeightUnit = "lbs"
)

func (u WeightUnit) Valid() bool {
	return u == UnitKilograms || u == UnitPounds
}

type Goal string

const (
	GoalBuild    Goal = "build"
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalBuild, GoalLose, GoalMaintain:
		return true
	}
	return false
}

// Preferences holds the lifter's training preferences consumed by the
// progression engine. WeeklyGoal is the number of sessions per week the
// lifter aims for; 0 means not set.
type Preferences struct {
	Experience ExperienceLevel `json:"experience"`
	Unit       WeightUnit      `json:"unit"`
	Goal       Goal            `json:"goal"`
	WeeklyGoal int             `json:"weeklyGoal"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Defaults returns the safe starting preferences for a lifter that never
// saved any.
func Defaults() *Preferences {
	return &Preferences{
		Experience: ExperienceBeginner,
		Unit:       UnitKilograms,
		Goal:       GoalMaintain,
		WeeklyGoal: 0,
	}
}
