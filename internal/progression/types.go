package progression

// ProgressStatus classifies the direction of an exercise over the
// analyzed weeks.
type ProgressStatus string

const (
	StatusImproving        ProgressStatus = "improving"
	StatusPlateau          ProgressStatus = "plateau"
	StatusDeclining        ProgressStatus = "declining"
	StatusInsufficientData ProgressStatus = "insufficient_data"
)

// WeeklyPerformance is one aggregated row per past training week for a
// given exercise. WeeksAgo 0 is the current week; rows are ordered
// most-recent-first.
type WeeklyPerformance struct {
	WeeksAgo           int     `json:"weeksAgo"`
	Sessions           int     `json:"sessions"`
	AvgWeight          float64 `json:"avgWeight"`
	AvgReps            float64 `json:"avgReps"`
	MaxWeight          float64 `json:"maxWeight"`
	TotalSets          int     `json:"totalSets"`
	EstimatedOneRepMax float64 `json:"estimatedOneRepMax"`
}

// ExerciseAnalysis aggregates the weekly performance rows for one
// exercise, plus the progress classification and plateau signal.
type ExerciseAnalysis struct {
	ExerciseID    string              `json:"exerciseId"`
	Weekly        []WeeklyPerformance `json:"weekly"`
	Status        ProgressStatus      `json:"status"`
	PlateauSignal bool                `json:"plateauSignal"`
	// first-to-last deltas over the analyzed weeks (recent minus oldest)
	MaxWeightDelta float64 `json:"maxWeightDelta"`
	AvgRepsDelta   float64 `json:"avgRepsDelta"`
}

// Set is a single logged set: weight lifted and reps done.
type Set struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// Factor is one independent adjustment signal. Multiplier 1.0 is
// neutral; Metric carries the raw value the multiplier was derived from
// (nil when the signal had no data), Detail an optional classification
// such as the body-weight trend.
type Factor struct {
	Name       string   `json:"name"`
	Multiplier float64  `json:"multiplier"`
	Metric     *float64 `json:"metric,omitempty"`
	Detail     string   `json:"detail,omitempty"`
}

// Confidence is a coarse classification of how much historical data
// supports a suggestion. It carries its own adaptive-increment blend
// weight so the tier thresholds live in exactly one place.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// AdaptiveBlendWeight is the share of the trend-fitted increment used
// when blending it with the experience-level default.
func (c Confidence) AdaptiveBlendWeight() float64 {
	switch c {
	case ConfidenceHigh:
		return 1.0
	case ConfidenceMedium:
		return 0.3
	default:
		return 0
	}
}

// ProgressionConfig is the engine output: a baseline working weight, a
// per-session increment (negative means a suggested deload), the
// composite adjustment multiplier clamped to [0.5, 1.5], the non-neutral
// factors that produced it, and the confidence tier. It is a value
// object created fresh on every invocation.
type ProgressionConfig struct {
	Baseline            float64    `json:"baseline"`
	Increment           float64    `json:"increment"`
	CompositeMultiplier float64    `json:"compositeMultiplier"`
	Factors             []Factor   `json:"factors"`
	Confidence          Confidence `json:"confidence"`
}
