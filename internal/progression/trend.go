package progression

import "math"

const (
	// minTrendPoints is the minimum number of weekly data points needed
	// to fit a line worth trusting.
	minTrendPoints = 3
	// rSquaredNoiseThreshold rejects fits where the line explains less
	// than half of the observed variance.
	rSquaredNoiseThreshold = 0.5
	// maxAdaptiveIncrementRatio caps the fitted per-week slope at this
	// multiple of the default increment, so a short hot streak cannot
	// produce runaway suggestions.
	maxAdaptiveIncrementRatio = 2.0
)

// Trend is the adaptive-increment detection result. When IsAdaptive is
// false, Increment is the caller-provided default.
type Trend struct {
	Increment  float64 `json:"increment"`
	IsAdaptive bool    `json:"isAdaptive"`
}

// DetectTrend fits an ordinary least-squares line of max weight against
// week index (more recent weeks get larger time values) and returns the
// fitted per-week slope as the increment, clamped in magnitude to 2x the
// default. It falls back to the default increment when there are fewer
// than 3 points, when the data has zero variance, or when R² is below
// the noise threshold.
func DetectTrend(weekly []WeeklyPerformance, defaultIncrement float64) Trend {
	fallback := Trend{Increment: defaultIncrement, IsAdaptive: false}
	if len(weekly) < minTrendPoints {
		return fallback
	}

	n := float64(len(weekly))
	var sumX, sumY, sumXY, sumXX, sumYY float64
	for _, week := range weekly {
		x := -float64(week.WeeksAgo)
		y := week.MaxWeight
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
		sumYY += y * y
	}

	varX := n*sumXX - sumX*sumX
	varY := n*sumYY - sumY*sumY
	if varX == 0 || varY == 0 {
		// all points in the same week, or nothing to explain
		return fallback
	}

	covXY := n*sumXY - sumX*sumY
	slope := covXY / varX

	rSquared := (covXY * covXY) / (varX * varY)
	if rSquared < rSquaredNoiseThreshold {
		return fallback
	}

	maxIncrement := maxAdaptiveIncrementRatio * math.Abs(defaultIncrement)
	if slope > maxIncrement {
		slope = maxIncrement
	} else if slope < -maxIncrement {
		slope = -maxIncrement
	}

	return Trend{Increment: slope, IsAdaptive: true}
}
