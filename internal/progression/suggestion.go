package progression

import (
	"fmt"
	"math"
	"strings"

	"github.com/DustinBergman/workout-app-sub002/internal/prefs"
)

// Suggestion is the user-facing recommendation: the weight and reps to
// open the next session with, plus a short reasoning string built from
// the active factors and the confidence tier.
type Suggestion struct {
	ExerciseID string            `json:"exerciseId"`
	Weight     float64           `json:"weight"`
	Reps       int               `json:"reps"`
	Unit       prefs.WeightUnit  `json:"unit"`
	Reasoning  string            `json:"reasoning"`
	Config     ProgressionConfig `json:"config"`
}

// roundingSteps is the smallest practical weight step per unit.
var roundingSteps = map[prefs.WeightUnit]float64{
	prefs.UnitKilograms: 0.5,
	prefs.UnitPounds:    1.0,
}

// BuildSuggestion maps an engine result into the presented
// recommendation. With no baseline (no history) the weight stays 0 and
// the reasoning says so; the lifter picks their own opener.
func BuildSuggestion(
	exerciseID string,
	cfg *ProgressionConfig,
	targetReps int,
	unit prefs.WeightUnit,
) *Suggestion {
	var weight float64
	if cfg.Baseline > 0 {
		weight = (cfg.Baseline + cfg.Increment) * cfg.CompositeMultiplier
		weight = roundToStep(weight, roundingSteps[unit])
		if weight < 0 {
			weight = 0
		}
	}

	return &Suggestion{
		ExerciseID: exerciseID,
		Weight:     weight,
		Reps:       targetReps,
		Unit:       unit,
		Reasoning:  reasoning(cfg),
		Config:     *cfg,
	}
}

func reasoning(cfg *ProgressionConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "confidence %s", cfg.Confidence)

	if cfg.Baseline == 0 {
		b.WriteString("; no logged history for this exercise yet, start with a comfortable weight")
		return b.String()
	}

	if len(cfg.Factors) == 0 {
		b.WriteString("; all signals neutral")
		return b.String()
	}

	for _, f := range cfg.Factors {
		fmt.Fprintf(&b, "; %s x%.2f", strings.ReplaceAll(f.Name, "_", " "), f.Multiplier)
		if f.Detail != "" {
			fmt.Fprintf(&b, " (%s)", f.Detail)
		} else if f.Metric != nil {
			fmt.Fprintf(&b, " (%.2f)", *f.Metric)
		}
	}

	return b.String()
}

func roundToStep(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}
