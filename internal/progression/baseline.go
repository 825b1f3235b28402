package progression

// baselineDecay is the base of the exponential weighting applied to
// older observations: observation i (most recent = 0) gets weight
// baselineDecay^i, so recent sessions dominate without older ones being
// discarded.
const baselineDecay = 0.7

// WeightedBaseline estimates the current working capacity from recent
// per-session observations, most-recent-first, as an exponential-decay
// weighted mean. Empty input yields 0; a single observation or an
// all-identical sequence is returned unchanged.
func WeightedBaseline(observations []float64, decay float64) float64 {
	if len(observations) == 0 {
		return 0
	}

	var weightedSum, weightSum float64
	weight := 1.0
	for _, obs := range observations {
		weightedSum += obs * weight
		weightSum += weight
		weight *= decay
	}

	return weightedSum / weightSum
}

// sessionMaxWeights reduces raw per-session sets to the max weight
// logged in each session, keeping the most-recent-first order.
func sessionMaxWeights(sessions [][]Set) []float64 {
	maxWeights := make([]float64, 0, len(sessions))
	for _, sets := range sessions {
		if len(sets) == 0 {
			continue
		}
		maxWeight := sets[0].Weight
		for _, s := range sets[1:] {
			if s.Weight > maxWeight {
				maxWeight = s.Weight
			}
		}
		maxWeights = append(maxWeights, maxWeight)
	}
	return maxWeights
}
