package selector

import "math"

// Threshold bounds and step. Every threshold value is a multiple of
// thresholdStep in [thresholdFloor, thresholdCeiling].
const (
	thresholdFloor   = 0.01
	thresholdCeiling = 0.1
	thresholdStep    = 0.01
)

const (
	// qualityBound is the multiple correlation above which a model is good enough to stop.
	qualityBound = 0.9
	// truncationFloor is the smallest index at which quality-based truncation may cut.
	truncationFloor = 4
	// noRelaxPrefix is the prefix size for which the quality path keeps the tightened threshold.
	noRelaxPrefix = 13
)

// roundThreshold rounds v half away from zero to two decimals.
func roundThreshold(v float64) float64 {
	return math.Round(v*100) / 100
}

// clampThreshold rounds v and limits it to [thresholdFloor, thresholdCeiling].
func clampThreshold(v float64) float64 {
	return roundThreshold(min(max(v, thresholdFloor), thresholdCeiling))
}

func lowerThreshold(t float64) float64 {
	return roundThreshold(max(thresholdFloor, t-thresholdStep))
}

func raiseThreshold(t float64) float64 {
	return roundThreshold(min(thresholdCeiling, t+thresholdStep))
}

// belowMask reports, per value, whether it is strictly below limit.
func belowMask(values []float64, limit float64) []bool {
	mask := make([]bool, len(values))
	for i, v := range values {
		mask[i] = v < limit
	}

	return mask
}

// prefixCount returns the number of leading true entries of mask.
func prefixCount(mask []bool) int {
	for i, ok := range mask {
		if !ok {
			return i
		}
	}

	return len(mask)
}

// firstFalse returns the first index >= from whose mask entry is false, or -1.
func firstFalse(mask []bool, from int) int {
	for i := from; i < len(mask); i++ {
		if !mask[i] {
			return i
		}
	}

	return -1
}
