package lcs

// Percentage returns the LCS length of original and copied as a percentage
// of the copied length. The metric is directional: copied is always the
// denominator. An empty copied text yields 0 without running the engine.
func Percentage(original, copied []rune) float64 {
	if len(copied) == 0 {
		return 0
	}
	return Ratio(ComputeLength(original, copied), len(copied))
}

// Ratio converts an LCS length into a percentage of denominator.
func Ratio(lcsLength, denominator int) float64 {
	if denominator <= 0 {
		return 0
	}
	return float64(lcsLength) / float64(denominator) * 100.0
}
