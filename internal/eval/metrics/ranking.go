package metrics

// ReciprocalRank returns 1/rank of the first relevant image, or 0 when no
// relevant image is returned.
func ReciprocalRank(ranked []string, relevant map[string]struct{}) float64 {
	for i, name := range ranked {
		if _, ok := relevant[name]; ok {
			return 1.0 / float64(i+1)
		}
	}
	return 0
}

// PrecisionAtK computes the fraction of the top-K results that are
// relevant.
func PrecisionAtK(ranked []string, relevant map[string]struct{}, k int) float64 {
	if k <= 0 || len(ranked) == 0 {
		return 0
	}

	n := min(k, len(ranked))
	var found int

	for i := 0; i < n; i++ {
		if _, ok := relevant[ranked[i]]; ok {
			found++
		}
	}

	return float64(found) / float64(k)
}

// RecallAtK computes the fraction of all relevant images found in the
// top-K results.
func RecallAtK(ranked []string, relevant map[string]struct{}, k int) float64 {
	if k <= 0 || len(ranked) == 0 || len(relevant) == 0 {
		return 0
	}

	n := min(k, len(ranked))
	var found int

	for i := 0; i < n; i++ {
		if _, ok := relevant[ranked[i]]; ok {
			found++
		}
	}

	return float64(found) / float64(len(relevant))
}
