package metrics

import "errors"

// ErrNoRelevant is returned when a query has an empty relevant set, which
// would make average precision a division by zero.
var ErrNoRelevant = errors.New("query has no relevant images")

// AveragePrecision computes the mean of precision values at each rank
// position holding a relevant image, normalized by the total relevant
// count. The ranked list must already be filtered of self-matches.
func AveragePrecision(ranked []string, relevant map[string]struct{}) (float64, error) {
	if len(relevant) == 0 {
		return 0, ErrNoRelevant
	}

	var sumPrecision float64
	var relevantSeen int

	for i, name := range ranked {
		if _, ok := relevant[name]; ok {
			relevantSeen++
			sumPrecision += float64(relevantSeen) / float64(i+1)
		}
	}

	return sumPrecision / float64(len(relevant)), nil
}
