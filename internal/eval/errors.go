package eval

import "errors"

// Validation failures are fatal for the whole run; the evaluator stops at
// the first violation instead of skipping the query, since a mean over a
// subset of queries is not a meaningful metric.
var (
	// ErrUnknownQuery marks a results query absent from the ground truth.
	ErrUnknownQuery = errors.New("unknown query")

	// ErrUnknownImage marks a reported image not present anywhere in the
	// ground truth.
	ErrUnknownImage = errors.New("unknown image")

	// ErrMissingQueries marks ground-truth queries that received no scored
	// result.
	ErrMissingQueries = errors.New("missing queries")

	// ErrInvalidQuery marks a ground-truth query with an empty relevant
	// set, which has no defined average precision.
	ErrInvalidQuery = errors.New("invalid query")
)
