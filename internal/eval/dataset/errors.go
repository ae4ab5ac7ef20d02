package dataset

import "errors"

// ErrMalformedLine marks a ground-truth or results line that fails to
// parse: a non-numeric id, a bad rank token, a wrong token count, or a
// duplicate query line. Parsing stops at the first such line.
var ErrMalformedLine = errors.New("malformed line")
