package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// RankedImage is one (rank, image name) pair reported for a query.
type RankedImage struct {
	Rank int
	Name string
}

// ResultSet holds a parsed results file: for each query, the reported
// pairs in file order (not yet sorted by rank), plus the order in which
// queries appeared.
type ResultSet struct {
	Order  []string
	Ranked map[string][]RankedImage
}

// ParseResultsFile reads and parses a results file.
func ParseResultsFile(path string) (*ResultSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()

	rs, err := ParseResults(f)
	if err != nil {
		return nil, fmt.Errorf("parse results file %s: %w", path, err)
	}
	return rs, nil
}

// ParseResults parses results lines of the form
//
//	query_name rank_1 image_1 rank_2 image_2 ...
//
// A query appearing on more than one line is rejected.
func ParseResults(r io.Reader) (*ResultSet, error) {
	rs := &ResultSet{
		Ranked: make(map[string][]RankedImage),
	}
	lineNo := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			return nil, fmt.Errorf("line %d: empty line: %w", lineNo, ErrMalformedLine)
		}

		query := fields[0]
		pairs := fields[1:]
		if len(pairs)%2 != 0 {
			return nil, fmt.Errorf("line %d: query %q has an odd token count: %w", lineNo, query, ErrMalformedLine)
		}
		if _, ok := rs.Ranked[query]; ok {
			return nil, fmt.Errorf("line %d: duplicate query %q: %w", lineNo, query, ErrMalformedLine)
		}

		ranked := make([]RankedImage, 0, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			rank, err := strconv.Atoi(pairs[i])
			if err != nil {
				return nil, fmt.Errorf("line %d: query %q has non-integer rank %q: %w", lineNo, query, pairs[i], ErrMalformedLine)
			}
			ranked = append(ranked, RankedImage{Rank: rank, Name: pairs[i+1]})
		}

		rs.Order = append(rs.Order, query)
		rs.Ranked[query] = ranked
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}

	return rs, nil
}

// Ordered converts the result set to its canonical form: for each query,
// the image names sorted ascending by reported rank. The sort is stable,
// so pairs with equal ranks keep their file order.
func (rs *ResultSet) Ordered() map[string][]string {
	ordered := make(map[string][]string, len(rs.Ranked))
	for query, ranked := range rs.Ranked {
		pairs := make([]RankedImage, len(ranked))
		copy(pairs, ranked)
		sort.SliceStable(pairs, func(i, j int) bool {
			return pairs[i].Rank < pairs[j].Rank
		})

		names := make([]string, len(pairs))
		for i, p := range pairs {
			names[i] = p.Name
		}
		ordered[query] = names
	}
	return ordered
}
