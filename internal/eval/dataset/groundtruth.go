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

// Config describes the naming convention of a ground-truth file. The
// reference dataset (INRIA Holidays) names images with a zero-padded
// numeric id plus ".jpg", and reserves ids divisible by 100 for queries.
type Config struct {
	Extension    string
	QueryModulus int
}

func DefaultConfig() Config {
	return Config{
		Extension:    ".jpg",
		QueryModulus: 100,
	}
}

// GroundTruth is the parsed partition of the image collection: every known
// image name plus, for each query, the set of its relevant images. It is
// built once per run and read-only afterwards.
type GroundTruth struct {
	AllNames map[string]struct{}
	Relevant map[string]map[string]struct{}
	Queries  []string
}

// LoadGroundTruthFile reads and parses a ground-truth file.
func LoadGroundTruthFile(path string, cfg Config) (*GroundTruth, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ground-truth file: %w", err)
	}
	defer f.Close()

	gt, err := ParseGroundTruth(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse ground-truth file %s: %w", path, err)
	}
	return gt, nil
}

// ParseGroundTruth parses ground-truth lines, one image name per line.
// A name whose numeric id is divisible by the query modulus opens a new
// query; every other name is added to the relevant set of the most recent
// query. A relevant line before the first query is rejected.
func ParseGroundTruth(r io.Reader, cfg Config) (*GroundTruth, error) {
	if cfg.QueryModulus <= 0 {
		return nil, fmt.Errorf("query modulus must be positive, got %d", cfg.QueryModulus)
	}

	gt := &GroundTruth{
		AllNames: make(map[string]struct{}),
		Relevant: make(map[string]map[string]struct{}),
	}

	var current map[string]struct{}
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		name := strings.TrimSpace(scanner.Text())

		id, err := parseImageID(name, cfg.Extension)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		gt.AllNames[name] = struct{}{}

		if id%uint64(cfg.QueryModulus) == 0 {
			current = make(map[string]struct{})
			gt.Relevant[name] = current
			gt.Queries = append(gt.Queries, name)
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("line %d: relevant image %q before any query: %w", lineNo, name, ErrMalformedLine)
		}
		current[name] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ground truth: %w", err)
	}

	return gt, nil
}

func parseImageID(name, ext string) (uint64, error) {
	if len(name) <= len(ext) || !strings.HasSuffix(name, ext) {
		return 0, fmt.Errorf("image name %q does not end in %s: %w", name, ext, ErrMalformedLine)
	}
	id, err := strconv.ParseUint(name[:len(name)-len(ext)], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("image name %q has no numeric id: %w", name, ErrMalformedLine)
	}
	return id, nil
}

// IsKnown reports whether name appears anywhere in the ground truth.
func (gt *GroundTruth) IsKnown(name string) bool {
	_, ok := gt.AllNames[name]
	return ok
}

// RelevantFor returns the relevant set for a query, or false if the name
// is not a query.
func (gt *GroundTruth) RelevantFor(query string) (map[string]struct{}, bool) {
	set, ok := gt.Relevant[query]
	return set, ok
}

// MissingFrom returns the queries not present in addressed, sorted for
// stable diagnostics.
func (gt *GroundTruth) MissingFrom(addressed map[string]struct{}) []string {
	var missing []string
	for _, q := range gt.Queries {
		if _, ok := addressed[q]; !ok {
			missing = append(missing, q)
		}
	}
	sort.Strings(missing)
	return missing
}
