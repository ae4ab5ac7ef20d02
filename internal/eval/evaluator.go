package eval

import (
	"fmt"
	"sort"

	"github.com/mzoric/holidays-eval/internal/eval/dataset"
	"github.com/mzoric/holidays-eval/internal/eval/metrics"
)

var DefaultKValues = []int{1, 5, 10}

type Config struct {
	KValues []int
}

func DefaultConfig() Config {
	return Config{KValues: DefaultKValues}
}

// QueryScore is the scored outcome for one query.
type QueryScore struct {
	Query     string
	AP        float64
	RR        float64
	Precision map[int]float64
	Relevant  int
	Returned  int
}

// Evaluation is the outcome of one full run over a results set.
type Evaluation struct {
	MAP     float64
	MRR     float64
	Queries []QueryScore
}

// Evaluator scores ranked result lists against a fixed ground truth. The
// ground truth is never mutated; completeness is tracked with an explicit
// addressed-query set, so an Evaluator can be reused across runs.
type Evaluator struct {
	gt  *dataset.GroundTruth
	cfg Config
}

func New(gt *dataset.GroundTruth, cfg Config) *Evaluator {
	if len(cfg.KValues) == 0 {
		cfg.KValues = DefaultKValues
	}
	return &Evaluator{gt: gt, cfg: cfg}
}

// EvaluateFile parses a results file and scores it.
func (e *Evaluator) EvaluateFile(path string) (*Evaluation, error) {
	rs, err := dataset.ParseResultsFile(path)
	if err != nil {
		return nil, err
	}
	return e.Evaluate(rs)
}

// Evaluate scores a parsed result set, sorting each query's pairs
// ascending by reported rank first.
func (e *Evaluator) Evaluate(rs *dataset.ResultSet) (*Evaluation, error) {
	return e.run(rs.Order, rs.Ordered())
}

// EvaluateRanked scores pre-ordered result lists (best first) supplied as
// an in-memory mapping. It yields the same mAP as Evaluate given
// equivalent data; queries are processed in sorted name order so
// diagnostics are deterministic.
func (e *Evaluator) EvaluateRanked(ranked map[string][]string) (*Evaluation, error) {
	order := make([]string, 0, len(ranked))
	for query := range ranked {
		order = append(order, query)
	}
	sort.Strings(order)
	return e.run(order, ranked)
}

func (e *Evaluator) run(order []string, ranked map[string][]string) (*Evaluation, error) {
	if len(order) == 0 {
		if len(e.gt.Queries) > 0 {
			return nil, fmt.Errorf("no result for queries %v: %w", e.gt.MissingFrom(nil), ErrMissingQueries)
		}
		return nil, fmt.Errorf("no queries to score")
	}

	addressed := make(map[string]struct{}, len(order))
	ev := &Evaluation{Queries: make([]QueryScore, 0, len(order))}
	var sumAP, sumRR float64

	for _, query := range order {
		relevant, ok := e.gt.RelevantFor(query)
		if !ok {
			return nil, fmt.Errorf("query %q not in ground truth: %w", query, ErrUnknownQuery)
		}
		addressed[query] = struct{}{}

		filtered, err := e.filter(query, ranked[query])
		if err != nil {
			return nil, err
		}

		ap, err := metrics.AveragePrecision(filtered, relevant)
		if err != nil {
			return nil, fmt.Errorf("query %q has an empty relevant set: %w", query, ErrInvalidQuery)
		}

		score := QueryScore{
			Query:     query,
			AP:        ap,
			RR:        metrics.ReciprocalRank(filtered, relevant),
			Precision: make(map[int]float64, len(e.cfg.KValues)),
			Relevant:  len(relevant),
			Returned:  len(filtered),
		}
		for _, k := range e.cfg.KValues {
			score.Precision[k] = metrics.PrecisionAtK(filtered, relevant, k)
		}

		sumAP += ap
		sumRR += score.RR
		ev.Queries = append(ev.Queries, score)
	}

	if missing := e.gt.MissingFrom(addressed); len(missing) > 0 {
		return nil, fmt.Errorf("no result for queries %v: %w", missing, ErrMissingQueries)
	}

	n := float64(len(ev.Queries))
	ev.MAP = sumAP / n
	ev.MRR = sumRR / n
	return ev, nil
}

// filter drops the query's own name from its result list and rejects any
// name the ground truth does not know.
func (e *Evaluator) filter(query string, names []string) ([]string, error) {
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if name == query {
			continue
		}
		if !e.gt.IsKnown(name) {
			return nil, fmt.Errorf("query %q returned image %q not in the dataset: %w", query, name, ErrUnknownImage)
		}
		filtered = append(filtered, name)
	}
	return filtered, nil
}
