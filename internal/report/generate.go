package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/mzoric/holidays-eval/internal/eval"
)

// Source names the two inputs of a run, for the report metadata.
type Source struct {
	ResultsFile string
	GroundTruth string
}

func Generate(ev *eval.Evaluation, kValues []int, src Source) *Report {
	r := &Report{
		Meta: Meta{
			RunID:       uuid.New(),
			Timestamp:   time.Now().UTC(),
			ResultsFile: src.ResultsFile,
			GroundTruth: src.GroundTruth,
			Environment: NewEnvironmentInfo(),
		},
		Config: Config{KValues: kValues},
	}

	agg := Aggregate{
		MAP:        ev.MAP,
		MRR:        ev.MRR,
		Precision:  make(map[int]float64, len(kValues)),
		QueryCount: len(ev.Queries),
	}

	for _, q := range ev.Queries {
		r.PerQuery = append(r.PerQuery, Entry{
			Query:     q.Query,
			AP:        q.AP,
			RR:        q.RR,
			Precision: q.Precision,
			Relevant:  q.Relevant,
			Returned:  q.Returned,
		})
		for _, k := range kValues {
			agg.Precision[k] += q.Precision[k]
		}
	}

	if n := float64(agg.QueryCount); n > 0 {
		for _, k := range kValues {
			agg.Precision[k] /= n
		}
	}

	r.Aggregate = agg
	return r
}
