package report

import (
	"runtime"
	"time"

	"github.com/google/uuid"
)

type Report struct {
	Meta      Meta      `json:"meta"`
	Config    Config    `json:"config"`
	PerQuery  []Entry   `json:"per_query"`
	Aggregate Aggregate `json:"aggregate"`
}

type Meta struct {
	RunID       uuid.UUID       `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	ResultsFile string          `json:"results_file,omitempty"`
	GroundTruth string          `json:"ground_truth,omitempty"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Config struct {
	KValues []int `json:"k_values"`
}

type Entry struct {
	Query     string          `json:"query"`
	AP        float64         `json:"ap"`
	RR        float64         `json:"rr"`
	Precision map[int]float64 `json:"precision"`
	Relevant  int             `json:"relevant"`
	Returned  int             `json:"returned"`
}

type Aggregate struct {
	MAP        float64         `json:"map"`
	MRR        float64         `json:"mrr"`
	Precision  map[int]float64 `json:"precision"`
	QueryCount int             `json:"query_count"`
}
