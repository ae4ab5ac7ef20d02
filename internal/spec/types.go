package spec

// EvalSpec drives a batch run: one dataset scored against one or more
// submitted results files.
type EvalSpec struct {
	Dataset Dataset       `yaml:"dataset"`
	Jobs    []Job         `yaml:"jobs"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type Dataset struct {
	GroundTruth  string `yaml:"ground_truth"`
	Extension    string `yaml:"extension,omitempty"`
	QueryModulus int    `yaml:"query_modulus,omitempty"`
}

type Job struct {
	Name    string `yaml:"name"`
	Results string `yaml:"results"`
}

type MetricsConfig struct {
	KValues []int `yaml:"k_values"`
}
