package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*EvalSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*EvalSpec, error) {
	var s EvalSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse spec YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func validate(s *EvalSpec) error {
	if s.Dataset.GroundTruth == "" {
		return fmt.Errorf("spec has no ground truth file")
	}
	if len(s.Jobs) == 0 {
		return fmt.Errorf("spec has no jobs")
	}
	seen := make(map[string]struct{}, len(s.Jobs))
	for i, j := range s.Jobs {
		if j.Name == "" {
			return fmt.Errorf("job at index %d has no name", i)
		}
		if j.Results == "" {
			return fmt.Errorf("job %q has no results file", j.Name)
		}
		if _, ok := seen[j.Name]; ok {
			return fmt.Errorf("duplicate job name %q", j.Name)
		}
		seen[j.Name] = struct{}{}
	}
	if s.Dataset.Extension == "" {
		s.Dataset.Extension = ".jpg"
	}
	if s.Dataset.QueryModulus <= 0 {
		s.Dataset.QueryModulus = 100
	}
	if len(s.Metrics.KValues) == 0 {
		s.Metrics.KValues = []int{1, 5, 10}
	}
	for _, k := range s.Metrics.KValues {
		if k <= 0 {
			return fmt.Errorf("metrics k value must be positive, got %d", k)
		}
	}
	return nil
}
