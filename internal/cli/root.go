package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mapeval",
	Short: "Score image-retrieval results against the Holidays ground truth",
	Long: `mapeval computes mean Average Precision (mAP) for ranked retrieval
results against a ground-truth partition in the INRIA Holidays format:
one image name per line, ids divisible by 100 marking queries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func parseKValues(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid k value %q: %w", p, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("k value must be positive, got %d", v)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
