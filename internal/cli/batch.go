package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzoric/holidays-eval/internal/eval"
	"github.com/mzoric/holidays-eval/internal/eval/dataset"
	"github.com/mzoric/holidays-eval/internal/report"
	"github.com/mzoric/holidays-eval/internal/spec"
)

var (
	batchSpecPath string
	batchOutput   string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score several results files from a YAML spec",
	Long: `Loads an evaluation spec listing a dataset and one or more submitted
results files, scores each job, and prints one report per job.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := spec.LoadFromFile(batchSpecPath)
		if err != nil {
			return err
		}

		gt, err := dataset.LoadGroundTruthFile(s.Dataset.GroundTruth, dataset.Config{
			Extension:    s.Dataset.Extension,
			QueryModulus: s.Dataset.QueryModulus,
		})
		if err != nil {
			return err
		}

		e := eval.New(gt, eval.Config{KValues: s.Metrics.KValues})

		for _, job := range s.Jobs {
			ev, err := e.EvaluateFile(job.Results)
			if err != nil {
				return fmt.Errorf("job %q: %w", job.Name, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n--- Job: %s ---\n", job.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "mAP for %s: %.5f\n", job.Results, ev.MAP)

			rpt := report.Generate(ev, s.Metrics.KValues, report.Source{
				ResultsFile: job.Results,
				GroundTruth: s.Dataset.GroundTruth,
			})
			report.WriteTable(rpt, cmd.OutOrStdout())

			if batchOutput != "" {
				path := fmt.Sprintf("%s.%s.json", batchOutput, job.Name)
				if err := report.WriteJSON(rpt, path); err != nil {
					return fmt.Errorf("job %q: %w", job.Name, err)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchSpecPath, "spec", "", "Path to the evaluation spec YAML")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "JSON report path prefix, one file per job")
	_ = batchCmd.MarkFlagRequired("spec")
}
