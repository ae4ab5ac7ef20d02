package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzoric/holidays-eval/internal/eval"
	"github.com/mzoric/holidays-eval/internal/eval/dataset"
	"github.com/mzoric/holidays-eval/internal/report"
)

var (
	evalGTPath       string
	evalExtension    string
	evalQueryModulus int
	evalKValues      string
	evalShowTable    bool
	evalOutput       string
)

var evalCmd = &cobra.Command{
	Use:   "eval <results_file>",
	Short: "Score one results file",
	Long: `Scores a results file against the ground truth and prints the mAP.
The score is computed twice, once from the parsed rank/name pairs and once
from the equivalent in-memory ordered lists, as a consistency check.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resultsFile := args[0]

		kValues, err := parseKValues(evalKValues)
		if err != nil {
			return err
		}

		gt, err := dataset.LoadGroundTruthFile(evalGTPath, dataset.Config{
			Extension:    evalExtension,
			QueryModulus: evalQueryModulus,
		})
		if err != nil {
			return err
		}

		e := eval.New(gt, eval.Config{KValues: kValues})

		ev, err := e.EvaluateFile(resultsFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "mAP for %s: %.5f\n", resultsFile, ev.MAP)

		rs, err := dataset.ParseResultsFile(resultsFile)
		if err != nil {
			return err
		}
		evRanked, err := e.EvaluateRanked(rs.Ordered())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "mAP for %s: %.5f\n", resultsFile, evRanked.MAP)

		if !evalShowTable && evalOutput == "" {
			return nil
		}

		rpt := report.Generate(ev, kValues, report.Source{
			ResultsFile: resultsFile,
			GroundTruth: evalGTPath,
		})
		if evalShowTable {
			report.WriteTable(rpt, cmd.OutOrStdout())
		}
		if evalOutput != "" {
			if err := report.WriteJSON(rpt, evalOutput); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&evalGTPath, "gt", "holidays_images.dat", "Path to the ground-truth file")
	evalCmd.Flags().StringVar(&evalExtension, "extension", ".jpg", "Image name extension in the ground truth")
	evalCmd.Flags().IntVar(&evalQueryModulus, "query-modulus", 100, "Ids divisible by this mark queries")
	evalCmd.Flags().StringVar(&evalKValues, "k", "1,5,10", "Precision cutoffs for the report, comma-separated")
	evalCmd.Flags().BoolVar(&evalShowTable, "table", false, "Print the per-query report table")
	evalCmd.Flags().StringVarP(&evalOutput, "output", "o", "", "Write the JSON report to this path")
}
