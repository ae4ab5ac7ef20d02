package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Retrieval Evaluation ===\n\n")
	if r.Meta.ResultsFile != "" {
		fmt.Fprintf(tw, "Results: %s\n", r.Meta.ResultsFile)
	}
	if r.Meta.GroundTruth != "" {
		fmt.Fprintf(tw, "Ground truth: %s\n", r.Meta.GroundTruth)
	}
	fmt.Fprintln(tw)

	writePerQueryTable(tw, r)
	writeAggregateTable(tw, r)

	tw.Flush()
}

func writePerQueryTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Per-Query Results\n\n")

	header := []string{"Query", "AP", "RR"}
	for _, k := range r.Config.KValues {
		header = append(header, fmt.Sprintf("P@%d", k))
	}
	header = append(header, "Rel", "Ret")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.PerQuery {
		row := []string{
			e.Query,
			fmt.Sprintf("%.4f", e.AP),
			fmt.Sprintf("%.4f", e.RR),
		}
		for _, k := range r.Config.KValues {
			row = append(row, fmt.Sprintf("%.4f", e.Precision[k]))
		}
		row = append(row,
			fmt.Sprintf("%d", e.Relevant),
			fmt.Sprintf("%d", e.Returned),
		)
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeAggregateTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Aggregated (mean across %d queries)\n\n", r.Aggregate.QueryCount)

	header := []string{"mAP", "MRR"}
	for _, k := range r.Config.KValues {
		header = append(header, fmt.Sprintf("P@%d", k))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	row := []string{
		fmt.Sprintf("%.5f", r.Aggregate.MAP),
		fmt.Sprintf("%.5f", r.Aggregate.MRR),
	}
	for _, k := range r.Config.KValues {
		row = append(row, fmt.Sprintf("%.4f", r.Aggregate.Precision[k]))
	}
	fmt.Fprintln(tw, strings.Join(row, "\t"))

	fmt.Fprintln(tw)
}
