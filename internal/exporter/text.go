package exporter

import (
	"fmt"
	"io"

	"github.com/badele/readability/internal/types"
)

// ExportText writes the plain report for each result. A header naming the
// source is printed only when there is more than one result.
func ExportText(results []types.SourceMetrics, writer io.Writer) error {
	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(writer)
			}
			fmt.Fprintf(writer, "=== %s ===\n\n", res.Source)
		}

		if err := writeTextReport(res.Metrics, writer); err != nil {
			return err
		}
	}
	return nil
}

func writeTextReport(m types.TextMetrics, writer io.Writer) error {
	fmt.Fprintln(writer, "Text Analysis Results:")
	fmt.Fprintln(writer, "----------------------")
	for _, r := range countRows(m) {
		fmt.Fprintf(writer, "%s: %s\n", r.Label, r.Value)
	}

	fmt.Fprintln(writer, "\nReadability Scores:")
	fmt.Fprintln(writer, "------------------")
	for _, r := range scoreRows(m) {
		if _, err := fmt.Fprintf(writer, "%s: %s\n", r.Label, r.Value); err != nil {
			return fmt.Errorf("error writing report: %w", err)
		}
	}
	return nil
}
