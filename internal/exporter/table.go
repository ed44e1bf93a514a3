package exporter

import (
	"fmt"
	"io"

	"github.com/badele/readability/internal/types"
)

func ExportTable(results []types.SourceMetrics, writer io.Writer) error {
	fmt.Fprintln(writer, "┌──────────────────────────────────────┬────────────────────────────┬──────────────┐")
	fmt.Fprintf(writer, "│ %-36s │ %-26s │ %-12s │\n", "Source", "Metric", "Value")
	fmt.Fprintln(writer, "├──────────────────────────────────────┼────────────────────────────┼──────────────┤")

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(writer, "├──────────────────────────────────────┼────────────────────────────┼──────────────┤")
		}

		rows := append(countRows(res.Metrics), scoreRows(res.Metrics)...)
		for j, r := range rows {
			src := ""
			if j == 0 {
				src = truncate(res.Source, 36)
			}
			fmt.Fprintf(writer, "│ %-36s │ %-26s │ %12s │\n", src, r.Label, r.Value)
		}
	}

	_, err := fmt.Fprintln(writer, "└──────────────────────────────────────┴────────────────────────────┴──────────────┘")
	return err
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return "..." + string(runes[len(runes)-maxLen+3:])
	}
	return s
}
