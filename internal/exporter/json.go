package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/readability/internal/types"
)

// ExportJSON writes one indented object for a single result, or an array
// when there are several.
func ExportJSON(results []types.SourceMetrics, writer io.Writer) error {
	var payload any = results
	if len(results) == 1 {
		payload = results[0]
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}
