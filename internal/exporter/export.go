package exporter

import (
	"fmt"
	"io"

	"github.com/badele/readability/internal/types"
)

// Formats accepted by Export
var Formats = []string{"text", "styled", "json", "table", "panel"}

// Options for Export. PanelWidth only applies to the "panel" format.
type Options struct {
	Format     string
	PanelWidth int
}

// Export writes results in the requested format. An empty format is "text".
func Export(results []types.SourceMetrics, opts Options, writer io.Writer) error {
	switch opts.Format {
	case "", "text":
		return ExportText(results, writer)
	case "styled":
		return ExportStyled(results, writer)
	case "json":
		return ExportJSON(results, writer)
	case "table":
		return ExportTable(results, writer)
	case "panel":
		return ExportPanel(results, opts.PanelWidth, writer)
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}
}
