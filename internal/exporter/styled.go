package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/badele/readability/internal/types"
)

var (
	colorPrimary   = lipgloss.Color("39")
	colorSecondary = lipgloss.Color("86")
	colorDim       = lipgloss.Color("241")

	sourceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSecondary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	reportBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// ExportStyled writes each report in a rounded box with coloured headers.
// Colours are dropped automatically when the writer is not a terminal.
func ExportStyled(results []types.SourceMetrics, writer io.Writer) error {
	for _, res := range results {
		counts := countRows(res.Metrics)
		scores := scoreRows(res.Metrics)
		width := labelWidth(counts, scores)

		var b strings.Builder
		b.WriteString(sourceStyle.Render(res.Source))
		b.WriteString("\n\n")
		b.WriteString(sectionHeaderStyle.Render("Text Analysis Results"))
		b.WriteString("\n")
		writeStyledRows(&b, counts, width)
		b.WriteString("\n")
		b.WriteString(sectionHeaderStyle.Render("Readability Scores"))
		b.WriteString("\n")
		writeStyledRows(&b, scores, width)

		if _, err := fmt.Fprintln(writer, reportBoxStyle.Render(strings.TrimRight(b.String(), "\n"))); err != nil {
			return fmt.Errorf("error writing report: %w", err)
		}
	}
	return nil
}

func writeStyledRows(b *strings.Builder, rows []row, width int) {
	for _, r := range rows {
		label := labelStyle.Render(fmt.Sprintf("%-*s", width, r.Label))
		b.WriteString(label + "  " + valueStyle.Render(r.Value) + "\n")
	}
}
