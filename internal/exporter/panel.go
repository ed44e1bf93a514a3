package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/badele/readability/internal/types"
)

// MinPanelWidth fits the longest label, a value and the frame.
const MinPanelWidth = 40

// top border, counts, separator, scores, bottom border
const panelHeight = 1 + 7 + 1 + 4 + 1

// PanelBuffer draws framed reports on a tcell simulation screen and reads
// them back as text.
type PanelBuffer struct {
	screen tcell.SimulationScreen
	style  tcell.Style
	width  int
	height int
}

func NewPanelBuffer(width, height int) (*PanelBuffer, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen initialization error: %w", err)
	}

	screen.SetSize(width, height)

	return &PanelBuffer{
		screen: screen,
		style:  tcell.StyleDefault,
		width:  width,
		height: height,
	}, nil
}

// ExportPanel renders one framed panel per result, stacked with a blank
// line between panels.
func ExportPanel(results []types.SourceMetrics, width int, writer io.Writer) error {
	if len(results) == 0 {
		return nil
	}
	width = max(width, MinPanelWidth)
	height := len(results)*(panelHeight+1) - 1

	pb, err := NewPanelBuffer(width, height)
	if err != nil {
		return err
	}
	defer pb.Close()

	for i, res := range results {
		pb.DrawReport(i*(panelHeight+1), res)
	}
	pb.screen.Show()

	_, err = fmt.Fprintln(writer, pb.GetPlainText())
	return err
}

// DrawReport draws a single panel whose top border is on line top.
func (pb *PanelBuffer) DrawReport(top int, res types.SourceMetrics) {
	counts := countRows(res.Metrics)
	scores := scoreRows(res.Metrics)

	y := top
	pb.drawBorder(y, tcell.RuneULCorner, tcell.RuneURCorner)
	title := truncate(res.Source, pb.width-6)
	pb.putString(2, y, " "+title+" ")
	y++

	for _, r := range counts {
		pb.drawRow(y, r)
		y++
	}

	pb.drawBorder(y, tcell.RuneLTee, tcell.RuneRTee)
	y++

	for _, r := range scores {
		pb.drawRow(y, r)
		y++
	}

	pb.drawBorder(y, tcell.RuneLLCorner, tcell.RuneLRCorner)
}

func (pb *PanelBuffer) drawBorder(y int, left, right rune) {
	pb.screen.SetContent(0, y, left, nil, pb.style)
	for x := 1; x < pb.width-1; x++ {
		pb.screen.SetContent(x, y, tcell.RuneHLine, nil, pb.style)
	}
	pb.screen.SetContent(pb.width-1, y, right, nil, pb.style)
}

func (pb *PanelBuffer) drawRow(y int, r row) {
	for x := 0; x < pb.width; x++ {
		pb.screen.SetContent(x, y, ' ', nil, pb.style)
	}
	pb.screen.SetContent(0, y, tcell.RuneVLine, nil, pb.style)
	pb.screen.SetContent(pb.width-1, y, tcell.RuneVLine, nil, pb.style)

	pb.putString(2, y, r.Label)
	pb.putString(pb.width-2-len(r.Value), y, r.Value)
}

func (pb *PanelBuffer) putString(x, y int, s string) {
	for _, r := range s {
		if x >= pb.width-1 {
			return
		}
		pb.screen.SetContent(x, y, r, nil, pb.style)
		x++
	}
}

func (pb *PanelBuffer) GetPlainText() string {
	lines := make([]string, 0, pb.height)

	for y := 0; y < pb.height; y++ {
		var line strings.Builder
		for x := 0; x < pb.width; x++ {
			mainc, _, _, _ := pb.screen.GetContent(x, y)
			// Convert 0 (empty cell) to space to avoid null bytes in output
			if mainc == 0 {
				line.WriteRune(' ')
			} else {
				line.WriteRune(mainc)
			}
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}

	return strings.Join(lines, "\n")
}

func (pb *PanelBuffer) Close() {
	pb.screen.Fini()
}
