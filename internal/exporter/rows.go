package exporter

import (
	"fmt"

	"github.com/badele/readability/internal/types"
)

type row struct {
	Label string
	Value string
}

// countRows and scoreRows share labels across the text, table, styled and
// panel renderers.
func countRows(m types.TextMetrics) []row {
	return []row{
		{"Word Count", fmt.Sprintf("%d", m.WordCount)},
		{"Sentence Count", fmt.Sprintf("%d", m.SentenceCount)},
		{"Syllable Count", fmt.Sprintf("%d", m.SyllableCount)},
		{"Complex Word Count", fmt.Sprintf("%d", m.ComplexWordCount)},
		{"Character Count", fmt.Sprintf("%d", m.CharacterCount)},
		{"Average Words per Sentence", fmt.Sprintf("%.1f", m.AverageWordsPerSentence)},
		{"Average Syllables per Word", fmt.Sprintf("%.1f", m.AverageSyllablesPerWord)},
	}
}

func scoreRows(m types.TextMetrics) []row {
	return []row{
		{"Gunning Fog Index", fmt.Sprintf("%.1f", m.GunningFogIndex)},
		{"Flesch-Kincaid Grade Level", fmt.Sprintf("%.1f", m.FleschKincaidGrade)},
		{"Flesch Reading Ease", fmt.Sprintf("%.1f", m.FleschReadingEase)},
		{"SMOG Index", fmt.Sprintf("%.1f", m.SMOGIndex)},
	}
}

func labelWidth(rows ...[]row) int {
	width := 0
	for _, rs := range rows {
		for _, r := range rs {
			width = max(width, len(r.Label))
		}
	}
	return width
}
