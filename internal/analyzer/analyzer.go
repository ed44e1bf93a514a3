// Package analyzer folds tokenizer and syllable results into a
// types.TextMetrics record.
package analyzer

import (
	"context"

	"github.com/badele/readability/internal/markdown"
	"github.com/badele/readability/internal/source"
	"github.com/badele/readability/internal/syllable"
	"github.com/badele/readability/internal/tokenizer"
	"github.com/badele/readability/internal/types"
)

// Analyzer computes text metrics. It is configured once and holds no
// per-call state, so one Analyzer may serve concurrent callers.
type Analyzer struct {
	estimator syllable.Estimator
	reader    source.Reader
	markdown  bool
}

type Option func(*Analyzer)

// WithSyllableMode selects the syllable estimator mode.
func WithSyllableMode(mode syllable.Mode) Option {
	return func(a *Analyzer) {
		a.estimator = syllable.Estimator{Mode: mode}
	}
}

// WithReader replaces the reader used by AnalyzeSource.
func WithReader(r source.Reader) Option {
	return func(a *Analyzer) {
		a.reader = r
	}
}

// WithMarkdown strips Markdown markup from text before it is analyzed.
func WithMarkdown(enabled bool) Option {
	return func(a *Analyzer) {
		a.markdown = enabled
	}
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		reader: source.NewFileReader("utf8", nil),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAnalyzer = New()

// Analyze computes metrics with the default settings. It never fails.
func Analyze(text string) types.TextMetrics {
	return defaultAnalyzer.Analyze(text)
}

// AnalyzeSource reads a UTF-8 file and analyzes it.
func AnalyzeSource(path string) (types.TextMetrics, error) {
	return defaultAnalyzer.AnalyzeSource(context.Background(), path)
}

// Analyze computes metrics for text in a single pass over its words.
func (a *Analyzer) Analyze(text string) types.TextMetrics {
	if a.markdown {
		text = markdown.PlainText([]byte(text))
	}

	tok := tokenizer.NewTextTokenizer([]byte(text))
	return a.aggregate(tok)
}

// AnalyzeSource resolves identifier through the configured reader and
// analyzes the result. Read errors are returned as-is: source.ErrNotFound
// for a missing source, *source.IOError otherwise.
func (a *Analyzer) AnalyzeSource(ctx context.Context, identifier string) (types.TextMetrics, error) {
	text, err := a.reader.ReadText(ctx, identifier)
	if err != nil {
		return types.TextMetrics{}, err
	}
	return a.Analyze(text), nil
}

func (a *Analyzer) aggregate(tok types.TextTokenizer) types.TextMetrics {
	words := tok.Words()
	wordCount := len(words)
	sentenceCount := tok.SentenceCount()

	syllableCount := 0
	complexWordCount := 0
	for _, word := range words {
		n := a.estimator.Count(word)
		syllableCount += n
		if syllable.IsComplex(word, n) {
			complexWordCount++
		}
	}

	averageSyllablesPerWord := 0.0
	if wordCount > 0 {
		averageSyllablesPerWord = float64(syllableCount) / float64(wordCount)
	}

	return types.TextMetrics{
		WordCount:               wordCount,
		SentenceCount:           sentenceCount,
		SyllableCount:           syllableCount,
		ComplexWordCount:        complexWordCount,
		CharacterCount:          tok.CharacterCount(),
		GunningFogIndex:         GunningFog(wordCount, sentenceCount, complexWordCount),
		FleschKincaidGrade:      FleschKincaidGrade(wordCount, sentenceCount, syllableCount),
		FleschReadingEase:       FleschReadingEase(wordCount, sentenceCount, syllableCount),
		SMOGIndex:               SMOG(sentenceCount, complexWordCount),
		AverageWordsPerSentence: float64(wordCount) / float64(sentenceCount),
		AverageSyllablesPerWord: averageSyllablesPerWord,
	}
}
