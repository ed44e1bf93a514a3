// Package readability provides a public API for computing readability
// metrics of English text.
//
// This package provides functions to:
//   - Count words, sentences, syllables and complex words
//   - Compute the Gunning Fog, Flesch-Kincaid Grade, Flesch Reading Ease
//     and SMOG indices
//   - Read text files in UTF-8, CP437, CP850 or ISO-8859-1
//   - Strip Markdown markup before analysis
//
// Example usage:
//
//	import "github.com/badele/readability/pkg/readability"
//
//	m := readability.Analyze("The cat sat on the mat.")
//	fmt.Println(m.WordCount, m.FleschReadingEase)
//
//	m, err := readability.AnalyzeSource("essay.txt")
//	if errors.Is(err, readability.ErrNotFound) {
//		// ...
//	}
package readability

import (
	"github.com/badele/readability/internal/analyzer"
	"github.com/badele/readability/internal/markdown"
	"github.com/badele/readability/internal/source"
	"github.com/badele/readability/internal/syllable"
	"github.com/badele/readability/internal/tokenizer"
	"github.com/badele/readability/internal/types"
)

// Type aliases for public API
type (
	// TextMetrics is the result of one analysis
	TextMetrics = types.TextMetrics

	// SourceMetrics pairs a TextMetrics with the name of its source
	SourceMetrics = types.SourceMetrics

	// Token is a word or sentence terminator token
	Token = types.Token

	// TokenType represents the type of a token
	TokenType = types.TokenType

	// TokenStats contains statistics about a tokenized text
	TokenStats = types.TokenStats

	// Analyzer computes metrics with a fixed configuration
	Analyzer = analyzer.Analyzer

	// Option configures an Analyzer
	Option = analyzer.Option

	// Tokenizer splits text into word and terminator tokens
	Tokenizer = tokenizer.Tokenizer

	// SyllableMode selects the syllable heuristic variant
	SyllableMode = syllable.Mode

	// SourceReader resolves an identifier to text
	SourceReader = source.Reader

	// FileReader reads text files from disk
	FileReader = source.FileReader

	// IOError is a read failure other than a missing source
	IOError = source.IOError
)

// Token type constants
const (
	TokenWord       = types.TokenWord
	TokenTerminator = types.TokenTerminator
	TokenUnknown    = types.TokenUnknown
)

// Syllable mode constants
const (
	SyllableLiteral   = syllable.ModeLiteral
	SyllableCorrected = syllable.ModeCorrected
)

// ErrNotFound reports a missing text source
var ErrNotFound = source.ErrNotFound

// Analyze computes metrics for text. It never fails.
func Analyze(text string) TextMetrics {
	return analyzer.Analyze(text)
}

// AnalyzeSource reads a UTF-8 file and analyzes it. A missing file yields
// an error matching ErrNotFound; other read failures yield an *IOError.
func AnalyzeSource(path string) (TextMetrics, error) {
	return analyzer.AnalyzeSource(path)
}

// New creates an Analyzer. See WithSyllableMode, WithReader, WithMarkdown.
func New(opts ...Option) *Analyzer {
	return analyzer.New(opts...)
}

// WithSyllableMode selects the syllable heuristic variant.
func WithSyllableMode(mode SyllableMode) Option {
	return analyzer.WithSyllableMode(mode)
}

// WithReader replaces the reader used by Analyzer.AnalyzeSource.
func WithReader(r SourceReader) Option {
	return analyzer.WithReader(r)
}

// WithMarkdown strips Markdown markup before analysis.
func WithMarkdown(enabled bool) Option {
	return analyzer.WithMarkdown(enabled)
}

// NewFileReader creates a reader for files in the given encoding
// ("utf8", "cp437", "cp850", "iso-8859-1").
func NewFileReader(encoding string) *FileReader {
	return source.NewFileReader(encoding, nil)
}

// NewTokenizer creates a tokenizer over UTF-8 text.
func NewTokenizer(input []byte) *Tokenizer {
	return tokenizer.NewTextTokenizer(input)
}

// CountSyllables estimates the syllables of a single word.
func CountSyllables(word string) int {
	return syllable.Count(word)
}

// IsComplexWord reports whether a word with the given syllable count is
// complex.
func IsComplexWord(word string, syllables int) bool {
	return syllable.IsComplex(word, syllables)
}

// MarkdownToText strips Markdown markup and returns the prose.
func MarkdownToText(data []byte) string {
	return markdown.PlainText(data)
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	return source.ConvertToUTF8(data, sourceEncoding)
}

// GunningFog computes the Gunning Fog index from raw counts.
func GunningFog(words, sentences, complexWords int) float64 {
	return analyzer.GunningFog(words, sentences, complexWords)
}

// FleschKincaidGrade computes the Flesch-Kincaid grade level from raw counts.
func FleschKincaidGrade(words, sentences, syllables int) float64 {
	return analyzer.FleschKincaidGrade(words, sentences, syllables)
}

// FleschReadingEase computes the Flesch Reading Ease score from raw counts.
func FleschReadingEase(words, sentences, syllables int) float64 {
	return analyzer.FleschReadingEase(words, sentences, syllables)
}

// SMOG computes the SMOG index; 0 below 30 sentences.
func SMOG(sentences, complexWords int) float64 {
	return analyzer.SMOG(sentences, complexWords)
}
