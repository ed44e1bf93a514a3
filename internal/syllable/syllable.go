// Package syllable estimates English syllable counts and flags complex
// words. The estimate is a vowel-group heuristic, not a phonetic one.
package syllable

import (
	"fmt"
	"strings"

	"github.com/badele/readability/internal/tokenizer"
)

/////////////////////////////////////////////////////////////////////////////
// MODE
/////////////////////////////////////////////////////////////////////////////

type Mode int

const (
	// ModeLiteral subtracts every vowel run of two or more letters a
	// second time after run counting.
	ModeLiteral Mode = iota
	// ModeCorrected skips that second subtraction.
	ModeCorrected
)

func (m Mode) String() string {
	switch m {
	case ModeLiteral:
		return "literal"
	case ModeCorrected:
		return "corrected"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// ParseMode maps a config value to a Mode. An empty string is ModeLiteral.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "literal":
		return ModeLiteral, nil
	case "corrected":
		return ModeCorrected, nil
	default:
		return ModeLiteral, fmt.Errorf("unknown syllable mode: %s", s)
	}
}

/////////////////////////////////////////////////////////////////////////////
// ESTIMATOR
/////////////////////////////////////////////////////////////////////////////

// Estimator counts syllables. The zero value uses ModeLiteral and is safe
// for concurrent use.
type Estimator struct {
	Mode Mode
}

// Count returns the syllable estimate for word: 0 when nothing alphabetic
// remains after trimming, at least 1 otherwise.
func (e Estimator) Count(word string) int {
	cleaned := clean(word)
	if cleaned == "" {
		return 0
	}

	runs, longRuns := vowelRuns(cleaned)
	count := runs

	// Silent trailing e, except for "-le" endings.
	if strings.HasSuffix(cleaned, "e") && count > 1 && !strings.HasSuffix(cleaned, "le") {
		count--
	}

	if e.Mode == ModeLiteral {
		count -= longRuns
	}

	return max(count, 1)
}

// Count estimates syllables with the default Estimator.
func Count(word string) int {
	return Estimator{}.Count(word)
}

// IsComplex reports whether a word with the given syllable estimate is a
// complex word: three or more syllables and no "ed", "es" or "ing" ending.
func IsComplex(word string, syllables int) bool {
	cleaned := clean(word)
	return syllables >= 3 &&
		!strings.HasSuffix(cleaned, "ed") &&
		!strings.HasSuffix(cleaned, "es") &&
		!strings.HasSuffix(cleaned, "ing")
}

func clean(word string) string {
	trimmed := strings.TrimFunc(word, func(r rune) bool {
		return !tokenizer.IsAlphabetic(r)
	})
	return strings.ToLower(trimmed)
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// vowelRuns returns the number of maximal vowel runs in s and how many of
// them are at least two letters long.
func vowelRuns(s string) (runs, longRuns int) {
	length := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && isVowel(s[i]) {
			length++
			continue
		}
		if length > 0 {
			runs++
			if length >= 2 {
				longRuns++
			}
		}
		length = 0
	}
	return runs, longRuns
}
