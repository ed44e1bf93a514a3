package tokenizer

import (
	"unicode/utf8"

	"github.com/badele/readability/internal/types"
)

// Tokenizer splits text into word tokens (runs of ASCII letters bounded
// by non-word characters) and terminator tokens (runs of '.', '!', '?').
// A Tokenizer is single-use; Tokenize caches its result.
type Tokenizer struct {
	input     []byte
	pos       int
	tokenized bool
	Tokens    []types.Token    `json:"tokens"`
	Stats     types.TokenStats `json:"stats"`
}

func NewTextTokenizer(input []byte) *Tokenizer {
	stats := types.TokenStats{
		TokensByType: make(map[types.TokenType]int),
		FileSize:     int64(len(input)),
	}

	return &Tokenizer{
		input:  input,
		pos:    0,
		Tokens: make([]types.Token, 0),
		Stats:  stats,
	}
}

func (t *Tokenizer) Tokenize() []types.Token {
	if t.tokenized {
		return t.Tokens
	}

	for t.pos < len(t.input) {
		t.nextToken()
	}

	t.calculateStats()
	t.tokenized = true

	return t.Tokens
}

func (t *Tokenizer) GetStats() types.TokenStats {
	t.Tokenize()
	return t.Stats
}

// Words returns word tokens in order of appearance, duplicates included.
func (t *Tokenizer) Words() []string {
	t.Tokenize()

	words := make([]string, 0, t.Stats.Words)
	for _, token := range t.Tokens {
		if token.Type == types.TokenWord {
			words = append(words, token.Value)
		}
	}
	return words
}

// SentenceCount returns the number of terminator runs, floored at 1.
func (t *Tokenizer) SentenceCount() int {
	t.Tokenize()
	return max(t.Stats.Terminators, 1)
}

// CharacterCount returns the number of alphabetic characters in the
// whole input, whether or not they belong to a word token.
func (t *Tokenizer) CharacterCount() int {
	t.Tokenize()
	return t.Stats.Letters
}

func (t *Tokenizer) nextToken() {
	if t.pos >= len(t.input) {
		return
	}

	c := t.input[t.pos]

	if IsTerminator(c) {
		t.parseTerminator(t.pos)
		return
	}

	if IsASCIILetter(rune(c)) {
		t.parseLetters(t.pos)
		return
	}

	_, size := utf8.DecodeRune(t.input[t.pos:])
	t.pos += size
}

func (t *Tokenizer) parseTerminator(start int) {
	for t.pos < len(t.input) && IsTerminator(t.input[t.pos]) {
		t.pos++
	}

	t.Tokens = append(t.Tokens, types.Token{
		Type:  types.TokenTerminator,
		Pos:   start,
		Value: string(t.input[start:t.pos]),
	})
}

// parseLetters consumes a maximal ASCII letter run. The run is a word
// only when both of its neighbours are non-word characters.
func (t *Tokenizer) parseLetters(start int) {
	for t.pos < len(t.input) && IsASCIILetter(rune(t.input[t.pos])) {
		t.pos++
	}

	if !t.boundaryBefore(start) || !t.boundaryAfter(t.pos) {
		return
	}

	t.Tokens = append(t.Tokens, types.Token{
		Type:  types.TokenWord,
		Pos:   start,
		Value: string(t.input[start:t.pos]),
	})
}

func (t *Tokenizer) boundaryBefore(pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRune(t.input[:pos])
	return r == utf8.RuneError || !IsWordChar(r)
}

func (t *Tokenizer) boundaryAfter(pos int) bool {
	if pos >= len(t.input) {
		return true
	}
	r, _ := utf8.DecodeRune(t.input[pos:])
	return r == utf8.RuneError || !IsWordChar(r)
}

func (t *Tokenizer) calculateStats() {
	t.Stats.TotalTokens = len(t.Tokens)

	for _, token := range t.Tokens {
		t.Stats.TokensByType[token.Type]++
		switch token.Type {
		case types.TokenWord:
			t.Stats.Words++
		case types.TokenTerminator:
			t.Stats.Terminators++
		}
	}

	// Separate scan: letters outside word tokens count too.
	for _, r := range string(t.input) {
		if IsAlphabetic(r) {
			t.Stats.Letters++
		}
	}
}

var _ types.TextTokenizer = (*Tokenizer)(nil)
