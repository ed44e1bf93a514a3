package tokenizer

import (
	"reflect"
	"testing"

	"github.com/badele/readability/internal/types"
)

func TestTokenizeWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Simple", "The cat sat on the mat.", []string{"The", "cat", "sat", "on", "the", "mat"}},
		{"Duplicates", "go go go", []string{"go", "go", "go"}},
		{"Apostrophe", "don't", []string{"don", "t"}},
		{"Hyphen", "well-known", []string{"well", "known"}},
		{"DigitsAttached", "abc123 def", []string{"def"}},
		{"Underscore", "snake_case word", []string{"word"}},
		{"AccentedNeighbour", "café au lait", []string{"au", "lait"}},
		{"Empty", "", []string{}},
		{"Punctuation", "...!?", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTextTokenizer([]byte(tt.input))
			words := tok.Words()

			if !reflect.DeepEqual(words, tt.expected) {
				t.Errorf("Expected words %v, got %v", tt.expected, words)
			}
		})
	}
}

func TestSentenceCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"One", "The cat sat on the mat.", 1},
		{"Two", "Hello world. How are you?", 2},
		{"Ellipsis", "Wait... what?!", 2},
		{"NoTerminator", "Hello world", 1},
		{"Empty", "", 1},
		{"Whitespace", "   \n\t ", 1},
		{"OnlyTerminators", "?!.", 1},
		{"Decimal", "Pi is 3.14 today.", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTextTokenizer([]byte(tt.input))

			if got := tok.SentenceCount(); got != tt.expected {
				t.Errorf("Expected %d sentences, got %d", tt.expected, got)
			}
		})
	}
}

func TestCharacterCountIncludesLettersOutsideWords(t *testing.T) {
	// "café" yields no word token but still contributes 4 letters.
	tok := NewTextTokenizer([]byte("café 42 ok!"))

	if got := tok.CharacterCount(); got != 6 {
		t.Fatalf("Expected 6 letters, got %d", got)
	}

	if got := len(tok.Words()); got != 1 {
		t.Fatalf("Expected 1 word, got %d", got)
	}
}

func TestTokenPositions(t *testing.T) {
	tok := NewTextTokenizer([]byte("Hi there!!"))
	tokens := tok.Tokenize()

	expected := []types.Token{
		{Type: types.TokenWord, Pos: 0, Value: "Hi"},
		{Type: types.TokenWord, Pos: 3, Value: "there"},
		{Type: types.TokenTerminator, Pos: 8, Value: "!!"},
	}

	if !reflect.DeepEqual(tokens, expected) {
		t.Fatalf("Expected tokens %v, got %v", expected, tokens)
	}
}

func TestTokenizeIsCached(t *testing.T) {
	tok := NewTextTokenizer([]byte("one two. three"))
	first := tok.Tokenize()
	second := tok.Tokenize()

	if len(first) != len(second) {
		t.Fatalf("Expected repeated Tokenize to return %d tokens, got %d", len(first), len(second))
	}

	stats := tok.GetStats()
	if stats.Words != 3 || stats.Terminators != 1 || stats.TotalTokens != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.TokensByType[types.TokenWord] != 3 {
		t.Errorf("Expected 3 word tokens by type, got %d", stats.TokensByType[types.TokenWord])
	}
}

func TestTokenTypeJSON(t *testing.T) {
	data, err := types.TokenTerminator.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	var tt types.TokenType
	if err := tt.UnmarshalJSON(data); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if tt != types.TokenTerminator {
		t.Errorf("Expected %v, got %v", types.TokenTerminator, tt)
	}

	if err := tt.UnmarshalJSON([]byte(`"TokenNope"`)); err == nil {
		t.Errorf("Expected error for unknown token type")
	}
}
