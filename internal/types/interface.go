package types

type Tokenizer interface {
	Tokenize() []Token
}

// Tokenize with statistics
type TokenizerWithStats interface {
	Tokenizer
	GetStats() TokenStats
}

// Words and sentence boundaries, as consumed by the aggregator
type TextTokenizer interface {
	TokenizerWithStats
	Words() []string
	SentenceCount() int
	CharacterCount() int
}
