package types

import (
	"encoding/json"
	"fmt"
)

/////////////////////////////////////////////////////////////////////////////
// TOKEN TYPE
/////////////////////////////////////////////////////////////////////////////

type TokenType int

const (
	TokenWord TokenType = iota
	TokenTerminator
	TokenUnknown
)

func (t TokenType) String() string {
	switch t {
	case TokenWord:
		return "TokenWord"
	case TokenTerminator:
		return "TokenTerminator"
	case TokenUnknown:
		return "TokenUnknown"
	default:
		return fmt.Sprintf("TokenType(%d)", t)
	}
}

func (t TokenType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TokenType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "TokenWord":
		*t = TokenWord
	case "TokenTerminator":
		*t = TokenTerminator
	case "TokenUnknown":
		*t = TokenUnknown
	default:
		return fmt.Errorf("unknown TokenType: %s", s)
	}

	return nil
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN
/////////////////////////////////////////////////////////////////////////////

// Token is a word or a sentence terminator run found in the input.
// Pos is the byte offset of the first byte of Value.
type Token struct {
	Type  TokenType `json:"type"`
	Pos   int       `json:"pos"`
	Value string    `json:"value"`
}

func (t Token) String() string {
	switch t.Type {
	case TokenWord:
		return "WORD: " + t.Value
	case TokenTerminator:
		return "END: " + t.Value
	default:
		return "UNKNOWN"
	}
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN STATS
/////////////////////////////////////////////////////////////////////////////

type TokenStats struct {
	TotalTokens  int               `json:"total_tokens"`
	TokensByType map[TokenType]int `json:"tokens_by_type"`
	Words        int               `json:"words"`
	Terminators  int               `json:"terminators"`
	Letters      int               `json:"letters"`
	FileSize     int64             `json:"file_size"`
}
