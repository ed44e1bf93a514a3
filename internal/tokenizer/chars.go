package tokenizer

import "unicode"

// IsASCIILetter reports whether r is in [a-zA-Z].
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsAlphabetic reports whether r has the Unicode Alphabetic property
// (letters, letter numbers and other alphabetic marks).
func IsAlphabetic(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Other_Alphabetic, r)
}

// IsWordChar reports whether r is a Unicode word character. A run of
// ASCII letters touching one of these on either side is not a word.
func IsWordChar(r rune) bool {
	return IsAlphabetic(r) ||
		unicode.IsDigit(r) ||
		unicode.Is(unicode.M, r) ||
		unicode.Is(unicode.Pc, r) ||
		r == '\u200c' || r == '\u200d'
}

// IsTerminator reports whether c ends a sentence.
func IsTerminator(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}
