// Package sentence splits raw document text into an ordered sequence of sentences.
package sentence

import (
	"regexp"
	"strings"
	"unicode"
)

// terminator matches sentence-ending punctuation followed by whitespace.
// Whether the position is an actual boundary also depends on the character
// after the whitespace, which Go's RE2 cannot express as a lookahead, so
// that check happens in Split.
var terminator = regexp.MustCompile(`[.!?]\s+`)

// Split returns the sentences of text in document order. Newlines are treated
// as spaces. A boundary is `.`, `!` or `?` followed by whitespace and then an
// uppercase letter, digit, quote, or opening parenthesis; the punctuation
// stays with the preceding sentence and the following character is not
// consumed. Pieces are trimmed and empty pieces dropped, so whitespace-only
// input yields nil and unterminated text yields a single sentence.
func Split(text string) []string {
	normalized := strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(text)

	var sentences []string
	start := 0
	for _, loc := range terminator.FindAllStringIndex(normalized, -1) {
		if loc[1] >= len(normalized) || !startsSentence(normalized[loc[1]:]) {
			continue
		}
		// loc[0] is the punctuation mark; keep it with the left piece.
		if piece := strings.TrimSpace(normalized[start : loc[0]+1]); piece != "" {
			sentences = append(sentences, piece)
		}
		start = loc[1]
	}
	if piece := strings.TrimSpace(normalized[start:]); piece != "" {
		sentences = append(sentences, piece)
	}
	return sentences
}

// startsSentence reports whether the first rune of s can open a sentence.
func startsSentence(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r) || unicode.IsDigit(r) || r == '"' || r == '\'' || r == '('
	}
	return false
}
