// Package risk flags sentences that contain legally consequential keywords.
package risk

import (
	"strings"

	"github.com/aatif-shaikh19/LegalSimplify/internal/models"
	"github.com/aatif-shaikh19/LegalSimplify/internal/sentence"
)

// riskKeywords are matched as case-insensitive substrings, so truncated stems
// like "penalt" cover penalty/penalties and "terminate" covers terminated.
var riskKeywords = []string{
	"indemnify", "liability", "penalt", "breach", "terminate", "obligation",
}

// MaxFlags caps how many sentences are flagged.
const MaxFlags = 6

// Detect returns up to MaxFlags sentences of text containing a risk keyword,
// in document order, each with the terms that matched. The result is a pure
// derivation of text; callers recompute it whenever the document changes.
func Detect(text string) []models.RiskFlag {
	var flags []models.RiskFlag
	for i, sent := range sentence.Split(text) {
		lower := strings.ToLower(sent)
		var terms []string
		for _, kw := range riskKeywords {
			if strings.Contains(lower, kw) {
				terms = append(terms, kw)
			}
		}
		if len(terms) == 0 {
			continue
		}
		flags = append(flags, models.RiskFlag{Sentence: sent, Index: i, Terms: terms})
		if len(flags) == MaxFlags {
			break
		}
	}
	return flags
}

// Keywords returns the fixed risk keyword list.
func Keywords() []string {
	return riskKeywords
}
