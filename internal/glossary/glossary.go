// Package glossary rewrites legal jargon with inline plain-language explanations.
package glossary

import "regexp"

// Rule maps a legal term to its plain-language explanation. The pattern is
// case-insensitive and covers common inflections of the term.
type Rule struct {
	Term        string
	Pattern     *regexp.Regexp
	Explanation string
}

// rules are applied in this fixed order. Alternations list longer inflections
// first so the whole word is matched, not a prefix of it.
var rules = []Rule{
	{"force majeure", regexp.MustCompile(`(?i)force majeure`), "events beyond anyone's control"},
	{"indemnify", regexp.MustCompile(`(?i)indemnif(?:ication|ying|ies|ied|y)`), "compensation if someone sues you"},
	{"waiver", regexp.MustCompile(`(?i)waiv(?:ers|er|ing|ed|es|e)`), "giving up a right"},
	{"jurisdiction", regexp.MustCompile(`(?i)jurisdictions?`), "which court's rules apply"},
	{"notwithstanding", regexp.MustCompile(`(?i)notwithstanding`), "despite"},
	{"liability", regexp.MustCompile(`(?i)liabilit(?:ies|y)`), "legal responsibility"},
	{"confidentiality", regexp.MustCompile(`(?i)confidential(?:ity)?`), "keeping information secret"},
	{"termination", regexp.MustCompile(`(?i)terminat(?:ions|ion|ing|ed|es|e|or)`), "ending the agreement"},
}

// Rules returns the glossary rules in application order.
func Rules() []Rule {
	return rules
}

// Annotate appends each rule's explanation in parentheses after the first
// occurrence of its pattern in sentence. Only the first match per rule is
// annotated; a sentence matching several rules receives several annotations.
// Rules run over the progressively annotated string, so a later rule matching
// inside an earlier rule's explanation text is accepted rather than guarded.
func Annotate(sentence string) string {
	for _, rule := range rules {
		loc := rule.Pattern.FindStringIndex(sentence)
		if loc == nil {
			continue
		}
		sentence = sentence[:loc[1]] + " (" + rule.Explanation + ")" + sentence[loc[1]:]
	}
	return sentence
}
