// Package qa answers free-text questions about a document by keyword-filtering
// its sentences through a small ordered set of intent rules.
package qa

import (
	"regexp"
	"strings"

	"github.com/aatif-shaikh19/LegalSimplify/internal/models"
	"github.com/aatif-shaikh19/LegalSimplify/internal/sentence"
)

// Fixed answer strings for questions the rules cannot satisfy.
const (
	EmptyQuestionPrompt  = "Please enter a question about the document."
	NoTerminationClause  = "No termination clause was found in the document."
	NoPaymentClause      = "No payment clause was found in the document."
	NoRelevantAnswer     = "No relevant answer was found in the document."
	maxMatchingSentences = 3
)

// Inflection-aware clause patterns. Intent detection on the question itself
// is plain substring matching; these run against the document sentences.
var (
	terminationPattern = regexp.MustCompile(`(?i)terminat\w*`)
	paymentPattern     = regexp.MustCompile(`(?i)payment|fee|price`)
)

// intentRule pairs a question predicate with a responder. Rules are evaluated
// in order and the first match wins.
type intentRule struct {
	matches func(question string) bool
	respond func(originalText string, summary []models.SummaryPoint) string
}

var intentRules = []intentRule{
	{
		matches: func(q string) bool { return q == "" },
		respond: func(string, []models.SummaryPoint) string { return EmptyQuestionPrompt },
	},
	{
		matches: func(q string) bool { return strings.Contains(q, "terminate") },
		respond: func(text string, _ []models.SummaryPoint) string {
			return clauseAnswer(text, terminationPattern, NoTerminationClause)
		},
	},
	{
		matches: func(q string) bool {
			return strings.Contains(q, "payment") || strings.Contains(q, "fee")
		},
		respond: func(text string, _ []models.SummaryPoint) string {
			return clauseAnswer(text, paymentPattern, NoPaymentClause)
		},
	},
	{
		matches: func(string) bool { return true },
		respond: func(_ string, summary []models.SummaryPoint) string {
			if len(summary) == 0 {
				return NoRelevantAnswer
			}
			n := len(summary)
			if n > 2 {
				n = 2
			}
			parts := make([]string, n)
			for i := 0; i < n; i++ {
				parts[i] = summary[i].Text
			}
			return strings.Join(parts, " ")
		},
	},
}

// Answer returns a response to question about originalText, falling back to
// the current summary when no intent matches. Deterministic and free of I/O.
func Answer(question, originalText string, currentSummary []models.SummaryPoint) string {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, rule := range intentRules {
		if rule.matches(q) {
			return rule.respond(originalText, currentSummary)
		}
	}
	return NoRelevantAnswer
}

// clauseAnswer joins up to three sentences of text matching pattern, or
// returns fallback when none match.
func clauseAnswer(text string, pattern *regexp.Regexp, fallback string) string {
	var matched []string
	for _, sent := range sentence.Split(text) {
		if pattern.MatchString(sent) {
			matched = append(matched, sent)
			if len(matched) == maxMatchingSentences {
				break
			}
		}
	}
	if len(matched) == 0 {
		return fallback
	}
	return strings.Join(matched, " ")
}
