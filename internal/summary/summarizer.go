// Package summary ranks sentences by a heuristic importance score and returns
// the top-N as glossary-annotated summary points.
package summary

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/aatif-shaikh19/LegalSimplify/internal/glossary"
	"github.com/aatif-shaikh19/LegalSimplify/internal/models"
	"github.com/aatif-shaikh19/LegalSimplify/internal/sentence"
)

// keywords are the fixed legally salient terms the scorer looks for.
// Each contributes KeywordWeight once per sentence, no matter how often it repeats.
var keywords = []string{
	"shall", "agreement", "party", "liability", "indemnify",
	"termination", "obligation", "breach", "payment", "confidential",
	"warranty", "notice", "dispute", "jurisdiction", "waiver",
}

// MaxPoints is the upper bound on summary length.
const MaxPoints = 10

// scoredSentence pairs a sentence with its score and document position.
// It exists only during the scoring pass.
type scoredSentence struct {
	text  string
	score float64
	index int
}

// Summarizer scores and selects sentences using a ScoringConfig.
type Summarizer struct {
	config *ScoringConfig
}

// NewSummarizer creates a Summarizer with the given config. A nil config
// uses the defaults.
func NewSummarizer(config *ScoringConfig) *Summarizer {
	if config == nil {
		config = DefaultScoringConfig()
	}
	config.ApplyDefaults()
	return &Summarizer{config: config}
}

// Score computes the heuristic importance of the sentence at index i of n:
// KeywordWeight per distinct keyword present (case-insensitive substring),
// LengthBonus for each length threshold crossed, plus a position bonus of
// max(0, 1 - i/n) that shrinks linearly toward the end of the document.
func (s *Summarizer) Score(text string, i, n int) float64 {
	lower := strings.ToLower(text)
	score := 0.0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			score += s.config.KeywordWeight
		}
	}
	// Thresholds are in characters, not bytes, so multi-byte text scores
	// the same as its ASCII transliteration.
	length := utf8.RuneCountInString(text)
	if length > s.config.LongSentenceLength {
		score += s.config.LengthBonus
	}
	if length > s.config.VeryLongSentenceLength {
		score += s.config.LengthBonus
	}
	if s.config.PositionBonusEnabled != nil && *s.config.PositionBonusEnabled {
		if n < 1 {
			n = 1
		}
		if bonus := 1 - float64(i)/float64(n); bonus > 0 {
			score += bonus
		}
	}
	return score
}

// Summarize returns the maxPoints highest-scoring sentences of text as
// glossary-annotated summary points, in rank order (not document order).
// maxPoints is clamped to [1,MaxPoints]; ties break by document position so
// output is deterministic. Empty or degenerate input yields an empty slice,
// never an error.
func (s *Summarizer) Summarize(text string, maxPoints int) []models.SummaryPoint {
	if maxPoints < 1 {
		maxPoints = 1
	}
	if maxPoints > MaxPoints {
		maxPoints = MaxPoints
	}

	sentences := sentence.Split(text)
	if len(sentences) == 0 {
		return nil
	}

	scored := make([]scoredSentence, len(sentences))
	for i, sent := range sentences {
		scored[i] = scoredSentence{
			text:  sent,
			score: s.Score(sent, i, len(sentences)),
			index: i,
		}
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})

	if maxPoints > len(scored) {
		maxPoints = len(scored)
	}
	points := make([]models.SummaryPoint, maxPoints)
	for i := 0; i < maxPoints; i++ {
		points[i] = models.SummaryPoint{
			Text:        glossary.Annotate(scored[i].text),
			Score:       scored[i].score,
			SourceIndex: scored[i].index,
		}
	}
	return points
}

// Keywords returns the fixed keyword list used for scoring.
func Keywords() []string {
	return keywords
}
