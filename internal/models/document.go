// Package models defines core data structures for documents, summaries, and sessions.
package models

import "time"

// Document is the text under analysis in a session. Its content is the only
// identity it has; replacing it invalidates every derived view.
type Document struct {
	Text     string `json:"text"`
	Filename string `json:"filename,omitempty"`
}

// SummaryPoint is a selected sentence with glossary annotations applied,
// carrying its heuristic score and position in the source document.
type SummaryPoint struct {
	Text        string  `json:"text"`
	Score       float64 `json:"score"`
	SourceIndex int     `json:"source_index"`
}

// ChatExchange is one question/answer pair in a session's chat history.
// History is append-only; exchanges are never mutated after creation.
type ChatExchange struct {
	ID       string    `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"asked_at"`
}

// RiskFlag marks a sentence containing at least one risk keyword.
type RiskFlag struct {
	Sentence string   `json:"sentence"`
	Index    int      `json:"index"`
	Terms    []string `json:"terms"`
}
