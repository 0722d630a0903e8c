// Package session holds per-session state in memory: the document, its
// derived summary and risk views, and the chat history. Nothing is persisted;
// a process restart clears every session.
package session

import (
	"time"

	"github.com/aatif-shaikh19/LegalSimplify/internal/models"
)

// Session is the mutable state of one user's interaction. The document is a
// single last-write-wins slot; summary, chat, and risk flags are views of it
// and are reset or recomputed whenever it changes.
type Session struct {
	ID            string
	Document      models.Document
	SummaryPoints []models.SummaryPoint
	PointCount    int
	Chat          []models.ChatExchange
	RiskFlags     []models.RiskFlag
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// View returns an API snapshot of the session. Slices are copied so callers
// never share backing arrays with store-held state.
func (s *Session) View() *models.SessionView {
	return &models.SessionView{
		ID:            s.ID,
		Document:      s.Document,
		SummaryPoints: append([]models.SummaryPoint(nil), s.SummaryPoints...),
		PointCount:    s.PointCount,
		Chat:          append([]models.ChatExchange(nil), s.Chat...),
		RiskFlags:     append([]models.RiskFlag(nil), s.RiskFlags...),
	}
}
