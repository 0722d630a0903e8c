package models

// CreateSessionRequest creates a session from pasted text.
type CreateSessionRequest struct {
	Text string `json:"text"`
}

// DocumentRequest replaces a session's document with pasted text.
type DocumentRequest struct {
	Text string `json:"text"`
}

// SummaryRequest asks for a summary with the given point count.
type SummaryRequest struct {
	Points int `json:"points,omitempty"`
}

// Clamp normalizes the point count into [1,10], substituting def when unset.
// Out-of-range values are clamped, never rejected.
func (r *SummaryRequest) Clamp(def int) int {
	points := r.Points
	if points == 0 {
		points = def
	}
	if points < 1 {
		points = 1
	}
	if points > 10 {
		points = 10
	}
	return points
}

// AskRequest poses a question against a session's document.
type AskRequest struct {
	Question string `json:"question"`
}

// SessionView is the API representation of a session's current state.
type SessionView struct {
	ID            string         `json:"id"`
	Document      Document       `json:"document"`
	SummaryPoints []SummaryPoint `json:"summary_points"`
	PointCount    int            `json:"point_count"`
	Chat          []ChatExchange `json:"chat"`
	RiskFlags     []RiskFlag     `json:"risk_flags"`
}
