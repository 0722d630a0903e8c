package session

import (
	"errors"
	"sync"
	"time"

	"github.com/aatif-shaikh19/LegalSimplify/internal/models"
	"github.com/aatif-shaikh19/LegalSimplify/internal/qa"
	"github.com/aatif-shaikh19/LegalSimplify/internal/risk"
	"github.com/aatif-shaikh19/LegalSimplify/internal/summary"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a session ID has no entry in the store.
var ErrNotFound = errors.New("session not found")

// Store is an in-memory session store guarded by a RWMutex. All mutation of a
// session happens under the store lock, so the document slot is last-write-wins
// and derived views never mix state from two documents.
type Store struct {
	mu            sync.RWMutex
	sessions      map[string]*Session
	summarizer    *summary.Summarizer
	defaultPoints int
}

// NewStore creates a Store using the given summarizer and default point count.
func NewStore(summarizer *summary.Summarizer, defaultPoints int) *Store {
	if defaultPoints < 1 || defaultPoints > summary.MaxPoints {
		defaultPoints = 5
	}
	return &Store{
		sessions:      make(map[string]*Session),
		summarizer:    summarizer,
		defaultPoints: defaultPoints,
	}
}

// Create starts a session around the given document text. Risk flags are
// derived immediately; summary and chat start empty.
func (s *Store) Create(text, filename string) *models.SessionView {
	now := time.Now()
	sess := &Session{
		ID:         uuid.New().String(),
		Document:   models.Document{Text: text, Filename: filename},
		PointCount: s.defaultPoints,
		RiskFlags:  risk.Detect(text),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess.View()
}

// Get returns a snapshot of the session.
func (s *Store) Get(id string) (*models.SessionView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess.View(), nil
}

// SetDocument replaces the session's document. Risk flags are recomputed and
// the summary and chat history are cleared: they were views of the old text.
func (s *Store) SetDocument(id, text, filename string) (*models.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	sess.Document = models.Document{Text: text, Filename: filename}
	sess.SummaryPoints = nil
	sess.Chat = nil
	sess.RiskFlags = risk.Detect(text)
	sess.UpdatedAt = time.Now()
	return sess.View(), nil
}

// Summarize computes and stores the session's summary at the given point
// count (clamped by the summarizer) and clears the chat history, which
// always refers to the current summary.
func (s *Store) Summarize(id string, points int) ([]models.SummaryPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if points < 1 {
		points = 1
	}
	if points > summary.MaxPoints {
		points = summary.MaxPoints
	}
	sess.SummaryPoints = s.summarizer.Summarize(sess.Document.Text, points)
	sess.PointCount = points
	sess.Chat = nil
	sess.UpdatedAt = time.Now()
	return append([]models.SummaryPoint(nil), sess.SummaryPoints...), nil
}

// Ask answers the question against the session's document and current summary
// and appends the exchange to the chat history.
func (s *Store) Ask(id, question string) (*models.ChatExchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	exchange := models.ChatExchange{
		ID:       uuid.New().String(),
		Question: question,
		Answer:   qa.Answer(question, sess.Document.Text, sess.SummaryPoints),
		AskedAt:  time.Now(),
	}
	sess.Chat = append(sess.Chat, exchange)
	sess.UpdatedAt = time.Now()
	return &exchange, nil
}

// Chat returns the session's chat history in order.
func (s *Store) Chat(id string) ([]models.ChatExchange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]models.ChatExchange(nil), sess.Chat...), nil
}

// Risks returns the session's current risk flags.
func (s *Store) Risks(id string) ([]models.RiskFlag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]models.RiskFlag(nil), sess.RiskFlags...), nil
}

// Delete removes the session. Deleting an unknown ID is not an error.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
