// Package session holds the in-memory editing sessions. One session owns one
// quotation for its lifetime; there is no persistence boundary.
package session

import (
	"sync"

	"github.com/google/uuid"
	"quote-genius/go_backend/internal/domain/quote"
)

// Assist lock targets. At most one assist operation may be in flight per
// target; different targets run concurrently.
const (
	TargetTerms = "terms"
	TargetEmail = "email"
)

func ItemTarget(itemID string) string { return "item-" + itemID }

// Session serializes all edits to its quotation. The rendered document is
// re-derived inside the same critical section as the mutation, so a response
// can never carry a view that is stale relative to the edit it reports.
type Session struct {
	ID string

	mu    sync.Mutex
	quote *quote.Quotation
	busy  map[string]bool
}

// Update applies fn to the quotation (nil fn is a plain read) and returns the
// freshly derived document and totals.
func (s *Session) Update(fn func(q *quote.Quotation)) (quote.Document, quote.Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn != nil {
		fn(s.quote)
	}
	return s.quote.Document(), s.quote.ComputeTotals()
}

// View re-derives the document without mutating.
func (s *Session) View() (quote.Document, quote.Totals) {
	return s.Update(nil)
}

// Snapshot returns a copy of the quotation safe to read outside the lock.
func (s *Session) Snapshot() quote.Quotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := *s.quote
	q.Items = append([]quote.LineItem(nil), s.quote.Items...)
	return q
}

// Acquire marks the target busy. It reports false when an operation for the
// same target is already in flight.
func (s *Session) Acquire(target string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[target] {
		return false
	}
	s.busy[target] = true
	return true
}

// Release clears the busy flag once the round trip resolves, success or not.
func (s *Session) Release(target string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, target)
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create starts a session from the default quotation template.
func (st *Store) Create() *Session {
	s := &Session{
		ID:    uuid.NewString(),
		quote: quote.NewDefault(),
		busy:  make(map[string]bool),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}
