package history

import (
	"sync"
	"time"

	"github.com/tidewater-app/boatid/internal/models"
)

// Entry is one completed identification kept in session history.
type Entry struct {
	ID         string                      `json:"id"`
	UploadedAt time.Time                   `json:"uploaded_at"`
	Result     models.IdentificationResult `json:"result"`
}

// Store keeps the identifications completed during this process, newest
// first. Nothing is persisted; the list is gone when the process exits.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	limit   int
}

// DefaultLimit caps session history when no explicit limit is given.
const DefaultLimit = 50

// New creates a history store holding at most limit entries.
func New(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{
		limit: limit,
	}
}

// Add records a completed identification as the most recent entry. The oldest
// entry is dropped once the store is full.
func (s *Store) Add(entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]Entry{entry}, s.entries...)
	if len(s.entries) > s.limit {
		s.entries = s.entries[:s.limit]
	}
}

// Latest returns the most recent entry, if any.
func (s *Store) Latest() (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[0], true
}

// All returns a copy of the history, newest first.
func (s *Store) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Len reports how many entries are currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
