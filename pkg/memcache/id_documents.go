package mem

import (
	"sync"
	"time"
)

// DocumentStore holds identity-document references uploaded for payout
// verification. Documents are retained only long enough for manual
// review and purged once the retention window passes.
type DocumentStore interface {
	Put(ref string, creatorID string, ttl time.Duration)

	// Get returns the owning creator id if the reference exists and has
	// not expired.
	Get(ref string) (string, bool)

	// PurgeExpired removes expired references and returns how many were
	// dropped.
	PurgeExpired() int
}

type docEntry struct {
	creatorID string
	expiresAt time.Time
}

type Documents struct {
	mu   sync.RWMutex
	data map[string]docEntry
}

func NewDocuments() *Documents {
	return &Documents{
		data: make(map[string]docEntry),
	}
}

func (s *Documents) Put(ref string, creatorID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[ref] = docEntry{
		creatorID: creatorID,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Documents) Get(ref string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[ref]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.creatorID, true
}

func (s *Documents) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	purged := 0
	for ref, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, ref)
			purged++
		}
	}
	return purged
}
