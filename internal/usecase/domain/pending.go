package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// pendingScore is a computed score held between the calculate and
// confirm steps of the submission workflow. Nothing is persisted until
// the judge confirms.
type pendingScore struct {
	teamNumber int
	score      int
	attempt    int
	note       string
	expires    time.Time
}

// pendingStore holds pending scores keyed by one-time confirmation
// token. take removes the entry, so a token confirms at most once.
type pendingStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]pendingScore
}

func newPendingStore(ttl time.Duration) *pendingStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &pendingStore{
		ttl:   ttl,
		items: make(map[string]pendingScore),
	}
}

func (s *pendingStore) put(ps pendingScore) string {
	token := uuid.NewString()
	ps.expires = time.Now().Add(s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.items {
		if time.Now().After(v.expires) {
			delete(s.items, k)
		}
	}
	s.items[token] = ps
	return token
}

func (s *pendingStore) take(token string) (pendingScore, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps, ok := s.items[token]
	if !ok {
		return pendingScore{}, false
	}
	delete(s.items, token)
	if time.Now().After(ps.expires) {
		return pendingScore{}, false
	}
	return ps, true
}
