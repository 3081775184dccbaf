package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"phone-assistant/internal/agent"
	pkgLog "phone-assistant/pkg/log"
)

// Store keeps sessions in memory with idle expiry.
//
// A single mutex guards the whole table and is held only for map work, never
// across a model call. Two turns on the same session may overlap; the later
// Update wins and the earlier turn's entries are lost. Sharding the table by id
// is the way out if the lock ever becomes contended.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	timeout  time.Duration
	now      func() time.Time
	l        pkgLog.Logger
}

func New(l pkgLog.Logger, opts Options) *Store {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		sessions: make(map[string]*Session),
		timeout:  opts.Timeout,
		now:      opts.Now,
		l:        l,
	}
}

// Create registers an empty session and returns its id.
func (s *Store) Create(ctx context.Context) string {
	id := uuid.NewString()
	now := s.now()

	s.mu.Lock()
	s.sessions[id] = &Session{
		ID:           id,
		CreatedAt:    now,
		LastAccessed: now,
		History:      []agent.Entry{},
	}
	s.mu.Unlock()

	s.l.Infof(ctx, "%s: created session %s", LogPrefixCreate, id)
	return id
}

// Get returns a copy of the session and refreshes its last access time.
// An idle-expired session is removed and reported as ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.live(id)
	if !ok {
		return Session{}, ErrNotFound
	}
	sess.LastAccessed = s.now()
	return snapshot(sess), nil
}

// Update replaces the session's history wholesale.
func (s *Store) Update(ctx context.Context, id string, history []agent.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.live(id)
	if !ok {
		return ErrNotFound
	}
	sess.History = agent.CloneHistory(history)
	sess.LastAccessed = s.now()
	return nil
}

// Delete removes the session. It reports whether the session existed.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	return ok
}

// Len returns the number of stored sessions, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// CleanupExpired removes every idle-expired session and returns how many were removed.
func (s *Store) CleanupExpired(ctx context.Context) int {
	s.mu.Lock()
	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		s.l.Infof(ctx, "%s: cleaned up %d expired sessions", LogPrefixCleanup, removed)
	}
	return removed
}

// StartCleanup sweeps expired sessions every interval until ctx is done.
func (s *Store) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.CleanupExpired(ctx)
			}
		}
	}()
}

// live returns the session if present and not expired, deleting it otherwise.
// Callers hold s.mu.
func (s *Store) live(id string) (*Session, bool) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(sess, s.now()) {
		delete(s.sessions, id)
		return nil, false
	}
	return sess, true
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return now.Sub(sess.LastAccessed) > s.timeout
}

func snapshot(sess *Session) Session {
	out := *sess
	out.History = agent.CloneHistory(sess.History)
	return out
}
