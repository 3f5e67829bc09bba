package voyage

import (
	"log/slog"
	"sync"
)

// Storage keys for persisted identity.
const (
	KeySessionID = "session_id"
	KeyUserID    = "user_id"
)

// IDGenerator produces unique identifiers for sessions and
// client-constructed messages.
type IDGenerator interface {
	NewID() string
}

// KV is a minimal persistent key-value store for plain string values.
// Get reports presence via its second return value; a missing key is
// not an error.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// SessionStore owns the client's session identity. It restores a
// persisted identity on construction, or generates a fresh one when
// none exists. When the backing store is unavailable the identity is
// kept in memory only for the process lifetime; persistence failures
// are logged, never fatal.
type SessionStore struct {
	ids IDGenerator
	kv  KV
	log *slog.Logger

	mu       sync.Mutex
	identity Identity
}

// StoreOption configures a [SessionStore].
type StoreOption func(*SessionStore)

// WithStoreLogger sets the logger for persistence failures.
func WithStoreLogger(l *slog.Logger) StoreOption {
	return func(s *SessionStore) { s.log = l }
}

// NewSessionStore creates a SessionStore, restoring the persisted
// identity or generating a fresh session when none is stored. No
// network calls are involved.
func NewSessionStore(ids IDGenerator, kv KV, opts ...StoreOption) *SessionStore {
	s := &SessionStore{
		ids: ids,
		kv:  kv,
		log: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}

	id, ok, err := kv.Get(KeySessionID)
	if err != nil {
		s.log.Warn("session store unavailable, using in-memory identity", "error", err)
	}
	if ok && id != "" {
		s.identity.SessionID = id
		if user, ok, err := kv.Get(KeyUserID); err == nil && ok {
			s.identity.UserID = user
		}
		return s
	}

	s.newSessionLocked()
	return s
}

// Identity returns the current session identity.
func (s *SessionStore) Identity() Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// SessionID returns the active session identifier.
func (s *SessionStore) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity.SessionID
}

// UserID returns the optional user identifier, or "".
func (s *SessionStore) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity.UserID
}

// SetUserID replaces the stored user identifier and persists it.
func (s *SessionStore) SetUserID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity.UserID = id
	if err := s.kv.Set(KeyUserID, id); err != nil {
		s.log.Warn("persist user id", "error", err)
	}
}

// NewSession generates a fresh session identifier, replaces the active
// one and persists it. Components that cache messages for the old
// session are expected to re-fetch. Returns the new identifier.
func (s *SessionStore) NewSession() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newSessionLocked()
}

// SetSessionID switches the active session to an existing identifier
// (e.g. one selected from the session list) and persists it.
func (s *SessionStore) SetSessionID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity.SessionID = id
	s.persistSessionLocked()
}

func (s *SessionStore) newSessionLocked() string {
	s.identity.SessionID = s.ids.NewID()
	s.persistSessionLocked()
	return s.identity.SessionID
}

func (s *SessionStore) persistSessionLocked() {
	if err := s.kv.Set(KeySessionID, s.identity.SessionID); err != nil {
		s.log.Warn("persist session id", "error", err)
	}
}
