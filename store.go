package pokerlog

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"log"
	"slices"
	"sort"

	"github.com/railbird/pokerlog/storage"
)

// SessionsKey is the fixed storage key holding the serialized session list.
// Existing data files depend on this exact key; do not rename it.
const SessionsKey = "pokerSessions"

// Store owns the canonical list of recorded sessions. It is append-only:
// sessions are immutable once appended and there is no delete.
//
// The store is single-goroutine by design; all access happens from the CLI
// event flow, so there is no locking. Subscribers are notified synchronously
// whenever the observable list is replaced.
type Store struct {
	backend     storage.Backend
	key         string
	sessions    []Session
	subscribers []func([]Session)
}

// NewStore creates a store over the given persistence backend.
func NewStore(backend storage.Backend) *Store {
	return &Store{backend: backend, key: SessionsKey}
}

// Subscribe registers a callback invoked after every successful LoadAll or
// Append with the new session list. Callbacks run on the mutating call.
func (s *Store) Subscribe(fn func([]Session)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	for _, fn := range s.subscribers {
		fn(s.Sessions())
	}
}

// Sessions returns a snapshot copy of the current session list.
func (s *Store) Sessions() []Session {
	return slices.Clone(s.sessions)
}

// Len returns the number of sessions currently held.
func (s *Store) Len() int { return len(s.sessions) }

// All returns an iterator over the sessions in stored order.
func (s *Store) All() iter.Seq2[int, Session] {
	return func(yield func(int, Session) bool) {
		for i, sess := range s.sessions {
			if !yield(i, sess) {
				return
			}
		}
	}
}

// Session returns the session with the given id, or false if unknown.
func (s *Store) Session(id string) (Session, bool) {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return Session{}, false
}

// LoadAll reloads the session list from the backend and replaces the
// in-memory list. On first run, when no persisted data exists, it seeds the
// backend with the example dataset and returns that.
func (s *Store) LoadAll() ([]Session, error) {
	raw, err := s.backend.Get(s.key)
	if errors.Is(err, storage.ErrNotExist) {
		log.Printf("no persisted sessions under %q, seeding example data", s.key)
		seed := seedSessions()
		if err := s.persist("load", seed); err != nil {
			return nil, err
		}
		s.sessions = seed
		s.notify()
		return s.Sessions(), nil
	}
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}

	sessions, err := DecodeSessions(bytes.NewReader(raw))
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	s.sessions = sessions
	s.notify()
	return s.Sessions(), nil
}

// Append adds a session to the end of the list and persists the full list.
// Memory is only updated after the write succeeds, so on failure the
// in-memory list never diverges from what is actually stored.
func (s *Store) Append(sess Session) error {
	if sess.ID == "" {
		return &StorageError{Op: "append", Err: fmt.Errorf("session has no id")}
	}
	next := append(s.Sessions(), sess)
	if err := s.persist("append", next); err != nil {
		return err
	}
	s.sessions = next
	s.notify()
	return nil
}

func (s *Store) persist(op string, sessions []Session) error {
	var buf bytes.Buffer
	if err := EncodeSessions(&buf, sessions); err != nil {
		return &StorageError{Op: op, Err: err}
	}
	if err := s.backend.Set(s.key, buf.Bytes()); err != nil {
		return &StorageError{Op: op, Err: err}
	}
	return nil
}

// ByStartTime returns the sessions sorted by start time ascending. The sort
// is stable: sessions starting at the same instant keep their stored order.
func ByStartTime(sessions []Session) []Session {
	sorted := slices.Clone(sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	return sorted
}
