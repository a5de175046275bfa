// Package storage defines the key-value persistence boundary of the session
// store, plus the backends that implement it: a JSON file per key (the
// default), a single-table SQLite database, and an in-memory fake for tests.
package storage

import "errors"

// ErrNotExist reports that no value has ever been stored under a key.
// Backends return it (possibly wrapped) from Get; the session store treats
// it as the first-run signal.
var ErrNotExist = errors.New("key does not exist")

// Backend is the persistence contract the session store is tested against.
// Implementations need not be safe for concurrent use; the application is
// single-goroutine by design.
type Backend interface {
	// Get returns the value stored under key, or an error wrapping
	// ErrNotExist when the key has never been set.
	Get(key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
}
