package storage

import "fmt"

// Memory is a map-backed Backend for tests. FailSet, when non-nil, is
// returned by the next Set call; it lets tests exercise the store's
// all-or-nothing write path.
type Memory struct {
	values  map[string][]byte
	FailSet error
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) ([]byte, error) {
	value, ok := m.values[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrNotExist)
	}
	return value, nil
}

// Set stores value under key, or fails with FailSet when armed.
func (m *Memory) Set(key string, value []byte) error {
	if m.FailSet != nil {
		err := m.FailSet
		m.FailSet = nil
		return err
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}
