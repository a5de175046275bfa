package pokerlog

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier for a session or a hand history.
// Ids only need to be unique within one store; the persisted form treats
// them as opaque strings, so seed data with plain numeric ids stays valid.
func NewID() string {
	return uuid.NewString()
}
