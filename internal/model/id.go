package model

import "github.com/google/uuid"

// NewID returns a time-based (version 1) UUID, the same kind the seed
// fixture uses.
func NewID() (uuid.UUID, error) {
	return uuid.NewUUID()
}
