package utils

import "github.com/google/uuid"

// NewID returns a globally unique identifier for a newly created entity.
// The persistence layer never generates ids; every caller mints one here
// before the entity is sent anywhere.
func NewID() string {
	return uuid.NewString()
}
