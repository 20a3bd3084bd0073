// Package idgen produces opaque identifiers for new entities.
package idgen

import "github.com/google/uuid"

// Generator returns a new identifier on each call. Identifiers must be
// unique across the process lifetime and across restarts.
type Generator interface {
	NewID() string
}

// UUID generates random (version 4) UUID strings.
type UUID struct{}

// NewID implements Generator.
func (UUID) NewID() string {
	return uuid.NewString()
}
