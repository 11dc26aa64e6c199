package utils

import "github.com/google/uuid"

// NewID returns a random request or upload identifier.
func NewID() string {
	return uuid.NewString()
}
