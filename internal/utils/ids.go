package utils

import "github.com/google/uuid"

// NewID generates a random identifier for new records
func NewID() string {
	return uuid.NewString()
}
