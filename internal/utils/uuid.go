package utils

import "github.com/google/uuid"

// NewUUID returns a new entity identifier.
//
// Version 7 UUIDs are time-ordered, which keeps the ID tie-break of sorted
// task listings aligned with creation order. Falls back to a random v4 UUID
// in the unlikely case v7 generation fails.
func NewUUID() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
