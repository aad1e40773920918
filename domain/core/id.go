package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents an opaque identifier such as a request correlation ID
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// PlaceID identifies a row of the place table. It is either taken from the
// source data or synthesised at load time.
type PlaceID string

func (id PlaceID) String() string { return string(id) }

// ParsePlaceID validates a place ID coming from a URL or CLI argument.
// The value is not trimmed: lookups are exact matches.
func ParsePlaceID(s string) (PlaceID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("place ID cannot be empty")
	}
	return PlaceID(s), nil
}
