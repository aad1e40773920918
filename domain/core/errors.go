package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrDataUnavailable means the place table could not be read or parsed.
	ErrDataUnavailable = errors.New("place data unavailable")

	// ErrEmptyDataset means an operation needed at least one place and found none.
	ErrEmptyDataset = errors.New("no places in dataset")

	// Not found errors
	ErrNotFound      = errors.New("resource not found")
	ErrPlaceNotFound = fmt.Errorf("%w: place", ErrNotFound)
)

// NewDataUnavailableError wraps the underlying read failure for source.
func NewDataUnavailableError(source string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrDataUnavailable, source)
	}
	return fmt.Errorf("%w: %s: %w", ErrDataUnavailable, source, err)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers
func IsDataUnavailable(err error) bool {
	return errors.Is(err, ErrDataUnavailable)
}

func IsEmptyDataset(err error) bool {
	return errors.Is(err, ErrEmptyDataset)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
