package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides random number generators for the selection policies
type RNGPort interface {
	// Stream returns a generator for a single named operation, such as
	// "weekend" or "surprise". Production implementations seed every stream
	// freshly; test implementations may replay a fixed seed.
	Stream(ctx context.Context, name string) *rand.Rand
}
