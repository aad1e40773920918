package ports

import (
	"context"

	"weekenddiaries/domain/place"
)

// PlaceSource yields the sanitized place table. Implementations return errors
// wrapping core.ErrDataUnavailable when the backing data cannot be read.
type PlaceSource interface {
	Load(ctx context.Context) (*place.Table, error)
}
