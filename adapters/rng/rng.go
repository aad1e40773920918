// Package rng supplies non-reproducible random streams for production use.
package rng

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"
)

// seedMix spreads consecutive counter values across the seed space.
const seedMix = 0x9E3779B97F4A7C15

// FreshRNG seeds every stream from the clock and a process-wide counter, so
// two streams opened in the same nanosecond still differ.
type FreshRNG struct {
	counter atomic.Uint64
	now     func() time.Time
}

// NewFreshRNG creates a clock-seeded stream source
func NewFreshRNG() *FreshRNG {
	return &FreshRNG{now: time.Now}
}

// Stream implements ports.RNGPort.
func (r *FreshRNG) Stream(ctx context.Context, name string) *rand.Rand {
	return rand.New(rand.NewSource(r.seed()))
}

func (r *FreshRNG) seed() int64 {
	n := r.counter.Add(1)
	return r.now().UnixNano() ^ int64(n*seedMix)
}
