package dataset

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekenddiaries/domain/core"
	"weekenddiaries/domain/place"
	"weekenddiaries/internal/testkit"
)

// slowSource blocks every load until release is closed.
type slowSource struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
	started chan struct{}
	once    sync.Once
	table   *place.Table
}

func (s *slowSource) Load(ctx context.Context) (*place.Table, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.started != nil {
		s.once.Do(func() { close(s.started) })
	}
	<-s.release
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.table, nil
}

func TestCachedSource_LoadsOnce(t *testing.T) {
	source := &testkit.StaticSource{Table: testkit.SampleTable()}
	cache := NewCachedSource(source)

	for i := 0; i < 5; i++ {
		table, err := cache.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 6, table.Len())
	}
	assert.Equal(t, 1, source.Calls())

	cache.Invalidate()
	_, err := cache.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, source.Calls())
}

func TestCachedSource_ConcurrentFirstLoadShared(t *testing.T) {
	source := &slowSource{release: make(chan struct{}), table: testkit.SampleTable()}
	cache := NewCachedSource(source)

	const readers = 20
	var wg sync.WaitGroup
	results := make([]*place.Table, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			table, err := cache.Load(context.Background())
			assert.NoError(t, err)
			results[i] = table
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(source.release)
	wg.Wait()

	source.mu.Lock()
	assert.Equal(t, 1, source.calls)
	source.mu.Unlock()
	for _, table := range results {
		assert.Same(t, results[0], table)
	}
}

func TestCachedSource_FailuresNotCached(t *testing.T) {
	source := &testkit.StaticSource{Err: core.NewDataUnavailableError("places.csv", errors.New("boom"))}
	cache := NewCachedSource(source)

	_, err := cache.Load(context.Background())
	assert.True(t, core.IsDataUnavailable(err))

	source.Err = nil
	source.Table = testkit.SampleTable()
	table, err := cache.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, table.Len())
	assert.Equal(t, 2, source.Calls())
}

func TestCachedSource_CancelledCallerDoesNotFailSharedLoad(t *testing.T) {
	source := &slowSource{release: make(chan struct{}), started: make(chan struct{}), table: testkit.SampleTable()}
	cache := NewCachedSource(source)

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := cache.Load(ctx)
		firstErr <- err
	}()
	<-source.started

	waiterErr := make(chan error, 1)
	go func() {
		table, err := cache.Load(context.Background())
		if err == nil && table.Len() != 6 {
			err = errors.New("unexpected table")
		}
		waiterErr <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	close(source.release)

	assert.NoError(t, <-waiterErr)
	assert.NoError(t, <-firstErr, "the load itself never sees the cancellation")

	source.mu.Lock()
	assert.Equal(t, 1, source.calls)
	source.mu.Unlock()
}
