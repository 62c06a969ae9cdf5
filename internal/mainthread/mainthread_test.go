package mainthread

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func start(t *testing.T) (*Runner, context.CancelFunc, <-chan error) {
	t.Helper()
	r := New()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	return r, cancel, done
}

func TestDo_RunsOnRunGoroutine(t *testing.T) {
	r, cancel, done := start(t)
	defer cancel()

	var mu sync.Mutex
	active := 0
	maxActive := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := r.Do(context.Background(), func() {
				mu.Lock()
				active++
				if active > maxActive {
					maxActive = active
				}
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				active--
				mu.Unlock()
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxActive, "calls must never overlap")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestDo_PanicBecomesError(t *testing.T) {
	r, cancel, _ := start(t)
	defer cancel()

	err := r.Do(context.Background(), func() { panic("boom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	// the runner survives
	assert.NoError(t, r.Do(context.Background(), func() {}))
}

func TestDo_AfterStop(t *testing.T) {
	r, cancel, done := start(t)
	cancel()
	<-done

	err := r.Do(context.Background(), func() { t.Fatal("must not run") })
	assert.ErrorIs(t, err, ErrStopped)
}

func TestDo_CancelledContext(t *testing.T) {
	r := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := r.Do(ctx, func() { t.Fatal("must not run") })
	assert.ErrorIs(t, err, context.Canceled)
}
