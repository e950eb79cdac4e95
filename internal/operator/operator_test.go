package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type funcAction func(ctx context.Context, writer *storage.Writer) error

func (f funcAction) Perform(ctx context.Context, writer *storage.Writer) error {
	return f(ctx, writer)
}

func newDelegator(t *testing.T, workers int) *OperatorDelegator {
	t.Helper()
	d := NewOperatorDelegator(storage.NewMemoryStorage(), workers)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_RunsAction(t *testing.T) {
	d := newDelegator(t, 2)

	var gotWriter *storage.Writer
	err := d.Process(context.Background(), funcAction(func(_ context.Context, w *storage.Writer) error {
		gotWriter = w
		return nil
	}))

	require.NoError(t, err)
	require.NotNil(t, gotWriter)
	assert.NotNil(t, gotWriter.Incomes)
	assert.NotNil(t, gotWriter.Expenses)
}

func TestProcess_ReturnsActionError(t *testing.T) {
	d := newDelegator(t, 1)

	boom := errors.New("boom")
	err := d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error {
		return boom
	}))

	assert.ErrorIs(t, err, boom)
}

func TestProcess_CancelledBeforeRun(t *testing.T) {
	d := newDelegator(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	err := d.Process(ctx, funcAction(func(context.Context, *storage.Writer) error {
		ran.Store(true)
		return nil
	}))

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran.Load())
}

func TestProcess_TimesOutWaitingForWorker(t *testing.T) {
	d := newDelegator(t, 1)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error {
			close(started)
			<-release
			return nil
		}))
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Process(ctx, funcAction(func(context.Context, *storage.Writer) error { return nil }))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(storage.NewMemoryStorage(), 1)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error { return nil }))
	assert.ErrorIs(t, err, ErrStopped)
}

func TestProcess_Concurrent(t *testing.T) {
	d := newDelegator(t, 4)

	var count atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error {
				count.Add(1)
				return nil
			}))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), count.Load())
}
