package queue_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"staysync/internal/domains/sync/queue"
)

func TestQueue_RunCollectsErrorsWithoutShortCircuit(t *testing.T) {
	q := queue.New(3, time.Millisecond)

	boom := errors.New("boom")
	var ran atomic.Int32

	tasks := []queue.Task{
		func(ctx context.Context) error { ran.Add(1); return nil },
		func(ctx context.Context) error { ran.Add(1); return boom },
		func(ctx context.Context) error { ran.Add(1); return nil },
		func(ctx context.Context) error { ran.Add(1); return boom },
		func(ctx context.Context) error { ran.Add(1); return nil },
	}

	errs := q.Run(context.Background(), tasks)

	assert.Equal(t, int32(5), ran.Load(), "every task must run even when siblings fail")
	assert.Len(t, errs, 5)
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], boom)
	assert.NoError(t, errs[2])
	assert.ErrorIs(t, errs[3], boom)
	assert.NoError(t, errs[4])
}

func TestQueue_RunBoundsConcurrency(t *testing.T) {
	const width = 2

	q := queue.New(width, time.Millisecond)

	var mu sync.Mutex
	inFlight, peak := 0, 0

	task := func(ctx context.Context) error {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		time.Sleep(10 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()

		return nil
	}

	tasks := make([]queue.Task, 7)
	for i := range tasks {
		tasks[i] = task
	}

	errs := q.Run(context.Background(), tasks)

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.LessOrEqual(t, peak, width)
}

func TestQueue_RunReturnsAfterAllTasksFinish(t *testing.T) {
	q := queue.New(4, time.Millisecond)

	var done atomic.Int32
	tasks := make([]queue.Task, 8)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) error {
			time.Sleep(5 * time.Millisecond)
			done.Add(1)

			return nil
		}
	}

	q.Run(context.Background(), tasks)

	assert.Equal(t, int32(8), done.Load(), "Run must join all tasks before returning")
}

func TestQueue_RunStopsSchedulingOnCancelledContext(t *testing.T) {
	q := queue.New(1, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	var ran atomic.Int32
	tasks := []queue.Task{
		func(ctx context.Context) error {
			ran.Add(1)
			cancel()

			return nil
		},
		func(ctx context.Context) error { ran.Add(1); return nil },
		func(ctx context.Context) error { ran.Add(1); return nil },
	}

	errs := q.Run(ctx, tasks)

	assert.Equal(t, int32(1), ran.Load())
	assert.NoError(t, errs[0])
	assert.Error(t, errs[1])
	assert.Error(t, errs[2])
}

func TestQueue_RunEmptyTaskList(t *testing.T) {
	q := queue.New(3, time.Millisecond)

	errs := q.Run(context.Background(), nil)

	assert.Empty(t, errs)
}
