package queue

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Task is one unit of work. Tasks must be safe to run concurrently with each
// other.
type Task func(ctx context.Context) error

// Queue runs tasks in fixed-width concurrent batches with a rate limit
// between batches, so bursts against the remote API stay within its
// throttling window.
type Queue struct {
	width   int
	limiter *rate.Limiter
}

func New(width int, batchDelay time.Duration) *Queue {
	if width < 1 {
		width = 1
	}
	if batchDelay <= 0 {
		batchDelay = time.Millisecond
	}

	return &Queue{
		width:   width,
		limiter: rate.NewLimiter(rate.Every(batchDelay), 1),
	}
}

// Run executes every task and returns only after all of them finished. The
// result slice is index-aligned with tasks; a nil entry means the task
// succeeded. Task errors never short-circuit the run, but a cancelled
// context stops scheduling and marks the remaining tasks with ctx.Err().
func (q *Queue) Run(ctx context.Context, tasks []Task) []error {
	errs := make([]error, len(tasks))

	for start := 0; start < len(tasks); start += q.width {
		if err := q.limiter.Wait(ctx); err != nil {
			for i := start; i < len(tasks); i++ {
				errs[i] = err
			}

			return errs
		}

		end := min(start+q.width, len(tasks))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)

			go func(idx int) {
				defer wg.Done()

				errs[idx] = tasks[idx](ctx)
			}(i)
		}
		wg.Wait()
	}

	return errs
}
