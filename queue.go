package lingo

import (
	"context"
	"errors"
	"sync"
)

// ErrQueueClosed is returned by jobs that were still queued when the queue
// shut down.
var ErrQueueClosed = errors.New("lingo: sequential queue closed")

// Job is the handle for a unit of work submitted to a SequentialQueue. It
// resolves to the job's text result once the worker has run it.
type Job struct {
	fn   func(context.Context) (string, error)
	text string
	err  error
	done chan struct{}
}

// Done returns a channel that is closed when the job has finished,
// successfully or not.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Await blocks until the job finishes or ctx is cancelled, and returns the
// job's result.
func (j *Job) Await(ctx context.Context) (string, error) {
	select {
	case <-j.done:
		return j.text, j.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// SequentialQueue runs submitted jobs strictly in submission order, at most
// one at a time, on a single worker goroutine. A failing job does not stop
// the chain; the next job runs regardless.
type SequentialQueue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	backlog []*Job
	closed  bool
}

// NewSequentialQueue creates a queue and starts its worker. The worker
// passes ctx to every job; cancelling ctx makes in-flight provider calls
// fail fast but does not stop the worker — use Close for that.
func NewSequentialQueue(ctx context.Context) *SequentialQueue {
	q := &SequentialQueue{}
	q.cond = sync.NewCond(&q.mu)
	go q.run(ctx)
	return q
}

// Enqueue appends fn to run strictly after every previously enqueued job has
// completed. Never blocks the caller. On a closed queue the returned job is
// already resolved with ErrQueueClosed.
func (q *SequentialQueue) Enqueue(fn func(context.Context) (string, error)) *Job {
	j := &Job{fn: fn, done: make(chan struct{})}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		j.err = ErrQueueClosed
		close(j.done)
		return j
	}
	q.backlog = append(q.backlog, j)
	q.cond.Signal()
	q.mu.Unlock()

	return j
}

// Len returns the number of jobs waiting to run.
func (q *SequentialQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.backlog)
}

// Close stops the worker after the currently running job, if any. Jobs still
// in the backlog are resolved with ErrQueueClosed. Idempotent.
func (q *SequentialQueue) Close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
}

func (q *SequentialQueue) run(ctx context.Context) {
	for {
		q.mu.Lock()
		for len(q.backlog) == 0 && !q.closed {
			q.cond.Wait()
		}
		if q.closed {
			backlog := q.backlog
			q.backlog = nil
			q.mu.Unlock()
			for _, j := range backlog {
				j.err = ErrQueueClosed
				close(j.done)
			}
			return
		}
		j := q.backlog[0]
		q.backlog = q.backlog[1:]
		q.mu.Unlock()

		j.text, j.err = j.fn(ctx)
		close(j.done)
	}
}
