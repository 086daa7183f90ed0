package lingo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSequentialQueue_RunsInOrder(t *testing.T) {
	q := NewSequentialQueue(context.Background())
	defer q.Close()

	var mu sync.Mutex
	var order []int

	var last *Job
	for i := 0; i < 10; i++ {
		i := i
		last = q.Enqueue(func(context.Context) (string, error) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return "", nil
		})
	}

	if _, err := last.Await(context.Background()); err != nil {
		t.Fatalf("Await failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	for i, got := range order {
		if got != i {
			t.Fatalf("job %d ran at position %d; order %v", got, i, order)
		}
	}
}

func TestSequentialQueue_JobResult(t *testing.T) {
	q := NewSequentialQueue(context.Background())
	defer q.Close()

	j := q.Enqueue(func(context.Context) (string, error) {
		return "Hola", nil
	})

	text, err := j.Await(context.Background())
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	if text != "Hola" {
		t.Errorf("Await returned %q, want %q", text, "Hola")
	}
}

func TestSequentialQueue_ErrorDoesNotStallChain(t *testing.T) {
	q := NewSequentialQueue(context.Background())
	defer q.Close()

	boom := errors.New("boom")
	failed := q.Enqueue(func(context.Context) (string, error) {
		return "", boom
	})
	next := q.Enqueue(func(context.Context) (string, error) {
		return "still running", nil
	})

	if _, err := failed.Await(context.Background()); !errors.Is(err, boom) {
		t.Errorf("failed job error = %v, want %v", err, boom)
	}

	text, err := next.Await(context.Background())
	if err != nil {
		t.Fatalf("job after a failing job did not run: %v", err)
	}
	if text != "still running" {
		t.Errorf("got %q, want %q", text, "still running")
	}
}

func TestSequentialQueue_AtMostOneRunning(t *testing.T) {
	q := NewSequentialQueue(context.Background())
	defer q.Close()

	var mu sync.Mutex
	running, maxRunning := 0, 0

	var last *Job
	for i := 0; i < 5; i++ {
		last = q.Enqueue(func(context.Context) (string, error) {
			mu.Lock()
			running++
			if running > maxRunning {
				maxRunning = running
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()
			return "", nil
		})
	}

	if _, err := last.Await(context.Background()); err != nil {
		t.Fatalf("Await failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if maxRunning != 1 {
		t.Errorf("max concurrent jobs = %d, want 1", maxRunning)
	}
}

func TestSequentialQueue_CloseFailsBacklog(t *testing.T) {
	q := NewSequentialQueue(context.Background())

	gate := make(chan struct{})
	q.Enqueue(func(context.Context) (string, error) {
		<-gate
		return "", nil
	})
	queued := q.Enqueue(func(context.Context) (string, error) {
		return "never", nil
	})

	q.Close()
	close(gate)

	if _, err := queued.Await(context.Background()); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("backlog job error = %v, want ErrQueueClosed", err)
	}

	// Enqueue on a closed queue resolves immediately.
	late := q.Enqueue(func(context.Context) (string, error) {
		return "never", nil
	})
	if _, err := late.Await(context.Background()); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("late job error = %v, want ErrQueueClosed", err)
	}
}

func TestSequentialQueue_AwaitHonorsContext(t *testing.T) {
	q := NewSequentialQueue(context.Background())
	defer q.Close()

	gate := make(chan struct{})
	defer close(gate)

	j := q.Enqueue(func(context.Context) (string, error) {
		<-gate
		return "", nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := j.Await(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Await error = %v, want context.DeadlineExceeded", err)
	}
}
