package view

import (
	"context"
	"sync"
)

// Task is a unit of deferred work executed by the Scheduler.
type Task func(ctx context.Context) error

// Scheduler is a FIFO task queue modelling the single-threaded cooperative
// event loop the component model assumes. Setters enqueue update cascades;
// the driver drains them after the current synchronous call stack unwinds.
//
// Enqueue order is preserved and tasks are never deduplicated.
type Scheduler struct {
	mu    sync.Mutex
	queue []Task
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Enqueue appends a task to the queue without running it.
func (s *Scheduler) Enqueue(t Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, t)
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Drain runs queued tasks in enqueue order until the queue is empty,
// including tasks enqueued by tasks already running. A task error stops the
// drain immediately and propagates to the caller; remaining tasks stay
// queued.
func (s *Scheduler) Drain(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return nil
		}
		task := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		if err := task(ctx); err != nil {
			return err
		}
	}
}
