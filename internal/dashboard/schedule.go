package dashboard

import (
	"context"
	"time"
)

// Scheduler runs fn once after delay unless ctx is cancelled first.
type Scheduler interface {
	AfterFunc(ctx context.Context, delay time.Duration, fn func())
}

// Task is one deferred callback.
type Task struct {
	Delay time.Duration
	ctx   context.Context
	fn    func()
}

// Run invokes the callback unless its context is done. It reports whether
// the callback ran.
func (t Task) Run() bool {
	if t.ctx != nil && t.ctx.Err() != nil {
		return false
	}
	t.fn()
	return true
}

// Queue is a Scheduler that only records tasks. The host decides when they
// run: the terminal UI turns each into a tick, tests run them synchronously.
type Queue struct {
	tasks []Task
}

// AfterFunc implements Scheduler.
func (q *Queue) AfterFunc(ctx context.Context, delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	q.tasks = append(q.tasks, Task{Delay: delay, ctx: ctx, fn: fn})
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int { return len(q.tasks) }

// Drain removes and returns all pending tasks.
func (q *Queue) Drain() []Task {
	tasks := q.tasks
	q.tasks = nil
	return tasks
}

// RunAll drains the queue and runs every task, returning how many ran.
func (q *Queue) RunAll() int {
	ran := 0
	for _, t := range q.Drain() {
		if t.Run() {
			ran++
		}
	}
	return ran
}
