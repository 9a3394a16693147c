// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frame

// Task is a continuation run at the end of a frame.
type Task func()

// Scheduler queues tasks for the end of the current frame.
type Scheduler interface {
	AtEndOfFrame(task Task)
}

// Loop is a single-threaded frame counter with an end-of-frame task queue.
//
// The zero value is ready to use. Loop is not safe for concurrent use; it
// belongs to the goroutine driving the frame.
type Loop struct {
	frame   uint64
	pending []Task
	spare   []Task
}

// NewLoop creates an empty loop at frame 0.
func NewLoop() *Loop {
	return &Loop{}
}

// AtEndOfFrame queues task to run when the current frame ends. Nil tasks
// are ignored.
func (l *Loop) AtEndOfFrame(task Task) {
	if task == nil {
		return
	}
	l.pending = append(l.pending, task)
}

// EndFrame runs the tasks queued before the call in FIFO order, advances the
// frame counter and returns the number of tasks run.
func (l *Loop) EndFrame() int {
	tasks := l.pending
	l.pending = l.spare[:0]
	for i, task := range tasks {
		task()
		tasks[i] = nil
	}
	l.spare = tasks[:0]
	l.frame++
	return len(tasks)
}

// Frame returns the number of completed frames.
func (l *Loop) Frame() uint64 { return l.frame }

// Pending returns the number of tasks waiting for the end of the frame.
func (l *Loop) Pending() int { return len(l.pending) }

// Ensure Loop implements Scheduler.
var _ Scheduler = (*Loop)(nil)
