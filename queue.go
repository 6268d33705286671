// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim

import "sync"

// TaskQueue is a FIFO of tasks with blocking dequeue and a terminal
// closed state.
//
// While open, Enqueue appends and Dequeue blocks until a task arrives.
// After Close, further enqueues fail with ErrPermissionDenied; Dequeue
// drains the remaining tasks and then yields the nil sentinel forever.
//
// All operations hold an exclusive lock only for O(1) critical sections;
// blocking uses a condition variable, never a busy wait.
type TaskQueue struct {
	mu      sync.Mutex
	arrived *sync.Cond

	tasks  []Task
	head   int
	closed bool
}

// NewTaskQueue creates an open, empty task queue.
func NewTaskQueue() *TaskQueue {
	q := &TaskQueue{}
	q.arrived = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends t and wakes one blocked Dequeue.
//
// Returns ErrInvalidArgument if t is the nil sentinel, and
// ErrPermissionDenied if the queue is closed.
func (q *TaskQueue) Enqueue(t Task) error {
	if t == nil {
		return ErrInvalidArgument
	}
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrPermissionDenied
	}
	q.tasks = append(q.tasks, t)
	q.mu.Unlock()
	q.arrived.Signal()
	return nil
}

// Dequeue removes and returns the task at the front, blocking while the
// queue is empty and open. Once the queue is closed and drained, Dequeue
// returns the nil sentinel immediately, forever.
func (q *TaskQueue) Dequeue() Task {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.head == len(q.tasks) && !q.closed {
		q.arrived.Wait()
	}
	if q.head == len(q.tasks) {
		return nil
	}
	return q.pop()
}

// TryDequeue removes and returns the task at the front without blocking.
//
// Returns ErrWouldBlock when the queue is empty and open, and the nil
// sentinel with a nil error once closed and drained.
func (q *TaskQueue) TryDequeue() (Task, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.head == len(q.tasks) {
		if q.closed {
			return nil, nil
		}
		return nil, ErrWouldBlock
	}
	return q.pop(), nil
}

// pop removes the front task. Caller holds q.mu; queue is non-empty.
func (q *TaskQueue) pop() Task {
	t := q.tasks[q.head]
	q.tasks[q.head] = nil
	q.head++
	if q.head == len(q.tasks) {
		q.tasks = q.tasks[:0]
		q.head = 0
	}
	return t
}

// Close transitions the queue to the terminal closed state and wakes all
// blocked dequeues so they can drain and terminate. Idempotent.
func (q *TaskQueue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.arrived.Broadcast()
}

// Closed reports whether Close has been called.
func (q *TaskQueue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Len returns the number of queued tasks.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks) - q.head
}
