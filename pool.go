// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// Pool executes tasks on a fixed set of worker goroutines, each bound
// 1:1 to its own TaskQueue.
//
// At most one task is in flight per worker, and submission order is
// preserved per targeted worker's queue, not globally across workers.
// Untargeted submissions are assigned round-robin. There is no work
// stealing, no priority scheduling, and no cancellation; shutdown is
// cooperative via Close.
type Pool struct {
	queues  []*TaskQueue
	workers sync.WaitGroup

	// Pending-task accounting. The counter is incremented before the
	// enqueue so a concurrent WaitAll can never observe zero pending
	// while a submission is in flight.
	mu      sync.Mutex
	done    *sync.Cond
	pending int

	rr        atomix.Uint64 // round-robin assignment index
	closeOnce sync.Once
}

// NewPool creates a pool and spawns all workers.
//
// Panics if workers < 1.
func NewPool(workers int) *Pool {
	if workers < 1 {
		panic("prim: pool requires at least one worker")
	}
	p := &Pool{queues: make([]*TaskQueue, workers)}
	p.done = sync.NewCond(&p.mu)
	for i := range p.queues {
		p.queues[i] = NewTaskQueue()
	}
	for i := range p.queues {
		p.workers.Add(1)
		go p.run(i)
	}
	return p
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return len(p.queues)
}

// Pending returns the number of submitted-but-unfinished tasks.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending
}

// Submit enqueues t on the next worker in round-robin order.
//
// Returns ErrInvalidArgument if t is the nil sentinel, and
// ErrPermissionDenied if the pool is being torn down.
func (p *Pool) Submit(t Task) error {
	return p.SubmitTo(int(p.rr.Add(1)%uint64(len(p.queues))), t)
}

// SubmitTo enqueues t on the given worker's queue.
//
// Returns ErrOutOfRange if worker is not a valid worker id,
// ErrInvalidArgument if t is the nil sentinel, and ErrPermissionDenied
// if the pool is being torn down.
func (p *Pool) SubmitTo(worker int, t Task) error {
	if worker < 0 || worker >= len(p.queues) {
		return ErrOutOfRange
	}
	if t == nil {
		return ErrInvalidArgument
	}
	p.mu.Lock()
	p.pending++
	p.mu.Unlock()
	if err := p.queues[worker].Enqueue(t); err != nil {
		p.taskDone()
		return err
	}
	return nil
}

// WaitAll blocks until every outstanding task has finished. Safe to call
// concurrently from multiple waiters; returns immediately when nothing
// is pending.
func (p *Pool) WaitAll() {
	p.mu.Lock()
	for p.pending != 0 {
		p.done.Wait()
	}
	p.mu.Unlock()
}

// Close closes every queue, letting each worker drain its backlog and
// terminate, then joins all workers. Idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		for _, q := range p.queues {
			q.Close()
		}
		p.workers.Wait()
	})
}

// taskDone decrements the pending counter and wakes waiters if it may
// now be zero.
func (p *Pool) taskDone() {
	p.mu.Lock()
	p.pending--
	idle := p.pending == 0
	p.mu.Unlock()
	if idle {
		p.done.Broadcast()
	}
}

// run is the worker loop: blocking-dequeue from the worker's own queue
// until the nil sentinel signals closed-and-drained.
func (p *Pool) run(id int) {
	defer p.workers.Done()
	q := p.queues[id]
	for {
		t := q.Dequeue()
		if t == nil {
			return
		}
		t()
		p.taskDone()
	}
}
