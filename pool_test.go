// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim_test

import (
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/prim"
)

// =============================================================================
// Pool - Submission and Draining
// =============================================================================

// TestPoolCounter submits 100 untargeted tasks on 4 workers, each
// incrementing a shared counter under its own lock, and checks WaitAll
// returns only once the counter reached 100.
func TestPoolCounter(t *testing.T) {
	p := prim.NewPool(4)
	defer p.Close()

	if p.Workers() != 4 {
		t.Fatalf("Workers: got %d, want 4", p.Workers())
	}

	var mu sync.Mutex
	counter := 0
	for range 100 {
		err := p.Submit(func() {
			mu.Lock()
			counter++
			mu.Unlock()
		})
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	p.WaitAll()

	mu.Lock()
	got := counter
	mu.Unlock()
	if got != 100 {
		t.Fatalf("counter after WaitAll: got %d, want 100", got)
	}
	if pending := p.Pending(); pending != 0 {
		t.Fatalf("Pending after WaitAll: got %d, want 0", pending)
	}
}

// TestPoolTargetedFIFO checks tasks submitted to one explicit worker
// execute in submission order.
func TestPoolTargetedFIFO(t *testing.T) {
	p := prim.NewPool(4)
	defer p.Close()

	const n = 1000
	var mu sync.Mutex
	var order []int
	for i := range n {
		err := p.SubmitTo(2, func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
		if err != nil {
			t.Fatalf("SubmitTo(%d): %v", i, err)
		}
	}
	p.WaitAll()

	mu.Lock()
	defer mu.Unlock()
	if len(order) != n {
		t.Fatalf("executed %d tasks, want %d", len(order), n)
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("execution order at %d: got %d, want %d", i, v, i)
		}
	}
}

func TestPoolSubmitErrors(t *testing.T) {
	p := prim.NewPool(2)
	defer p.Close()

	if err := p.Submit(nil); !errors.Is(err, prim.ErrInvalidArgument) {
		t.Fatalf("Submit(nil): got %v, want ErrInvalidArgument", err)
	}
	if err := p.SubmitTo(2, func() {}); !errors.Is(err, prim.ErrOutOfRange) {
		t.Fatalf("SubmitTo(2) on 2 workers: got %v, want ErrOutOfRange", err)
	}
	if err := p.SubmitTo(-1, func() {}); !errors.Is(err, prim.ErrOutOfRange) {
		t.Fatalf("SubmitTo(-1): got %v, want ErrOutOfRange", err)
	}
}

func TestPoolSubmitAfterClose(t *testing.T) {
	p := prim.NewPool(2)
	p.Close()

	if err := p.Submit(func() {}); !errors.Is(err, prim.ErrPermissionDenied) {
		t.Fatalf("Submit after Close: got %v, want ErrPermissionDenied", err)
	}
	// The failed submission must not leave the pending counter raised.
	p.WaitAll()
	if pending := p.Pending(); pending != 0 {
		t.Fatalf("Pending after failed submit: got %d, want 0", pending)
	}
}

func TestPoolCloseIdempotent(t *testing.T) {
	p := prim.NewPool(2)
	p.Close()
	p.Close()
}

// =============================================================================
// Pool - Waiting
// =============================================================================

func TestPoolWaitAllEmpty(t *testing.T) {
	p := prim.NewPool(2)
	defer p.Close()

	// Nothing pending: must not block.
	p.WaitAll()
}

// TestPoolWaitAllConcurrent checks WaitAll is safe from multiple
// concurrent waiters and that none returns before the work is done.
func TestPoolWaitAllConcurrent(t *testing.T) {
	p := prim.NewPool(4)
	defer p.Close()

	var done atomix.Int64
	for range 200 {
		if err := p.Submit(func() { done.Add(1) }); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.WaitAll()
			if got := done.Load(); got != 200 {
				t.Errorf("WaitAll returned with %d done, want 200", got)
			}
		}()
	}
	wg.Wait()
}

// TestPoolDrainsBacklogOnClose checks Close lets queued tasks finish
// before joining the workers.
func TestPoolDrainsBacklogOnClose(t *testing.T) {
	p := prim.NewPool(1)

	var done atomix.Int64
	for range 50 {
		if err := p.Submit(func() { done.Add(1) }); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	p.Close()

	if got := done.Load(); got != 50 {
		t.Fatalf("done after Close: got %d, want 50", got)
	}
}

func TestPoolWorkersPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewPool(0) did not panic")
		}
	}()
	prim.NewPool(0)
}
