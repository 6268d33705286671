// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim

import "sync"

// Barrier is a reusable rendezvous point for a fixed number of
// goroutines.
//
// Each phase, Wait blocks arrivals until all parties have arrived, then
// releases them together. Exactly one call per phase observes the serial
// point and runs the optional callback before any waiter is released.
// The barrier resets itself and is reusable for subsequent phases
// without reconstruction.
//
// A party that never calls Wait deadlocks the remaining parties
// permanently; there is no timeout variant. This is a liveness
// obligation on callers, not a recoverable error.
type Barrier struct {
	mu sync.Mutex
	cv *sync.Cond

	parties    int
	remaining  int    // arrivals still missing in the current phase
	generation uint64 // completed phase count, the wait predicate
}

// NewBarrier creates a barrier for the given number of parties.
//
// Panics if parties < 1.
func NewBarrier(parties int) *Barrier {
	if parties < 1 {
		panic("prim: barrier requires at least one party")
	}
	b := &Barrier{parties: parties, remaining: parties}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// Parties returns the number of participating goroutines.
func (b *Barrier) Parties() int {
	return b.parties
}

// Wait blocks until all parties have arrived for the current phase.
//
// The last arrival resets the barrier, runs onSerial (if non-nil)
// exactly once, releases all waiters, and returns true; every other call
// returns false. The wait predicate is the generation count, never the
// remaining count: remaining is reset before release, so coupling the
// predicate to it would race with the next phase.
func (b *Barrier) Wait(onSerial func()) bool {
	b.mu.Lock()
	gen := b.generation
	b.remaining--
	if b.remaining > 0 {
		for gen == b.generation {
			b.cv.Wait()
		}
		b.mu.Unlock()
		return false
	}
	// Last arrival: reset state and run the callback before anyone is
	// released, all under the lock.
	b.remaining = b.parties
	b.generation++
	if onSerial != nil {
		onSerial()
	}
	b.mu.Unlock()
	b.cv.Broadcast()
	return true
}
