// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package prim provides reusable low-level primitives.
//
// The concurrency core consists of four components:
//
//   - ChunkList: segmented growable container with stable element
//     addresses
//   - Stream: single-producer/single-reader data stream on a ChunkList,
//     lock-free on the steady-state path
//   - Barrier: reusable multi-phase rendezvous with a serial-point
//     callback
//   - Pool: fixed-size worker pool with per-worker FIFO queues
//
// Around the core, the package carries small standalone helpers: a
// growable raw-byte buffer (ByteBuf), a diagnostic/fatal logger
// (Logger), a seedable random generator (Rand), and sequence glue
// (Cursor, Chain).
//
// # Quick Start
//
//	l := prim.NewChunkList[int](prim.DefaultChunkCapacity)
//	l.Append(42)
//	ref, _ := l.At(0) // *int, stays valid across later growth
//
//	s := prim.NewStream[Event](256)
//	p := prim.NewPool(4)
//	b := prim.NewBarrier(4)
//
// # Stable Addressing
//
// ChunkList stores elements in fixed-capacity chunks linked in a list.
// Growth allocates new chunks and never relocates existing ones, so any
// *T obtained from the container remains valid and points at the same
// element for the lifetime of the container. Stream depends on this:
// ranges handed to the reader stay live across further producer growth.
//
// # Streaming (SPSC)
//
// One goroutine appends, one goroutine polls. The producer writes into a
// reserved slot and publishes with a release store; the reader acquires
// the published count and receives the new elements as a Range:
//
//	s := prim.NewStream[int](256)
//
//	go func() { // Producer
//	    for v := range produce() {
//	        s.Append(&v)
//	    }
//	}()
//
//	go func() { // Reader
//	    backoff := iox.Backoff{}
//	    for {
//	        r := s.Poll() // never blocks, possibly empty
//	        if r.Len() == 0 {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        for ref := range r.Refs() {
//	            consume(*ref)
//	        }
//	    }
//	}()
//
// Exactly one producer and exactly one reader; the reader cursor is
// stream-owned state. Violating either constraint causes undefined
// behavior including data corruption and races.
//
// # Phased Computation
//
// Barrier blocks N parties until all have arrived, then releases them
// together. Exactly one call per phase returns true, after running the
// optional callback at the serial point:
//
//	b := prim.NewBarrier(workers)
//	for phase := range phases {
//	    compute(phase)
//	    b.Wait(func() { reduce(phase) }) // callback runs exactly once
//	}
//
// # Worker Pool
//
// Pool spawns a fixed number of workers, each with its own blocking
// queue. Untargeted submissions are assigned round-robin; targeted
// submissions preserve FIFO order on that worker:
//
//	p := prim.NewPool(4)
//	for range 100 {
//	    p.Submit(func() { work() })
//	}
//	p.WaitAll() // blocks until every outstanding task finished
//	p.Close()   // drain queues, join workers
//
// Ordering is per targeted worker's queue only, never global. There is
// no cancellation or timeout primitive anywhere in this core; shutdown
// is cooperative via queue closing.
//
// # Error Handling
//
// Usage errors are returned synchronously: ErrOutOfRange, ErrUnderflow,
// ErrInvalidArgument, ErrPermissionDenied. Non-blocking boundaries
// return [ErrWouldBlock], sourced from [code.hybscloud.com/iox] for
// ecosystem consistency:
//
//	t, err := q.TryDequeue()
//	if prim.IsWouldBlock(err) {
//	    // queue empty - retry later
//	}
//
// Constructor misuse (zero chunk capacity, zero workers, zero parties)
// panics. Unrecoverable environment failures terminate the process
// through [Panic] after emitting a diagnostic; they are never
// represented as returned errors.
//
// # Blocking Semantics
//
// TaskQueue.Dequeue blocks while the queue is empty and open,
// Barrier.Wait blocks all but the last arrival, and Pool.WaitAll blocks
// while tasks are pending. Stream.Poll never blocks. Apparent waiting is
// the defined contract of these operations, not a retry of a failed
// attempt; no automatic retry exists anywhere in this core.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives but
// cannot observe happens-before relationships established through
// atomic memory orderings. Stream protects element contents with
// acquire-release ordering on a separate published counter, which the
// detector cannot track, so concurrent Stream tests report false
// positives and are skipped when RaceEnabled is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering, [code.hybscloud.com/iox] for semantic
// errors and adaptive backoff, and [code.hybscloud.com/spin] for CPU
// pause instructions in polling loops.
package prim
