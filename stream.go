// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim

import (
	"iter"

	"code.hybscloud.com/atomix"
)

// Stream moves data from exactly one producer goroutine to one reader
// goroutine without locking on the steady-state path.
//
// The stream owns a ChunkList that always holds one reserved slot beyond
// the last published element. The producer writes into the reserved
// slot, grows the store by one (creating a fresh reserved slot), then
// publishes with a release store of the published count. The reader
// acquires the published count and receives the half-open range between
// its previous position and the new one; because chunk storage never
// relocates, every range handed out stays valid indefinitely, across any
// further producer growth.
//
// Observing published count k with acquire ordering guarantees
// visibility of all k elements' contents.
//
// Exactly one producer and exactly one reader: the reader cursor is
// stream-owned state, so concurrent readers would race on it, and Append
// is not safe to call concurrently with itself. Violating either
// constraint is a precondition violation, not a runtime-checked error.
type Stream[T any] struct {
	_         pad
	published atomix.Uint64 // Producer releases here, reader acquires
	_         pad
	rch  *chunk[T] // Reader cursor: chunk holding the next undelivered element
	roff int
	rpos uint64
	_    pad
	store *ChunkList[T]
}

// NewStream creates an empty stream whose backing chunks hold
// chunkCapacity elements each.
//
// Panics if chunkCapacity < 1.
func NewStream[T any](chunkCapacity int) *Stream[T] {
	if chunkCapacity < 1 {
		panic("prim: chunk capacity must be >= 1")
	}
	s := &Stream[T]{store: NewChunkList[T](chunkCapacity)}
	s.reserve()
	return s
}

// reserve re-establishes the single reserved trailing slot and points
// the reader cursor at it.
func (s *Stream[T]) reserve() {
	var zero T
	s.store.Append(zero)
	s.rch, s.roff, s.rpos = s.store.head, 0, 0
}

// Append publishes *elem to the reader (producer only).
//
// The value is copied into the reserved slot before the published count
// is advanced with release ordering, so a reader that observes the new
// count observes the committed value.
func (s *Stream[T]) Append(elem *T) {
	n := s.published.LoadRelaxed()
	t := s.store.tail
	t.slots[t.used-1] = *elem // the reserved slot
	var zero T
	s.store.Append(zero) // fresh reserved slot, never relocates storage
	s.published.StoreRelease(n + 1)
}

// Poll returns the range of elements published since the previous Poll
// and advances the reader cursor past it (reader only). Poll never
// blocks; the range is empty when nothing new has been published.
func (s *Stream[T]) Poll() Range[T] {
	n := s.published.LoadAcquire()
	count := int(n - s.rpos)
	r := Range[T]{ch: s.rch, off: s.roff, n: count}
	// Advance by chunk-capacity arithmetic only. The reader must not
	// inspect used counts, which the producer mutates without ordering;
	// every link it follows was written before the acquired publish.
	off := s.roff + count
	ch := s.rch
	for off >= s.store.chunkCap {
		ch = ch.next
		off -= s.store.chunkCap
	}
	s.rch, s.roff, s.rpos = ch, off, n
	return r
}

// Size returns the published element count (reader-side acquire load).
func (s *Stream[T]) Size() int {
	return int(s.published.LoadAcquire())
}

// ChunkCapacity returns the per-chunk element capacity of the backing
// store.
func (s *Stream[T]) ChunkCapacity() int {
	return s.store.chunkCap
}

// Clear resets the stream to its initial empty state with a single
// reserved slot. Not safe to call concurrently with Append or Poll;
// ranges handed out before Clear must no longer be used.
func (s *Stream[T]) Clear() {
	s.store.Clear()
	s.reserve()
	s.published.Store(0)
}

// Range is a half-open run of published stream elements.
//
// References yielded by a range stay valid and unchanged indefinitely,
// including across further producer growth.
type Range[T any] struct {
	ch  *chunk[T]
	off int
	n   int
}

// Len returns the number of elements in the range.
func (r Range[T]) Len() int {
	return r.n
}

// Refs returns a reference sequence over the range in publish order.
func (r Range[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		ch, off := r.ch, r.off
		for i := 0; i < r.n; i++ {
			if !yield(&ch.slots[off]) {
				return
			}
			off++
			if off == len(ch.slots) {
				ch, off = ch.next, 0
			}
		}
	}
}
