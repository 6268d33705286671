// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim

// DefaultChunkCapacity is a reasonable per-chunk element count when the
// caller has no better estimate.
const DefaultChunkCapacity = 256

// chunk is one fixed-capacity storage block in a ChunkList.
//
// The slots slice is allocated once at chunk creation and never
// reallocated, and chunks are linked by pointer, never copied. Element
// addresses therefore stay fixed for the lifetime of the list.
type chunk[T any] struct {
	slots []T
	used  int
	next  *chunk[T]
	prev  *chunk[T]
}

// ChunkList is an ordered sequence of elements stored in fixed-capacity
// chunks linked in a list.
//
// Growth allocates new chunks and never relocates existing ones, so a *T
// obtained from At, Front, Back, or a Cursor remains valid and points at
// the same element across any number of later appends. Random access is
// O(chunk count); append and remove-from-end are O(1).
//
// Invariant: every chunk but the last is full, and the last chunk holds
// between 1 and ChunkCapacity elements; the list is empty iff Size is 0.
//
// A ChunkList is not internally synchronized. It must be mutated by a
// single owner; see Stream for the single-writer publication protocol
// that shares one across goroutines.
type ChunkList[T any] struct {
	head     *chunk[T]
	tail     *chunk[T]
	chunks   int
	size     int
	chunkCap int
}

// NewChunkList creates an empty chunk list whose chunks hold
// chunkCapacity elements each.
//
// Panics if chunkCapacity < 1.
func NewChunkList[T any](chunkCapacity int) *ChunkList[T] {
	if chunkCapacity < 1 {
		panic("prim: chunk capacity must be >= 1")
	}
	return &ChunkList[T]{chunkCap: chunkCapacity}
}

// Size returns the number of elements.
func (l *ChunkList[T]) Size() int {
	return l.size
}

// Empty reports whether the list holds no elements.
func (l *ChunkList[T]) Empty() bool {
	return l.size == 0
}

// ChunkCount returns the number of chunks.
func (l *ChunkList[T]) ChunkCount() int {
	return l.chunks
}

// ChunkCapacity returns the per-chunk element capacity.
func (l *ChunkList[T]) ChunkCapacity() int {
	return l.chunkCap
}

// Append adds v after the last element, allocating and linking a new
// tail chunk when the current one is full. Storage of existing elements
// is never touched.
func (l *ChunkList[T]) Append(v T) {
	if l.tail == nil || l.tail.used == l.chunkCap {
		l.grow()
	}
	l.tail.slots[l.tail.used] = v
	l.tail.used++
	l.size++
}

// grow links a fresh empty chunk at the tail.
func (l *ChunkList[T]) grow() {
	c := &chunk[T]{slots: make([]T, l.chunkCap), prev: l.tail}
	if l.tail == nil {
		l.head = c
	} else {
		l.tail.next = c
	}
	l.tail = c
	l.chunks++
}

// RemoveLast removes the last element, unlinking the tail chunk if it
// becomes empty. Returns ErrUnderflow if the list is empty.
func (l *ChunkList[T]) RemoveLast() error {
	if l.size == 0 {
		return ErrUnderflow
	}
	l.tail.used--
	var zero T
	l.tail.slots[l.tail.used] = zero
	l.size--
	if l.tail.used == 0 {
		t := l.tail
		l.tail = t.prev
		if l.tail == nil {
			l.head = nil
		} else {
			l.tail.next = nil
		}
		t.prev = nil
		l.chunks--
	}
	return nil
}

// At returns a reference to the i-th element. The reference stays valid
// for the lifetime of the list, across any later growth.
// Returns ErrOutOfRange if i is not below Size.
func (l *ChunkList[T]) At(i int) (*T, error) {
	if i < 0 || i >= l.size {
		return nil, ErrOutOfRange
	}
	c := l.head
	for n := i / l.chunkCap; n > 0; n-- {
		c = c.next
	}
	return &c.slots[i%l.chunkCap], nil
}

// Front returns a reference to the first element.
// Returns ErrUnderflow if the list is empty.
func (l *ChunkList[T]) Front() (*T, error) {
	if l.size == 0 {
		return nil, ErrUnderflow
	}
	return &l.head.slots[0], nil
}

// Back returns a reference to the last element.
// Returns ErrUnderflow if the list is empty.
func (l *ChunkList[T]) Back() (*T, error) {
	if l.size == 0 {
		return nil, ErrUnderflow
	}
	return &l.tail.slots[l.tail.used-1], nil
}

// Resize grows the list by appending copies of fill, or shrinks it by
// removing elements from the end. Elements below min(old, new) size are
// unchanged. Returns ErrOutOfRange if n is negative.
func (l *ChunkList[T]) Resize(n int, fill T) error {
	if n < 0 {
		return ErrOutOfRange
	}
	for l.size < n {
		l.Append(fill)
	}
	for l.size > n {
		l.RemoveLast() // cannot underflow here
	}
	return nil
}

// Clear removes all elements and releases all chunks.
func (l *ChunkList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.chunks = 0
	l.size = 0
}
