// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim

import "iter"

// Cursor position relative to the element sequence.
const (
	cursorBeforeBegin int8 = -1
	cursorOnElement   int8 = 0
	cursorPastEnd     int8 = 1
)

// Cursor is a bidirectional traversal position over a ChunkList.
//
// A cursor advances within a chunk and, on exhausting it, moves to the
// next chunk's start. Before-begin and past-end are distinct sentinel
// positions: stepping forward from past-end and backward from
// before-begin both fail without moving.
//
// A cursor observes the list it was created from; mutating the list
// while a cursor is live leaves the cursor's position unspecified.
type Cursor[T any] struct {
	list *ChunkList[T]
	ch   *chunk[T]
	off  int
	pos  int8
}

// Cursor returns a cursor positioned before the first element.
// The first Next moves it onto the first element, if any.
func (l *ChunkList[T]) Cursor() Cursor[T] {
	return Cursor[T]{list: l, pos: cursorBeforeBegin}
}

// Next advances the cursor one element forward.
// Returns false when the cursor lands on (or already sits at) the
// past-end sentinel.
func (c *Cursor[T]) Next() bool {
	switch c.pos {
	case cursorPastEnd:
		return false
	case cursorBeforeBegin:
		if c.list.head == nil {
			c.pos = cursorPastEnd
			return false
		}
		c.ch, c.off, c.pos = c.list.head, 0, cursorOnElement
		return true
	}
	c.off++
	if c.off < c.ch.used {
		return true
	}
	if c.ch.next == nil {
		c.ch, c.off, c.pos = nil, 0, cursorPastEnd
		return false
	}
	c.ch, c.off = c.ch.next, 0
	return true
}

// Prev moves the cursor one element backward.
// Returns false when the cursor lands on (or already sits at) the
// before-begin sentinel.
func (c *Cursor[T]) Prev() bool {
	switch c.pos {
	case cursorBeforeBegin:
		return false
	case cursorPastEnd:
		if c.list.tail == nil {
			c.pos = cursorBeforeBegin
			return false
		}
		c.ch, c.off, c.pos = c.list.tail, c.list.tail.used-1, cursorOnElement
		return true
	}
	c.off--
	if c.off >= 0 {
		return true
	}
	if c.ch.prev == nil {
		c.ch, c.off, c.pos = nil, 0, cursorBeforeBegin
		return false
	}
	c.ch, c.off = c.ch.prev, c.ch.prev.used-1
	return true
}

// Ref returns a reference to the element under the cursor, or nil at a
// sentinel position. The reference stays valid across later growth.
func (c *Cursor[T]) Ref() *T {
	if c.pos != cursorOnElement {
		return nil
	}
	return &c.ch.slots[c.off]
}

// All returns an index/reference sequence over the elements in order.
func (l *ChunkList[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		i := 0
		for c := l.head; c != nil; c = c.next {
			for j := 0; j < c.used; j++ {
				if !yield(i, &c.slots[j]) {
					return
				}
				i++
			}
		}
	}
}

// ChunkRange returns a reference sequence over the elements of the idx-th
// chunk. The sequence is empty when idx is out of range.
func (l *ChunkList[T]) ChunkRange(idx int) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if idx < 0 || idx >= l.chunks {
			return
		}
		c := l.head
		for ; idx > 0; idx-- {
			c = c.next
		}
		for j := 0; j < c.used; j++ {
			if !yield(&c.slots[j]) {
				return
			}
		}
	}
}

// Chain concatenates sequences into one.
func Chain[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range seqs {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}
