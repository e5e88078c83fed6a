/*
DESCRIPTION
  ring.go provides a fixed-capacity circular buffer with wrap-around
  indexing, grounded on original_source/code/utils/buf_circ.c.

LICENSE
  See LICENSE at the repository root.
*/

// Package ring provides Buffer, a fixed-capacity ring generalized from the
// C buf_circ_t (which carried a void* and an element size) to a Go generic
// type. Used to hold the short history of centerline-x values the planner
// medians over, and the planner's look-ahead moving-average window.
package ring

// Buffer is a fixed-capacity ring buffer. The zero value is not usable;
// construct with New.
type Buffer[T any] struct {
	data    []T
	lastIdx int
	count   int
}

// New returns a Buffer with the given capacity. Every slot is initially the
// zero value of T until written.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	return &Buffer[T]{data: make([]T, capacity), lastIdx: capacity - 1}
}

// Cap returns the buffer's fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Count returns the number of elements written so far, capped at Cap(). A
// caller that needs to distinguish "not yet filled" slots (still their zero
// value) from real history uses this rather than Cap(); see
// planner.trackCenterBottom's use over the centerline-x history.
func (b *Buffer[T]) Count() int {
	if b.count > len(b.data) {
		return len(b.data)
	}
	return b.count
}

// Add writes el after the most recently written element, wrapping around to
// the beginning once capacity is exceeded. Matches buf_circ_add.
func (b *Buffer[T]) Add(el T) {
	b.lastIdx = (b.lastIdx + 1) % len(b.data)
	b.data[b.lastIdx] = el
	b.count++
}

// At returns the element at idx, wrapped modulo capacity. Matches
// buf_circ_get.
func (b *Buffer[T]) At(idx int) T {
	n := len(b.data)
	return b.data[((idx%n)+n)%n]
}

// LastIndex returns the index last written to by Add.
func (b *Buffer[T]) LastIndex() int { return b.lastIdx }

// Slice returns a copy of the buffer's backing elements in storage order
// (not chronological order) — callers that need chronological order should
// walk from LastIndex()+1.
func (b *Buffer[T]) Slice() []T {
	out := make([]T, len(b.data))
	copy(out, b.data)
	return out
}
