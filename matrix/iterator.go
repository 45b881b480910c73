// Package matrix: the buffer cursor.
// Iterator is a non-owning view over a matrix buffer: a (buffer, offset)
// pair with random-access semantics, recovering its grid coordinates on
// demand by de-interleaving the offset. Only Begin/End construct a usable
// iterator; the zero value is singular (comparable, not dereferenceable).
package matrix

import "github.com/zcurve/zmatrix/zorder"

// Iterator walks a matrix buffer in Morton order. Its validity is tied to
// the matrix's lifetime: Take on the source matrix invalidates it.
//
// The position invariant is [0, Size()], where Size() is the unique
// one-past-the-end sentinel. Stepping or jumping outside that range, or
// dereferencing at the sentinel, panics on the slice bound.
type Iterator[T any] struct {
	data []T // the matrix buffer; shared, never owned
	pos  int // current offset into data, in [0, len(data)]
}

// X returns the x coordinate of the current cell, decoded from the offset.
// Meaningless at the end sentinel or on a singular iterator.
// Complexity: O(1).
func (it Iterator[T]) X() int {
	return int(zorder.DecodeX(uint64(it.pos)))
}

// Y returns the y coordinate of the current cell, decoded from the offset.
// Complexity: O(1).
func (it Iterator[T]) Y() int {
	return int(zorder.DecodeY(uint64(it.pos)))
}

// Pos returns the current buffer offset.
// Complexity: O(1).
func (it Iterator[T]) Pos() int {
	return it.pos
}

// Valid reports whether the iterator may be dereferenced: position in
// [0, Size()). The end sentinel and singular iterators are not valid.
// Complexity: O(1).
func (it Iterator[T]) Valid() bool {
	return it.pos >= 0 && it.pos < len(it.data)
}

// Value returns the current element. Panics when the iterator is at the end
// sentinel or singular.
// Complexity: O(1).
func (it Iterator[T]) Value() T {
	return it.data[it.pos]
}

// Ref returns a pointer to the current element for in-place mutation.
// Panics when the iterator is at the end sentinel or singular.
// Complexity: O(1).
func (it Iterator[T]) Ref() *T {
	return &it.data[it.pos]
}

// Set assigns v to the current element. Panics when the iterator is at the
// end sentinel or singular.
// Complexity: O(1).
func (it Iterator[T]) Set(v T) {
	it.data[it.pos] = v
}

// Next advances the iterator by one buffer offset.
// Complexity: O(1).
func (it *Iterator[T]) Next() {
	it.pos++
}

// Prev moves the iterator back by one buffer offset.
// Complexity: O(1).
func (it *Iterator[T]) Prev() {
	it.pos--
}

// Add returns an iterator n offsets ahead (n may be negative) — the direct
// random-access jump over the contiguous buffer.
// Complexity: O(1).
func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{data: it.data, pos: it.pos + n}
}

// Sub returns the offset distance between two iterators over the same
// matrix. Mixing iterators from different matrices is undefined.
// Complexity: O(1).
func (it Iterator[T]) Sub(other Iterator[T]) int {
	return it.pos - other.pos
}

// Equal reports whether both iterators sit at the same buffer position.
// Only the position takes part in the comparison — iterators over the same
// matrix always share their buffer, and mixing matrices is undefined.
// Complexity: O(1).
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos
}

// Less orders two iterators over the same matrix by buffer position.
// Complexity: O(1).
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.pos < other.pos
}
