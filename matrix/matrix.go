// Package matrix: the Morton-ordered square container.
// Matrix is a concrete generic container storing elements in a flat slice
// addressed through the zorder codec, so quadrant-recursive access patterns
// stay cache friendly.
package matrix

import (
	"fmt"
	"iter"

	"github.com/zcurve/zmatrix/zorder"
)

// MaxRank is the largest accepted side length. Bounding rank here keeps
// every buffer offset (rank²-1 at most) inside the non-negative int range,
// so slice indexing never wraps.
const MaxRank = 1 << 30

// Cell names a single grid position. Iteration APIs yield it alongside the
// stored value.
type Cell struct {
	X, Y int // coordinates within the matrix, each in [0, rank)
}

// Matrix is a square 2D container of side length rank, rank being zero or a
// power of two, storing its elements in Morton order: the element at (x, y)
// lives at buffer offset zorder.Encode(x, y).
//
// The zero value (and any matrix after Take) is the canonical empty matrix:
// rank 0, nil buffer. Matrix values are used via pointer; the only sanctioned
// copy is the explicit deep Clone.
type Matrix[T any] struct {
	rank int // side length, 0 or a power of two
	data []T // flat backing storage in Morton order, length == rank*rank
}

// accessErrorf wraps an underlying sentinel with method and index context.
func accessErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// New creates a rank×rank matrix with all elements set to the zero value
// of T.
// Stage 1 (Validate): rank must be 0 or a power of two, and at most MaxRank.
// Stage 2 (Prepare): allocate the flat Morton-ordered buffer (none for 0).
// Stage 3 (Finalize): return the matrix, or ErrInvalidRank/ErrRankTooLarge.
// Construction either fully succeeds or yields no matrix — an accepted rank
// can never produce mis-addressed storage.
// Complexity: O(rank²) time and memory.
func New[T any](rank int) (*Matrix[T], error) {
	// Reject negative ranks and positive ranks with more than one set bit.
	if rank < 0 || rank&(rank-1) != 0 {
		return nil, ErrInvalidRank
	}
	// Keep rank² representable as a buffer length.
	if rank > MaxRank {
		return nil, ErrRankTooLarge
	}
	// Rank 0 is the valid degenerate empty matrix: no allocation.
	if rank == 0 {
		return &Matrix[T]{}, nil
	}

	// Allocate the flat buffer; make zero-initializes every element.
	return &Matrix[T]{rank: rank, data: make([]T, rank*rank)}, nil
}

// Rank returns the side length of the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Rank() int {
	return m.rank // stored side length
}

// Size returns the total number of elements, rank².
// Complexity: O(1).
func (m *Matrix[T]) Size() int {
	return len(m.data) // buffer length equals rank*rank by construction
}

// index computes the Morton buffer offset for (i, j) or reports
// ErrOutOfRange. i is the x coordinate, j the y coordinate.
// Complexity: O(1).
func (m *Matrix[T]) index(method string, i, j int) (uint64, error) {
	// Validate the x coordinate.
	if i < 0 || i >= m.rank {
		return 0, accessErrorf(method, i, j, ErrOutOfRange)
	}
	// Validate the y coordinate.
	if j < 0 || j >= m.rank {
		return 0, accessErrorf(method, i, j, ErrOutOfRange)
	}

	// Interleave into the buffer offset.
	return zorder.Encode(uint32(i), uint32(j)), nil
}

// At retrieves the element at (i, j), bounds-checked.
// Returns ErrOutOfRange when either coordinate is outside [0, rank).
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) (T, error) {
	z, err := m.index("At", i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[z], nil
}

// Set assigns v at (i, j), bounds-checked.
// Returns ErrOutOfRange when either coordinate is outside [0, rank).
// Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, v T) error {
	z, err := m.index("Set", i, j)
	if err != nil {
		return err
	}
	m.data[z] = v

	return nil
}

// Ref returns a pointer to the element at (i, j) with no bounds test — the
// fast path for inner loops whose coordinates are in range by construction.
//
// Misuse cannot alias a wrong cell: any coordinate bit above log2(rank)
// interleaves to an offset at or beyond rank², so an out-of-range call
// panics on the slice bound instead of silently reading another element.
// Complexity: O(1).
func (m *Matrix[T]) Ref(i, j int) *T {
	return &m.data[zorder.Encode(uint32(i), uint32(j))]
}

// Data exposes the raw Morton-ordered buffer, mutable through the slice.
// Offsets are codec offsets: Data()[zorder.Encode(x, y)] is the element at
// (x, y). Callers must not apply row-major assumptions to this buffer.
// Complexity: O(1).
func (m *Matrix[T]) Data() []T {
	return m.data
}

// Clone creates an independent deep copy of the matrix. Both matrices share
// the same layout scheme, so a single buffer copy suffices; mutating either
// afterwards never affects the other.
// Complexity: O(rank²) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m.rank == 0 {
		return &Matrix[T]{} // empty clones to empty, no allocation
	}

	dup := make([]T, len(m.data)) // fresh storage of identical length
	copy(dup, m.data)             // element-wise copy in buffer order

	return &Matrix[T]{rank: m.rank, data: dup}
}

// Take transfers buffer ownership out of m into a new matrix and resets m to
// the canonical empty matrix (rank 0, nil buffer). Iterators previously
// obtained from m are invalidated.
// Complexity: O(1) — no element is touched.
func (m *Matrix[T]) Take() *Matrix[T] {
	moved := &Matrix[T]{rank: m.rank, data: m.data}
	m.rank, m.data = 0, nil

	return moved
}

// Fill assigns v to every element of the matrix.
// Complexity: O(rank²).
func (m *Matrix[T]) Fill(v T) {
	for z := range m.data {
		m.data[z] = v
	}
}

// Quadrant returns the contiguous sub-buffer holding quadrant (qx, qy),
// each in {0, 1}: qx selects the left/right half along x, qy the top/bottom
// half along y. The Morton layout guarantees each quadrant of a rank-r
// matrix occupies exactly one run of r²/4 consecutive elements, which is
// the property this container exists for.
// Returns ErrNoQuadrants for rank < 2 and ErrOutOfRange for qx/qy outside
// {0, 1}. The slice aliases the matrix buffer; writes through it are writes
// into the matrix.
// Complexity: O(1) — no copying.
func (m *Matrix[T]) Quadrant(qx, qy int) ([]T, error) {
	if m.rank < 2 {
		return nil, ErrNoQuadrants
	}
	if qx < 0 || qx > 1 || qy < 0 || qy > 1 {
		return nil, accessErrorf("Quadrant", qx, qy, ErrOutOfRange)
	}

	// The quadrant's first cell is its min-corner; its run spans a quarter
	// of the buffer starting there.
	base := zorder.Encode(uint32(qx*m.rank/2), uint32(qy*m.rank/2))
	quarter := uint64(len(m.data) / 4)

	return m.data[base : base+quarter], nil
}

// Begin returns an iterator positioned at buffer offset 0.
// For the empty matrix Begin equals End.
// Complexity: O(1), no allocation.
func (m *Matrix[T]) Begin() Iterator[T] {
	return Iterator[T]{data: m.data, pos: 0}
}

// End returns the one-past-the-end sentinel iterator: valid for comparison
// and arithmetic, not for dereference.
// Complexity: O(1), no allocation.
func (m *Matrix[T]) End() Iterator[T] {
	return Iterator[T]{data: m.data, pos: len(m.data)}
}

// All ranges over the matrix in Morton (buffer) order, yielding each cell's
// coordinates and value. Visits every cell exactly once; the set of yielded
// cells is the full Cartesian product [0,rank)².
// Complexity: O(rank²) for a full traversal, O(1) per step.
func (m *Matrix[T]) All() iter.Seq2[Cell, T] {
	return func(yield func(Cell, T) bool) {
		for z, v := range m.data {
			x, y := zorder.Decode(uint64(z))
			if !yield(Cell{X: int(x), Y: int(y)}, v) {
				return
			}
		}
	}
}
