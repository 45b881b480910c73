// Package matrix_test: property-based tests driving the container contracts
// with randomized coordinates, values and ranks.
package matrix_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/zcurve/zmatrix/matrix"
	"github.com/zcurve/zmatrix/zorder"
)

// TestContainerProperties verifies, over randomized inputs, that random
// access is storage-order independent, that the buffer placement always
// agrees with the codec, and that iteration covers every cell of every
// valid rank exactly once.
func TestContainerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	const rank = 16
	m, err := matrix.New[int](rank)
	if err != nil {
		t.Fatalf("New(%d): %v", rank, err)
	}

	properties.Property("write then read observes the same value", prop.ForAll(
		func(i, j, v int) bool {
			if err := m.Set(i, j, v); err != nil {
				return false
			}
			got, err := m.At(i, j)

			return err == nil && got == v
		},
		gen.IntRange(0, rank-1),
		gen.IntRange(0, rank-1),
		gen.Int(),
	))

	properties.Property("buffer placement agrees with the codec", prop.ForAll(
		func(i, j, v int) bool {
			if err := m.Set(i, j, v); err != nil {
				return false
			}

			return m.Data()[zorder.Encode(uint32(i), uint32(j))] == v
		},
		gen.IntRange(0, rank-1),
		gen.IntRange(0, rank-1),
		gen.Int(),
	))

	properties.Property("iteration covers [0,r)² exactly once for every valid rank", prop.ForAll(
		func(r int) bool {
			mm, err := matrix.New[struct{}](r)
			if err != nil {
				return false
			}
			seen := make(map[[2]int]bool, r*r)
			for it := mm.Begin(); !it.Equal(mm.End()); it.Next() {
				p := [2]int{it.X(), it.Y()}
				if seen[p] || p[0] < 0 || p[0] >= r || p[1] < 0 || p[1] >= r {
					return false // repeated or out-of-range cell
				}
				seen[p] = true
			}

			return len(seen) == r*r
		},
		gen.OneConstOf(0, 1, 2, 4, 8, 16, 32),
	))

	properties.Property("clone stays equal until mutated, then diverges", prop.ForAll(
		func(i, j, v int) bool {
			a, err := matrix.New[int](rank)
			if err != nil {
				return false
			}
			if err = a.Set(i, j, v); err != nil {
				return false
			}
			b := a.Clone()
			bv, err := b.At(i, j)
			if err != nil || bv != v {
				return false // clone must carry the value over
			}
			if err = b.Set(i, j, v+1); err != nil {
				return false
			}
			av, err := a.At(i, j)

			return err == nil && av == v // original untouched by the clone's write
		},
		gen.IntRange(0, rank-1),
		gen.IntRange(0, rank-1),
		gen.Int(),
	))

	properties.TestingRun(t)
}
