// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All public operations return these sentinels and tests match them
// via errors.Is. Checked APIs never panic on user-triggered conditions;
// panics are reserved for the documented unchecked paths (Ref, iterator
// dereference), where Go's slice bounds stop misuse before it can alias a
// wrong cell.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match with errors.Is.

var (
	// ErrInvalidRank is returned by New when rank is negative, or positive
	// but not a power of two. A non-power-of-two rank would silently corrupt
	// the interleaved addressing scheme, so construction refuses it outright.
	ErrInvalidRank = errors.New("matrix: rank must be zero or a power of two")

	// ErrRankTooLarge is returned by New when rank exceeds MaxRank, the
	// largest side length whose rank² offsets still fit the index space.
	ErrRankTooLarge = errors.New("matrix: rank exceeds MaxRank")

	// ErrOutOfRange indicates that a coordinate passed to a checked accessor
	// (At/Set) or to Quadrant is outside its valid range.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNoQuadrants indicates a Quadrant call on a matrix of rank 0 or 1,
	// which has no quadrant decomposition.
	ErrNoQuadrants = errors.New("matrix: matrix has no quadrants")
)
