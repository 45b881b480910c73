// SPDX-License-Identifier: MIT

// Package zorder: the interleave/de-interleave kernels.
// This file is the single source of truth for the bit layout; the matrix
// package addresses its buffer exclusively through these functions.
package zorder

// Spread/compact mask ladder. masks[i] keeps runs of 2^i bits separated by
// gaps of the same width; shifts[i] is the distance the ladder moves bits at
// step i. Both tables are indexed the same way in either direction.
var (
	masks = [6]uint64{
		0x5555555555555555, // ...01010101
		0x3333333333333333, // ...00110011
		0x0F0F0F0F0F0F0F0F,
		0x00FF00FF00FF00FF,
		0x0000FFFF0000FFFF,
		0x00000000FFFFFFFF,
	}
	shifts = [6]uint{0, 1, 2, 4, 8, 16}
)

// Encode interleaves x and y into a single Morton index.
// Bit 2k of the result is bit k of x; bit 2k+1 is bit k of y.
// Total over the full uint32 range; injective, with image exactly [0, 2⁶⁴).
// Complexity: O(1) — five masked shifts per coordinate.
func Encode(x, y uint32) uint64 {
	return spread(x) | spread(y)<<1
}

// Decode recovers both coordinates from a Morton index.
// Exact inverse of Encode: Decode(Encode(x, y)) == (x, y) for all x, y.
// Complexity: O(1).
func Decode(z uint64) (x, y uint32) {
	return compact(z), compact(z >> 1)
}

// DecodeX extracts the even-position bits of z, compacted into a dense
// integer — the x coordinate of the cell stored at offset z.
// Complexity: O(1).
func DecodeX(z uint64) uint32 {
	return compact(z)
}

// DecodeY extracts the odd-position bits of z — the y coordinate of the cell
// stored at offset z. Equivalent to DecodeX(z >> 1).
// Complexity: O(1).
func DecodeY(z uint64) uint32 {
	return compact(z >> 1)
}

// spread doubles the spacing of v's bits: bit k moves to bit 2k, with zeros
// in between. The ladder widens the gaps from 16 down to 1.
func spread(v uint32) uint64 {
	w := uint64(v)
	for i := 4; i >= 0; i-- {
		w = (w | w<<shifts[i+1]) & masks[i]
	}
	return w
}

// compact is the inverse of spread: it drops the odd-position bits of z and
// closes the gaps, moving bit 2k back to bit k.
func compact(z uint64) uint32 {
	for i := 0; i <= 5; i++ {
		z = (z | z>>shifts[i]) & masks[i]
	}
	return uint32(z)
}
