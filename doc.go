// Package zmatrix is a small library for square 2D containers stored in
// Morton (Z-order) layout, so spatially nearby cells stay nearby in memory.
//
// 🚀 What is zmatrix?
//
//	A dependency-light library built around two pieces:
//		• zorder/ — the bit-interleaving coordinate codec: Encode(x,y) ⇄ offset
//		• matrix/ — a generic Matrix[T] over a flat Morton-ordered buffer,
//		  with checked and unchecked access, deep Clone, explicit Take
//		  (ownership transfer) and a random-access iterator that recovers
//		  its (x, y) coordinates on demand
//
// ✨ Why Z-order?
//
//   - Quadrant-recursive algorithms (quad-trees, tiling, spatial search)
//     touch contiguous buffer ranges instead of strided rows
//   - Each quadrant of a rank-r matrix is one contiguous run of r²/4
//     elements — see Matrix.Quadrant
//   - The codec is branch-free and O(log bits), independent of rank
//
// Quick ASCII example — buffer offsets of each cell for rank 4:
//
//	 0  1  4  5
//	 2  3  6  7
//	 8  9 12 13
//	10 11 14 15
//
// Ranks must be zero (the empty matrix) or a power of two; anything else is
// rejected at construction. See matrix/doc.go and zorder/doc.go for the full
// contracts, and cmd/zcurve for a plotted rendering of the traversal.
//
//	go get github.com/zcurve/zmatrix/matrix
package zmatrix
