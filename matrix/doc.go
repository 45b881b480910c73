// Package matrix provides a fixed-size square container that stores its
// elements in Morton (Z-order) layout, keeping spatially nearby cells nearby
// in linear memory.
//
// What:
//
//   - Matrix[T] owns a flat buffer of Rank()×Rank() elements addressed
//     through the zorder codec; the shape is fixed at construction.
//   - Checked access (At/Set with sentinel errors) and an unchecked fast
//     path (Ref) for performance-sensitive inner loops.
//   - Clone performs an explicit deep copy; Take transfers buffer ownership
//     in O(1) and leaves the source as the canonical empty matrix.
//   - Iterator[T] walks the buffer in Morton order with random-access
//     jumps and on-demand (X(), Y()) coordinate recovery.
//   - Quadrant exposes the layout's defining property: each quadrant is one
//     contiguous run of Size()/4 elements.
//
// Why:
//
//   - Quad-tree recursion, image tiling and spatial search recurse over
//     quadrants; row-major storage scatters a quadrant across strided rows,
//     Morton storage keeps it in one cache-friendly run.
//
// Complexity:
//
//   - New: O(r²) allocation. Clone: O(r²). Take: O(1).
//   - At/Set/Ref and every iterator operation: O(1).
//
// Errors:
//
//   - ErrInvalidRank: rank is negative or not zero/power-of-two.
//   - ErrRankTooLarge: rank exceeds MaxRank.
//   - ErrOutOfRange: checked accessor index outside [0, rank).
//   - ErrNoQuadrants: quadrant requested from a rank-0 or rank-1 matrix.
//
// Concurrency: no internal locking. Concurrent readers are safe while no
// writer exists; mutation requires external synchronization.
package matrix
