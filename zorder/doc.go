// Package zorder implements the Morton (Z-order) coordinate codec: the
// bijective mapping between a 2D coordinate pair and a single linear index
// formed by interleaving their bits.
//
// What:
//
//   - Encode(x, y) interleaves two 32-bit coordinates into one 64-bit index.
//   - Decode / DecodeX / DecodeY invert it exactly.
//   - Bit order is fixed: x occupies the even bit positions, y the odd ones,
//     so bit 2k of the index is bit k of x and bit 2k+1 is bit k of y.
//
// Why:
//
//   - Storing a square grid at these offsets keeps spatially nearby cells
//     nearby in linear memory, which is what quad-tree style recursion and
//     tile-based scans want from a cache.
//   - Picking x for the even positions makes the x axis the "more contiguous"
//     one: (x, y) and (x+1, y) differ in the lowest interleaved bit.
//
// Complexity:
//
//   - Both directions are branch-free masked-shift ladders: O(log bits)
//     operations, independent of any container size.
//
// Errors:
//
//   - None. Both directions are total over their input types; range policy
//     (coordinates below some rank) belongs to callers.
package zorder
