// Package editing mutates the contents of a bidi.MutView using data from
// other views: rectangle copies, value-combining blends, and flood fill.
// All functions are storage-agnostic and work across different storage
// kinds (dense, jagged, borrowed, or transformed views).
//
// What:
//
//   - Copy: rectangle copy from a source view into a destination view.
//   - CloneOver: Copy with a caller clone function, for element types that
//     need deep copying.
//   - Blend: like Copy, but every destination cell is replaced by
//     combine(dest, source), enabling caller-defined compositing.
//   - FloodFill: region growing from a start cell over the cells admitted
//     by a caller predicate, applying an action exactly once per admitted
//     cell in visitation order.
//
// Clipping policy:
//
//   - Copy, CloneOver and Blend clip silently at both the source's and
//     the destination's bounds and return the number of cells written.
//     Partial overlap is the common blit case and is not an error. This
//     is an intentional asymmetry with pathfinding, where an out-of-range
//     coordinate is a caller bug and fails.
//   - FloodFill fails with bidi.ErrOutOfBounds for an out-of-range start.
//
// FloodFill uses an explicit queue worklist, never recursion: target grids
// run to millions of cells, which would overflow a call stack.
//
// Complexity: Copy/CloneOver/Blend are O(clipped area); FloodFill is
// O(W×H×d) time and O(W×H) memory, d being the connectivity degree.
package editing
