// Package matrix holds the dense 0/1 adjacency matrix that backs the
// shortest-path engine.
//
// What
//
//   - Adjacency is an immutable N×N boolean grid: HasEdge(i, j) reports a
//     directed edge i→j.
//   - Load builds it from N already-cleaned text rows over the alphabet {'0','1'}.
//   - Storage is a flat row-major []bool (offset = i*N + j).
//
// Why
//
//   - Dense storage gives O(1) edge lookups, which is all BFS over a matrix needs.
//   - No mutators exist after Load, so one *Adjacency may be shared by any
//     number of concurrent readers without locking.
//
// Errors
//
//   - ErrMalformedMatrix  ragged rows, non-square input, or a character outside {'0','1'}.
//   - ErrEmptyMatrix      zero rows (also matches ErrMalformedMatrix).
//   - ErrIndexOutOfRange  HasEdge/Successors called with an index outside [0, N).
//   - ErrNilMatrix        method called on a nil *Adjacency.
//
// Complexity
//
//   - Load: O(N²) time and memory. HasEdge: O(1). Successors: O(N).
package matrix
