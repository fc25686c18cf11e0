// Package allpaths finds every shortest path between two nodes of an
// unweighted directed graph given as a 0/1 adjacency matrix.
//
// What is inside?
//
//   - matrix/  - immutable N×N adjacency store: Load, HasEdge, NodeCount
//   - bfs/     - breadth-first search that keeps all tied predecessors, then
//     enumerates every minimal-length path (Compute)
//   - parser/  - reads the "(0, 1, 1, 0)" per-line text format
//   - builder/ - generators for path, cycle, grid, layered and random matrices
//   - cmd/allpaths - CLI: solve, watch a file, serve metrics, generate inputs
//
// Quick ASCII example:
//
//	0 ──► 1
//	│     │
//	▼     ▼
//	2 ──► 3
//
// has two shortest routes 0→3: [0 1 3] and [0 2 3]. Both are returned.
//
//	go install github.com/katalvlaran/allpaths/cmd/allpaths@latest
package allpaths
