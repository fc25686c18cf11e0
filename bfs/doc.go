// Package bfs enumerates every shortest (fewest-edge) path between two nodes
// of an unweighted directed graph.
//
// What
//
//   - Breadth-first search from a start node that records, per node, its
//     distance and the full set of predecessors lying on a shortest route
//     (ties accumulate instead of keeping one BFS-tree parent).
//   - A depth-first walk over that predecessor relation, from the end node back
//     to the start, materializes one Path per leaf-to-root traversal.
//   - Returns a Result holding all Paths, plus the distance/predecessor tables.
//   - Supports functional hooks:
//   - OnEnqueue (when a node first joins the frontier)
//   - OnDequeue (when a node leaves the front of the frontier)
//   - Honors WithMaxPaths (k>0 caps enumeration, k==0 means all).
//
// Why
//
//   - A plain BFS parent map yields one shortest path; routing, auditing and
//     teaching use-cases often need every equally short alternative.
//
// Determinism
//
//	Neighbors are scanned in ascending node order and predecessors are walked
//	in the order they were first recorded, so path order is reproducible.
//
// Relaxation rule
//
//	For an edge cur→i with len = distance[cur]+1:
//	  - distance[i] unset or equal to len: set it and append cur to predecessors[i].
//	  - len < distance[i]: predecessors[i] becomes {cur} and distance[i] = len.
//	  - otherwise: ignored.
//	A node stays eligible for relaxation until it is removed from the front of
//	the frontier, not merely until it is first discovered.
//
// Complexity (N = node count, P = number of shortest paths, L = their length)
//
//   - Search: O(N²) edge probes on a dense matrix. Memory O(N²) worst case for predecessors.
//   - Enumeration: O(P·L).
//
// Usage
//
//	res, err := bfs.Compute(adj, 0, 3)
//	if err != nil {
//	    // ErrGraphNil, ErrIndexOutOfRange, ErrOptionViolation, ErrEdgeLookup or ctx error
//	}
//	if !res.Found() {
//	    fmt.Println("No path exists")
//	}
//	for _, p := range res.Paths {
//	    fmt.Println(p) // 0 -> 2 -> 3
//	}
//
// Errors
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrIndexOutOfRange   if start or end is outside [0, N).
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxPaths).
//   - ErrEdgeLookup        if Graph.HasEdge fails during the search.
//   - context errors       if the WithContext context is cancelled.
//
// An unreachable end node is not an error: Compute returns a Result with no Paths.
package bfs
