// bfs.go - Compute and the frontier walker that fills distances and
// predecessors.

package bfs

import (
	"context"
	"fmt"
)

// walker encapsulates mutable search state. It is owned by a single Compute
// call and discarded afterwards.
type walker struct {
	graph Graph
	opts  Options
	ctx   context.Context
	n     int

	distance     []int   // unset until reached
	predecessors [][]int // insertion-ordered
	frontier     []int   // FIFO; frontier[0] is the node being expanded
	queued       []bool  // membership mirror of frontier
	unvisited    []bool  // true until the node leaves the front of the frontier
}

// Compute runs the search on g from start and enumerates all shortest paths to end.
// Returns ErrGraphNil or ErrIndexOutOfRange for invalid input, ErrOptionViolation
// for bad options, ErrEdgeLookup for graph failures, or the context's error on
// cancellation. An unreachable end yields a Result with no Paths and a nil error.
func Compute(g Graph, start, end int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", ErrIndexOutOfRange, start, n)
	}
	if end < 0 || end >= n {
		return nil, fmt.Errorf("%w: end %d not in [0,%d)", ErrIndexOutOfRange, end, n)
	}

	w := newWalker(g, o, n)
	if err := w.search(start); err != nil {
		return nil, err
	}

	res := &Result{
		Start:        start,
		End:          end,
		distance:     w.distance,
		predecessors: w.predecessors,
	}
	res.Paths, res.Truncated = enumerate(w.predecessors, start, end, o.MaxPaths)

	return res, nil
}

func newWalker(g Graph, o Options, n int) *walker {
	w := &walker{
		graph:        g,
		opts:         o,
		ctx:          o.Ctx,
		n:            n,
		distance:     make([]int, n),
		predecessors: make([][]int, n),
		frontier:     make([]int, 0, n),
		queued:       make([]bool, n),
		unvisited:    make([]bool, n),
	}
	for i := 0; i < n; i++ {
		w.distance[i] = unset
		w.unvisited[i] = true
	}

	return w
}

// search fills distance and predecessors for every node reachable from start.
func (w *walker) search(start int) error {
	w.distance[start] = 0
	w.enqueue(start)

	for len(w.frontier) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		// peek; cur stays at the front (and unvisited) while it is expanded
		cur := w.frontier[0]
		if err := w.expand(cur); err != nil {
			return err
		}
		w.dequeue()
	}

	return nil
}

// expand relaxes every edge cur→i whose head is still unvisited.
// Self-edges are skipped.
func (w *walker) expand(cur int) error {
	for i := 0; i < w.n; i++ {
		if i == cur || !w.unvisited[i] {
			continue
		}
		ok, err := w.graph.HasEdge(cur, i)
		if err != nil {
			return fmt.Errorf("%w: %d->%d: %v", ErrEdgeLookup, cur, i, err)
		}
		if !ok {
			continue
		}

		fresh := !w.queued[i]
		if fresh {
			w.frontier = append(w.frontier, i)
			w.queued[i] = true
		}
		w.relax(cur, i)
		if fresh {
			w.opts.OnEnqueue(i, w.distance[i])
		}
	}

	return nil
}

// relax applies the tie-accumulating rule to edge cur→next.
func (w *walker) relax(cur, next int) {
	length := w.distance[cur] + 1
	switch d := w.distance[next]; {
	case d == unset || d == length:
		w.distance[next] = length
		w.predecessors[next] = append(w.predecessors[next], cur)
	case length < d:
		// strictly shorter route found after a longer one was recorded
		w.predecessors[next] = append(w.predecessors[next][:0], cur)
		w.distance[next] = length
	}
}

// enqueue seeds the frontier with the start node.
func (w *walker) enqueue(id int) {
	w.frontier = append(w.frontier, id)
	w.queued[id] = true
	w.opts.OnEnqueue(id, w.distance[id])
}

// dequeue removes the front node from the frontier and from unvisited.
func (w *walker) dequeue() {
	id := w.frontier[0]
	w.frontier = w.frontier[1:]
	w.queued[id] = false
	w.unvisited[id] = false
	w.opts.OnDequeue(id, w.distance[id])
}
