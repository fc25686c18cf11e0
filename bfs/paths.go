package bfs

// pathCollector walks the predecessor relation from end back to start.
type pathCollector struct {
	preds  [][]int
	start  int
	limit  int
	stack  []int // end-first trail of the branch being explored
	out    []Path
	capped bool
}

// enumerate returns every path start→end encoded by preds, in depth-first
// order over predecessors as recorded. limit > 0 caps the count; the second
// result reports whether the cap cut enumeration short.
func enumerate(preds [][]int, start, end, limit int) ([]Path, bool) {
	if start == end {
		return []Path{{start}}, false
	}
	if len(preds[end]) == 0 {
		return nil, false
	}

	c := &pathCollector{preds: preds, start: start, limit: limit}
	c.walk(end)

	return c.out, c.capped
}

// walk pushes node onto the trail and branches over its predecessors.
// Reaching start closes one path.
func (c *pathCollector) walk(node int) {
	if c.capped {
		return
	}
	c.stack = append(c.stack, node)
	defer func() { c.stack = c.stack[:len(c.stack)-1] }()

	if node == c.start {
		if c.limit > 0 && len(c.out) == c.limit {
			c.capped = true
			return
		}
		c.out = append(c.out, c.materialize())
		return
	}
	for _, p := range c.preds[node] {
		c.walk(p)
		if c.capped {
			return
		}
	}
}

// materialize copies the trail reversed into start→end order.
func (c *pathCollector) materialize() Path {
	p := make(Path, len(c.stack))
	for i, v := range c.stack {
		p[len(c.stack)-1-i] = v
	}

	return p
}
