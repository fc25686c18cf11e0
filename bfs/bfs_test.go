package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/allpaths/bfs"
	"github.com/katalvlaran/allpaths/matrix"
)

// ComputeSuite exercises Compute over small hand-built matrices.
type ComputeSuite struct {
	suite.Suite
}

func TestComputeSuite(t *testing.T) {
	suite.Run(t, new(ComputeSuite))
}

func (s *ComputeSuite) load(rows ...string) *matrix.Adjacency {
	a, err := matrix.Load(rows)
	require.NoError(s.T(), err)
	return a
}

// TestSampleUniquePath: edges 0→1, 0→2, 1→0, 2→0, 2→3, 3→2; only 0→2→3 reaches 3.
func (s *ComputeSuite) TestSampleUniquePath() {
	g := s.load("0110", "1000", "1001", "0010")
	res, err := bfs.Compute(g, 0, 3)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found())
	require.Equal(s.T(), []bfs.Path{{0, 2, 3}}, res.Paths)
	require.Equal(s.T(), 2, res.Hops())
	require.False(s.T(), res.Truncated)
}

// TestStartEqualsEnd returns the single trivial path for every node.
func (s *ComputeSuite) TestStartEqualsEnd() {
	g := s.load("0110", "1000", "1001", "0010")
	for v := 0; v < g.NodeCount(); v++ {
		res, err := bfs.Compute(g, v, v)
		require.NoError(s.T(), err)
		require.Equal(s.T(), []bfs.Path{{v}}, res.Paths, "node %d", v)
		require.Equal(s.T(), 0, res.Hops())
	}
}

// TestStartEqualsEndIsolated holds even for a node with no edges at all.
func (s *ComputeSuite) TestStartEqualsEndIsolated() {
	g := s.load("00", "00")
	res, err := bfs.Compute(g, 1, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []bfs.Path{{1}}, res.Paths)
}

// TestDisconnectedNode: node 3 only has a self-edge.
func (s *ComputeSuite) TestDisconnectedNode() {
	g := s.load("0110", "1010", "1100", "0001")
	res, err := bfs.Compute(g, 0, 3)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Found())
	require.Empty(s.T(), res.Paths)
	require.Equal(s.T(), -1, res.Hops())
	_, ok := res.Distance(3)
	require.False(s.T(), ok)
}

// TestDirectionMatters: 1→0 exists but 0→1 does not.
func (s *ComputeSuite) TestDirectionMatters() {
	g := s.load("00", "10")
	res, err := bfs.Compute(g, 0, 1)
	require.NoError(s.T(), err)
	require.Empty(s.T(), res.Paths)

	res, err = bfs.Compute(g, 1, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []bfs.Path{{1, 0}}, res.Paths)
}

// TestDiamondTie: 0→1→3 and 0→2→3 are both shortest.
func (s *ComputeSuite) TestDiamondTie() {
	g := s.load("0110", "0001", "0001", "0000")
	res, err := bfs.Compute(g, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []bfs.Path{{0, 1, 3}, {0, 2, 3}}, res.Paths)
	require.Equal(s.T(), []int{1, 2}, res.Predecessors(3))
}

// TestCrossProductOfTies: two tied layers give 2×2 paths.
func (s *ComputeSuite) TestCrossProductOfTies() {
	g := s.load(
		"011000", // 0→1, 0→2
		"000110", // 1→3, 1→4
		"000110", // 2→3, 2→4
		"000001", // 3→5
		"000001", // 4→5
		"000000",
	)
	res, err := bfs.Compute(g, 0, 5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []bfs.Path{
		{0, 1, 3, 5},
		{0, 2, 3, 5},
		{0, 1, 4, 5},
		{0, 2, 4, 5},
	}, res.Paths)
	require.Equal(s.T(), 3, res.Hops())
}

// TestInsertionOrderNotNumeric: predecessors of 3 are recorded as [5, 2]
// because 5 is expanded before 2, so the path through 5 comes first.
func (s *ComputeSuite) TestInsertionOrderNotNumeric() {
	g := s.load(
		"010010", // 0→1, 0→4
		"000001", // 1→5
		"000100", // 2→3
		"000000",
		"001000", // 4→2
		"000100", // 5→3
	)
	res, err := bfs.Compute(g, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{5, 2}, res.Predecessors(3))
	require.Equal(s.T(), []bfs.Path{{0, 1, 5, 3}, {0, 4, 2, 3}}, res.Paths)
}

// TestLongerRouteIgnored: 0→3 directly beats 0→1→2→3.
func (s *ComputeSuite) TestLongerRouteIgnored() {
	g := s.load("0101", "0010", "0001", "0000")
	res, err := bfs.Compute(g, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []bfs.Path{{0, 3}}, res.Paths)
	require.Equal(s.T(), []int{0}, res.Predecessors(3))
}

// TestSelfEdgesIgnored: a full diagonal changes nothing.
func (s *ComputeSuite) TestSelfEdgesIgnored() {
	plain := s.load("0110", "0001", "0001", "0000")
	looped := s.load("1110", "0101", "0011", "0001")
	a, err := bfs.Compute(plain, 0, 3)
	require.NoError(s.T(), err)
	b, err := bfs.Compute(looped, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Paths, b.Paths)
	require.Empty(s.T(), b.Predecessors(0))
}

// TestCycleBackToStart: edges into start never give it predecessors.
func (s *ComputeSuite) TestCycleBackToStart() {
	g := s.load("010", "001", "100")
	res, err := bfs.Compute(g, 0, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []bfs.Path{{0, 1, 2}}, res.Paths)
	require.Empty(s.T(), res.Predecessors(0))
	d, ok := res.Distance(0)
	require.True(s.T(), ok)
	require.Equal(s.T(), 0, d)
}

// TestDistancesAndPredecessors checks the exposed search tables.
func (s *ComputeSuite) TestDistancesAndPredecessors() {
	g := s.load("0110", "1000", "1001", "0010")
	res, err := bfs.Compute(g, 0, 3)
	require.NoError(s.T(), err)
	for v, want := range []int{0, 1, 1, 2} {
		d, ok := res.Distance(v)
		require.True(s.T(), ok)
		require.Equal(s.T(), want, d, "distance[%d]", v)
	}
	require.Equal(s.T(), []int{0}, res.Predecessors(1))
	require.Equal(s.T(), []int{2}, res.Predecessors(3))

	_, ok := res.Distance(-1)
	require.False(s.T(), ok)
	require.Nil(s.T(), res.Predecessors(42))

	// returned slices are copies
	p := res.Predecessors(3)
	p[0] = 99
	require.Equal(s.T(), []int{2}, res.Predecessors(3))
}

// TestErrors verifies invalid inputs and options are rejected.
func (s *ComputeSuite) TestErrors() {
	g := s.load("01", "00")

	_, err := bfs.Compute(nil, 0, 0)
	require.ErrorIs(s.T(), err, bfs.ErrGraphNil)

	for _, se := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		res, err := bfs.Compute(g, se[0], se[1])
		require.Nil(s.T(), res)
		require.ErrorIs(s.T(), err, bfs.ErrIndexOutOfRange, "Compute(%d,%d)", se[0], se[1])
	}

	_, err = bfs.Compute(g, 0, 1, bfs.WithMaxPaths(-1))
	require.ErrorIs(s.T(), err, bfs.ErrOptionViolation)
}

// TestMaxPaths caps enumeration and reports truncation only when paths remain.
func (s *ComputeSuite) TestMaxPaths() {
	g := s.load("011000", "000110", "000110", "000001", "000001", "000000")

	res, err := bfs.Compute(g, 0, 5, bfs.WithMaxPaths(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []bfs.Path{{0, 1, 3, 5}, {0, 2, 3, 5}}, res.Paths)
	require.True(s.T(), res.Truncated)

	res, err = bfs.Compute(g, 0, 5, bfs.WithMaxPaths(4))
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Paths, 4)
	require.False(s.T(), res.Truncated)

	res, err = bfs.Compute(g, 0, 5, bfs.WithMaxPaths(0))
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Paths, 4)
}

// TestHooks asserts enqueue/dequeue order and depths on the sample graph.
func (s *ComputeSuite) TestHooks() {
	g := s.load("0110", "1000", "1001", "0010")
	var enq, deq []string
	_, err := bfs.Compute(g, 0, 3,
		bfs.WithOnEnqueue(func(node, depth int) { enq = append(enq, fmt.Sprintf("%d@%d", node, depth)) }),
		bfs.WithOnDequeue(func(node, depth int) { deq = append(deq, fmt.Sprintf("%d@%d", node, depth)) }),
	)
	require.NoError(s.T(), err)
	want := []string{"0@0", "1@1", "2@1", "3@2"}
	require.Equal(s.T(), want, enq)
	require.Equal(s.T(), want, deq)
}

// TestCancellation verifies that a cancelled context halts the search.
func (s *ComputeSuite) TestCancellation() {
	g := s.load("01", "00")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Compute(g, 0, 1, bfs.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// brokenGraph fails every edge lookup.
type brokenGraph struct{ n int }

var errBroken = errors.New("broken")

func (b brokenGraph) NodeCount() int                 { return b.n }
func (b brokenGraph) HasEdge(_, _ int) (bool, error) { return false, errBroken }

// TestEdgeLookupFailure surfaces graph errors as ErrEdgeLookup.
func (s *ComputeSuite) TestEdgeLookupFailure() {
	_, err := bfs.Compute(brokenGraph{n: 3}, 0, 2)
	require.ErrorIs(s.T(), err, bfs.ErrEdgeLookup)
}

// TestConcurrentSafety runs many searches on one shared matrix.
func (s *ComputeSuite) TestConcurrentSafety() {
	g := s.load("011000", "000110", "000110", "000001", "000001", "000000")
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func(end int) {
			res, err := bfs.Compute(g, 0, end)
			if err == nil && !res.Found() {
				err = fmt.Errorf("no path to %d", end)
			}
			errs <- err
		}(i % 6)
	}
	for i := 0; i < 8; i++ {
		require.NoError(s.T(), <-errs)
	}
}

func TestPathString(t *testing.T) {
	require.Equal(t, "0 -> 2 -> 3", bfs.Path{0, 2, 3}.String())
	require.Equal(t, "7", bfs.Path{7}.String())
	require.Equal(t, "", bfs.Path{}.String())
	require.Equal(t, 2, bfs.Path{0, 2, 3}.Hops())
	require.Equal(t, 0, bfs.Path{}.Hops())
}

func TestNilResult(t *testing.T) {
	var r *bfs.Result
	require.False(t, r.Found())
	require.Equal(t, -1, r.Hops())
	require.Nil(t, r.Predecessors(0))
}
