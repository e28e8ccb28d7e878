package tangle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xynxynxyn/lmc/parity"
	"github.com/xynxynxyn/lmc/solve/tangle"
)

func TestSolveEmptyGraph(t *testing.T) {
	g := parity.NewGraph()
	sol := tangle.Solve(g)
	assert.Empty(t, sol.Strategy)
}

func TestSolveSingleEvenSelfLoopIsWonByEven(t *testing.T) {
	g := parity.NewGraph()
	g.AddVertex(0, parity.Even, 0, "")
	assert.NoError(t, g.AddEdge(0, 0))

	sol := tangle.Solve(g)
	assert.True(t, sol.WEven[0])
	assert.False(t, sol.WOdd[0])
}

func TestSolveSingleOddSelfLoopIsWonByOdd(t *testing.T) {
	g := parity.NewGraph()
	g.AddVertex(0, parity.Odd, 1, "")
	assert.NoError(t, g.AddEdge(0, 0))

	sol := tangle.Solve(g)
	assert.True(t, sol.WOdd[0])
}

func TestSolveForcedCycleHighestPriorityDetermines(t *testing.T) {
	g := parity.NewGraph()
	g.AddVertex(0, parity.Even, 1, "")
	g.AddVertex(1, parity.Odd, 0, "")
	assert.NoError(t, g.AddEdge(0, 1))
	assert.NoError(t, g.AddEdge(1, 0))

	sol := tangle.Solve(g)
	assert.True(t, sol.WOdd[0])
	assert.True(t, sol.WOdd[1])
}

func TestSolvePartitionsEveryVertex(t *testing.T) {
	g := parity.NewGraph()
	g.AddVertex(0, parity.Even, 2, "")
	g.AddVertex(1, parity.Odd, 1, "")
	g.AddVertex(2, parity.Even, 0, "")
	assert.NoError(t, g.AddEdge(0, 1))
	assert.NoError(t, g.AddEdge(1, 2))
	assert.NoError(t, g.AddEdge(2, 0))

	sol := tangle.Solve(g)
	for _, v := range g.Vertices() {
		assert.True(t, sol.WEven[v] != sol.WOdd[v])
	}
}

func TestSolveWinnerCanChooseFavorableSuccessor(t *testing.T) {
	g := parity.NewGraph()
	g.AddVertex(0, parity.Even, 2, "")
	g.AddVertex(1, parity.Even, 0, "")
	g.AddVertex(2, parity.Odd, 1, "")
	assert.NoError(t, g.AddEdge(0, 1))
	assert.NoError(t, g.AddEdge(1, 1))
	assert.NoError(t, g.AddEdge(0, 2))
	assert.NoError(t, g.AddEdge(2, 2))

	sol := tangle.Solve(g)
	assert.True(t, sol.WEven[0])
	assert.NotNil(t, sol.Strategy[0].Next)
	assert.Equal(t, parity.VertexID(1), *sol.Strategy[0].Next)
}

func TestSolveOriginalGraphIsUnmodified(t *testing.T) {
	g := parity.NewGraph()
	g.AddVertex(0, parity.Even, 0, "")
	assert.NoError(t, g.AddEdge(0, 0))

	_ = tangle.Solve(g)
	assert.Equal(t, 1, g.NumVertices())
	assert.Equal(t, []parity.VertexID{0}, g.Successors(0))
}
