package parity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xynxynxyn/lmc/parity"
)

func TestAttractorPullsThroughAlphaOwnedVertex(t *testing.T) {
	g := parity.NewGraph()
	g.AddVertex(0, parity.Even, 0, "")
	g.AddVertex(1, parity.Odd, 0, "")
	g.AddVertex(2, parity.Even, 0, "")
	assert.NoError(t, g.AddEdge(0, 1))
	assert.NoError(t, g.AddEdge(1, 2))

	z, sigma := parity.Attractor(g, parity.Even, map[parity.VertexID]bool{2: true})
	assert.True(t, z[0])
	assert.True(t, z[1])
	assert.True(t, z[2])
	assert.Equal(t, parity.VertexID(1), sigma[0])
}

func TestAttractorRequiresAllSuccessorsForOpponentOwned(t *testing.T) {
	g := parity.NewGraph()
	g.AddVertex(0, parity.Odd, 0, "")
	g.AddVertex(1, parity.Even, 0, "")
	g.AddVertex(2, parity.Even, 0, "")
	assert.NoError(t, g.AddEdge(0, 1))
	assert.NoError(t, g.AddEdge(0, 2))

	z, _ := parity.Attractor(g, parity.Even, map[parity.VertexID]bool{1: true})
	assert.True(t, z[1])
	assert.False(t, z[0])
	assert.False(t, z[2])
}

func TestAttractorIncludesOpponentOwnedWhenAllSuccessorsCovered(t *testing.T) {
	g := parity.NewGraph()
	g.AddVertex(0, parity.Odd, 0, "")
	g.AddVertex(1, parity.Even, 0, "")
	g.AddVertex(2, parity.Even, 0, "")
	assert.NoError(t, g.AddEdge(0, 1))
	assert.NoError(t, g.AddEdge(0, 2))

	z, _ := parity.Attractor(g, parity.Even, map[parity.VertexID]bool{1: true, 2: true})
	assert.True(t, z[0])
}

func TestAttractorSeedAlreadyCoversWholeGraph(t *testing.T) {
	g := parity.NewGraph()
	g.AddVertex(0, parity.Even, 0, "")
	z, _ := parity.Attractor(g, parity.Even, map[parity.VertexID]bool{0: true})
	assert.Equal(t, map[parity.VertexID]bool{0: true}, z)
}
