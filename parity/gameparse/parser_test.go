package gameparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xynxynxyn/lmc/parity"
	"github.com/xynxynxyn/lmc/parity/gameparse"
)

const sampleGame = `parity 3;
0 2 0 1,2;
1 1 1 2;
2 0 0 0 "sink";
`

func TestParseGameVertexCount(t *testing.T) {
	g, err := gameparse.ParseGame(sampleGame)
	assert.NoError(t, err)
	assert.Len(t, g.Vertices(), 3)
}

func TestParseGameOwnerAndPriority(t *testing.T) {
	g, err := gameparse.ParseGame(sampleGame)
	assert.NoError(t, err)
	assert.Equal(t, parity.Even, g.Owner(0))
	assert.Equal(t, parity.Odd, g.Owner(1))
	assert.Equal(t, 2, g.Priority(0))
}

func TestParseGameSuccessorsAndLabel(t *testing.T) {
	g, err := gameparse.ParseGame(sampleGame)
	assert.NoError(t, err)
	assert.Equal(t, []parity.VertexID{1, 2}, g.Successors(0))
	assert.Equal(t, "sink", g.Label(2))
}

func TestParseGameEmptyInput(t *testing.T) {
	_, err := gameparse.ParseGame("")
	assert.ErrorIs(t, err, gameparse.ErrEmptyInput)
}

func TestParseGameMalformedHeader(t *testing.T) {
	_, err := gameparse.ParseGame("not a header;\n0 0 0 ;\n")
	assert.ErrorIs(t, err, gameparse.ErrMalformedHeader)
}

func TestParseGameUnknownOwnerAccumulatesError(t *testing.T) {
	_, err := gameparse.ParseGame("parity 1;\n0 0 7 ;\n")
	assert.ErrorIs(t, err, gameparse.ErrUnknownOwner)
}

func TestParseGameAccumulatesMultipleErrors(t *testing.T) {
	_, err := gameparse.ParseGame("parity 2;\n0 0 7 ;\nbroken line\n")
	assert.ErrorIs(t, err, gameparse.ErrUnknownOwner)
	assert.ErrorIs(t, err, gameparse.ErrMalformedLine)
}

func TestParseGameUnknownSuccessorReference(t *testing.T) {
	_, err := gameparse.ParseGame("parity 1;\n0 0 0 5;\n")
	assert.ErrorIs(t, err, gameparse.ErrUnknownVertex)
}

func TestWriteGameRoundTrip(t *testing.T) {
	g, err := gameparse.ParseGame(sampleGame)
	assert.NoError(t, err)

	out := gameparse.WriteGame(g)
	g2, err := gameparse.ParseGame(out)
	assert.NoError(t, err)
	assert.Equal(t, g.Vertices(), g2.Vertices())
	assert.Equal(t, g.Successors(0), g2.Successors(0))
	assert.Equal(t, g.Label(2), g2.Label(2))
}

func TestWriteSolutionFormat(t *testing.T) {
	g := parity.NewGraph()
	g.AddVertex(0, parity.Even, 0, "")
	g.AddVertex(1, parity.Odd, 0, "")
	sol := parity.ConstructSolution(g,
		map[parity.VertexID]bool{0: true},
		map[parity.VertexID]bool{1: true},
		parity.Strategy{0: 1}, parity.Strategy{})

	out := gameparse.WriteSolution(sol)
	assert.Contains(t, out, "paritysol 1;\n")
	assert.Contains(t, out, "0 0 1;\n")
	assert.Contains(t, out, "1 1;\n")
}
