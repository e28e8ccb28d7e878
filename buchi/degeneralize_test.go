package buchi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xynxynxyn/lmc/buchi"
)

// buildThreeCycleGNBA builds a three-state cycle: a→b on "x", b→c on "y",
// c→a on "z", initial c, two accepting sets {a} and {b}.
func buildThreeCycleGNBA(t *testing.T) (a, b, c buchi.State, aut *buchi.Automaton) {
	t.Helper()
	aut = buchi.NewAutomaton()
	a = aut.InsertState()
	b = aut.InsertState()
	c = aut.InsertState()
	assert.NoError(t, aut.AddTransition(a, "x", b))
	assert.NoError(t, aut.AddTransition(b, "y", c))
	assert.NoError(t, aut.AddTransition(c, "z", a))
	assert.NoError(t, aut.MarkInitial(c))
	assert.NoError(t, aut.DeclareAccepting(a))
	assert.NoError(t, aut.DeclareAccepting(b))
	return a, b, c, aut
}

func TestDegeneralizeProducesSingleAcceptingSet(t *testing.T) {
	_, _, _, aut := buildThreeCycleGNBA(t)
	nba := aut.Degeneralize()
	assert.True(t, nba.IsNBA())
	assert.Len(t, nba.Accepting(), 1)
}

func TestDegeneralizeStateCountIsProductOfKAndN(t *testing.T) {
	_, _, _, aut := buildThreeCycleGNBA(t)
	nba := aut.Degeneralize()
	assert.Equal(t, 6, nba.NumStates())
}

func TestDegeneralizeOfAlreadyNBAIsClone(t *testing.T) {
	aut := buchi.NewAutomaton()
	s0 := aut.InsertState()
	assert.NoError(t, aut.AddTransition(s0, "a", s0))
	assert.NoError(t, aut.MarkInitial(s0))
	assert.NoError(t, aut.DeclareAccepting(s0))

	nba := aut.Degeneralize()
	assert.Equal(t, aut.NumStates(), nba.NumStates())
	assert.Equal(t, aut.Accepting(), nba.Accepting())
}

func TestDegeneralizeThenVerifyFindsTrace(t *testing.T) {
	_, _, _, aut := buildThreeCycleGNBA(t)
	empty, trace := aut.Verify()
	assert.False(t, empty)
	assert.NotNil(t, trace)
}
