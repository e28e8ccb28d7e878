package buchi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xynxynxyn/lmc/buchi"
)

func twoStateLoop(t *testing.T, label1, label2 string, withAccepting bool) *buchi.Automaton {
	t.Helper()
	a := buchi.NewAutomaton()
	s1 := a.InsertState()
	s2 := a.InsertState()
	assert.NoError(t, a.AddTransition(s1, label1, s2))
	assert.NoError(t, a.AddTransition(s2, label2, s1))
	assert.NoError(t, a.MarkInitial(s1))
	if withAccepting {
		assert.NoError(t, a.DeclareAccepting(s2))
	}
	return a
}

// TestVerifyTwoStateNBA covers both edges labeled "a". The shortest cycle
// recorded from the accepting state s2 traverses both edges before
// returning to s2, giving cycle "a,a" rather than a single "a".
func TestVerifyTwoStateNBA(t *testing.T) {
	a := twoStateLoop(t, "a", "a", true)
	empty, trace := a.Verify()
	assert.False(t, empty)
	assert.NotNil(t, trace)
	assert.Equal(t, "(a)(a,a)ω", trace.String())
}

// TestVerifyCounterWithLabels covers distinctly labeled edges, whose trace
// is pinned exactly.
func TestVerifyCounterWithLabels(t *testing.T) {
	a := twoStateLoop(t, "a", "b", true)
	empty, trace := a.Verify()
	assert.False(t, empty)
	assert.Equal(t, "(a)(b,a)ω", trace.String())
}

// TestVerifyNoAcceptingSetAcceptsEveryRun covers an automaton with no
// accepting set declared at all: an empty accepting family accepts every
// run, so the a/b cycle is reported as a counterexample.
func TestVerifyNoAcceptingSetAcceptsEveryRun(t *testing.T) {
	a := twoStateLoop(t, "a", "b", false)
	empty, trace := a.Verify()
	assert.False(t, empty)
	assert.NotNil(t, trace)
}

func TestVerifySingleStateNoTransitionsIsEmpty(t *testing.T) {
	a := buchi.NewAutomaton()
	s0 := a.InsertState()
	assert.NoError(t, a.MarkInitial(s0))
	assert.NoError(t, a.DeclareAccepting(s0))

	empty, trace := a.Verify()
	assert.True(t, empty)
	assert.Nil(t, trace)
}

func TestVerifySelfLoopAcceptingStateIsNonEmpty(t *testing.T) {
	a := buchi.NewAutomaton()
	s0 := a.InsertState()
	assert.NoError(t, a.AddTransition(s0, "a", s0))
	assert.NoError(t, a.MarkInitial(s0))
	assert.NoError(t, a.DeclareAccepting(s0))

	empty, trace := a.Verify()
	assert.False(t, empty)
	assert.Equal(t, "()(a)ω", trace.String())
}
