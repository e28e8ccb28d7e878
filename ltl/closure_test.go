package ltl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xynxynxyn/lmc/ltl"
)

// TestClosureContainsSubformulasAndNegations verifies cl(φ) is closed under
// subformula and negation; φ has no constants, so neither true nor false
// is in cl(φ).
func TestClosureContainsSubformulasAndNegations(t *testing.T) {
	a, b := ltl.Atomic("a"), ltl.Atomic("b")
	phi := ltl.Until(a, b)
	cl := ltl.Closure(phi)

	contains := func(e *ltl.Expr) bool {
		for _, c := range cl {
			if ltl.Equal(c, e) {
				return true
			}
		}
		return false
	}

	assert.True(t, contains(phi))
	assert.True(t, contains(a))
	assert.True(t, contains(b))
	assert.True(t, contains(ltl.Not(a)))
	assert.True(t, contains(ltl.Not(b)))
	assert.True(t, contains(ltl.Not(phi)))
	assert.False(t, contains(ltl.True()))
	assert.False(t, contains(ltl.False()))
}

// TestClosureIsDeduplicated ensures repeated subformulas collapse to one
// entry regardless of how many times they're reachable.
func TestClosureIsDeduplicated(t *testing.T) {
	a := ltl.Atomic("a")
	phi := ltl.And(a, a)
	cl := ltl.Closure(phi)

	count := 0
	for _, c := range cl {
		if ltl.Equal(c, a) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

// TestClosureSortedDeterministic checks two calls on equal formulas produce
// identically ordered output.
func TestClosureSortedDeterministic(t *testing.T) {
	phi := ltl.Release(ltl.Atomic("x"), ltl.Atomic("y"))
	cl1 := ltl.Closure(phi)
	cl2 := ltl.Closure(ltl.Release(ltl.Atomic("x"), ltl.Atomic("y")))
	assert.Equal(t, len(cl1), len(cl2))
	for i := range cl1 {
		assert.True(t, ltl.Equal(cl1[i], cl2[i]))
	}
}
