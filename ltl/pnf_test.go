package ltl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xynxynxyn/lmc/ltl"
)

// TestPNFRewrites covers worked rewrite examples: De Morgan,
// derived-operator elimination, and the temporal dualities.
func TestPNFRewrites(t *testing.T) {
	a, b := ltl.Atomic("a"), ltl.Atomic("b")

	cases := []struct {
		name  string
		input *ltl.Expr
		want  *ltl.Expr
	}{
		{"demorgan-and", ltl.Not(ltl.And(a, b)), ltl.Or(ltl.Not(a), ltl.Not(b))},
		{"finally", ltl.Finally(a), ltl.Until(ltl.True(), a)},
		{"globally", ltl.Globally(a), ltl.Release(ltl.False(), a)},
		{"weak-until", ltl.WeakUntil(a, b), ltl.Release(b, ltl.Or(a, b))},
		{"strong-release", ltl.StrongRelease(a, b), ltl.Until(b, ltl.And(a, b))},
		{"next-duality", ltl.Not(ltl.Next(a)), ltl.Next(ltl.Not(a))},
		{"until-duality", ltl.Not(ltl.Until(a, b)), ltl.Release(ltl.Not(a), ltl.Not(b))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ltl.PNF(c.input)
			assert.True(t, ltl.Equal(c.want, got), "got %s want %s", got, c.want)
		})
	}
}

// TestPNFIsIdempotent checks pnf(pnf(φ)) = pnf(φ).
func TestPNFIsIdempotent(t *testing.T) {
	a, b := ltl.Atomic("a"), ltl.Atomic("b")
	formulas := []*ltl.Expr{
		ltl.Finally(ltl.Globally(a)),
		ltl.Not(ltl.WeakUntil(a, b)),
		ltl.And(ltl.Not(a), ltl.Or(a, ltl.Next(b))),
		ltl.Not(ltl.StrongRelease(a, b)),
	}
	for _, f := range formulas {
		once := ltl.PNF(f)
		twice := ltl.PNF(once)
		assert.True(t, ltl.Equal(once, twice), "pnf not idempotent for %s", f)
	}
}

// TestPNFContainsNoDerivedOperators asserts the shape invariant: no G, F, W,
// M, or Not(non-atomic) survives.
func TestPNFContainsNoDerivedOperators(t *testing.T) {
	a, b := ltl.Atomic("a"), ltl.Atomic("b")
	formulas := []*ltl.Expr{
		ltl.Finally(ltl.Globally(a)),
		ltl.Not(ltl.Finally(ltl.And(a, b))),
		ltl.WeakUntil(ltl.Next(a), ltl.StrongRelease(a, b)),
	}
	for _, f := range formulas {
		got := ltl.PNF(f)
		assert.True(t, ltl.IsPNF(got), "expected %s to be in PNF", got)
	}
}

// TestPNFBooleanSimplification exercises the e∧¬e and X-distribution
// boolean simplification rules.
func TestPNFBooleanSimplification(t *testing.T) {
	a := ltl.Atomic("a")
	got := ltl.PNF(ltl.And(a, ltl.Not(a)))
	assert.True(t, ltl.Equal(ltl.False(), got))

	gotX := ltl.PNF(ltl.And(ltl.Next(a), ltl.Next(ltl.Atomic("b"))))
	assert.True(t, ltl.Equal(ltl.Next(ltl.And(a, ltl.Atomic("b"))), gotX))
}
