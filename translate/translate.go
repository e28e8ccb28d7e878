package translate

import (
	"sort"
	"strings"

	"github.com/xynxynxyn/lmc/buchi"
	"github.com/xynxynxyn/lmc/ltl"
)

// LTLToGNBA constructs the tableau automaton for phi. phi is first
// rewritten to positive normal form; the resulting automaton's states are
// labeled with a deterministic serialization of their elementary set.
func LTLToGNBA(phi *ltl.Expr) *buchi.Automaton {
	pnf := ltl.PNF(phi)
	cl := ltl.Closure(pnf)
	sets := ltl.ElementarySets(pnf)
	alphabet := ltl.Alphabet(pnf)

	gnba := buchi.NewAutomaton()
	ids := make([]buchi.State, len(sets))
	for i, s := range sets {
		ids[i] = gnba.InsertState()
		_ = gnba.SetLabel(ids[i], s.String())
	}

	for i, s := range sets {
		if s.Contains(pnf) {
			_ = gnba.MarkInitial(ids[i])
		}
	}

	// Accepting family: one set per until-subformula.
	for _, psi := range cl {
		if psi.Kind != ltl.KindUntil {
			continue
		}
		var members []buchi.State
		for i, s := range sets {
			if !s.Contains(psi) || s.Contains(psi.Right) {
				members = append(members, ids[i])
			}
		}
		_ = gnba.DeclareAccepting(members...)
	}

	for i, b := range sets {
		label := labelOf(b, alphabet)
		for j, bp := range sets {
			if transitionHolds(cl, b, bp) {
				_ = gnba.AddTransition(ids[i], label, ids[j])
			}
		}
	}

	return gnba
}

// labelOf renders B ∩ Σ as the deterministic comma-joined string the
// resulting edges are labeled with.
func labelOf(b *ltl.Set, alphabet []*ltl.Expr) string {
	var members []string
	for _, a := range alphabet {
		if b.Contains(a) {
			members = append(members, a.String())
		}
	}
	sort.Strings(members)
	return strings.Join(members, ",")
}

// transitionHolds reports whether B -> B' is a valid edge: every Next/Until/
// Release subformula of cl must satisfy its bi-implication simultaneously.
// Boolean connectives and literals impose no edge constraint — their
// membership is already pinned by each set's own local consistency.
func transitionHolds(cl []*ltl.Expr, b, bp *ltl.Set) bool {
	for _, psi := range cl {
		switch psi.Kind {
		case ltl.KindNext:
			if b.Contains(psi) != bp.Contains(psi.Left) {
				return false
			}
		case ltl.KindUntil:
			want := b.Contains(psi.Right) || (b.Contains(psi.Left) && bp.Contains(psi))
			if b.Contains(psi) != want {
				return false
			}
		case ltl.KindRelease:
			want := (b.Contains(psi.Left) && b.Contains(psi.Right)) ||
				(b.Contains(psi.Right) && bp.Contains(psi))
			if b.Contains(psi) != want {
				return false
			}
		}
	}
	return true
}
