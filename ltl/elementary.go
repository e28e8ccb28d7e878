package ltl

import (
	"sort"
	"strings"
)

// Set is an elementary set: a locally consistent, maximally-committed
// subset B ⊆ cl(φ). Membership of any closure formula — including
// ones never stored explicitly, such as a formal negation of a compound
// subformula — is derived recursively from the chosen positive subformulas,
// so exactly one of ψ, ¬ψ always holds by construction.
type Set struct {
	cl      []*Expr         // shared closure this set was built over, sorted
	members map[string]bool // positive-subformula String() -> chosen
}

// Contains reports whether ψ ∈ B.
func (s *Set) Contains(psi *Expr) bool {
	switch psi.Kind {
	case KindTrue:
		return true
	case KindFalse:
		return false
	case KindNot:
		return !s.Contains(psi.Left)
	default:
		return s.members[psi.String()]
	}
}

// Elements returns the explicit members of B, drawn from cl(φ) and sorted
// by Compare — the deterministic serialization used as an automaton state
// label.
func (s *Set) Elements() []*Expr {
	out := make([]*Expr, 0, len(s.cl))
	for _, e := range s.cl {
		if s.Contains(e) {
			out = append(out, e)
		}
	}
	return out
}

// String renders the elementary set as "{e1, e2, ...}" in Compare order —
// the deterministic label required for GNBA states.
func (s *Set) String() string {
	elems := s.Elements()
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// positiveSubformulas returns the non-constant, non-Not members of cl,
// preserving cl's Compare order — the basis over which elementary sets
// enumerate subsets.
func positiveSubformulas(cl []*Expr) []*Expr {
	out := make([]*Expr, 0, len(cl))
	for _, e := range cl {
		if e.Kind == KindTrue || e.Kind == KindFalse || e.Kind == KindNot {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ElementarySets enumerates every elementary set of phi: all subsets of the
// positive subformulas of cl(φ), each completed with the implied negations
// and filtered by the local consistency predicates. Returned in a
// deterministic order (ascending label string).
func ElementarySets(phi *Expr) []*Set {
	cl := Closure(phi)
	pos := positiveSubformulas(cl)
	n := len(pos)

	var result []*Set
	total := 1 << uint(n)
	for mask := 0; mask < total; mask++ {
		members := make(map[string]bool, n)
		for i, e := range pos {
			members[e.String()] = (mask>>uint(i))&1 == 1
		}
		s := &Set{cl: cl, members: members}
		if isLocallyConsistent(s, pos) {
			result = append(result, s)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].String() < result[j].String() })
	return result
}

// isLocallyConsistent checks the And/Or/Until/Release predicates for
// every positive subformula of the set's closure. The "exactly one of
// ψ, ¬ψ" predicate is guaranteed by Set.Contains's construction and needs
// no separate check.
func isLocallyConsistent(s *Set, pos []*Expr) bool {
	for _, e := range pos {
		switch e.Kind {
		case KindAnd:
			if s.Contains(e) != (s.Contains(e.Left) && s.Contains(e.Right)) {
				return false
			}
		case KindOr:
			if s.Contains(e) != (s.Contains(e.Left) || s.Contains(e.Right)) {
				return false
			}
		case KindUntil:
			psi1, psi2 := e.Left, e.Right
			if s.Contains(psi2) && !s.Contains(e) {
				return false
			}
			if s.Contains(e) && !s.Contains(psi2) && !s.Contains(psi1) {
				return false
			}
		case KindRelease:
			psi1, psi2 := e.Left, e.Right
			if s.Contains(psi1) && s.Contains(psi2) && !s.Contains(e) {
				return false
			}
			if s.Contains(e) && !s.Contains(psi1) && !s.Contains(psi2) {
				return false
			}
		}
	}
	return true
}
