package ltl

import "sort"

// Closure returns cl(φ): the smallest set containing φ, closed under
// subformula and under negation, with ¬¬ψ identified with ψ and ¬true/¬false
// folded to false/true. The result is deduplicated and sorted by Compare
// for deterministic downstream iteration.
func Closure(phi *Expr) []*Expr {
	sub := subformulas(phi)
	all := make([]*Expr, 0, 2*len(sub))
	all = append(all, sub...)
	for _, s := range sub {
		all = append(all, Negate(s))
	}
	return dedupSorted(all)
}

// subformulas returns every subformula of e, itself included, with no
// negations synthesized (that is Closure's job). Duplicates are expected
// and removed by the caller.
func subformulas(e *Expr) []*Expr {
	out := []*Expr{e}
	switch {
	case e.Kind.unary():
		out = append(out, subformulas(e.Left)...)
	case e.Kind.binary():
		out = append(out, subformulas(e.Left)...)
		out = append(out, subformulas(e.Right)...)
	}
	return out
}

// dedupSorted sorts exprs by Compare and removes structural duplicates.
func dedupSorted(exprs []*Expr) []*Expr {
	sort.Slice(exprs, func(i, j int) bool { return Compare(exprs[i], exprs[j]) < 0 })
	out := exprs[:0:0]
	for i, e := range exprs {
		if i == 0 || Compare(exprs[i-1], e) != 0 {
			out = append(out, e)
		}
	}
	return out
}
