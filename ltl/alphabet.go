package ltl

import "sort"

// Alphabet returns the atoms of phi together with their negations, sorted
// by atom name with each atom directly followed by its negation:
// Atomic(a1), ¬Atomic(a1), Atomic(a2), ¬Atomic(a2), ...
func Alphabet(phi *Expr) []*Expr {
	names := atomNames(phi, map[string]bool{})
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	out := make([]*Expr, 0, 2*len(sorted))
	for _, name := range sorted {
		a := Atomic(name)
		out = append(out, a, Not(a))
	}
	return out
}

// atomNames collects every distinct atom name reachable from e into seen,
// returning it for convenience.
func atomNames(e *Expr, seen map[string]bool) map[string]bool {
	switch {
	case e.Kind == KindAtomic:
		seen[e.Atom] = true
	case e.Kind.unary():
		atomNames(e.Left, seen)
	case e.Kind.binary():
		atomNames(e.Left, seen)
		atomNames(e.Right, seen)
	}
	return seen
}
