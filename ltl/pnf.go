package ltl

// maxPNFIterations bounds the simplify-until-fixpoint loop. Every rewrite
// either shrinks the tree or strictly reduces the count of non-canonical
// operators, so a correct input always converges well under this;
// tripping it is an internal bookkeeping violation, never a user error.
const maxPNFIterations = 10000

// PNF rewrites e into positive normal form: negations pushed to atoms, only
// True/False/Atomic/Not(Atomic)/Next/And/Or/Until/Release remain.
// Panics if the rewrite fails to converge — that can only happen if
// rewriteOnce itself violates the termination argument, a fatal bug.
func PNF(e *Expr) *Expr {
	cur := rewriteOnce(e)
	for i := 0; !IsPNF(cur); i++ {
		if i >= maxPNFIterations {
			panic("ltl: PNF rewrite did not converge: " + cur.String())
		}
		next := rewriteOnce(cur)
		if Equal(next, cur) {
			panic("ltl: PNF rewrite stalled before reaching PNF: " + cur.String())
		}
		cur = next
	}
	return cur
}

// IsPNF reports whether e is already in positive normal form.
func IsPNF(e *Expr) bool {
	switch e.Kind {
	case KindTrue, KindFalse, KindAtomic:
		return true
	case KindNot:
		return e.Left != nil && e.Left.Kind == KindAtomic
	case KindNext:
		return IsPNF(e.Left)
	case KindAnd, KindOr, KindUntil, KindRelease:
		return IsPNF(e.Left) && IsPNF(e.Right)
	default: // Globally, Finally, WeakUntil, StrongRelease
		return false
	}
}

// rewriteOnce applies one bottom-up pass of the rewrite rules: children
// are simplified first, then the rule for the current node's shape fires
// once. Repeated application (driven by PNF) reaches the fixed point.
func rewriteOnce(e *Expr) *Expr {
	switch e.Kind {
	case KindTrue, KindFalse, KindAtomic:
		return e
	case KindNot:
		return simplifyNot(rewriteOnce(e.Left))
	case KindNext:
		return Next(rewriteOnce(e.Left))
	case KindAnd:
		return simplifyAnd(rewriteOnce(e.Left), rewriteOnce(e.Right))
	case KindOr:
		return simplifyOr(rewriteOnce(e.Left), rewriteOnce(e.Right))
	case KindUntil:
		return Until(rewriteOnce(e.Left), rewriteOnce(e.Right))
	case KindRelease:
		return Release(rewriteOnce(e.Left), rewriteOnce(e.Right))
	case KindGlobally:
		// Ga ≡ false R a
		return Release(False(), rewriteOnce(e.Left))
	case KindFinally:
		// Fa ≡ true U a
		return Until(True(), rewriteOnce(e.Left))
	case KindWeakUntil:
		// a W b ≡ b R (a ∨ b)
		l, r := rewriteOnce(e.Left), rewriteOnce(e.Right)
		return Release(r, simplifyOr(l, r))
	case KindStrongRelease:
		// a M b ≡ b U (a ∧ b)
		l, r := rewriteOnce(e.Left), rewriteOnce(e.Right)
		return Until(r, simplifyAnd(l, r))
	default:
		return e
	}
}

// simplifyNot applies the duality and double-negation rules to Not(child),
// where child is already rewritten.
func simplifyNot(child *Expr) *Expr {
	switch child.Kind {
	case KindTrue:
		return False()
	case KindFalse:
		return True()
	case KindAtomic:
		return Not(child)
	case KindNot:
		return child.Left // ¬¬a ≡ a
	case KindAnd:
		// ¬(a∧b) ≡ ¬a ∨ ¬b
		return simplifyOr(simplifyNot(child.Left), simplifyNot(child.Right))
	case KindOr:
		// ¬(a∨b) ≡ ¬a ∧ ¬b
		return simplifyAnd(simplifyNot(child.Left), simplifyNot(child.Right))
	case KindNext:
		// ¬Xa ≡ X¬a
		return Next(simplifyNot(child.Left))
	case KindFinally:
		// ¬Fa ≡ G¬a
		return Globally(simplifyNot(child.Left))
	case KindGlobally:
		// ¬Ga ≡ F¬a
		return Finally(simplifyNot(child.Left))
	case KindUntil:
		// ¬(a U b) ≡ ¬a R ¬b
		return Release(simplifyNot(child.Left), simplifyNot(child.Right))
	case KindRelease:
		// ¬(a R b) ≡ ¬a U ¬b
		return Until(simplifyNot(child.Left), simplifyNot(child.Right))
	case KindWeakUntil:
		// ¬(a W b) ≡ (a∧¬b) U (¬a∧¬b)
		l, r := child.Left, child.Right
		return Until(simplifyAnd(l, simplifyNot(r)), simplifyAnd(simplifyNot(l), simplifyNot(r)))
	case KindStrongRelease:
		// ¬(a M b) ≡ ¬a W ¬b
		return WeakUntil(simplifyNot(child.Left), simplifyNot(child.Right))
	default:
		return Not(child)
	}
}

// simplifyAnd applies boolean simplification and the X-distribution rule to
// an And node whose operands are already rewritten.
func simplifyAnd(l, r *Expr) *Expr {
	switch {
	case l.Kind == KindTrue:
		return r
	case r.Kind == KindTrue:
		return l
	case l.Kind == KindFalse || r.Kind == KindFalse:
		return False()
	case isNegationOf(l, r):
		return False() // e ∧ ¬e ≡ false
	case l.Kind == KindNext && r.Kind == KindNext:
		return Next(simplifyAnd(l.Left, r.Left)) // Xa ∧ Xb ≡ X(a∧b)
	default:
		return And(l, r)
	}
}

// simplifyOr applies boolean simplification and the X-distribution rule to
// an Or node whose operands are already rewritten.
func simplifyOr(l, r *Expr) *Expr {
	switch {
	case l.Kind == KindTrue || r.Kind == KindTrue:
		return True()
	case l.Kind == KindFalse:
		return r
	case r.Kind == KindFalse:
		return l
	case l.Kind == KindNext && r.Kind == KindNext:
		return Next(simplifyOr(l.Left, r.Left)) // Xa ∨ Xb ≡ X(a∨b)
	default:
		return Or(l, r)
	}
}

// isNegationOf reports whether a is the negation of b.
func isNegationOf(a, b *Expr) bool {
	return Equal(a, Negate(b))
}
