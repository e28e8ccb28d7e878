package buchi

// Degeneralize implements gnba_to_nba: the product construction with
// ℤ/kℤ that collapses a family of k accepting sets into a single one.
// If |F| ≤ 1, it returns a clone — already an NBA.
func (a *Automaton) Degeneralize() *Automaton {
	k := len(a.accepting)
	if k <= 1 {
		return a.Clone()
	}

	n := a.numStates
	out := NewAutomaton()
	for i := 0; i < n*k; i++ {
		out.InsertState()
	}
	// id renaming (q,i) -> q.id + i*n.
	id := func(q State, i int) State { return State(int(q) + i*n) }

	for i := 0; i < k; i++ {
		fi := a.accepting[i]
		for _, q := range a.States() {
			for _, label := range a.Labels(q) {
				for _, qp := range a.Successors(q, label) {
					nextI := i
					if fi[q] {
						nextI = (i + 1) % k
					}
					_ = out.AddTransition(id(q, i), label, id(qp, nextI))
				}
			}
			if l := a.Label(q); l != "" {
				_ = out.SetLabel(id(q, i), l)
			}
		}
	}

	for _, q0 := range a.Initial() {
		_ = out.MarkInitial(id(q0, 0))
	}

	lastF := a.accepting[k-1]
	acc := make([]State, 0, len(lastF))
	for q := range lastF {
		acc = append(acc, id(q, k-1))
	}
	_ = out.DeclareAccepting(acc...)

	return out
}
