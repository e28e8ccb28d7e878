package buchi

import "strings"

// Trace is a finite prefix and a non-empty cycle denoting the ω-word
// u·v^ω that witnesses non-emptiness.
type Trace struct {
	Prefix []string
	Cycle  []string
}

// String renders the trace as "(u1,u2,...)(v1,v2,...)ω".
func (t *Trace) String() string {
	return "(" + strings.Join(t.Prefix, ",") + ")(" + strings.Join(t.Cycle, ",") + ")ω"
}

// Verify is the emptiness check: returns (true, nil) if the
// automaton's language is empty, or (false, trace) with a counter-example
// otherwise. Total: undefined transitions are treated as having no
// successors, never an error.
func (a *Automaton) Verify() (bool, *Trace) {
	// Steps 1-2: a GNBA-level short-circuit. If any declared accepting set
	// is disjoint from every non-trivial SCC of the original automaton,
	// the language is empty without needing to degeneralize.
	origNonTrivial := nonTrivialComponents(a.SCCs())
	if len(a.accepting) > 0 {
		covered := unionStates(origNonTrivial)
		for _, fi := range a.accepting {
			if !intersects(fi, covered) {
				return true, nil
			}
		}
	}

	// Step 3: degeneralize and recompute non-trivial SCCs on the NBA.
	nba := a.Degeneralize()
	nbaComps := nonTrivialComponents(nba.SCCs())
	compOf := make(map[State]*Component, nba.numStates)
	for i := range nbaComps {
		c := &nbaComps[i]
		for _, s := range c.States {
			compOf[s] = c
		}
	}

	// Step 4: A is the union of declared accepting sets post-degeneralization
	// (at most one, per Degeneralize's postcondition). Empty A means every
	// infinite run accepts — substitute one representative per non-trivial
	// SCC.
	A := make(map[State]bool)
	if len(nba.accepting) > 0 {
		for s := range nba.accepting[0] {
			A[s] = true
		}
	}
	if len(A) == 0 {
		for _, c := range nbaComps {
			A[c.States[0]] = true
		}
	}

	// Step 5: BFS from every initial state, first-wins prefix recording.
	prefixWord := make(map[State][]string, nba.numStates)
	visited := make(map[State]bool, nba.numStates)
	var queue []State
	for _, s0 := range nba.Initial() {
		if !visited[s0] {
			visited[s0] = true
			prefixWord[s0] = []string{}
			queue = append(queue, s0)
		}
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		if A[s] {
			if c, ok := compOf[s]; ok {
				if cycle := shortestCycle(nba, s, c); cycle != nil {
					return false, &Trace{Prefix: prefixWord[s], Cycle: cycle}
				}
			}
		}

		for _, label := range nba.Labels(s) {
			for _, t := range nba.Successors(s, label) {
				if visited[t] {
					continue
				}
				visited[t] = true
				word := append(append([]string{}, prefixWord[s]...), label)
				prefixWord[t] = word
				queue = append(queue, t)
			}
		}
	}

	// Step 6: no witnessing state reachable.
	return true, nil
}

// shortestCycle performs the constrained cycle search: a BFS confined to
// comp's members, returning the shortest word-labeled cycle from start
// back to itself, or nil if comp has none (should not happen for a
// genuine non-trivial SCC).
func shortestCycle(a *Automaton, start State, comp *Component) []string {
	inComp := make(map[State]bool, len(comp.States))
	for _, s := range comp.States {
		inComp[s] = true
	}

	type qitem struct {
		s    State
		word []string
	}
	visited := map[State]bool{start: true}
	queue := []qitem{{start, nil}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, label := range a.Labels(cur.s) {
			for _, t := range a.Successors(cur.s, label) {
				if !inComp[t] {
					continue
				}
				word := append(append([]string{}, cur.word...), label)
				if t == start {
					return word
				}
				if !visited[t] {
					visited[t] = true
					queue = append(queue, qitem{t, word})
				}
			}
		}
	}
	return nil
}

// unionStates flattens a set of components into a single membership map.
func unionStates(comps []Component) map[State]bool {
	out := make(map[State]bool)
	for _, c := range comps {
		for _, s := range c.States {
			out[s] = true
		}
	}
	return out
}

// intersects reports whether fi and covered share any state.
func intersects(fi map[State]bool, covered map[State]bool) bool {
	for s := range fi {
		if covered[s] {
			return true
		}
	}
	return false
}
