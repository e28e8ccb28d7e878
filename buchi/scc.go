package buchi

import "sort"

// Component is one strongly-connected component of an automaton's state
// graph, together with a triviality flag: a component is trivial iff it
// has exactly one member and that member has no self-loop.
type Component struct {
	States  []State
	Trivial bool
}

// tarjan holds the mutable bookkeeping for one Tarjan run: index/lowlink
// colors keyed by state id, an explicit on-stack set, and the DFS stack —
// the three-color idiom generalized to proper index/lowlink tracking
// instead of the White/Gray/Black flags a plain reachability DFS needs.
type tarjan struct {
	a         *Automaton
	index     map[State]int
	lowlink   map[State]int
	onStack   map[State]bool
	stack     []State
	nextIndex int
	comps     []Component
}

// SCCs returns every strongly-connected component of a's state graph via
// Tarjan's algorithm, iterating states in ascending id order for stable
// output.
func (a *Automaton) SCCs() []Component {
	t := &tarjan{
		a:       a,
		index:   make(map[State]int, a.numStates),
		lowlink: make(map[State]int, a.numStates),
		onStack: make(map[State]bool, a.numStates),
	}
	for _, s := range a.States() {
		if _, visited := t.index[s]; !visited {
			t.strongConnect(s)
		}
	}
	return t.comps
}

// strongConnect is the classic recursive Tarjan step. For graphs beyond
// ~10^4 states this should become an explicit stack; test-scale automata
// here stay well within the default goroutine stack.
func (t *tarjan) strongConnect(v State) {
	t.index[v] = t.nextIndex
	t.lowlink[v] = t.nextIndex
	t.nextIndex++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.a.AllSuccessors(v) {
		if _, visited := t.index[w]; !visited {
			t.strongConnect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] != t.index[v] {
		return
	}

	var members []State
	for {
		n := len(t.stack) - 1
		w := t.stack[n]
		t.stack = t.stack[:n]
		t.onStack[w] = false
		members = append(members, w)
		if w == v {
			break
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	t.comps = append(t.comps, Component{
		States:  members,
		Trivial: isTrivial(t.a, members),
	})
}

// isTrivial reports whether a one-member component's sole state lacks a
// self-loop — the only way a singleton component can fail to be an
// infinite-run-sustaining cycle.
func isTrivial(a *Automaton, members []State) bool {
	if len(members) != 1 {
		return false
	}
	v := members[0]
	for _, w := range a.AllSuccessors(v) {
		if w == v {
			return false
		}
	}
	return true
}

// nonTrivialComponents filters SCCs down to the non-trivial ones.
func nonTrivialComponents(comps []Component) []Component {
	out := make([]Component, 0, len(comps))
	for _, c := range comps {
		if !c.Trivial {
			out = append(out, c)
		}
	}
	return out
}
