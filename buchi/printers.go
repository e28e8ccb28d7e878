package buchi

import (
	"fmt"
	"strconv"
	"strings"
)

// HOA serializes the automaton in Hanoi Omega-Automata v1 text format:
// header, an Acceptance line naming the generalized-Büchi condition
// (or "0 t" when no accepting set is declared), a --BODY-- section with one
// State block per state and one edge line per (label, target) pair
// annotated with the source state's accepting-set membership, and --END--.
func (a *Automaton) HOA() string {
	var b strings.Builder

	fmt.Fprintln(&b, "HOA: v1")
	fmt.Fprintf(&b, "States: %d\n", a.numStates)

	if initial := a.Initial(); len(initial) > 0 {
		ids := make([]string, len(initial))
		for i, s := range initial {
			ids[i] = strconv.Itoa(int(s))
		}
		fmt.Fprintf(&b, "Start: %s\n", strings.Join(ids, " & "))
	}

	if k := len(a.accepting); k == 0 {
		fmt.Fprintln(&b, "Acceptance: 0 t")
	} else {
		terms := make([]string, k)
		for i := range terms {
			terms[i] = fmt.Sprintf("Inf(%d)", i)
		}
		fmt.Fprintf(&b, "Acceptance: %d %s\n", k, strings.Join(terms, "&"))
	}

	fmt.Fprintln(&b, "--BODY--")
	for _, s := range a.States() {
		if label := a.Label(s); label != "" {
			fmt.Fprintf(&b, "State: %d %q\n", s, label)
		} else {
			fmt.Fprintf(&b, "State: %d\n", s)
		}
		for _, l := range a.Labels(s) {
			for _, t := range a.Successors(s, l) {
				accSets := acceptingIndices(a, s)
				fmt.Fprintf(&b, "{%s} %d {%s}\n", l, t, strings.Join(accSets, " "))
			}
		}
	}
	fmt.Fprintln(&b, "--END--")

	return b.String()
}

// acceptingIndices returns, as decimal strings, every index i such that
// s ∈ F_i — the accepting-set marks HOA attaches to s's outgoing edges.
func acceptingIndices(a *Automaton, s State) []string {
	var out []string
	for i, set := range a.accepting {
		if set[s] {
			out = append(out, strconv.Itoa(i))
		}
	}
	return out
}

// DOT serializes the automaton as Graphviz DOT: accepting states are drawn
// as doublecircle, the initial states are marked with an incoming arrow from
// an invisible start point, and each transition is one labeled edge.
func (a *Automaton) DOT() string {
	var b strings.Builder

	fmt.Fprintln(&b, "digraph automaton {")
	fmt.Fprintln(&b, "\trankdir=LR;")

	initial := make(map[State]bool)
	for _, s := range a.Initial() {
		initial[s] = true
	}
	accepting := make(map[State]bool)
	for _, set := range a.accepting {
		for s := range set {
			accepting[s] = true
		}
	}

	for _, s := range a.States() {
		shape := "circle"
		if accepting[s] {
			shape = "doublecircle"
		}
		name := strconv.Itoa(int(s))
		if l := a.Label(s); l != "" {
			name = fmt.Sprintf("%d: %s", s, l)
		}
		fmt.Fprintf(&b, "\t%d [shape=%s, label=%q];\n", s, shape, name)
	}
	for i, s := range a.States() {
		if initial[s] {
			start := fmt.Sprintf("__start%d", i)
			fmt.Fprintf(&b, "\t%s [shape=point, label=\"\"];\n", start)
			fmt.Fprintf(&b, "\t%s -> %d;\n", start, s)
		}
	}
	for _, s := range a.States() {
		for _, l := range a.Labels(s) {
			for _, t := range a.Successors(s, l) {
				fmt.Fprintf(&b, "\t%d -> %d [label=%q];\n", s, t, l)
			}
		}
	}
	fmt.Fprintln(&b, "}")

	return b.String()
}
