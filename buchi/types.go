package buchi

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for automaton construction and queries.
var (
	// ErrStateNotFound is returned when an operation references a state id
	// outside the automaton's declared range.
	ErrStateNotFound = errors.New("buchi: state not found")
)

// State is an integer identifier scoped to its owning Automaton.
type State int

// Automaton is a (generalized) non-deterministic Büchi automaton: a tuple
// (Q, Σ, δ, Q0, F). States are a dense range [0, NumStates); δ is stored as
// state → label → successor-set; F is a family of accepting sets, declared
// in a fixed order (the order gnba_to_nba enumerates them in).
type Automaton struct {
	numStates int
	labels    map[State]string
	trans     map[State]map[string]map[State]bool
	initial   map[State]bool
	accepting []map[State]bool
}

// NewAutomaton returns an empty automaton with no states.
func NewAutomaton() *Automaton {
	return &Automaton{
		labels:  make(map[State]string),
		trans:   make(map[State]map[string]map[State]bool),
		initial: make(map[State]bool),
	}
}

// InsertState allocates a fresh state and returns its id. Ids are assigned
// sequentially starting at 0, so States() is always [0, NumStates).
func (a *Automaton) InsertState() State {
	s := State(a.numStates)
	a.numStates++
	a.trans[s] = make(map[string]map[State]bool)
	return s
}

// NumStates reports |Q|.
func (a *Automaton) NumStates() int { return a.numStates }

// States returns every state id in ascending order — a deterministic
// iteration order every traversal in this package relies on.
func (a *Automaton) States() []State {
	out := make([]State, a.numStates)
	for i := range out {
		out[i] = State(i)
	}
	return out
}

// hasState reports whether s was allocated by InsertState.
func (a *Automaton) hasState(s State) bool {
	return s >= 0 && int(s) < a.numStates
}

// SetLabel attaches a human-readable label to s (used by the translator to
// record the elementary-set serialization, and by the printers).
func (a *Automaton) SetLabel(s State, label string) error {
	if !a.hasState(s) {
		return fmt.Errorf("buchi: SetLabel(%d): %w", s, ErrStateNotFound)
	}
	a.labels[s] = label
	return nil
}

// Label returns s's label, or "" if none was set.
func (a *Automaton) Label(s State) string {
	return a.labels[s]
}

// AddTransition inserts the labeled edge (from, label, to) into δ.
func (a *Automaton) AddTransition(from State, label string, to State) error {
	if !a.hasState(from) {
		return fmt.Errorf("buchi: AddTransition(%d): %w", from, ErrStateNotFound)
	}
	if !a.hasState(to) {
		return fmt.Errorf("buchi: AddTransition(%d): %w", to, ErrStateNotFound)
	}
	succ, ok := a.trans[from][label]
	if !ok {
		succ = make(map[State]bool)
		a.trans[from][label] = succ
	}
	succ[to] = true
	return nil
}

// Successors returns the (sorted) set of states δ(s, label) reaches.
// An undeclared state or label is treated as having no successors, never
// an error.
func (a *Automaton) Successors(s State, label string) []State {
	succ := a.trans[s][label]
	out := make([]State, 0, len(succ))
	for t := range succ {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AllSuccessors returns every state reachable from s via any label, sorted
// and deduplicated. Used by SCC computation, where labels don't matter.
func (a *Automaton) AllSuccessors(s State) []State {
	seen := make(map[State]bool)
	for _, succ := range a.trans[s] {
		for t := range succ {
			seen[t] = true
		}
	}
	out := make([]State, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Labels returns the outgoing edge labels of s, sorted.
func (a *Automaton) Labels(s State) []string {
	out := make([]string, 0, len(a.trans[s]))
	for l := range a.trans[s] {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// MarkInitial declares s an initial state.
func (a *Automaton) MarkInitial(s State) error {
	if !a.hasState(s) {
		return fmt.Errorf("buchi: MarkInitial(%d): %w", s, ErrStateNotFound)
	}
	a.initial[s] = true
	return nil
}

// Initial returns the initial states, sorted ascending.
func (a *Automaton) Initial() []State {
	out := make([]State, 0, len(a.initial))
	for s := range a.initial {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DeclareAccepting appends a new accepting set to the family F, in
// declaration order — the order gnba_to_nba enumerates F in.
func (a *Automaton) DeclareAccepting(states ...State) error {
	set := make(map[State]bool, len(states))
	for _, s := range states {
		if !a.hasState(s) {
			return fmt.Errorf("buchi: DeclareAccepting(%d): %w", s, ErrStateNotFound)
		}
		set[s] = true
	}
	a.accepting = append(a.accepting, set)
	return nil
}

// Accepting returns the accepting family F, each set sorted ascending, in
// declaration order.
func (a *Automaton) Accepting() [][]State {
	out := make([][]State, len(a.accepting))
	for i, set := range a.accepting {
		members := make([]State, 0, len(set))
		for s := range set {
			members = append(members, s)
		}
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		out[i] = members
	}
	return out
}

// IsNBA reports whether the automaton has a single (or no) accepting set —
// the special case of a generalized Büchi automaton.
func (a *Automaton) IsNBA() bool { return len(a.accepting) <= 1 }

// Clone returns a deep, independent copy.
func (a *Automaton) Clone() *Automaton {
	out := NewAutomaton()
	out.numStates = a.numStates
	for s, l := range a.labels {
		out.labels[s] = l
	}
	for s, byLabel := range a.trans {
		out.trans[s] = make(map[string]map[State]bool, len(byLabel))
		for label, succ := range byLabel {
			cp := make(map[State]bool, len(succ))
			for t := range succ {
				cp[t] = true
			}
			out.trans[s][label] = cp
		}
	}
	for s := range a.initial {
		out.initial[s] = true
	}
	for _, set := range a.accepting {
		cp := make(map[State]bool, len(set))
		for s := range set {
			cp[s] = true
		}
		out.accepting = append(out.accepting, cp)
	}
	return out
}
