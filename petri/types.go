package petri

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for net construction.
var (
	// ErrDuplicatePlace is returned when a place label is added twice.
	ErrDuplicatePlace = errors.New("petri: duplicate place")
	// ErrDuplicateTransition is returned when a transition label is added twice.
	ErrDuplicateTransition = errors.New("petri: duplicate transition")
	// ErrInvalidArc is returned when an arc's endpoints don't resolve to one
	// place and one transition, in either direction.
	ErrInvalidArc = errors.New("petri: invalid arc")
)

// place holds a label and its initial token count.
type place struct {
	label          string
	initialMarking int
}

// transition holds the place indices it consumes from and produces to.
type transition struct {
	label   string
	inputs  []int
	outputs []int
}

// PetriNet is a place/transition net: a bipartite structure of places and
// transitions connected by arcs. Built once via AddPlace/AddTransition/
// AddArc, then queried through Marking-returning, side-effect-free methods.
type PetriNet struct {
	places          []place
	transitions     []transition
	placeIndex      map[string]int
	transitionIndex map[string]int
}

// NewPetriNet returns an empty net.
func NewPetriNet() *PetriNet {
	return &PetriNet{
		placeIndex:      make(map[string]int),
		transitionIndex: make(map[string]int),
	}
}

// AddPlace declares a place with the given initial token count.
func (net *PetriNet) AddPlace(label string, initialMarking int) error {
	if _, ok := net.placeIndex[label]; ok {
		return fmt.Errorf("petri: place %q: %w", label, ErrDuplicatePlace)
	}
	net.placeIndex[label] = len(net.places)
	net.places = append(net.places, place{label: label, initialMarking: initialMarking})
	return nil
}

// AddTransition declares a transition with no arcs yet attached.
func (net *PetriNet) AddTransition(label string) error {
	if _, ok := net.transitionIndex[label]; ok {
		return fmt.Errorf("petri: transition %q: %w", label, ErrDuplicateTransition)
	}
	net.transitionIndex[label] = len(net.transitions)
	net.transitions = append(net.transitions, transition{label: label})
	return nil
}

// AddArc connects source to target. Exactly one of the two must name a place
// and the other a transition; the direction (place→transition is an input,
// transition→place is an output) is inferred from which label resolves to
// which kind, never declared explicitly.
func (net *PetriNet) AddArc(source, target string) error {
	if p, ok := net.placeIndex[source]; ok {
		if t, ok := net.transitionIndex[target]; ok {
			net.transitions[t].inputs = append(net.transitions[t].inputs, p)
			return nil
		}
	}
	if t, ok := net.transitionIndex[source]; ok {
		if p, ok := net.placeIndex[target]; ok {
			net.transitions[t].outputs = append(net.transitions[t].outputs, p)
			return nil
		}
	}
	return fmt.Errorf("petri: arc %s -> %s: %w", source, target, ErrInvalidArc)
}

// NumPlaces reports the number of places.
func (net *PetriNet) NumPlaces() int { return len(net.places) }

// NumTransitions reports the number of transitions.
func (net *PetriNet) NumTransitions() int { return len(net.transitions) }

// PlaceLabel returns the label of the i-th place.
func (net *PetriNet) PlaceLabel(i int) string { return net.places[i].label }

// TransitionLabel returns the label of the i-th transition.
func (net *PetriNet) TransitionLabel(i int) string { return net.transitions[i].label }

// InitialMarking returns the net's starting marking.
func (net *PetriNet) InitialMarking() Marking {
	m := make(Marking, len(net.places))
	for i, p := range net.places {
		m[i] = p.initialMarking
	}
	return m
}

// activeTransitions returns the indices of transitions whose every input
// place holds at least one token under m, in ascending index order.
func (net *PetriNet) activeTransitions(m Marking) []int {
	var active []int
	for i, t := range net.transitions {
		enabled := true
		for _, p := range t.inputs {
			if m[p] <= 0 {
				enabled = false
				break
			}
		}
		if enabled {
			active = append(active, i)
		}
	}
	return active
}

// fire returns the marking reached by firing transition t against m: one
// token removed from each input place, one added to each output place. m is
// left unmodified.
func (net *PetriNet) fire(m Marking, t int) Marking {
	next := m.clone()
	for _, p := range net.transitions[t].inputs {
		next[p]--
	}
	for _, p := range net.transitions[t].outputs {
		next[p]++
	}
	return next
}

// Step is one enabled transition's label and the marking it leads to.
type Step struct {
	Label   string
	Marking Marking
}

// Transitions returns transitions(m) → [(label, m')]: every enabled
// transition from m, paired with the successor marking it produces, in
// ascending transition-index order.
func (net *PetriNet) Transitions(m Marking) []Step {
	active := net.activeTransitions(m)
	out := make([]Step, len(active))
	for i, t := range active {
		out[i] = Step{Label: net.transitions[t].label, Marking: net.fire(m, t)}
	}
	return out
}

// Deadlock reports whether m has no enabled transition.
func (net *PetriNet) Deadlock(m Marking) bool {
	return len(net.activeTransitions(m)) == 0
}

// Marking maps each place index to its token count. It is equatable and
// hashable via Key(), so reachable-set enumeration can use a visited set.
type Marking []int

func (m Marking) clone() Marking {
	out := make(Marking, len(m))
	copy(out, m)
	return out
}

// Equal reports whether m and o hold the same token count at every place.
func (m Marking) Equal(o Marking) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}

// Key returns a comparable, hashable representation of m suitable for use
// as a map key.
func (m Marking) Key() string {
	var b strings.Builder
	for i, v := range m {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

func (m Marking) String() string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
