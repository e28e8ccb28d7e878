package petri

import (
	"sort"
	"strings"

	"github.com/xynxynxyn/lmc/buchi"
)

// ToGNBA adapts net into a buchi.Automaton: one state per reachable marking,
// an edge per enabled transition labeled with that transition's name, and
// each state's label set to its own active transition set. No
// accepting sets are declared — the net's markings carry no acceptance
// condition of their own, so every run is accepting, matching buchi.Verify's
// empty-family convention.
func ToGNBA(net *PetriNet) *buchi.Automaton {
	markings := Reachable(net)

	a := buchi.NewAutomaton()
	index := make(map[string]buchi.State, len(markings))
	for _, m := range markings {
		index[m.Key()] = a.InsertState()
	}

	for _, m := range markings {
		from := index[m.Key()]
		steps := net.Transitions(m)

		active := make([]string, len(steps))
		for i, step := range steps {
			active[i] = step.Label
		}
		sort.Strings(active)
		_ = a.SetLabel(from, strings.Join(active, ","))

		for _, step := range steps {
			to := index[step.Marking.Key()]
			_ = a.AddTransition(from, step.Label, to)
		}
	}

	if s0, ok := index[net.InitialMarking().Key()]; ok {
		_ = a.MarkInitial(s0)
	}

	return a
}
