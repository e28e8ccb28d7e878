package gameparse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xynxynxyn/lmc/parity"
)

// WriteGame renders g in the "parity N;" text format, vertices in
// ascending id order.
func WriteGame(g *parity.Graph) string {
	var b strings.Builder
	vs := g.Vertices()
	fmt.Fprintf(&b, "parity %d;\n", len(vs))
	for _, v := range vs {
		owner := 0
		if g.Owner(v) == parity.Odd {
			owner = 1
		}
		succ := g.Successors(v)
		ids := make([]string, len(succ))
		for i, s := range succ {
			ids[i] = strconv.Itoa(int(s))
		}
		fmt.Fprintf(&b, "%d %d %d %s", v, g.Priority(v), owner, strings.Join(ids, ","))
		if l := g.Label(v); l != "" {
			fmt.Fprintf(&b, " %q", l)
		}
		fmt.Fprintln(&b, ";")
	}
	return b.String()
}

// WriteSolution renders sol in the "paritysol K;" text format: one line
// per vertex, sorted by ascending id, each naming the winner and (when
// present) the strategy's next vertex.
func WriteSolution(sol *parity.Solution) string {
	var b strings.Builder

	ids := make([]parity.VertexID, 0, len(sol.Strategy))
	for v := range sol.Strategy {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	count := 0
	for _, v := range ids {
		if sol.Strategy[v].Next != nil {
			count++
		}
	}
	fmt.Fprintf(&b, "paritysol %d;\n", count)

	for _, v := range ids {
		entry := sol.Strategy[v]
		winner := 0
		if entry.Winner == parity.Odd {
			winner = 1
		}
		if entry.Next != nil {
			fmt.Fprintf(&b, "%d %d %d;\n", v, winner, *entry.Next)
		} else {
			fmt.Fprintf(&b, "%d %d;\n", v, winner)
		}
	}
	return b.String()
}
