package solve

import "github.com/xynxynxyn/lmc/parity"

// Solver computes the full winning-region/strategy Solution for a parity
// game. Every implementation is total and pure: same input graph, same
// output, no mutation of g.
type Solver interface {
	Solve(g *parity.Graph) *parity.Solution
}
