package spm

import "github.com/xynxynxyn/lmc/parity"

// Algorithm implements solve.Solver via Small Progress Measures.
type Algorithm struct{}

// Solve runs the small progress measures algorithm.
func (Algorithm) Solve(g *parity.Graph) *parity.Solution {
	return Solve(g)
}

// Solve is the standalone entry point.
func Solve(g *parity.Graph) *parity.Solution {
	if g.IsEmpty() {
		return parity.ConstructSolution(g, nil, nil, nil, nil)
	}

	wEven, wOdd, sigmaEven := progressMeasure(g, parity.Even)

	sigmaOdd := parity.Strategy{}
	if len(wOdd) > 0 {
		_, _, sigmaOdd = progressMeasure(g, parity.Odd)
	}

	return parity.ConstructSolution(g, wEven, wOdd, sigmaEven, sigmaOdd)
}

// progressMeasure runs one player's fixpoint pass and returns (finite
// region for player, ⊤ region, strategy for player).
func progressMeasure(g *parity.Graph, player parity.Owner) (map[parity.VertexID]bool, map[parity.VertexID]bool, parity.Strategy) {
	mf := newMeasureFactory(g, player)

	measures := make(map[parity.VertexID]measure, g.NumVertices())
	for _, v := range g.Vertices() {
		measures[v] = mf.zero()
	}

	queue := make([]parity.VertexID, 0, g.NumVertices())
	queued := make(map[parity.VertexID]bool, g.NumVertices())
	for _, v := range g.Vertices() {
		queue = append(queue, v)
		queued[v] = true
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		queued[v] = false

		lift := liftOf(g, player, measures, v, mf)
		if measures[v].less(lift) {
			measures[v] = lift
			for _, pred := range g.Predecessors(v) {
				if !queued[pred] {
					queue = append(queue, pred)
					queued[pred] = true
				}
			}
		}
	}

	finite := make(map[parity.VertexID]bool)
	infinite := make(map[parity.VertexID]bool)
	for _, v := range g.Vertices() {
		if measures[v].top {
			infinite[v] = true
		} else {
			finite[v] = true
		}
	}

	strategy := make(parity.Strategy)
	for v := range finite {
		if g.Owner(v) != player {
			continue
		}
		for _, s := range g.Successors(v) {
			if prog(measures[s], g.Priority(v), player, mf).equal(measures[v]) {
				strategy[v] = s
				break
			}
		}
	}

	return finite, infinite, strategy
}

// liftOf computes lift(v) = min/max over successors of prog(ρ(w), p(v), α),
// min if v is owned by player, max otherwise. A sink (no successors) keeps
// its current measure, since it has no play to lift through.
func liftOf(g *parity.Graph, player parity.Owner, measures map[parity.VertexID]measure, v parity.VertexID, mf *measureFactory) measure {
	succ := g.Successors(v)
	if len(succ) == 0 {
		return measures[v]
	}

	best := prog(measures[succ[0]], g.Priority(v), player, mf)
	for _, s := range succ[1:] {
		cand := prog(measures[s], g.Priority(v), player, mf)
		if g.Owner(v) == player {
			if cand.less(best) {
				best = cand
			}
		} else if best.less(cand) {
			best = cand
		}
	}
	return best
}
