package zielonka

import "github.com/xynxynxyn/lmc/parity"

// Algorithm implements solve.Solver via Zielonka's recursive algorithm.
type Algorithm struct{}

// Solve runs Zielonka's algorithm and returns the full Solution.
func (Algorithm) Solve(g *parity.Graph) *parity.Solution {
	return Solve(g)
}

// Solve is the standalone entry point.
func Solve(g *parity.Graph) *parity.Solution {
	wEven, wOdd, sigmaEven, sigmaOdd := solve(g)
	return parity.ConstructSolution(g, wEven, wOdd, sigmaEven, sigmaOdd)
}

func solve(g *parity.Graph) (map[parity.VertexID]bool, map[parity.VertexID]bool, parity.Strategy, parity.Strategy) {
	if g.IsEmpty() {
		return map[parity.VertexID]bool{}, map[parity.VertexID]bool{}, parity.Strategy{}, parity.Strategy{}
	}

	p := g.HighestPriority()
	alpha := parity.ParityOf(p)
	beta := alpha.Opponent()

	u := make(map[parity.VertexID]bool)
	for _, v := range g.PriorityVertices(p) {
		u[v] = true
	}

	a, sigmaA := parity.Attractor(g, alpha, u)
	wEven, wOdd, sigmaEven, sigmaOdd := solve(g.RemoveVertices(a))

	wBeta := regionSet(beta, wEven, wOdd)
	sigmaBeta := strategySet(beta, sigmaEven, sigmaOdd)

	b, sigmaBExtra := parity.Attractor(g, beta, wBeta)

	if setsEqual(b, wBeta) {
		// α keeps A: its region grows by the peeled attractor, and every
		// still-unassigned α-owned vertex in U picks any successor inside
		// the now-enlarged α region.
		wAlpha := regionSet(alpha, wEven, wOdd)
		sigmaAlpha := strategySet(alpha, sigmaEven, sigmaOdd)
		for v := range a {
			wAlpha[v] = true
		}
		for v, t := range sigmaA {
			sigmaAlpha[v] = t
		}
		for v := range u {
			if g.Owner(v) != alpha {
				continue
			}
			if _, ok := sigmaAlpha[v]; ok {
				continue
			}
			for _, s := range g.Successors(v) {
				if wAlpha[s] {
					sigmaAlpha[v] = s
					break
				}
			}
		}
		return wEven, wOdd, sigmaEven, sigmaOdd
	}

	wEven2, wOdd2, sigmaEven2, sigmaOdd2 := solve(g.RemoveVertices(b))

	wBeta2 := regionSet(beta, wEven2, wOdd2)
	sigmaBeta2 := strategySet(beta, sigmaEven2, sigmaOdd2)
	for v := range b {
		wBeta2[v] = true
	}
	for v, t := range sigmaBeta {
		sigmaBeta2[v] = t
	}
	for v, t := range sigmaBExtra {
		sigmaBeta2[v] = t
	}
	return wEven2, wOdd2, sigmaEven2, sigmaOdd2
}

func regionSet(alpha parity.Owner, wEven, wOdd map[parity.VertexID]bool) map[parity.VertexID]bool {
	if alpha == parity.Even {
		return wEven
	}
	return wOdd
}

func strategySet(alpha parity.Owner, sigmaEven, sigmaOdd parity.Strategy) parity.Strategy {
	if alpha == parity.Even {
		return sigmaEven
	}
	return sigmaOdd
}

func setsEqual(a, b map[parity.VertexID]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if !b[v] {
			return false
		}
	}
	return true
}
