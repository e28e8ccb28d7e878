package tangle

import "github.com/xynxynxyn/lmc/parity"

// Algorithm implements solve.Solver via tangle learning.
type Algorithm struct{}

// Solve runs tangle learning and returns the full Solution.
func (Algorithm) Solve(g *parity.Graph) *parity.Solution {
	return Solve(g)
}

// candidate is a tangle (α, V_T, σ_T) discovered by search, not yet
// classified as an open escape-tracked tangle or a closed dominion.
type candidate struct {
	alpha    parity.Owner
	vertices map[parity.VertexID]bool
	strategy parity.Strategy
}

// Solve is the standalone entry point.
func Solve(g *parity.Graph) *parity.Solution {
	work := g.Clone()

	wEven := make(map[parity.VertexID]bool)
	wOdd := make(map[parity.VertexID]bool)
	sigmaEven := make(parity.Strategy)
	sigmaOdd := make(parity.Strategy)
	var tangles []*candidate

	for !work.IsEmpty() {
		// search's recursion only ever returns closed tangles (an open
		// candidate is discarded where it's found); a closed tangle's
		// opponent-owned members have no external move by construction,
		// so every result here already has an empty escape set — i.e.
		// every one is a dominion. Tracking escaping (open) tangles in
		// `tangles` for future absorption stays in place for when a
		// non-dominion candidate does need to be remembered.
		found := search(work, tangles)
		if len(found) == 0 {
			break
		}
		for _, c := range found {
			if len(escapeSet(work, c)) > 0 && !alreadyTracked(tangles, c) {
				tangles = append(tangles, c)
			}
		}
		dominions := found

		evenVertices := make(map[parity.VertexID]bool)
		oddVertices := make(map[parity.VertexID]bool)
		evenStrategy := make(parity.Strategy)
		oddStrategy := make(parity.Strategy)
		for _, d := range dominions {
			vs, strat := regionFor(d.alpha, evenVertices, oddVertices), strategyFor(d.alpha, evenStrategy, oddStrategy)
			for v := range d.vertices {
				vs[v] = true
			}
			for v, w := range d.strategy {
				strat[v] = w
			}
		}

		zEven, sigEven := tangleAttractor(work, parity.Even, evenVertices, tangles)
		zOdd, sigOdd := tangleAttractor(work, parity.Odd, oddVertices, tangles)
		for v, w := range evenStrategy {
			sigEven[v] = w
		}
		for v, w := range oddStrategy {
			sigOdd[v] = w
		}

		for v := range zEven {
			wEven[v] = true
		}
		for v, w := range sigEven {
			sigmaEven[v] = w
		}
		for v := range zOdd {
			wOdd[v] = true
		}
		for v, w := range sigOdd {
			sigmaOdd[v] = w
		}

		work = work.RemoveVertices(zEven)
		work = work.RemoveVertices(zOdd)
		tangles = pruneTangles(tangles, zEven)
		tangles = pruneTangles(tangles, zOdd)
	}

	return parity.ConstructSolution(g, wEven, wOdd, sigmaEven, sigmaOdd)
}

// search peels the tangle-attractor of the current highest priority's
// vertices, recurses on what's left, and keeps the peeled region only if
// it turned out closed — an open candidate is discarded outright, not
// carried forward.
func search(g *parity.Graph, tangles []*candidate) []*candidate {
	if g.IsEmpty() {
		return nil
	}

	p := g.HighestPriority()
	alpha := parity.ParityOf(p)

	h := make(map[parity.VertexID]bool)
	for _, v := range g.PriorityVertices(p) {
		h[v] = true
	}

	z, sigma := tangleAttractor(g, alpha, h, tangles)
	t := &candidate{alpha: alpha, vertices: z, strategy: sigma}

	rest := search(g.RemoveVertices(z), tangles)
	if isClosed(g, t) {
		return append(rest, t)
	}
	return rest
}

// tangleAttractor extends parity.Attractor by also absorbing any known
// tangle whose escapes all land inside the growing region.
func tangleAttractor(g *parity.Graph, alpha parity.Owner, seed map[parity.VertexID]bool, tangles []*candidate) (map[parity.VertexID]bool, parity.Strategy) {
	z := make(map[parity.VertexID]bool, len(seed))
	for v := range seed {
		z[v] = true
	}
	sigma := make(parity.Strategy)

	for {
		grown, step := parity.Attractor(g, alpha, z)
		grew := false
		for v := range grown {
			if !z[v] {
				z[v] = true
				grew = true
			}
		}
		for v, w := range step {
			sigma[v] = w
		}

		for _, t := range tangles {
			if t.alpha != alpha || isSubset(t.vertices, z) {
				continue
			}
			if !escapesWithin(g, t, z) {
				continue
			}
			for v := range t.vertices {
				if !z[v] {
					z[v] = true
					grew = true
				}
			}
			for v, w := range t.strategy {
				sigma[v] = w
			}
		}

		if !grew {
			break
		}
	}

	return z, sigma
}

// isClosed reports whether every α-owned vertex of c with at least one
// successor has one landing inside c, and every opponent-owned vertex's
// successors all stay inside c — the tangle closedness test.
// An α-owned vertex with no successors at all is vacuously fine (a sink
// ends play there, which can't violate α's objective going forward).
func isClosed(g *parity.Graph, c *candidate) bool {
	for v := range c.vertices {
		if g.Owner(v) != c.alpha {
			for _, s := range g.Successors(v) {
				if !c.vertices[s] {
					return false
				}
			}
			continue
		}
		succ := g.Successors(v)
		if len(succ) == 0 {
			continue
		}
		witnessed := false
		for _, s := range succ {
			if c.vertices[s] {
				witnessed = true
				break
			}
		}
		if !witnessed {
			return false
		}
	}
	return true
}

// escapeSet returns the opponent-owned vertices of c with a move leaving
// c's vertex set, evaluated against g.
func escapeSet(g *parity.Graph, c *candidate) map[parity.VertexID]bool {
	esc := make(map[parity.VertexID]bool)
	for v := range c.vertices {
		if g.Owner(v) == c.alpha {
			continue
		}
		for _, s := range g.Successors(v) {
			if !c.vertices[s] {
				esc[v] = true
				break
			}
		}
	}
	return esc
}

// escapesWithin reports whether every escape of t (computed against g)
// already lands inside z, making t safe to absorb wholesale.
func escapesWithin(g *parity.Graph, t *candidate, z map[parity.VertexID]bool) bool {
	for v := range t.vertices {
		if g.Owner(v) == t.alpha {
			continue
		}
		for _, s := range g.Successors(v) {
			if !t.vertices[s] && !z[s] {
				return false
			}
		}
	}
	return true
}

func alreadyTracked(tangles []*candidate, c *candidate) bool {
	for _, t := range tangles {
		if t.alpha == c.alpha && setsEqual(t.vertices, c.vertices) {
			return true
		}
	}
	return false
}

func pruneTangles(tangles []*candidate, removed map[parity.VertexID]bool) []*candidate {
	kept := make([]*candidate, 0, len(tangles))
	for _, t := range tangles {
		stale := false
		for v := range t.vertices {
			if removed[v] {
				stale = true
				break
			}
		}
		if !stale {
			kept = append(kept, t)
		}
	}
	return kept
}

func regionFor(alpha parity.Owner, wEven, wOdd map[parity.VertexID]bool) map[parity.VertexID]bool {
	if alpha == parity.Even {
		return wEven
	}
	return wOdd
}

func strategyFor(alpha parity.Owner, sigmaEven, sigmaOdd parity.Strategy) parity.Strategy {
	if alpha == parity.Even {
		return sigmaEven
	}
	return sigmaOdd
}

func isSubset(a, b map[parity.VertexID]bool) bool {
	for v := range a {
		if !b[v] {
			return false
		}
	}
	return true
}

func setsEqual(a, b map[parity.VertexID]bool) bool {
	if len(a) != len(b) {
		return false
	}
	return isSubset(a, b)
}
