package fpi

import "github.com/xynxynxyn/lmc/parity"

// Algorithm implements solve.Solver via Fixpoint Iteration with freezing.
type Algorithm struct{}

// Solve runs FPI to completion and returns the full Solution.
func (Algorithm) Solve(g *parity.Graph) *parity.Solution {
	return Solve(g)
}

// Solve is the standalone entry point, usable without constructing an
// Algorithm value.
func Solve(g *parity.Graph) *parity.Solution {
	z := make(map[parity.VertexID]bool)
	frozen := make(map[parity.VertexID]int)
	sigma := make(parity.Strategy)

	pMax := g.HighestPriority()
	for p := 0; p <= pMax; {
		par := parityOf(p)
		chg := false

		for _, v := range g.PriorityVertices(p) {
			if _, isFrozen := frozen[v]; isFrozen || z[v] {
				continue
			}
			alpha, t := onestep(g, v, z)
			if t != nil {
				sigma[v] = *t
			}
			if alpha != par {
				z[v] = true
				chg = true
			}
		}

		if chg {
			for _, v := range g.Vertices() {
				if _, isFrozen := frozen[v]; isFrozen || g.Priority(v) >= p {
					continue
				}
				if winner(g, v, z) == par.Opponent() {
					frozen[v] = p
				} else {
					delete(z, v)
				}
			}
			p = 0
			continue
		}

		for v, fp := range frozen {
			if fp == p {
				delete(frozen, v)
			}
		}
		p++
	}

	wEven := make(map[parity.VertexID]bool)
	wOdd := make(map[parity.VertexID]bool)
	for _, v := range g.Vertices() {
		if winner(g, v, z) == parity.Even {
			wEven[v] = true
		} else {
			wOdd[v] = true
		}
	}

	sigmaEven := make(parity.Strategy)
	sigmaOdd := make(parity.Strategy)
	for v, t := range sigma {
		if g.Owner(v) == parity.Even {
			sigmaEven[v] = t
		} else {
			sigmaOdd[v] = t
		}
	}

	return parity.ConstructSolution(g, wEven, wOdd, sigmaEven, sigmaOdd)
}

func parityOf(p int) parity.Owner { return parity.ParityOf(p) }

// winner(v, Z) = (priority(v) mod 2) XOR [v ∈ Z], read as an Owner bit
// (Even=0, Odd=1).
func winner(g *parity.Graph, v parity.VertexID, z map[parity.VertexID]bool) parity.Owner {
	bit := g.Priority(v) % 2
	if z[v] {
		bit ^= 1
	}
	if bit == 0 {
		return parity.Even
	}
	return parity.Odd
}

// onestep(v, Z) finds a successor s with winner(s,Z) = owner(v); if found,
// returns (owner(v), &s); otherwise (1-owner(v), nil) — v's owner cannot
// force the favorable winner this round.
func onestep(g *parity.Graph, v parity.VertexID, z map[parity.VertexID]bool) (parity.Owner, *parity.VertexID) {
	alpha := g.Owner(v)
	for _, s := range g.Successors(v) {
		if winner(g, s, z) == alpha {
			w := s
			return alpha, &w
		}
	}
	return alpha.Opponent(), nil
}
