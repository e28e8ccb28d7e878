package parity

// Strategy is a partial positional strategy: vertex -> chosen successor.
type Strategy map[VertexID]VertexID

// Attractor computes Attr_α(G, U): the smallest Z ⊇ U such that every
// v ∈ Z is either α-owned with a successor in Z, or has every successor in
// Z. Returns Z and a witnessing strategy for every α-owned vertex Attractor
// added (U's own members are not assigned a witness here; callers that need
// one already have it from wherever U came from).
func Attractor(g *Graph, alpha Owner, u map[VertexID]bool) (map[VertexID]bool, Strategy) {
	z := make(map[VertexID]bool, len(u))
	queue := make([]VertexID, 0, len(u))
	for v := range u {
		z[v] = true
	}
	for _, id := range g.Vertices() {
		if z[id] {
			queue = append(queue, id)
		}
	}

	sigma := make(Strategy)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, p := range g.Predecessors(v) {
			if z[p] {
				continue
			}
			include, witness := attractorRule(g, alpha, p, z)
			if !include {
				continue
			}
			z[p] = true
			if g.Owner(p) == alpha {
				sigma[p] = witness
			}
			queue = append(queue, p)
		}
	}
	return z, sigma
}

// attractorRule evaluates rule (a)/(b) for a single vertex p against the
// current Z, returning whether p should be included and, for an α-owned p,
// a witnessing successor inside Z.
func attractorRule(g *Graph, alpha Owner, p VertexID, z map[VertexID]bool) (bool, VertexID) {
	succ := g.Successors(p)
	if g.Owner(p) == alpha {
		for _, s := range succ {
			if z[s] {
				return true, s
			}
		}
		return false, 0
	}
	for _, s := range succ {
		if !z[s] {
			return false, 0
		}
	}
	return true, 0
}
