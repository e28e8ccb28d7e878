package spm

import "github.com/xynxynxyn/lmc/parity"

// measure is a per-player progress value: either a fixed-length tuple of
// non-negative integers, ordered lexicographically front-to-back, or the
// distinguished top element ⊤ (represented by the top flag).
type measure struct {
	top  bool
	vals []int
}

func (m measure) less(o measure) bool {
	if m.top {
		return false
	}
	if o.top {
		return true
	}
	for i := range m.vals {
		if m.vals[i] != o.vals[i] {
			return m.vals[i] < o.vals[i]
		}
	}
	return false
}

func (m measure) equal(o measure) bool {
	if m.top != o.top {
		return false
	}
	if m.top {
		return true
	}
	for i := range m.vals {
		if m.vals[i] != o.vals[i] {
			return false
		}
	}
	return true
}

// measureFactory fixes the tuple length and per-coordinate bound for one
// player's pass, and maps a priority value to its coordinate index.
//
// Coordinate i (0-indexed from the front) tracks priority (size-1-i)*2+1 for
// Even, or (size-1-i)*2 for Odd — the front coordinate is the most
// significant (highest tracked priority), the back coordinate the least.
type measureFactory struct {
	size  int
	bound []int
}

func newMeasureFactory(g *parity.Graph, player parity.Owner) *measureFactory {
	maxP := g.HighestPriority()
	if maxP < 0 {
		maxP = 0
	}

	var size int
	if maxP%2 == 0 {
		if player == parity.Even {
			size = maxP / 2
		} else {
			size = maxP/2 + 1
		}
	} else {
		size = maxP/2 + 1
	}

	bound := make([]int, size)
	for idx := 0; idx < size; idx++ {
		i := size - 1 - idx
		priority := i*2 + 1
		if player == parity.Odd {
			priority = i * 2
		}
		bound[idx] = len(g.PriorityVertices(priority))
	}
	return &measureFactory{size: size, bound: bound}
}

func (mf *measureFactory) zero() measure {
	return measure{vals: make([]int, mf.size)}
}

// indexOf returns the coordinate tracking priority p, or -1 if p falls
// outside this factory's tracked range.
func (mf *measureFactory) indexOf(p int) int {
	idx := mf.size - (p/2 + 1)
	if idx < 0 || idx >= mf.size {
		return -1
	}
	return idx
}

// prog computes the progress of measure m when play passes through a vertex
// of priority p, for the player's pass described by mf.
func prog(m measure, p int, player parity.Owner, mf *measureFactory) measure {
	if m.top {
		return measure{top: true}
	}

	vals := append([]int(nil), m.vals...)
	unset := make([]bool, len(vals))

	start := 1
	if player == parity.Odd {
		start = 0
	}
	for r := start; r < p; r += 2 {
		if idx := mf.indexOf(r); idx >= 0 {
			unset[idx] = true
		}
	}

	if parity.ParityOf(p) != player {
		for i := len(vals) - 1; i >= 0; i-- {
			if unset[i] {
				vals[i] = 0
				unset[i] = false
				continue
			}
			if vals[i] == mf.bound[i] {
				vals[i] = 0
				continue
			}
			vals[i]++
			break
		}

		allZero := true
		for _, v := range vals {
			if v != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			return measure{top: true}
		}
	}

	for i := range unset {
		if unset[i] {
			vals[i] = 0
		}
	}
	return measure{vals: vals}
}
