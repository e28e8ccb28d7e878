// Package buchi implements the (generalized) non-deterministic Büchi
// automaton used as the target of LTL→GNBA translation: state/transition
// storage, Tarjan SCC decomposition, GNBA→NBA degeneralization, emptiness
// checking with counter-example extraction, and HOA v1 / Graphviz DOT
// serialization.
//
// An automaton is a tuple (Q, Σ, δ, Q0, F): Q is a dense range of integer
// state ids, δ maps (state, label) to a set of successor states, Q0 is the
// set of initial states, and F is a family of accepting sets — the
// generalized case. An NBA is the special case |F| ≤ 1.
//
// States carry stable integer ids; Automaton is not safe for concurrent
// mutation — construction and querying happen in a single goroutine.
package buchi
