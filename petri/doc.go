// Package petri implements the Petri-net collaborator: a builder for
// places, transitions and arcs; a PNML reader; reachable-marking enumeration
// with deadlock counting; and a GNBA adapter that lets a net stand in for an
// LTL model-checking target. The core never parses PNML or walks a net
// directly — it only ever sees the Automaton this package produces.
package petri
