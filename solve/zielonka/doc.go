// Package zielonka implements Zielonka's recursive algorithm: peel
// off the attractor of the highest priority's vertices, recurse on the
// remainder, and test whether the opponent's attractor reclaims the peeled
// region. Every recursive call operates on a fresh subgraph — the input
// graph is never mutated.
package zielonka
