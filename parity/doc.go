// Package parity implements the parity-game data model shared by every
// solver (fpi, zielonka, spm, tangle): a mutable directed graph with stable
// vertex handles, the attractor primitive, and the Solution type the
// solvers converge on. Subgraph derivation never mutates the original
// graph — Zielonka's recursion and tangle learning both operate on fresh
// values while the caller's graph stays intact.
package parity
