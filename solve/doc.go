// Package solve defines the common Solver interface the four parity-game
// algorithms (fpi, zielonka, spm, tangle) each implement over parity.Graph.
package solve
