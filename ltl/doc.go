// Package ltl implements the linear-temporal-logic expression tree and the
// algebra the Büchi translator is built on: positive-normal-form rewriting,
// closure construction, elementary-set enumeration, and alphabet extraction.
//
// Expressions are immutable tagged-variant trees (see Expr) compared
// structurally and ordered by a fixed case order so that downstream
// consumers (closure sets, elementary sets, automaton state labels) get
// reproducible output regardless of construction order.
//
// This package is single-threaded and allocation-only: no I/O, no shared
// mutable state, nothing that blocks. Parsing lives in the sibling ltlparse
// package; this package only manipulates already-built trees.
package ltl
