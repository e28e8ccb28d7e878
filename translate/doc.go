// Package translate builds a generalized Büchi automaton from an LTL
// formula via the elementary-set tableau construction: states are
// elementary sets of the formula's closure, edges satisfy the Next/Until/
// Release bi-implications simultaneously, and the accepting family has one
// set per until-subformula. This is the sole bridge between the ltl and
// buchi packages — neither depends on the other directly.
package translate
