// Package fpi implements Fixpoint Iteration with freezing: a
// single-pass worklist over priorities that grows a distraction set Z,
// freezing vertices whose winner would otherwise flip-flop as lower
// priorities are revisited. Terminates because (|Z|, p) strictly
// progresses lexicographically on every iteration.
package fpi
