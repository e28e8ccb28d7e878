// Package spm implements Small Progress Measures: two independent
// per-player fixpoint passes over a vector-valued "progress measure" with
// a distinguished top element ⊤. A vertex's winning region for α is exactly
// where its measure stays finite.
package spm
