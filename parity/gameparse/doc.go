// Package gameparse reads and writes the external parity-game text format:
// a header line "parity N;" followed by one line per vertex "id
// priority owner succ1,succ2,...[ \"label\"];", and the matching solution
// format "paritysol K;" / "vertex_id winner[ next_id];". It is the sole
// external-facing collaborator for parity.Graph — the solvers never parse
// text themselves.
package gameparse
