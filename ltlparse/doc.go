// Package ltlparse reads the prefix-Polish LTL concrete syntax into an
// ltl.Expr tree. It is an external collaborator to the formula
// algebra core: ltl itself never imports this package.
//
// Grammar: operators precede their operands, tokens separated by single
// spaces. Recognized tokens are true, false, alphanumeric identifiers
// (atoms), unary prefixes ! X F G, and binary prefixes & | U W R M. Full
// consumption of the input is required — leftover tokens are a parse error.
package ltlparse
