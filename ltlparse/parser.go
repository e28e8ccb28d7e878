package ltlparse

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/xynxynxyn/lmc/ltl"
)

// Sentinel errors for malformed input.
var (
	// ErrEmptyInput is returned when the input has no tokens at all.
	ErrEmptyInput = errors.New("ltlparse: empty input")

	// ErrIncompleteInput is returned when an operator is missing one or
	// more of its operands.
	ErrIncompleteInput = errors.New("ltlparse: incomplete input")

	// ErrLeftoverInput is returned when tokens remain after a complete
	// formula has been parsed.
	ErrLeftoverInput = errors.New("ltlparse: leftover input")

	// ErrUnknownToken is returned for a token that is neither a
	// recognized keyword/operator nor a valid alphanumeric identifier.
	ErrUnknownToken = errors.New("ltlparse: unknown token")
)

// parser holds the token stream and a read cursor.
type parser struct {
	tokens []string
	pos    int
}

// Parse consumes input as a complete LTL formula in prefix-Polish notation.
// Returns ErrEmptyInput, ErrIncompleteInput, ErrUnknownToken, or
// ErrLeftoverInput on malformed input.
func Parse(input string) (*ltl.Expr, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	p := &parser{tokens: tokens}
	e, err := p.parseExpr()
	if err != nil {
		return nil, fmt.Errorf("ltlparse: Parse(%q): %w", input, err)
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("ltlparse: Parse(%q): %w: %q", input, ErrLeftoverInput,
			strings.Join(p.tokens[p.pos:], " "))
	}
	return e, nil
}

// next returns the next token and advances the cursor, or ErrIncompleteInput
// if the stream is exhausted.
func (p *parser) next() (string, error) {
	if p.pos >= len(p.tokens) {
		return "", ErrIncompleteInput
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, nil
}

// parseExpr recursively descends one prefix-Polish expression.
func (p *parser) parseExpr() (*ltl.Expr, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok {
	case "true":
		return ltl.True(), nil
	case "false":
		return ltl.False(), nil
	case "!":
		return p.unary(ltl.Not)
	case "X":
		return p.unary(ltl.Next)
	case "F":
		return p.unary(ltl.Finally)
	case "G":
		return p.unary(ltl.Globally)
	case "&":
		return p.binary(ltl.And)
	case "|":
		return p.binary(ltl.Or)
	case "U":
		return p.binary(ltl.Until)
	case "W":
		return p.binary(ltl.WeakUntil)
	case "R":
		return p.binary(ltl.Release)
	case "M":
		return p.binary(ltl.StrongRelease)
	default:
		if isIdentifier(tok) {
			return ltl.Atomic(tok), nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownToken, tok)
	}
}

func (p *parser) unary(ctor func(*ltl.Expr) *ltl.Expr) (*ltl.Expr, error) {
	child, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ctor(child), nil
}

func (p *parser) binary(ctor func(a, b *ltl.Expr) *ltl.Expr) (*ltl.Expr, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ctor(left, right), nil
}

// isIdentifier reports whether s is a non-empty run of letters and digits —
// the atom-name grammar.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
