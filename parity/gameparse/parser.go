package gameparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/xynxynxyn/lmc/parity"
)

var (
	ErrEmptyInput      = errors.New("gameparse: empty input")
	ErrMalformedHeader = errors.New("gameparse: malformed header")
	ErrMalformedLine   = errors.New("gameparse: malformed line")
	ErrUnknownOwner    = errors.New("gameparse: owner must be 0 or 1")
	ErrUnknownVertex   = errors.New("gameparse: successor references unknown vertex")
)

type record struct {
	id       parity.VertexID
	priority int
	owner    parity.Owner
	succ     []parity.VertexID
	label    string
}

// ParseGame parses the "parity N;" header format into a Graph.
// Every malformed line is accumulated into a single combined error via
// multierr instead of stopping at the first fault — the caller sees every
// problem in the file at once.
func ParseGame(input string) (*parity.Graph, error) {
	lines := splitLines(input)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	if _, err := parseHeader(lines[0]); err != nil {
		return nil, err
	}

	var errs error
	records := make([]record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		r, err := parseLine(line)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		records = append(records, r)
	}
	if errs != nil {
		return nil, errs
	}

	g := parity.NewGraph()
	for _, r := range records {
		g.AddVertex(r.id, r.owner, r.priority, r.label)
	}
	for _, r := range records {
		for _, s := range r.succ {
			if err := g.AddEdge(r.id, s); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("gameparse: vertex %d: %w: %d", r.id, ErrUnknownVertex, s))
			}
		}
	}
	if errs != nil {
		return nil, errs
	}
	return g, nil
}

func splitLines(input string) []string {
	var out []string
	for _, l := range strings.Split(input, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

func parseHeader(line string) (int, error) {
	line = strings.TrimSuffix(strings.TrimSpace(line), ";")
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != "parity" {
		return 0, fmt.Errorf("gameparse: header %q: %w", line, ErrMalformedHeader)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("gameparse: header %q: %w", line, ErrMalformedHeader)
	}
	return n, nil
}

// parseLine parses "id priority owner succ1,succ2,...[ \"label\"];".
func parseLine(line string) (record, error) {
	orig := line
	line = strings.TrimSuffix(strings.TrimSpace(line), ";")

	var label string
	if i := strings.IndexByte(line, '"'); i >= 0 {
		rest := line[i+1:]
		j := strings.IndexByte(rest, '"')
		if j < 0 {
			return record{}, fmt.Errorf("gameparse: line %q: %w", orig, ErrMalformedLine)
		}
		label = rest[:j]
		line = strings.TrimSpace(line[:i])
	}

	fields := strings.Fields(line)
	if len(fields) != 3 && len(fields) != 4 {
		return record{}, fmt.Errorf("gameparse: line %q: %w", orig, ErrMalformedLine)
	}

	id, err1 := strconv.Atoi(fields[0])
	priority, err2 := strconv.Atoi(fields[1])
	ownerNum, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return record{}, fmt.Errorf("gameparse: line %q: %w", orig, ErrMalformedLine)
	}

	var owner parity.Owner
	switch ownerNum {
	case 0:
		owner = parity.Even
	case 1:
		owner = parity.Odd
	default:
		return record{}, fmt.Errorf("gameparse: line %q: %w", orig, ErrUnknownOwner)
	}

	var succ []parity.VertexID
	if len(fields) == 4 {
		for _, s := range strings.Split(fields[3], ",") {
			n, err := strconv.Atoi(s)
			if err != nil {
				return record{}, fmt.Errorf("gameparse: line %q: %w", orig, ErrMalformedLine)
			}
			succ = append(succ, parity.VertexID(n))
		}
	}

	return record{
		id:       parity.VertexID(id),
		priority: priority,
		owner:    owner,
		succ:     succ,
		label:    label,
	}, nil
}
