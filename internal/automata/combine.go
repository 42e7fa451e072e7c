package automata

import (
	"fmt"

	"github.com/karllogdat/lexgen/internal/regexsyntax"
)

// Pattern is one prioritized entry in a pattern list handed to Combine: a
// regex source, the token category it produces on a match, and an
// integer priority where a lower value wins over a higher one.
type Pattern struct {
	Source   string
	Category string
	Priority int
}

// Combine is C4: parses and Thompson-builds every pattern, then wires
// each fragment under one global start state by epsilon, the Go
// analogue of original_source/src/dfa.cpp's
// TransitionTableGenerator::generate loop. A pattern's fragment accept
// state is tagged with its category, priority, and position — the
// position lets resolveAcceptance (dfa.go) break priority ties by input
// order, per spec.md §4.5.
func Combine(patterns []Pattern) (*NFA, error) {
	if len(patterns) == 0 {
		return nil, &EmptyMachineError{}
	}

	n := &NFA{}
	n.Start = n.newState()

	for i, p := range patterns {
		node, err := regexsyntax.Parse(p.Source)
		if err != nil {
			return nil, fmt.Errorf("pattern %d (%s): %w", i, p.Category, err)
		}
		frag := Build(n, node)
		acc := n.States[frag.Accept]
		acc.Accept = true
		acc.Category = p.Category
		acc.Priority = p.Priority
		acc.Order = i
		n.addEpsilon(n.Start, frag.Start)
	}
	return n, nil
}
