// Package automata builds and minimizes the finite automata between the
// regex AST and the emitted transition table: C3 (Thompson construction),
// C4 (pattern combination) and C5 (subset construction to a DFA).
package automata

import "github.com/karllogdat/lexgen/internal/regexsyntax"

// State is one NFA state. States live in a single arena (NFA.States) and
// are referenced by index, following LAB_2/regexlib's id-based state
// ownership rather than a graph of pointers.
type State struct {
	ID       int
	Edges    []Edge
	Accept   bool
	Category string
	Priority int
	Order    int
}

// Edge is a single transition out of a state: either an epsilon move, or
// a move consuming any byte in Set.
type Edge struct {
	Epsilon bool
	Set     regexsyntax.ByteSet
	To      int
}

// NFA is the arena of states plus the global start state, assembled by
// Combine (C4) out of the Fragments Build (C3) produces per pattern.
type NFA struct {
	States []*State
	Start  int
}

func (n *NFA) newState() int {
	s := &State{ID: len(n.States)}
	n.States = append(n.States, s)
	return s.ID
}

func (n *NFA) addEpsilon(from, to int) {
	n.States[from].Edges = append(n.States[from].Edges, Edge{Epsilon: true, To: to})
}

func (n *NFA) addSet(from, to int, set regexsyntax.ByteSet) {
	n.States[from].Edges = append(n.States[from].Edges, Edge{Set: set, To: to})
}

// Fragment is a construction-time handle on a subgraph with exactly one
// start and one accept state, the dangling-outs style of Thompson
// construction (original_source/src/nfa.cpp's NFAFragment).
type Fragment struct {
	Start  int
	Accept int
}
