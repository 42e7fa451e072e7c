package automata

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/karllogdat/lexgen/internal/regexsyntax"
)

// DFAState is one subset-construction state: the sorted NFA state ids it
// was built from (kept for debugging), and, if accepting, the
// priority-resolved category it produces.
type DFAState struct {
	ID        int
	NFAStates []int
	Accept    bool
	Category  string
}

// DFATransition is one edge of the DFA, always defined (no epsilons
// survive subset construction).
type DFATransition struct {
	From   int
	Symbol byte
	To     int
}

// DFA is the C5 output: a deterministic automaton with a single start
// state and, on every state, at most one category. It is what C6
// compacts into a dense transition table.
type DFA struct {
	States      []*DFAState
	Transitions []DFATransition
	Start       int
	Alphabet    []byte
}

// Next returns the destination state for a (state, symbol) pair, and
// false if there is no such transition (the table-driven scanner treats
// this as a dead transition).
func (d *DFA) Next(state int, symbol byte) (int, bool) {
	for _, t := range d.Transitions {
		if t.From == state && t.Symbol == symbol {
			return t.To, true
		}
	}
	return 0, false
}

func epsilonClosure(n *NFA, set map[int]bool) map[int]bool {
	stack := make([]int, 0, len(set))
	for id := range set {
		stack = append(stack, id)
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.States[id].Edges {
			if e.Epsilon && !set[e.To] {
				set[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}
	return set
}

func move(n *NFA, set map[int]bool, sym byte) map[int]bool {
	res := make(map[int]bool)
	for id := range set {
		for _, e := range n.States[id].Edges {
			if !e.Epsilon && e.Set.Contains(sym) {
				res[e.To] = true
			}
		}
	}
	return res
}

// alphabetOf collects every byte that appears on some non-epsilon edge,
// matching original_source/src/nfa.cpp's NFA::getAlphabet — the DFA's
// symbol set is exactly the union of the source patterns' character
// classes, not the full 128-byte ASCII range.
func alphabetOf(n *NFA) []byte {
	var set regexsyntax.ByteSet
	for _, s := range n.States {
		for _, e := range s.Edges {
			if !e.Epsilon {
				set.Union(e.Set)
			}
		}
	}
	return set.Bytes()
}

func setKey(set map[int]bool) string {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func sortedIDs(set map[int]bool) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// resolveAcceptance scans an NFA subset for accepting states, returning
// whether the subset accepts and which category wins: lower Priority
// wins, ties broken by Order (input position), mirroring
// original_source/src/dfa.cpp's SubsetConstruction::convert bestPriority
// tracking but with an explicit, deterministic tie-break.
func resolveAcceptance(n *NFA, set map[int]bool) (accept bool, category string) {
	bestPriority := math.MaxInt32
	bestOrder := math.MaxInt32
	for id := range set {
		st := n.States[id]
		if !st.Accept {
			continue
		}
		accept = true
		if st.Priority < bestPriority || (st.Priority == bestPriority && st.Order < bestOrder) {
			bestPriority = st.Priority
			bestOrder = st.Order
			category = st.Category
		}
	}
	return accept, category
}

// Subset is C5: subset construction from an NFA to a DFA, resolving each
// accepting subset's winning category once, at construction time — the
// scanner (C8) never has to break a tie itself.
func Subset(n *NFA) (*DFA, error) {
	if n == nil || len(n.States) == 0 {
		return nil, &EmptyMachineError{}
	}

	alphabet := alphabetOf(n)
	if len(alphabet) == 0 {
		// No pattern's fragments carry a non-epsilon edge: every accepted
		// string is empty, so no byte can ever advance the machine. Per
		// spec.md §8 Boundaries this is EmptyMachine, not a degenerate
		// one-state accepting DFA.
		return nil, &EmptyMachineError{}
	}
	dfa := &DFA{Alphabet: alphabet}
	mapping := make(map[string]int)

	newDFAState := func(set map[int]bool) *DFAState {
		accept, category := resolveAcceptance(n, set)
		s := &DFAState{
			ID:        len(dfa.States),
			NFAStates: sortedIDs(set),
			Accept:    accept,
			Category:  category,
		}
		dfa.States = append(dfa.States, s)
		return s
	}

	startSet := epsilonClosure(n, map[int]bool{n.Start: true})
	startKey := setKey(startSet)
	start := newDFAState(startSet)
	mapping[startKey] = start.ID
	dfa.Start = start.ID

	type pending struct {
		set map[int]bool
		key string
	}
	queue := []pending{{startSet, startKey}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := mapping[cur.key]

		for _, sym := range alphabet {
			nextSet := move(n, cur.set, sym)
			if len(nextSet) == 0 {
				continue
			}
			nextSet = epsilonClosure(n, nextSet)
			key := setKey(nextSet)

			toID, ok := mapping[key]
			if !ok {
				st := newDFAState(nextSet)
				toID = st.ID
				mapping[key] = toID
				queue = append(queue, pending{nextSet, key})
			}
			dfa.Transitions = append(dfa.Transitions, DFATransition{From: curID, Symbol: sym, To: toID})
		}
	}

	return dfa, nil
}
