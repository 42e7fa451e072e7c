// Package table compacts a DFA into the dense array form the scanner
// actually runs against: C6 (table construction) and C7 (emission of
// that table as a portable artifact, in both a textual format and
// generated Go source).
package table

import (
	"fmt"
	"math"
	"sort"

	"github.com/karllogdat/lexgen/internal/automata"
)

// UnknownCategory is the sentinel category id the scanner assigns to a
// lexeme that reached a non-accepting state: no pattern claimed it.
const UnknownCategory = math.MaxInt32

// Table is the C6 artifact: everything the C8 scanner needs, and nothing
// it has to derive at scan time. Modeled directly on
// original_source/src/dfa.hpp's TransitionTable, generalized from a
// single C array of chars to Go's byte alphabet and from a C enum to an
// explicit CategoryNames slice.
type Table struct {
	StateCount    int
	SymbolCount   int
	Alphabet      []byte
	SymbolToID    [256]int32 // -1 if the byte is outside the alphabet
	Transitions   [][]int32  // StateCount x SymbolCount, -1 if no transition
	Start         int32
	Accept        []bool  // len StateCount
	CategoryNames []string
	StateCategory []int32 // len StateCount, -1 if the state is not accepting
}

// Build is C6: flattens a DFA's sparse transition list into a dense
// StateCount x SymbolCount matrix and assigns each distinct category
// name a stable, deterministic id (sorted by name, matching
// original_source/src/dfa.cpp's use of std::map<string,int> — an
// ordered map iterates its keys sorted).
func Build(d *automata.DFA) (*Table, error) {
	if d == nil || len(d.States) == 0 {
		return nil, &EmptyTableError{}
	}

	// A DFA is only ever produced by Subset or Minimize, both of which
	// assign state ids as the state's own index into d.States. Build
	// indexes d.States and Transitions by those ids directly, so a state
	// whose id doesn't match its slice position (or a start state out of
	// range) is a contradiction in the pipeline's own bookkeeping, not a
	// bad input — a caller handed Build a hand-built, malformed DFA.
	for i, s := range d.States {
		if s.ID != i {
			return nil, &automata.InternalInvariantError{Msg: fmt.Sprintf("dfa state at slice index %d has id %d", i, s.ID)}
		}
	}
	if d.Start < 0 || d.Start >= len(d.States) {
		return nil, &automata.InternalInvariantError{Msg: fmt.Sprintf("start state %d out of range [0,%d)", d.Start, len(d.States))}
	}

	t := &Table{
		StateCount:  len(d.States),
		SymbolCount: len(d.Alphabet),
		Alphabet:    append([]byte(nil), d.Alphabet...),
		Start:       int32(d.Start),
		Accept:      make([]bool, len(d.States)),
	}

	for i := range t.SymbolToID {
		t.SymbolToID[i] = -1
	}
	for id, b := range t.Alphabet {
		t.SymbolToID[b] = int32(id)
	}

	names := make(map[string]bool)
	for _, s := range d.States {
		if s.Accept {
			names[s.Category] = true
		}
	}
	t.CategoryNames = make([]string, 0, len(names))
	for name := range names {
		t.CategoryNames = append(t.CategoryNames, name)
	}
	sort.Strings(t.CategoryNames)
	nameToID := make(map[string]int32, len(t.CategoryNames))
	for id, name := range t.CategoryNames {
		nameToID[name] = int32(id)
	}

	t.Transitions = make([][]int32, t.StateCount)
	for i := range t.Transitions {
		row := make([]int32, t.SymbolCount)
		for j := range row {
			row[j] = -1
		}
		t.Transitions[i] = row
	}

	t.StateCategory = make([]int32, t.StateCount)
	for i, s := range d.States {
		t.Accept[i] = s.Accept
		if s.Accept {
			t.StateCategory[i] = nameToID[s.Category]
		} else {
			t.StateCategory[i] = -1
		}
	}

	for _, tr := range d.Transitions {
		if tr.From < 0 || tr.From >= t.StateCount || tr.To < 0 || tr.To >= t.StateCount {
			return nil, &automata.InternalInvariantError{Msg: fmt.Sprintf("transition %d->%d out of range [0,%d)", tr.From, tr.To, t.StateCount)}
		}
		symID := t.SymbolToID[tr.Symbol]
		if symID < 0 {
			return nil, &automata.InternalInvariantError{Msg: fmt.Sprintf("transition on byte %q not in the computed alphabet", tr.Symbol)}
		}
		t.Transitions[tr.From][symID] = int32(tr.To)
	}

	return t, nil
}

// Next returns the destination state and true, or (0, false) on a dead
// transition — the byte is outside the alphabet, or the table has -1 in
// that cell.
func (t *Table) Next(state int32, b byte) (int32, bool) {
	symID := t.SymbolToID[b]
	if symID < 0 {
		return 0, false
	}
	to := t.Transitions[state][symID]
	if to < 0 {
		return 0, false
	}
	return to, true
}

// CategoryName returns the name for a category id, such as one read from
// Token.Category or a state's entry in StateCategory directly. Returns ""
// for a negative id or one outside CategoryNames (including UnknownCategory).
func (t *Table) CategoryName(cat int32) string {
	if cat < 0 || int(cat) >= len(t.CategoryNames) {
		return ""
	}
	return t.CategoryNames[cat]
}
