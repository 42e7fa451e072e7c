package table

// EmptyTableError mirrors automata.EmptyMachineError one stage later: a
// caller tried to compact a DFA with no states into a table.
type EmptyTableError struct{}

func (e *EmptyTableError) Error() string {
	return "cannot build a transition table from an empty DFA"
}
