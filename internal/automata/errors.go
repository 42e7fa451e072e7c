package automata

import "fmt"

// EmptyMachineError is the EmptyMachine error taxonomy kind: an attempt to
// build or subset-construct an automaton that cannot advance on any byte,
// either because the caller supplied zero patterns (no start state) or
// because no pattern consumes a byte (an empty concrete alphabet).
type EmptyMachineError struct{}

func (e *EmptyMachineError) Error() string {
	return "empty machine: no patterns supplied, or no pattern consumes any byte"
}

// InternalInvariantError is the fatal InternalInvariantFailure kind: a
// contradiction in the pipeline's own bookkeeping (a state id out of sync
// with its slice position, a start state or transition endpoint out of
// range, a transition symbol outside the alphabet) that indicates a bug
// rather than bad input.
type InternalInvariantError struct {
	Msg string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("internal invariant failure: %s", e.Msg)
}
