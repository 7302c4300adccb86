package fsa

import "errors"

var (
	// ErrNotFound is returned when removing a label or a (label, target) pair that a state does not have.
	ErrNotFound = errors.New("edge not found")

	// ErrNoSuchTransition is returned when stepping on a label the state has no edge for.
	ErrNoSuchTransition = errors.New("no such transition")

	// ErrNondeterministic is returned when a deterministic step finds more than one target.
	ErrNondeterministic = errors.New("automaton is not deterministic")

	// ErrInvalidEdge is returned by Build for a negative state id or a label that is not valid UTF-8.
	ErrInvalidEdge = errors.New("invalid edge record")

	// ErrTooComplexToDeterminize is returned when subset construction discovers more
	// states than the configured work limit allows.
	ErrTooComplexToDeterminize = errors.New("automaton too complex to determinize")
)
