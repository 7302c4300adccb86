package fsa

// MakeEmpty Returns a new (deterministic) automaton with the empty language.
func MakeEmpty(alphabet []rune, opts ...Option) *Automaton {
	a := NewAutomaton(alphabet, opts...)
	a.SetStart(0)
	return a
}

// MakeEmptyString Returns a new (deterministic) automaton that accepts only the empty string.
func MakeEmptyString(alphabet []rune, opts ...Option) *Automaton {
	a := MakeEmpty(alphabet, opts...)
	a.SetTerminal(0, true)
	return a
}

// MakeString Returns a new (deterministic) automaton that accepts only s.
func MakeString(alphabet []rune, s string, opts ...Option) *Automaton {
	a := MakeEmpty(alphabet, opts...)
	state := 0
	for _, r := range s {
		next := a.newStateID()
		a.AddEdge(state, next, string(r))
		state = next
	}
	a.SetTerminal(state, true)
	return a
}

// MakeAnyString Returns a new (deterministic, complete) automaton that accepts every string over
// its alphabet.
func MakeAnyString(alphabet []rune, opts ...Option) *Automaton {
	a := MakeEmptyString(alphabet, opts...)
	for _, r := range a.alphabet {
		a.AddEdge(0, 0, string(r))
	}
	return a
}
