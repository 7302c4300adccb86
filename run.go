package fsa

import "github.com/bits-and-blooms/bitset"

// Accept Returns true if the deterministic automaton accepts s. A missing or ambiguous transition
// rejects the input.
func (a *Automaton) Accept(s string) bool {
	return a.AcceptSymbols([]rune(s))
}

// AcceptSymbols Returns true if the deterministic automaton accepts the symbol sequence.
func (a *Automaton) AcceptSymbols(symbols []rune) bool {
	state, ok := a.states[a.start]
	if !ok {
		return false
	}
	for _, r := range symbols {
		next, err := state.Step(string(r))
		if err != nil {
			return false
		}
		state = a.states[next]
	}
	return state.terminal
}

// Matches Returns true if s is accepted along any path of the automaton. Unlike Accept it works
// on any automaton, including ones with epsilon, multi-symbol or nondeterministic transitions.
func (a *Automaton) Matches(s string) bool {
	b := a.Clone()
	b.SplitEdges()

	current := bitset.New(uint(b.nextID))
	if _, ok := b.states[b.start]; !ok {
		return false
	}
	current.Set(uint(b.start))
	b.closeOverEpsilon(current)

	for _, r := range s {
		label := string(r)
		next := bitset.New(uint(b.nextID))
		for id, ok := current.NextSet(0); ok; id, ok = current.NextSet(id + 1) {
			if set, ok := b.states[int(id)].edges[label]; ok {
				next.InPlaceUnion(set)
			}
		}
		if next.None() {
			return false
		}
		b.closeOverEpsilon(next)
		current = next
	}

	for id, ok := current.NextSet(0); ok; id, ok = current.NextSet(id + 1) {
		if b.states[int(id)].terminal {
			return true
		}
	}
	return false
}

// closeOverEpsilon Adds the epsilon closure of every member to set.
func (a *Automaton) closeOverEpsilon(set *bitset.BitSet) {
	for id, ok := set.NextSet(0); ok; id, ok = set.NextSet(id + 1) {
		set.InPlaceUnion(a.epsilonClosure(int(id)))
	}
}
