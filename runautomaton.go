package fsa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// RunAutomaton is a deterministic automaton compiled into a dense transition table, for matching
// many inputs against the same automaton. States are renumbered 0..n-1 with 0 the initial state.
type RunAutomaton struct {
	alphabet    []rune
	symbolIndex map[rune]int

	// transitions[state*len(alphabet)+symbol] is the destination, -1 if none.
	transitions []int
	accept      *bitset.BitSet
	size        int
}

// NewRunAutomaton Compiles a deterministic automaton. Transitions on labels outside the alphabet
// are dropped. An automaton without a start state compiles to one that rejects everything.
// Returns ErrNondeterministic if a is not deterministic.
func NewRunAutomaton(a *Automaton) (*RunAutomaton, error) {
	if !a.IsDeterministic() {
		return nil, fmt.Errorf("compile run automaton: %w", ErrNondeterministic)
	}

	// The start state is always 0; the others follow in id order.
	order := make([]int, 0, a.NumStates())
	if _, ok := a.states[a.start]; ok {
		order = append(order, a.start)
	} else {
		return &RunAutomaton{
			alphabet:    a.Alphabet(),
			symbolIndex: make(map[rune]int),
			accept:      bitset.New(0),
		}, nil
	}
	for _, id := range a.StateIDs() {
		if id != a.start {
			order = append(order, id)
		}
	}
	index := make(map[int]int, len(order))
	for i, id := range order {
		index[id] = i
	}

	r := &RunAutomaton{
		alphabet:    a.Alphabet(),
		symbolIndex: make(map[rune]int, len(a.alphabet)),
		transitions: make([]int, len(order)*len(a.alphabet)),
		accept:      bitset.New(uint(len(order))),
		size:        len(order),
	}
	for i, sym := range r.alphabet {
		r.symbolIndex[sym] = i
	}
	for i := range r.transitions {
		r.transitions[i] = -1
	}

	for i, id := range order {
		s := a.states[id]
		r.accept.SetTo(uint(i), s.terminal)
		for j, sym := range r.alphabet {
			if to, err := s.Step(string(sym)); err == nil {
				r.transitions[i*len(r.alphabet)+j] = index[to]
			}
		}
	}
	return r, nil
}

// Size Returns the number of states.
func (r *RunAutomaton) Size() int {
	return r.size
}

// IsAccept Returns true if state is an accept state.
func (r *RunAutomaton) IsAccept(state int) bool {
	return r.accept.Test(uint(state))
}

// Step Returns the state reached from state on symbol, or -1 if there is none.
func (r *RunAutomaton) Step(state int, symbol rune) int {
	j, ok := r.symbolIndex[symbol]
	if !ok || state < 0 || state >= r.size {
		return -1
	}
	return r.transitions[state*len(r.alphabet)+j]
}

// Run Returns true if s is accepted.
func (r *RunAutomaton) Run(s string) bool {
	if r.size == 0 {
		return false
	}
	p := 0
	for _, sym := range s {
		p = r.Step(p, sym)
		if p == -1 {
			return false
		}
	}
	return r.IsAccept(p)
}
