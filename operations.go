package fsa

import (
	"github.com/bits-and-blooms/bitset"
)

// ToDFA Converts an arbitrary automaton into an equivalent deterministic one: multi-symbol labels
// are split, epsilon transitions are eliminated and the result is determinized. The resulting
// states are numbered 0..n-1 and are all reachable from the start state. On error the automaton
// is left unchanged.
func (a *Automaton) ToDFA(opts ...Option) error {
	b := a.Clone()
	b.SplitEdges()
	b.RemoveEpsilons()
	if err := b.Determinize(opts...); err != nil {
		return err
	}
	a.replace(b)
	return nil
}

// Reachable Returns the set of states reachable from the start state, the start state included.
func (a *Automaton) Reachable() *bitset.BitSet {
	live := bitset.New(uint(a.nextID))
	if _, ok := a.states[a.start]; !ok {
		return live
	}

	workList := []int{a.start}
	live.Set(uint(a.start))
	for len(workList) > 0 {
		s := a.states[workList[0]]
		workList = workList[1:]
		for _, set := range s.edges {
			for to, ok := set.NextSet(0); ok; to, ok = set.NextSet(to + 1) {
				if !live.Test(to) {
					live.Set(to)
					workList = append(workList, int(to))
				}
			}
		}
	}
	return live
}

// IsEmpty Returns true if the automaton accepts no strings.
func (a *Automaton) IsEmpty() bool {
	live := a.Reachable()
	for id, ok := live.NextSet(0); ok; id, ok = live.NextSet(id + 1) {
		if a.states[int(id)].terminal {
			return false
		}
	}
	return true
}
