package fsa

import (
	"log/slog"

	"github.com/bits-and-blooms/bitset"
)

// epsilonClosure Returns the states reachable from id through one or more epsilon transitions.
// id itself is only included when it lies on an epsilon cycle.
func (a *Automaton) epsilonClosure(id int) *bitset.BitSet {
	visited := bitset.New(uint(a.nextID))
	a.walkEpsilon(id, visited)
	return visited
}

func (a *Automaton) walkEpsilon(id int, visited *bitset.BitSet) {
	s, ok := a.states[id]
	if !ok {
		return
	}
	set, ok := s.edges[Epsilon]
	if !ok {
		return
	}
	for to, ok := set.NextSet(0); ok; to, ok = set.NextSet(to + 1) {
		if visited.Test(to) {
			continue
		}
		visited.Set(to)
		a.walkEpsilon(int(to), visited)
	}
}

// RemoveEpsilons Eliminates epsilon transitions without changing the accepted language. A state
// becomes terminal when a terminal state is in its epsilon closure, and it inherits the non-epsilon
// transitions of every state in its closure.
func (a *Automaton) RemoveEpsilons() {
	ids := a.StateIDs()

	closures := make(map[int]*bitset.BitSet, len(ids))
	for _, id := range ids {
		if c := a.epsilonClosure(id); c.Any() {
			closures[id] = c
		}
	}
	if len(closures) == 0 {
		return
	}

	// Both passes read the original transitions; nothing is written until all
	// inherited edges have been collected.
	terminal := make(map[int]bool)
	inherited := make(map[int]map[string]*bitset.BitSet, len(closures))
	for id, closure := range closures {
		edges := make(map[string]*bitset.BitSet)
		for m, ok := closure.NextSet(0); ok; m, ok = closure.NextSet(m + 1) {
			member := a.states[int(m)]
			if member.terminal {
				terminal[id] = true
			}
			for label, set := range member.edges {
				if label == Epsilon {
					continue
				}
				if acc, ok := edges[label]; ok {
					acc.InPlaceUnion(set)
				} else {
					edges[label] = set.Clone()
				}
			}
		}
		inherited[id] = edges
	}

	for id, edges := range inherited {
		s := a.states[id]
		if terminal[id] {
			s.terminal = true
		}
		delete(s.edges, Epsilon)
		for label, set := range edges {
			s.union(label, set)
		}
	}

	a.logger.Debug("removed epsilon transitions",
		slog.Int("closures", len(closures)),
		slog.Int("states", a.NumStates()))
}
