package fsa

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Epsilon is the label of a transition that consumes no input.
const Epsilon = ""

// State is a single automaton state with its outgoing transitions. Transitions are
// kept as a multimap from label to the set of target state ids.
type State struct {
	id       int
	terminal bool
	edges    map[string]*bitset.BitSet
}

func newState(id int) *State {
	return &State{
		id:    id,
		edges: make(map[string]*bitset.BitSet),
	}
}

// ID Returns the id of this state.
func (s *State) ID() int {
	return s.id
}

// IsTerminal Returns true if this state is an accept state.
func (s *State) IsTerminal() bool {
	return s.terminal
}

// Labels Returns the labels of all outgoing transitions, sorted.
func (s *State) Labels() []string {
	return slices.Sorted(maps.Keys(s.edges))
}

// HasLabel Returns true if at least one transition leaves this state with label.
func (s *State) HasLabel(label string) bool {
	_, ok := s.edges[label]
	return ok
}

// Targets Returns the ascending target ids reached by label, or nil if there are none.
func (s *State) Targets(label string) []int {
	set, ok := s.edges[label]
	if !ok {
		return nil
	}
	return setToSlice(set)
}

func (s *State) addEdge(label string, to int) {
	set, ok := s.edges[label]
	if !ok {
		set = bitset.New(uint(to + 1))
		s.edges[label] = set
	}
	set.Set(uint(to))
}

// union adds every id of targets to the set reached by label.
func (s *State) union(label string, targets *bitset.BitSet) {
	if targets.None() {
		return
	}
	set, ok := s.edges[label]
	if !ok {
		s.edges[label] = targets.Clone()
		return
	}
	set.InPlaceUnion(targets)
}

// RemoveEdge Removes the transition to state to by label. The label entry disappears
// once its last target is removed.
func (s *State) RemoveEdge(label string, to int) error {
	set, ok := s.edges[label]
	if !ok || to < 0 || !set.Test(uint(to)) {
		return fmt.Errorf("state %d, label %q, target %d: %w", s.id, label, to, ErrNotFound)
	}
	set.Clear(uint(to))
	if set.None() {
		delete(s.edges, label)
	}
	return nil
}

// RemoveLabel Removes every transition leaving this state by label.
func (s *State) RemoveLabel(label string) error {
	if _, ok := s.edges[label]; !ok {
		return fmt.Errorf("state %d, label %q: %w", s.id, label, ErrNotFound)
	}
	delete(s.edges, label)
	return nil
}

// Step Returns the single state reached by label. It fails with ErrNoSuchTransition when
// there is no such edge and with ErrNondeterministic when the label leads to more than one state.
func (s *State) Step(label string) (int, error) {
	set, ok := s.edges[label]
	if !ok {
		return -1, fmt.Errorf("state %d, label %q: %w", s.id, label, ErrNoSuchTransition)
	}
	if set.Count() != 1 {
		return -1, fmt.Errorf("state %d, label %q has %d targets: %w", s.id, label, set.Count(), ErrNondeterministic)
	}
	to, _ := set.NextSet(0)
	return int(to), nil
}

func (s *State) clone() *State {
	c := &State{
		id:       s.id,
		terminal: s.terminal,
		edges:    make(map[string]*bitset.BitSet, len(s.edges)),
	}
	for label, set := range s.edges {
		c.edges[label] = set.Clone()
	}
	return c
}

func setToSlice(set *bitset.BitSet) []int {
	ids := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		ids = append(ids, int(i))
	}
	return ids
}
