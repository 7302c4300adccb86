package fsa

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Determinize Replaces the automaton by an equivalent deterministic one using the subset
// construction. Only subsets reachable from the start state are built; they are numbered densely
// from 0 (the start state) in discovery order. The automaton must not contain epsilon or
// multi-symbol labels; use ToDFA for arbitrary input.
//
// If more states than the work limit would be needed it returns ErrTooComplexToDeterminize and
// leaves the automaton unchanged.
func (a *Automaton) Determinize(opts ...Option) error {
	o := a.with(opts...)

	result := &Automaton{
		states:   make(map[int]*State),
		alphabet: slices.Clone(a.alphabet),
	}
	ids := NewHashMap[int](WithCapacity(a.NumStates()))
	subsets := make([]*bitset.BitSet, 0)

	discover := func(set *bitset.BitSet) (int, error) {
		key := newStateSet(set)
		if id, ok := ids.Get(key); ok {
			return id, nil
		}
		if o.workLimit > 0 && len(subsets) >= o.workLimit {
			return -1, fmt.Errorf("more than %d states: %w", o.workLimit, ErrTooComplexToDeterminize)
		}
		id := len(subsets)
		ids.Set(key, id)
		subsets = append(subsets, set)
		result.GetOrCreate(id)
		return id, nil
	}

	initial := bitset.New(uint(a.nextID))
	initial.Set(uint(a.start))
	start, _ := discover(initial)
	result.start = start

	for id := 0; id < len(subsets); id++ {
		s := result.states[id]
		set := subsets[id]

		targets := make(map[string]*bitset.BitSet)
		for m, ok := set.NextSet(0); ok; m, ok = set.NextSet(m + 1) {
			member, ok := a.states[int(m)]
			if !ok {
				continue
			}
			if member.terminal {
				s.terminal = true
			}
			for label, to := range member.edges {
				if acc, ok := targets[label]; ok {
					acc.InPlaceUnion(to)
				} else {
					targets[label] = to.Clone()
				}
			}
		}

		for _, label := range slices.Sorted(maps.Keys(targets)) {
			to, err := discover(targets[label])
			if err != nil {
				o.logger.Debug("determinization aborted",
					slog.Int("states", len(subsets)),
					slog.Any("error", err))
				return err
			}
			s.addEdge(label, to)
		}
	}

	o.logger.Debug("determinized",
		slog.Int("from", a.NumStates()),
		slog.Int("to", result.NumStates()))
	a.replace(result)
	return nil
}
