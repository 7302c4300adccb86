package fsa

import (
	"fmt"
	"log/slog"
)

// equivalenceClasses Computes the Moore partition of the states. The result maps every state id
// to its class; classes are numbered from 0 in order of first appearance.
func (a *Automaton) equivalenceClasses() (map[int]int, int, error) {
	ids := a.StateIDs()

	class := make(map[int]int, len(ids))
	count := 0
	seen := [2]bool{}
	for _, id := range ids {
		t := 0
		if a.states[id].terminal {
			t = 1
		}
		class[id] = t
		if !seen[t] {
			seen[t] = true
			count++
		}
	}

	for {
		groups := NewHashMap[int](WithCapacity(count))
		next := make(map[int]int, len(ids))
		for _, id := range ids {
			s := a.states[id]
			sig := make(signature, 0, len(a.alphabet)+1)
			sig = append(sig, class[id])
			for _, r := range a.alphabet {
				to, err := s.Step(string(r))
				if err != nil {
					return nil, 0, err
				}
				sig = append(sig, class[to])
			}

			c, ok := groups.Get(sig)
			if !ok {
				c = groups.Size()
				groups.Set(sig, c)
			}
			next[id] = c
		}

		class = next
		if groups.Size() == count {
			return class, count, nil
		}
		count = groups.Size()
	}
}

// Minimize Replaces the automaton by the minimal automaton recognizing the same language, with
// one state per equivalence class. The automaton must be a complete DFA; a missing transition
// is reported as an error wrapping ErrNoSuchTransition and leaves the automaton unchanged.
func (a *Automaton) Minimize() error {
	class, count, err := a.equivalenceClasses()
	if err != nil {
		return fmt.Errorf("minimize: %w", err)
	}

	result := &Automaton{
		states:   make(map[int]*State, count),
		alphabet: a.alphabet,
	}
	result.SetStart(class[a.start])
	for _, id := range a.StateIDs() {
		s := a.states[id]
		c := class[id]
		if s.terminal {
			result.SetTerminal(c, true)
		}
		for _, r := range a.alphabet {
			to, _ := s.Step(string(r))
			result.AddEdge(c, class[to], string(r))
		}
	}

	a.logger.Debug("minimized",
		slog.Int("from", a.NumStates()),
		slog.Int("to", result.NumStates()))
	a.replace(result)
	return nil
}
