package fsa

import "log/slog"

type missingEdge struct {
	state  int
	symbol rune
}

// Complete Makes the transition function total by routing every missing (state, symbol) pair
// to a new sink state that loops to itself on every symbol. No state is added when nothing is
// missing. The automaton must already be deterministic.
func (a *Automaton) Complete() {
	missing := make([]missingEdge, 0)
	for _, id := range a.StateIDs() {
		s := a.states[id]
		for _, r := range a.alphabet {
			if !s.HasLabel(string(r)) {
				missing = append(missing, missingEdge{state: id, symbol: r})
			}
		}
	}
	if len(missing) == 0 {
		return
	}

	sink := a.newStateID()
	for _, m := range missing {
		a.AddEdge(m.state, sink, string(m.symbol))
	}
	for _, r := range a.alphabet {
		a.AddEdge(sink, sink, string(r))
	}

	a.logger.Debug("completed",
		slog.Int("missing", len(missing)),
		slog.Int("sink", sink))
}

// Complement Flips every state between accepting and rejecting. The result recognizes the
// complement language only if the automaton is a complete DFA.
func (a *Automaton) Complement() {
	for _, s := range a.states {
		s.terminal = !s.terminal
	}
}
