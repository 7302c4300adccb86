package fsa

import "log/slog"

type longEdge struct {
	source int
	label  string
}

// SplitEdges Replaces every transition whose label has more than one symbol by a chain of
// single-symbol transitions through freshly created states. Each target of a multi-symbol label
// gets its own chain; intermediate states are never shared.
func (a *Automaton) SplitEdges() {
	pending := make([]longEdge, 0)
	for _, id := range a.StateIDs() {
		for _, label := range a.states[id].Labels() {
			if runeLen(label) > 1 {
				pending = append(pending, longEdge{source: id, label: label})
			}
		}
	}

	for _, e := range pending {
		s := a.states[e.source]
		symbols := []rune(e.label)
		for _, target := range s.Targets(e.label) {
			last := e.source
			for i, r := range symbols {
				to := target
				if i+1 < len(symbols) {
					to = a.newStateID()
				}
				a.AddEdge(last, to, string(r))
				last = to
			}
		}
		delete(s.edges, e.label)
	}

	a.logger.Debug("split multi-symbol edges",
		slog.Int("edges", len(pending)),
		slog.Int("states", a.NumStates()))
}
