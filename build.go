package fsa

import (
	"fmt"
	"iter"
	"strconv"
	"unicode/utf8"
)

// EpsilonToken is the external spelling of the Epsilon label.
const EpsilonToken = "-"

// EdgeRecord is one transition in external form. Label is a literal, possibly multi-symbol,
// string; EpsilonToken stands for the empty label.
type EdgeRecord struct {
	From  int
	To    int
	Label string
}

func (e EdgeRecord) String() string {
	return strconv.Itoa(e.From) + " " + strconv.Itoa(e.To) + " " + e.Label
}

// ParseLabel Converts an external label token to a label.
func ParseLabel(token string) string {
	if token == EpsilonToken {
		return Epsilon
	}
	return token
}

// FormatLabel Converts a label to its external token.
func FormatLabel(label string) string {
	if label == Epsilon {
		return EpsilonToken
	}
	return label
}

// EdgesOf Returns a sequence yielding records in order.
func EdgesOf(records ...EdgeRecord) iter.Seq[EdgeRecord] {
	return func(yield func(EdgeRecord) bool) {
		for _, r := range records {
			if !yield(r) {
				return
			}
		}
	}
}

// Build Creates an automaton from an edge source. Every id that appears in edges, start or
// terminals becomes a state. Ids must be non-negative and labels valid UTF-8; otherwise Build
// returns an error wrapping ErrInvalidEdge.
func Build(alphabet []rune, edges iter.Seq[EdgeRecord], start int, terminals []int, opts ...Option) (*Automaton, error) {
	a := NewAutomaton(alphabet, opts...)
	if edges != nil {
		for e := range edges {
			if e.From < 0 || e.To < 0 {
				return nil, fmt.Errorf("edge %q: negative state id: %w", e.String(), ErrInvalidEdge)
			}
			if !utf8.ValidString(e.Label) {
				return nil, fmt.Errorf("edge %q: label is not valid UTF-8: %w", e.String(), ErrInvalidEdge)
			}
			a.AddEdge(e.From, e.To, ParseLabel(e.Label))
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("start state %d: %w", start, ErrInvalidEdge)
	}
	a.SetStart(start)
	for _, id := range terminals {
		if id < 0 {
			return nil, fmt.Errorf("terminal state %d: %w", id, ErrInvalidEdge)
		}
		a.SetTerminal(id, true)
	}
	return a, nil
}

// Edges Enumerates every transition as an external record, by ascending source id, then label,
// then target id.
func (a *Automaton) Edges() iter.Seq[EdgeRecord] {
	return func(yield func(EdgeRecord) bool) {
		for _, id := range a.StateIDs() {
			s := a.states[id]
			for _, label := range s.Labels() {
				for _, to := range s.Targets(label) {
					if !yield(EdgeRecord{From: id, To: to, Label: FormatLabel(label)}) {
						return
					}
				}
			}
		}
	}
}
