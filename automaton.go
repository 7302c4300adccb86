package fsa

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// Automaton Represents a generalized finite automaton: states are non-negative integers, transitions
// are labeled with strings (Epsilon included) and may be nondeterministic. A state is created the
// first time a mutation references its id; read-only lookups never create states. The transforms
// (ToDFA, Complete, Complement, Minimize) rewrite the automaton in place.
type Automaton struct {
	start  int
	states map[int]*State

	// Sorted, without duplicates. Used by completion and minimization.
	alphabet []rune

	// Smallest id guaranteed not to be in use.
	nextID int

	logger *slog.Logger
}

// NewAutomaton Creates an empty automaton over alphabet whose start state is 0. The start state
// is created by the first mutation that references it, or by SetStart.
func NewAutomaton(alphabet []rune, opts ...Option) *Automaton {
	o := newOptions(opts...)
	return &Automaton{
		states:   make(map[int]*State),
		alphabet: normalizeAlphabet(alphabet),
		logger:   o.logger,
	}
}

func normalizeAlphabet(alphabet []rune) []rune {
	a := slices.Clone(alphabet)
	slices.Sort(a)
	return slices.Compact(a)
}

// State Returns the state with the given id without creating it.
func (a *Automaton) State(id int) (*State, bool) {
	s, ok := a.states[id]
	return s, ok
}

// GetOrCreate Returns the state with the given id, creating a non-terminal state without
// transitions if it does not exist yet. It panics on a negative id.
func (a *Automaton) GetOrCreate(id int) *State {
	if id < 0 {
		panic(fmt.Sprintf("fsa: negative state id %d", id))
	}
	if s, ok := a.states[id]; ok {
		return s
	}
	s := newState(id)
	a.states[id] = s
	if id >= a.nextID {
		a.nextID = id + 1
	}
	return s
}

// newStateID Reserves a fresh id and creates its state.
func (a *Automaton) newStateID() int {
	id := a.nextID
	a.GetOrCreate(id)
	return id
}

// AddEdge Adds a transition from state from to state to labeled label. Both states are
// created if needed. Symbols are the runes of label, which must be valid UTF-8.
func (a *Automaton) AddEdge(from, to int, label string) {
	a.GetOrCreate(to)
	a.GetOrCreate(from).addEdge(label, to)
}

// SetTerminal Set or clear this state as an accept state.
func (a *Automaton) SetTerminal(id int, terminal bool) {
	a.GetOrCreate(id).terminal = terminal
}

// SetStart Sets the start state, creating it if needed.
func (a *Automaton) SetStart(id int) {
	a.GetOrCreate(id)
	a.start = id
}

// Start Returns the id of the start state.
func (a *Automaton) Start() int {
	return a.start
}

// Alphabet Returns a sorted copy of the alphabet.
func (a *Automaton) Alphabet() []rune {
	return slices.Clone(a.alphabet)
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// NextID Returns the smallest id guaranteed to be unused.
func (a *Automaton) NextID() int {
	return a.nextID
}

// StateIDs Returns the ids of all states, ascending.
func (a *Automaton) StateIDs() []int {
	return slices.Sorted(maps.Keys(a.states))
}

// IsTerminal Returns true if id names an existing accept state.
func (a *Automaton) IsTerminal(id int) bool {
	s, ok := a.states[id]
	return ok && s.terminal
}

// Terminals Returns the ids of all accept states, ascending.
func (a *Automaton) Terminals() []int {
	ids := make([]int, 0)
	for _, id := range a.StateIDs() {
		if a.states[id].terminal {
			ids = append(ids, id)
		}
	}
	return ids
}

// Clone Returns a deep copy; no state or target set is shared with the receiver.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		start:    a.start,
		states:   make(map[int]*State, len(a.states)),
		alphabet: slices.Clone(a.alphabet),
		nextID:   a.nextID,
		logger:   a.logger,
	}
	for id, s := range a.states {
		c.states[id] = s.clone()
	}
	return c
}

// replace Moves the contents of other into a. Rebuilding transforms construct other from
// scratch and call this as their final step.
func (a *Automaton) replace(other *Automaton) {
	a.start = other.start
	a.states = other.states
	a.alphabet = other.alphabet
	a.nextID = other.nextID
}

// IsDeterministic Returns true if no state has an epsilon or multi-symbol label and every
// label leads to exactly one state.
func (a *Automaton) IsDeterministic() bool {
	for _, s := range a.states {
		for label, set := range s.edges {
			if !isSymbol(label) || set.Count() != 1 {
				return false
			}
		}
	}
	return true
}

// IsComplete Returns true if every state has exactly one transition for every alphabet symbol.
func (a *Automaton) IsComplete() bool {
	for _, s := range a.states {
		for _, r := range a.alphabet {
			set, ok := s.edges[string(r)]
			if !ok || set.Count() != 1 {
				return false
			}
		}
	}
	return true
}

func isSymbol(label string) bool {
	return runeLen(label) == 1
}

func runeLen(label string) int {
	return len([]rune(label))
}

func (a *Automaton) String() string {
	b := new(strings.Builder)
	b.WriteString("Automaton:\n")
	b.WriteString("    Edges:\n")
	for e := range a.Edges() {
		fmt.Fprintf(b, "        From %d to %d by %s\n", e.From, e.To, e.Label)
	}
	fmt.Fprintf(b, "    Start state: %d\n", a.start)
	terminals := make([]string, 0)
	for _, id := range a.Terminals() {
		terminals = append(terminals, fmt.Sprint(id))
	}
	fmt.Fprintf(b, "    Terminal states: %s\n", strings.Join(terminals, ", "))
	return b.String()
}
