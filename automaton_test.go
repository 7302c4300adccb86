package fsa

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomaton_GetOrCreate(t *testing.T) {
	a := NewAutomaton(nil)
	a.GetOrCreate(1)
	a.GetOrCreate(3)
	assert.Equal(t, 4, a.NextID())
	assert.Equal(t, []int{1, 3}, a.StateIDs())

	t.Run("lookup does not create", func(t *testing.T) {
		_, ok := a.State(7)
		assert.False(t, ok)
		assert.False(t, a.IsTerminal(7))
		assert.Equal(t, 2, a.NumStates())
		assert.Equal(t, 4, a.NextID())
	})
}

func TestAutomaton_AddEdge(t *testing.T) {
	a := NewAutomaton(nil)
	a.AddEdge(1, 2, "ab")
	assert.Equal(t, []int{1, 2}, a.StateIDs())

	s, ok := a.State(1)
	require.True(t, ok)
	assert.Equal(t, []string{"ab"}, s.Labels())
	assert.Equal(t, []int{2}, s.Targets("ab"))
	assert.Equal(t, 3, a.NextID())
}

func TestAutomaton_Alphabet(t *testing.T) {
	a := NewAutomaton([]rune("bab"))
	assert.Equal(t, []rune("ab"), a.Alphabet())

	got := a.Alphabet()
	got[0] = 'z'
	assert.Equal(t, []rune("ab"), a.Alphabet())
}

func TestAutomaton_Clone(t *testing.T) {
	a := NewAutomaton(abAlphabet)
	a.AddEdge(1, 2, "ab")
	a.SetTerminal(2, true)

	c := a.Clone()
	c.AddEdge(1, 5, "ab")
	c.SetTerminal(2, false)
	c.SetTerminal(1, true)

	s, _ := a.State(1)
	assert.Equal(t, []int{2}, s.Targets("ab"))
	assert.Equal(t, []int{2}, a.Terminals())
	assert.Equal(t, 3, a.NextID())
	assert.Equal(t, []int{1}, c.Terminals())
}

func TestBuild(t *testing.T) {
	a, err := Build(abAlphabet, EdgesOf(
		EdgeRecord{From: 0, To: 1, Label: "-"},
		EdgeRecord{From: 1, To: 1, Label: "ab"},
		EdgeRecord{From: 0, To: 2, Label: "a"},
	), 0, []int{1, 4})
	require.NoError(t, err)

	assert.Equal(t, 0, a.Start())
	assert.Equal(t, []int{0, 1, 2, 4}, a.StateIDs())
	assert.Equal(t, []int{1, 4}, a.Terminals())

	s, _ := a.State(0)
	assert.Equal(t, []int{1}, s.Targets(Epsilon))

	edges := slices.Collect(a.Edges())
	assert.Equal(t, []EdgeRecord{
		{From: 0, To: 1, Label: "-"},
		{From: 0, To: 2, Label: "a"},
		{From: 1, To: 1, Label: "ab"},
	}, edges)

	t.Run("round trip", func(t *testing.T) {
		b := mustBuild(a.Alphabet(), a.Edges(), a.Start(), a.Terminals())
		assert.Equal(t, edges, slices.Collect(b.Edges()))
		assert.Equal(t, a.Terminals(), b.Terminals())
	})

	t.Run("nil source", func(t *testing.T) {
		b := mustBuild(abAlphabet, nil, 3, nil)
		assert.Equal(t, []int{3}, b.StateIDs())
		assert.Equal(t, 3, b.Start())
	})
}

func TestBuild_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		edges     []EdgeRecord
		start     int
		terminals []int
	}{
		{"negative source", []EdgeRecord{{From: -1, To: 0, Label: "a"}}, 0, nil},
		{"negative target", []EdgeRecord{{From: 0, To: -2, Label: "a"}}, 0, nil},
		{"invalid utf-8 label", []EdgeRecord{{From: 0, To: 1, Label: "a\xff"}}, 0, nil},
		{"negative start", nil, -1, nil},
		{"negative terminal", nil, 0, []int{-3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Build(abAlphabet, EdgesOf(tt.edges...), tt.start, tt.terminals)
			assert.ErrorIs(t, err, ErrInvalidEdge)
			assert.Nil(t, a)
		})
	}
}

func TestAutomaton_String(t *testing.T) {
	a := NewAutomaton(nil)
	a.AddEdge(0, 1, "asd")
	a.SetTerminal(1, true)
	a.AddEdge(0, 2, Epsilon)

	out := a.String()
	assert.Contains(t, out, "From 0 to 2 by -")
	assert.Contains(t, out, "From 0 to 1 by asd")
	assert.Contains(t, out, "Terminal states: 1")
}

func TestAutomaton_IsDeterministic(t *testing.T) {
	tests := []struct {
		name string
		a    *Automaton
		want bool
	}{
		{"single symbol", alternating(), true},
		{"epsilon", abStar(), false},
		{"nondeterministic", endsWithAB(), false},
		{"multi-symbol", sharedLongLabel(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.IsDeterministic())
		})
	}
}

func TestAutomaton_IsEmpty(t *testing.T) {
	assert.False(t, alternating().IsEmpty())
	assert.True(t, MakeEmpty(abAlphabet).IsEmpty())

	a := NewAutomaton(abAlphabet)
	a.SetStart(0)
	a.AddEdge(0, 1, "a")
	a.SetTerminal(2, true)
	assert.True(t, a.IsEmpty())
}

func TestWithLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a := mustBuild(abAlphabet, EdgesOf(
		EdgeRecord{From: 0, To: 1, Label: "-"},
		EdgeRecord{From: 1, To: 1, Label: "ab"},
	), 0, []int{1}, WithLogger(logger))
	require.NoError(t, a.ToDFA())
	a.Complete()
	require.NoError(t, a.Minimize())

	out := buf.String()
	assert.Contains(t, out, "split multi-symbol edges")
	assert.Contains(t, out, "removed epsilon transitions")
	assert.Contains(t, out, "determinized")
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "minimized")
}
