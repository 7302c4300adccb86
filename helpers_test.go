package fsa

import (
	"iter"
	"strings"
)

func mustBuild(alphabet []rune, edges iter.Seq[EdgeRecord], start int, terminals []int, opts ...Option) *Automaton {
	a, err := Build(alphabet, edges, start, terminals, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

var abAlphabet = []rune("ab")

// abStar recognizes (ab)* through an epsilon edge and a two-symbol loop.
func abStar() *Automaton {
	return mustBuild(abAlphabet, EdgesOf(
		EdgeRecord{From: 0, To: 1, Label: "-"},
		EdgeRecord{From: 1, To: 1, Label: "ab"},
	), 0, []int{1})
}

// alternating recognizes (ab)* with single-symbol edges only.
func alternating() *Automaton {
	return mustBuild(abAlphabet, EdgesOf(
		EdgeRecord{From: 0, To: 1, Label: "a"},
		EdgeRecord{From: 1, To: 0, Label: "b"},
	), 0, []int{0})
}

// endsWithAB recognizes strings over {a,b} ending in "ab".
func endsWithAB() *Automaton {
	return mustBuild(abAlphabet, EdgesOf(
		EdgeRecord{From: 0, To: 0, Label: "a"},
		EdgeRecord{From: 0, To: 0, Label: "b"},
		EdgeRecord{From: 0, To: 1, Label: "a"},
		EdgeRecord{From: 1, To: 2, Label: "b"},
	), 0, []int{2})
}

func epsilonCycle() *Automaton {
	return mustBuild(abAlphabet, EdgesOf(
		EdgeRecord{From: 0, To: 1, Label: "-"},
		EdgeRecord{From: 1, To: 0, Label: "-"},
		EdgeRecord{From: 1, To: 2, Label: "ba"},
		EdgeRecord{From: 2, To: 0, Label: "a"},
		EdgeRecord{From: 2, To: 3, Label: "-"},
	), 0, []int{3})
}

func sharedLongLabel() *Automaton {
	return mustBuild(abAlphabet, EdgesOf(
		EdgeRecord{From: 0, To: 1, Label: "abb"},
		EdgeRecord{From: 0, To: 2, Label: "abb"},
		EdgeRecord{From: 1, To: 1, Label: "a"},
		EdgeRecord{From: 2, To: 2, Label: "b"},
	), 0, []int{1})
}

type fixture struct {
	name  string
	build func() *Automaton
}

var fixtures = []fixture{
	{"abStar", abStar},
	{"alternating", alternating},
	{"endsWithAB", endsWithAB},
	{"epsilonCycle", epsilonCycle},
	{"sharedLongLabel", sharedLongLabel},
}

// allStrings Returns every string over alphabet of length at most maxLen.
func allStrings(alphabet []rune, maxLen int) []string {
	out := []string{""}
	layer := []string{""}
	for n := 0; n < maxLen; n++ {
		next := make([]string, 0, len(layer)*len(alphabet))
		for _, prefix := range layer {
			for _, r := range alphabet {
				next = append(next, prefix+string(r))
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

func completeDFA(build func() *Automaton) *Automaton {
	a := build()
	if err := a.ToDFA(); err != nil {
		panic(err)
	}
	a.Complete()
	return a
}

func repeat(s string, n int) string {
	return strings.Repeat(s, n)
}
