package fsa

import "github.com/bits-and-blooms/bitset"

var (
	_ Hashable = &stateSet{}
	_ Hashable = signature{}
)

// stateSet is a set of state ids usable as a HashMap key. It must not be modified once stored.
type stateSet struct {
	bits     *bitset.BitSet
	hashCode uint64
}

func newStateSet(bits *bitset.BitSet) *stateSet {
	h := uint64(bits.Count())
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		h += mix(int(i))
	}
	return &stateSet{bits: bits, hashCode: h}
}

func (s *stateSet) Hash() uint64 {
	return s.hashCode
}

func (s *stateSet) Equals(other Hashable) bool {
	o, ok := other.(*stateSet)
	if !ok || o == nil {
		return false
	}
	if s.hashCode != o.hashCode {
		return false
	}
	// Equal also compares lengths, which differ between sets built from different states.
	n := s.bits.Count()
	return o.bits.Count() == n && s.bits.IntersectionCardinality(o.bits) == n
}

// signature is a sequence of class ids; two states with equal signatures are not yet
// distinguishable.
type signature []int

func (s signature) Hash() uint64 {
	h := uint64(len(s))
	for _, v := range s {
		h = h*31 + mix(v)
	}
	return h
}

func (s signature) Equals(other Hashable) bool {
	o, ok := other.(signature)
	if !ok || len(o) != len(s) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}
