package automaton

import "github.com/bits-and-blooms/bitset"

var _ Hashable = &StateSet{}

// StateSet is an immutable set of state indexes used as a key while building subsets.
// Two StateSets are equal when they hold the same indexes, whatever their capacity.
type StateSet struct {
	bits     *bitset.BitSet
	hashCode uint64
}

// NewStateSet freezes b. The caller must not modify b afterwards.
func NewStateSet(b *bitset.BitSet) *StateSet {
	s := &StateSet{bits: b}
	s.hashCode = uint64(b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		s.hashCode += uint64(mixState(uint32(i)))
	}
	return s
}

func (s *StateSet) Hash() uint64 {
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	o, ok := other.(*StateSet)
	if !ok || o == nil {
		return false
	}
	if s.hashCode != o.hashCode || s.bits.Count() != o.bits.Count() {
		return false
	}
	return s.bits.IntersectionCardinality(o.bits) == s.bits.Count()
}

// Intersects reports whether s and b share an index.
func (s *StateSet) Intersects(b *bitset.BitSet) bool {
	return s.bits.IntersectionCardinality(b) > 0
}

// GetArray returns the indexes in ascending order.
func (s *StateSet) GetArray() []int {
	return members(s.bits)
}

// mixState spreads the bits of a state index with the MurmurHash3 finalizer.
func mixState(k uint32) uint32 {
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return k ^ (k >> 16)
}
