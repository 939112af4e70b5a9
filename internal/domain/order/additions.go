package order

import "strings"

// AdditionSet is an immutable set of additions. Membership only; iteration
// follows menu order regardless of how the set was built.
type AdditionSet struct {
	bits uint8
}

func additionBit(a Addition) (uint8, bool) {
	for i, known := range Additions() {
		if known == a {
			return 1 << uint(i), true
		}
	}
	return 0, false
}

// NewAdditionSet builds a set from the given additions, collapsing duplicates.
// Unknown additions are reported through ok=false.
func NewAdditionSet(additions ...Addition) (set AdditionSet, ok bool) {
	for _, a := range additions {
		bit, known := additionBit(a)
		if !known {
			return AdditionSet{}, false
		}
		set.bits |= bit
	}
	return set, true
}

func (s AdditionSet) Has(a Addition) bool {
	bit, ok := additionBit(a)
	return ok && s.bits&bit != 0
}

func (s AdditionSet) Len() int {
	n := 0
	for b := s.bits; b != 0; b &= b - 1 {
		n++
	}
	return n
}

func (s AdditionSet) IsEmpty() bool { return s.bits == 0 }

// Slice returns a fresh slice of the members in menu order. Changing the
// returned slice has no effect on the set.
func (s AdditionSet) Slice() []Addition {
	out := make([]Addition, 0, s.Len())
	for _, a := range Additions() {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Labels renders the members comma-joined, or "None" for the empty set.
func (s AdditionSet) Labels() string {
	if s.IsEmpty() {
		return "None"
	}
	members := s.Slice()
	labels := make([]string, 0, len(members))
	for _, a := range members {
		labels = append(labels, a.String())
	}
	return strings.Join(labels, ", ")
}

func (s AdditionSet) String() string { return s.Labels() }
