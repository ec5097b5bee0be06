package catalog

import "sort"

// IDSet holds record identifiers. A nil IDSet is a valid empty set.
type IDSet map[int]struct{}

func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Len() int { return len(s) }

func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// With returns a copy of s with id added (on) or removed (!on).
func (s IDSet) With(id int, on bool) IDSet {
	out := s.Clone()
	if on {
		out[id] = struct{}{}
	} else {
		delete(out, id)
	}
	return out
}

// Sorted returns the members in ascending order, for stable persistence.
func (s IDSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
