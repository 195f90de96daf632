package tag

import "slices"

// A Set is a collection of unique tags.
type Set struct {
	members map[Tag]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{members: make(map[Tag]struct{})}
}

// Add inserts t, reporting whether it was not already present.
func (s *Set) Add(t Tag) bool {
	if _, ok := s.members[t]; ok {
		return false
	}
	s.members[t] = struct{}{}

	return true
}

// Has reports whether t is a member of s.
func (s *Set) Has(t Tag) bool {
	_, ok := s.members[t]

	return ok
}

// Sorted returns the members of s in ascending order.
func (s *Set) Sorted() []Tag {
	tags := make([]Tag, 0, len(s.members))
	for t := range s.members {
		tags = append(tags, t)
	}
	slices.SortFunc(tags, Tag.Compare)

	return tags
}
