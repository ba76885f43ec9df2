package models

// TagSet is an ordered, duplicate-free collection of equipment tags.
// Insertion order is preserved so the submitted list reads the way the user
// picked it.
type TagSet struct {
	items []string
	seen  map[string]struct{}
}

// Add appends tag unless it is already present.
func (s *TagSet) Add(tag string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[tag]; ok {
		return
	}
	s.seen[tag] = struct{}{}
	s.items = append(s.items, tag)
}

// Items returns the tags in insertion order. The returned slice is a copy.
func (s *TagSet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of tags in the set.
func (s *TagSet) Len() int {
	return len(s.items)
}
