package wording

import "sort"

// Set is an unordered collection of unique corpus entries.
type Set map[string]struct{}

// Add inserts s.
func (s Set) Add(v string) { s[v] = struct{}{} }

// AddAll inserts every value.
func (s Set) AddAll(values ...string) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// Has reports membership.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of entries.
func (s Set) Len() int { return len(s) }

// Sorted returns the entries in byte order, which for UTF-8 is code point order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
