// Package byteset implements a 256-bit set over the byte alphabet and the
// span/cspan scans built on it.
package byteset

// Set is a 256-bit membership table, one bit per possible byte value,
// packed into four uint64 words. The zero value is the empty set.
type Set [4]uint64

// Build constructs a Set containing every distinct octet in members.
// Duplicate octets collapse.
func Build(members []byte) Set {
	var s Set
	for _, b := range members {
		s.add(b)
	}
	return s
}

func (s *Set) add(b byte) {
	s[b>>6] |= 1 << (b & 63)
}

// Contains reports whether b is a member of s.
func (s Set) Contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

// SpanLength returns the largest k such that every octet in str[:k] is a
// member of set. An empty set yields 0. A single-octet set uses a
// specialized loop that never builds a Set.
func SpanLength(str, set []byte) int {
	switch len(set) {
	case 0:
		return 0
	case 1:
		c := set[0]
		i := 0
		for i < len(str) && str[i] == c {
			i++
		}
		return i
	}

	bs := Build(set)
	i := 0
	for i < len(str) && bs.Contains(str[i]) {
		i++
	}
	return i
}

// CSpanLength returns the largest k such that no octet in str[:k] is a
// member of set. An empty set yields len(str).
func CSpanLength(str, set []byte) int {
	switch len(set) {
	case 0:
		return len(str)
	case 1:
		c := set[0]
		i := 0
		for i < len(str) && str[i] != c {
			i++
		}
		return i
	}

	bs := Build(set)
	i := 0
	for i < len(str) && !bs.Contains(str[i]) {
		i++
	}
	return i
}
