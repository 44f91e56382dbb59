package byteset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpanLength(t *testing.T) {
	cases := []struct{ str, set string; want int }{
		{"hello", "aeiou", 0},
		{"aaabbbccc", "ab", 6},
		{"xxxxx", "x", 5},
		{"abc", "", 0},
		{"", "abc", 0},
	}
	for _, c := range cases {
		got := SpanLength([]byte(c.str), []byte(c.set))
		require.Equal(t, c.want, got, "str=%q set=%q", c.str, c.set)
	}
}

func TestCSpanLength(t *testing.T) {
	cases := []struct{ str, set string; want int }{
		{"hello", "aeiou", 1},
		{"xxxabcxxx", "x", 0},
		{"abc", "", 3},
		{"", "abc", 0},
		{"abcxyz", "xyz", 3},
	}
	for _, c := range cases {
		got := CSpanLength([]byte(c.str), []byte(c.set))
		require.Equal(t, c.want, got, "str=%q set=%q", c.str, c.set)
	}
}

func TestSetDuplicatesCollapse(t *testing.T) {
	s1 := Build([]byte("aaa"))
	s2 := Build([]byte("a"))
	require.Equal(t, s1, s2)
}

// TestSpanCSpanDuality checks that span(set) and cspan(set) agree on
// which of the two describes the leading run of str for any given set.
func TestSpanCSpanDuality(t *testing.T) {
	// span(set) and cspan(set) partition any haystack: reading from the
	// front, every byte is either in the set or not, so whichever
	// predicate the leading byte satisfies determines which of the two
	// scans starts with a positive run and which is immediately zero.
	for _, str := range []string{"hello", "xxxabcxxx", "", "aaaa", "abcabc"} {
		for _, set := range []string{"x", "ab", "aeiou", ""} {
			span := SpanLength([]byte(str), []byte(set))
			cspan := CSpanLength([]byte(str), []byte(set))
			// At every prefix position up to the shorter of the two, the
			// byte must satisfy exactly one predicate; the first position
			// where "in set" flips to "not in set" (or vice versa) bounds
			// whichever run actually starts the string.
			if len(str) == 0 {
				require.Equal(t, 0, span)
				require.Equal(t, 0, cspan)
				continue
			}
			inSet := strings.IndexByte(set, str[0]) >= 0
			if inSet {
				require.Positive(t, span)
				require.Equal(t, 0, cspan)
			} else {
				require.Equal(t, 0, span)
				if set != "" {
					require.Positive(t, cspan)
				}
			}
		}
	}
}
