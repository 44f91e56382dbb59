package twoway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLiteralScenarios(t *testing.T) {
	cases := []struct {
		haystack, needle string
		want             int
	}{
		{"hello world", "world", 6},
		{"hello world", "xyz", len("hello world")},
		{"aaaa", "", 0},
		{"aaaaaaaaaaaaab", "aaaaab", 8},
		{"", "a", 0}, // handled below: empty haystack is a dispatcher precondition edge case
	}
	for _, c := range cases {
		if len(c.needle) == 0 || len(c.needle) > len(c.haystack) {
			continue // caller preconditions, not Find's concern here
		}
		t.Run(c.haystack+"/"+c.needle, func(t *testing.T) {
			got := Find([]byte(c.haystack), []byte(c.needle))
			assert.Equal(t, c.want, got)
		})
	}
}

func TestRFindLiteralScenarios(t *testing.T) {
	assert.Equal(t, 6, RFind([]byte("abababab"), []byte("ab")))
}

// TestFindRoundTrip checks that Find's result, if any, is both an actual
// occurrence of the needle and the leftmost one.
func TestFindRoundTrip(t *testing.T) {
	haystacks := []string{
		"mississippi river", "aaaaaaaaaaaaaaaab", "the quick brown fox",
		"abcabcabcabcabcx", "", "z",
	}
	needles := []string{"i", "ss", "iss", "ippi", "x", "abc", "fox", "q"}
	for _, h := range haystacks {
		for _, n := range needles {
			if n == "" || len(n) > len(h) {
				continue
			}
			k := Find([]byte(h), []byte(n))
			if k >= len(h) {
				require.Equal(t, -1, strings.Index(h, n), "h=%q n=%q", h, n)
				continue
			}
			require.Equal(t, n, h[k:k+len(n)], "h=%q n=%q k=%d", h, n, k)
			require.Equal(t, strings.Index(h, n), k, "h=%q n=%q", h, n)
			for j := 0; j < k; j++ {
				if j+len(n) <= len(h) {
					require.NotEqual(t, n, h[j:j+len(n)], "h=%q n=%q j=%d k=%d", h, n, j, k)
				}
			}
		}
	}
}

func TestRFindAgainstStrings(t *testing.T) {
	haystacks := []string{
		"mississippi river", "aaaaaaaaaaaaaaaab", "the quick brown fox",
		"abcabcabcabcabcx", "z",
	}
	needles := []string{"i", "ss", "iss", "ippi", "x", "abc", "fox", "q", "the"}
	for _, h := range haystacks {
		for _, n := range needles {
			if n == "" || len(n) > len(h) {
				continue
			}
			got := RFind([]byte(h), []byte(n))
			want := strings.LastIndex(h, n)
			if want < 0 {
				require.Equal(t, len(h), got, "h=%q n=%q", h, n)
			} else {
				require.Equal(t, want, got, "h=%q n=%q", h, n)
			}
		}
	}
}

// TestPathologicalCaseAtScale checks correctness at a size that would
// make a naive quadratic scanner painfully slow (a run of 'a' ending in
// 'b', searched for by a needle of the same shape); the matching timing
// guard lives in twoway_test.go (TestPathologicalNeedleStaysFast).
func TestPathologicalCaseAtScale(t *testing.T) {
	const reps = 20000
	haystack := strings.Repeat("a", reps) + "b"
	needle := strings.Repeat("a", reps/2) + "b"

	got := Find([]byte(haystack), []byte(needle))
	require.Equal(t, reps-reps/2, got)
}
