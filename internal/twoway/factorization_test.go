package twoway

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFactorizePeriodProperty(t *testing.T) {
	// Period must be an actual period of needle[:CriticalPosition+1],
	// i.e. needle[i] == needle[i+p] for 0 <= i <= c-p.
	cases := []string{
		"a", "ab", "aab", "aaab", "abcabcabc", "aaaaab",
		"abababab", "mississippi", "banana", "aaaaaaaaaaaaaab",
	}
	for _, needle := range cases {
		t.Run(needle, func(t *testing.T) {
			f := Factorize([]byte(needle))
			require.GreaterOrEqual(t, f.CriticalPosition, -1)
			require.Less(t, f.CriticalPosition, len(needle))
			require.Positive(t, f.Period)

			for i := 0; i <= f.CriticalPosition-f.Period; i++ {
				require.Equalf(t, needle[i], needle[i+f.Period],
					"needle[%d]=%q != needle[%d]=%q (period %d)",
					i, needle[i], i+f.Period, needle[i+f.Period], f.Period)
			}
		})
	}
}

func TestFactorizePathological(t *testing.T) {
	// The classic Two-Way stress case: a run of 'a' ending in 'b'.
	f := Factorize([]byte("aaaaab"))
	want := Factorization{CriticalPosition: 4, Period: 1}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("Factorize(\"aaaaab\") mismatch (-want +got):\n%s", diff)
	}
}

func TestFactorizeSingleByte(t *testing.T) {
	f := Factorize([]byte("a"))
	require.Equal(t, -1, f.CriticalPosition)
	require.Equal(t, 1, f.Period)
}
