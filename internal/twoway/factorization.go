package twoway

// Factorization is the critical factorization of a needle: the index at
// which its maximal suffix begins, and the period of the needle prefix
// ending there. CriticalPosition ranges over [-1, len(needle)); Period is
// always a positive period of needle[:CriticalPosition+1].
type Factorization struct {
	CriticalPosition int
	Period           int
}

// maximalSuffix finds the lexicographically maximal suffix of needle under
// the given order and the period of the needle prefix ending at that
// suffix's start. reversed selects the order used by the reverse Two-Way
// matcher (internal/twoway/reverse.go), where GREATER and LESSER swap
// roles because indexing runs from the end of the needle instead of the
// start.
//
// This is the state machine from Crochemore & Perrin (1991), with
// suffPos/period/lastRest/rest standing in for the paper's terse ms/j/k/p
// naming.
func maximalSuffix(needle []byte, reversed bool) (suffPos, period int) {
	suffPos = -1
	period = 1
	lastRest := 0
	rest := 1

	for lastRest+rest < len(needle) {
		a := needle[lastRest+rest]
		b := needle[suffPos+rest]

		greater := a > b
		lesser := a < b
		if reversed {
			greater, lesser = lesser, greater
		}

		switch {
		case greater:
			lastRest += rest
			rest = 1
			period = lastRest - suffPos
		case a == b:
			if rest == period {
				lastRest += period
				rest = 1
			} else {
				rest++
			}
		case lesser:
			suffPos = lastRest
			lastRest = suffPos + 1
			rest = 1
			period = 1
		}
	}
	return suffPos, period
}

// Factorize computes the critical factorization of needle: both the
// natural and reversed maximal suffixes are computed, and the one with the
// larger critical position wins.
func Factorize(needle []byte) Factorization {
	natPos, natPeriod := maximalSuffix(needle, false)
	revPos, revPeriod := maximalSuffix(needle, true)

	if revPos < natPos {
		return Factorization{CriticalPosition: natPos, Period: natPeriod}
	}
	return Factorization{CriticalPosition: revPos, Period: revPeriod}
}
