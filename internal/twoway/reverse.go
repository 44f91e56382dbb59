package twoway

// rev maps a 0-based index measured from the start of a length-n run to
// the matching index measured from its end: rev(rev(i)) == i. The reverse
// matcher and reverse factorization both index through rev so that no
// buffer is ever physically reversed.
func rev(length, i int) int {
	return length - i - 1
}

// reverseMaximalSuffix is maximalSuffix (factorization.go) applied to
// needle accessed back-to-front via rev. The order test is inverted
// relative to the forward case because traversing a sequence end-to-start
// flips which direction counts as "greater" for the maximal-suffix state
// machine; passing reversed=true to maximalSuffix already encodes that
// flip for the natural order, so the "reversed order, reversed traversal"
// combination here is what the forward code calls the natural order.
func reverseMaximalSuffix(needle []byte, reversedOrder bool) (suffPos, period int) {
	n := len(needle)
	suffPos = -1
	period = 1
	lastRest := 0
	rest := 1

	at := func(i int) byte { return needle[rev(n, i)] }

	for lastRest+rest < n {
		a := at(lastRest + rest)
		b := at(suffPos + rest)

		greater := a < b
		lesser := a > b
		if reversedOrder {
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

// reverseFactorize is Factorize (factorization.go) over a needle indexed
// from its end.
func reverseFactorize(needle []byte) Factorization {
	natPos, natPeriod := reverseMaximalSuffix(needle, false)
	revPos, revPeriod := reverseMaximalSuffix(needle, true)

	if revPos < natPos {
		return Factorization{CriticalPosition: natPos, Period: natPeriod}
	}
	return Factorization{CriticalPosition: revPos, Period: revPeriod}
}

// backwardSearch mirrors forwardSearch (twoway.go), scanning haystack from
// its end for the last occurrence of needle. It returns the forward offset
// of the match, or len(haystack) if none exists.
func backwardSearch(haystack, needle []byte) int {
	f := reverseFactorize(needle)
	h, n := len(haystack), len(needle)
	c, p := f.CriticalPosition, f.Period

	hAt := func(i int) byte { return haystack[rev(h, i)] }
	nAt := func(i int) byte { return needle[rev(n, i)] }

	border := p+c+1 <= n
	if border {
		for i := 0; i <= c; i++ {
			if nAt(i) != nAt(p+i) {
				border = false
				break
			}
		}
	}

	lpos := 0
	if border {
		memoizeShift := -1
		for lpos <= h-n {
			rpos := maxInt(c, memoizeShift) + 1
			for rpos < n && nAt(rpos) == hAt(rpos+lpos) {
				rpos++
			}
			if rpos < n {
				lpos += rpos - c
				memoizeShift = -1
				continue
			}
			rpos = c
			for rpos > memoizeShift && nAt(rpos) == hAt(rpos+lpos) {
				rpos--
			}
			if rpos <= memoizeShift {
				return h - lpos - n
			}
			lpos += p
			memoizeShift = n - p - 1
		}
		return h
	}

	period := maxInt(c+1, n-c-1) + 1
	for lpos <= h-n {
		rpos := c + 1
		for rpos < n && nAt(rpos) == hAt(rpos+lpos) {
			rpos++
		}
		if rpos < n {
			lpos += rpos - c
			continue
		}
		rpos = c
		for rpos >= 0 && nAt(rpos) == hAt(rpos+lpos) {
			rpos--
		}
		if rpos < 0 {
			return h - lpos - n
		}
		lpos += period
	}
	return h
}
