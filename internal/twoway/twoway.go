package twoway

// forwardSearch runs the Two-Way matcher over haystack looking for needle,
// given needle's critical factorization. It returns the offset of the
// first match, or len(haystack) if none exists. Callers (Find in
// dispatch.go) are expected to have already handled the short-needle and
// degenerate-length cases.
func forwardSearch(haystack, needle []byte, f Factorization) int {
	c, p := f.CriticalPosition, f.Period

	if hasBorder(needle, c, p) {
		return forwardMemoized(haystack, needle, c, p)
	}
	return forwardNormal(haystack, needle, c)
}

// hasBorder reports whether needle[0:c+1] == needle[p:p+c+1] — the
// condition under which the needle's left half is itself periodic with
// period p, which is what lets the memoized path skip re-scanning it.
func hasBorder(needle []byte, c, p int) bool {
	if p+c+1 > len(needle) {
		return false
	}
	left := needle[:c+1]
	right := needle[p : p+c+1]
	for i := range left {
		if left[i] != right[i] {
			return false
		}
	}
	return true
}

// forwardMemoized is the Two-Way search path used when the needle's left
// factor is periodic. lpos is the haystack offset of the current match
// candidate; memoizeShift remembers how much of the left half was already
// confirmed on the previous shift, so it never needs re-comparing.
func forwardMemoized(haystack, needle []byte, c, p int) int {
	h, n := len(haystack), len(needle)
	lpos := 0
	memoizeShift := -1

	for lpos <= h-n {
		rpos := maxInt(c, memoizeShift) + 1
		for rpos < n && needle[rpos] == haystack[rpos+lpos] {
			rpos++
		}
		if rpos < n {
			lpos += rpos - c
			memoizeShift = -1
			continue
		}

		rpos = c
		for rpos > memoizeShift && needle[rpos] == haystack[rpos+lpos] {
			rpos--
		}
		if rpos <= memoizeShift {
			return lpos
		}
		lpos += p
		memoizeShift = n - p - 1
	}
	return h
}

// forwardNormal is the Two-Way search path used when the needle's two
// halves are not mutually periodic: any mismatch permits a full shift of
// the recomputed period, and no memory of prior scans is kept.
func forwardNormal(haystack, needle []byte, c int) int {
	h, n := len(haystack), len(needle)
	p := maxInt(c+1, n-c-1) + 1
	lpos := 0

	for lpos <= h-n {
		rpos := c + 1
		for rpos < n && needle[rpos] == haystack[rpos+lpos] {
			rpos++
		}
		if rpos < n {
			lpos += rpos - c
			continue
		}

		rpos = c
		for rpos >= 0 && needle[rpos] == haystack[rpos+lpos] {
			rpos--
		}
		if rpos < 0 {
			return lpos
		}
		lpos += p
	}
	return h
}
