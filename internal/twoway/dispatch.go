package twoway

// Find returns the offset of the first occurrence of needle in haystack,
// or len(haystack) if needle does not occur. It routes to the fixed-width
// scanners for needle lengths 1-4 and to critical factorization plus the
// Two-Way matcher otherwise. Callers are expected to have already handled
// needle length 0 and needle longer than haystack themselves.
func Find(haystack, needle []byte) int {
	switch len(needle) {
	case 1:
		return Index1(haystack, needle[0])
	case 2:
		return Index2(haystack, needle)
	case 3:
		return Index3(haystack, needle)
	case 4:
		return Index4(haystack, needle)
	default:
		return forwardSearch(haystack, needle, Factorize(needle))
	}
}

// RFind is Find's mirror image: the offset of the last occurrence of
// needle in haystack, or len(haystack) if absent.
func RFind(haystack, needle []byte) int {
	switch len(needle) {
	case 1:
		return LastIndex1(haystack, needle[0])
	case 2:
		return LastIndex2(haystack, needle)
	case 3:
		return LastIndex3(haystack, needle)
	case 4:
		return LastIndex4(haystack, needle)
	default:
		return backwardSearch(haystack, needle)
	}
}
