package strview

import (
	"unsafe"

	"github.com/SkeletOSS/str-view/internal/byteset"
	"github.com/SkeletOSS/str-view/internal/twoway"
)

func clampPos(pos, length int) int {
	switch {
	case pos < 0:
		return 0
	case pos > length:
		return length
	default:
		return pos
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Substr returns the bounded, saturating substring of v starting at pos
// with up to count octets. pos greater than v.Len() yields the
// zero-length view one past the end; count is clamped to v.Len()-pos.
func Substr(v View, pos, count int) View {
	pos = clampPos(pos, v.Len())
	count = minInt(count, v.Len()-pos)
	if count < 0 {
		count = 0
	}
	return View{data: v.data[pos : pos+count]}
}

// RemovePrefix drops up to n leading octets from v, clamping n to
// v.Len().
func RemovePrefix(v View, n int) View {
	n = clampPos(n, v.Len())
	return View{data: v.data[n:]}
}

// RemoveSuffix drops up to n trailing octets from v, clamping n to
// v.Len().
func RemoveSuffix(v View, n int) View {
	n = clampPos(n, v.Len())
	return View{data: v.data[:v.Len()-n]}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// StartsWith reports whether v begins with the literal octets of prefix.
func StartsWith(v, prefix View) bool {
	if prefix.Len() > v.Len() {
		return false
	}
	return bytesEqual(v.data[:prefix.Len()], prefix.data)
}

// EndsWith reports whether v ends with the literal octets of suffix.
func EndsWith(v, suffix View) bool {
	if suffix.Len() > v.Len() {
		return false
	}
	return bytesEqual(v.data[v.Len()-suffix.Len():], suffix.data)
}

// Extend re-scans forward from v's backing pointer until a null octet,
// returning a view with the discovered length. Used when a caller knows
// the underlying bytes are terminated but the current view's length
// doesn't reach that terminator. It deliberately reads
// past v.Len() into memory the caller still owns, so it must never be
// called on a view whose backing storage isn't actually terminated.
func Extend(v View) View {
	if v.isNullSentinel() {
		return v
	}
	if len(v.data) == 0 {
		return v
	}
	p := &v.data[0]
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return View{data: unsafe.Slice(p, n)}
}

// Fill copies min(len(dest), src.Len()+1) octets from src into dest and
// then overwrites the last written byte with zero. It
// returns the number of bytes written, min(len(dest), src.Len()+1), or 0
// when dest is empty (no writes occur when len(dest) == 0). Exactly
// min(len(dest), src.Len()+1) - 1 bytes of src survive the trailing
// zero-write; callers relying on the full content of src must ensure
// dest is at least src.Len()+1 bytes long.
func Fill(dest []byte, src View) int {
	if len(dest) == 0 {
		return 0
	}
	n := minInt(len(dest), src.Len()+1)
	copy(dest[:n], src.data)
	dest[n-1] = 0
	return n
}

func findBytes(haystack, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	if len(needle) > len(haystack) {
		return len(haystack)
	}
	return twoway.Find(haystack, needle)
}

func rfindBytes(haystack, needle []byte) int {
	if len(needle) == 0 {
		return len(haystack)
	}
	if len(needle) > len(haystack) {
		return len(haystack)
	}
	return twoway.RFind(haystack, needle)
}

// Find returns the first offset >= pos at which needle occurs in v, or
// v.Len() if it does not occur. An empty needle matches at pos itself.
func Find(v View, pos int, needle View) int {
	pos = clampPos(pos, v.Len())
	return pos + findBytes(v.data[pos:], needle.data)
}

// RFind returns the last offset <= pos at which needle occurs in v, or
// v.Len() if it does not occur.
func RFind(v View, pos int, needle View) int {
	if needle.Len() > v.Len() {
		return v.Len()
	}
	pos = clampPos(pos, v.Len())
	limit := minInt(pos+needle.Len(), v.Len())
	window := v.data[:limit]
	rel := rfindBytes(window, needle.data)
	if rel == len(window) {
		return v.Len()
	}
	return rel
}

// Contains reports whether needle occurs anywhere in v. An empty needle
// always matches.
func Contains(v, needle View) bool {
	if needle.Len() == 0 {
		return true
	}
	return Find(v, 0, needle) != v.Len()
}

// Match returns a view over the first occurrence of needle in v, or a
// zero-length view at v's end if needle does not occur.
func Match(v, needle View) View {
	k := Find(v, 0, needle)
	if k >= v.Len() {
		return View{data: v.data[v.Len():]}
	}
	return View{data: v.data[k : k+needle.Len()]}
}

// FindFirstOf returns the first position in v whose octet is a member of
// set, or v.Len() if none is. Equivalent to the length of the leading run
// of non-members.
func FindFirstOf(v, set View) int {
	return byteset.CSpanLength(v.data, set.data)
}

// FindFirstNotOf returns the first position in v whose octet is not a
// member of set, or v.Len() if every octet is. Equivalent to the length
// of the leading run of members.
func FindFirstNotOf(v, set View) int {
	return byteset.SpanLength(v.data, set.data)
}

// FindLastOf returns the last position in v whose octet is a member of
// set, or v.Len() if none is. Scans left-to-right tracking the last-seen
// hit rather than scanning from the end, since class-scan hits are not
// generally localized at either end of v.
func FindLastOf(v, set View) int {
	bs := byteset.Build(set.data)
	last := v.Len()
	for i := 0; i < v.Len(); i++ {
		if bs.Contains(v.data[i]) {
			last = i
		}
	}
	return last
}

// FindLastNotOf returns the last position in v whose octet is not a
// member of set, or v.Len() if every octet is.
func FindLastNotOf(v, set View) int {
	bs := byteset.Build(set.data)
	last := v.Len()
	for i := 0; i < v.Len(); i++ {
		if !bs.Contains(v.data[i]) {
			last = i
		}
	}
	return last
}
