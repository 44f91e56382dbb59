// Package strview implements non-owning views over byte strings: a
// (pointer, length) pair that borrows externally-owned bytes without
// copying, plus comparison, slicing, prefix/suffix checks, character-class
// scans, substring search, and a non-destructive tokenizer built on
// internal/twoway and internal/byteset.
package strview

import (
	"unsafe"

	"github.com/SkeletOSS/str-view/internal/twoway"
)

// View is a non-owning (reference, length) pair over octets. The zero
// value is an empty view that is not the NullView sentinel; use NullView
// or one of the constructors when an empty-but-dereferenceable view is
// required.
//
// A View never owns the bytes it describes: the caller must keep the
// backing storage alive for as long as any View derived from it is in
// use. Views are copied by value freely; assigning to a View variable
// never touches the underlying bytes.
type View struct {
	data []byte
}

// Order is the three-valued result of Compare, plus the fourth ERROR
// value surfaced when either operand is the null-view sentinel and the
// other is not.
type Order int8

const (
	Lesser     Order = -1
	Equal      Order = 0
	Greater    Order = 1
	OrderError Order = 2
)

var nullOctetBacking [1]byte

// NullView is the distinguished view returned for invalid inputs where the
// API must yield a dereferenceable empty view: length 0, bytes pointing at
// a single null octet. It compares Equal only to itself.
var NullView = View{data: nullOctetBacking[:0:1]}

func (v View) isNullSentinel() bool {
	return unsafe.SliceData(v.data) == &nullOctetBacking[0]
}

// Of wraps an existing byte slice as a View without copying. This is the
// ordinary entry point for Go callers who already hold a []byte; the
// pointer-based constructors below exist for C-string-shaped entry points
// (FromTerminated, FromBuffer).
func Of(b []byte) View {
	return View{data: b}
}

// FromString wraps a Go string as a View without copying. Safe because
// View never mutates through data, and Go strings are themselves
// immutable.
func FromString(s string) View {
	return View{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// FromTerminated builds a view over a zero-terminated buffer starting at
// p: length is the scan distance to the first zero octet. Returns
// NullView if p is nil.
func FromTerminated(p *byte) View {
	if p == nil {
		return NullView
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return View{data: unsafe.Slice(p, n)}
}

// FromBuffer builds a view over at most n octets starting at p, stopping
// early at the first zero octet: length is min(n, scan-until-zero-or-n).
// Returns NullView if p is nil.
func FromBuffer(p *byte, n int) View {
	if p == nil {
		return NullView
	}
	if n < 0 {
		n = 0
	}
	scanned := 0
	for scanned < n && *(*byte)(unsafe.Add(unsafe.Pointer(p), scanned)) != 0 {
		scanned++
	}
	return View{data: unsafe.Slice(p, scanned)}
}

// Len reports the number of addressable octets in v. It never counts a
// trailing terminator.
func (v View) Len() int {
	return len(v.data)
}

// WithTerminatorLen reports v.Len()+1, as if v were followed by a
// terminator octet. It does not imply anything is actually terminated
// within the viewed region.
func (v View) WithTerminatorLen() int {
	return v.Len() + 1
}

// At returns the i-th octet of v, or the null octet if i is out of
// range.
func (v View) At(i int) byte {
	if i < 0 || i >= len(v.data) {
		return 0
	}
	return v.data[i]
}

// Bytes returns the view's underlying slice. Callers must not mutate the
// returned slice: doing so violates the non-owning contract every other
// View derived from the same backing storage relies on.
func (v View) Bytes() []byte {
	return v.data
}

// String copies the view's octets into a new Go string. This is the one
// place in the package that allocates on the caller's behalf; use Bytes
// for an allocation-free view of the same data.
func (v View) String() string {
	return string(v.data)
}

// Compare orders a and b lexicographically over unsigned octet values,
// the shorter of two otherwise-equal views sorting first. If exactly one
// of a, b is the NullView sentinel, Compare returns OrderError; if both
// are, it returns Equal.
//
// The comparison walks min(a.Len(), b.Len()) octets; the two views are
// Equal precisely when both exhaust (reach the end of their shared
// prefix) at the same offset within that walk, not merely when no
// differing byte was found before one ran out.
func Compare(a, b View) Order {
	aNull, bNull := a.isNullSentinel(), b.isNullSentinel()
	if aNull || bNull {
		if aNull && bNull {
			return Equal
		}
		return OrderError
	}

	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		switch twoway.CompareByte(a.data[i], b.data[i]) {
		case -1:
			return Lesser
		case 1:
			return Greater
		}
	}
	switch {
	case a.Len() < b.Len():
		return Lesser
	case a.Len() > b.Len():
		return Greater
	default:
		return Equal
	}
}
