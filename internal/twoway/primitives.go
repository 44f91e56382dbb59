// Package twoway implements substring search over byte slices: a tier of
// fixed-width scanners for short needles, critical factorization, and the
// Two-Way (Crochemore-Perrin) matcher for everything else, in both search
// directions.
package twoway

// maxInt returns the larger of a and b. critical positions and lpos/rpos
// cursors are signed throughout this package (a critical position of -1 is
// a valid, common value), so this is written over int rather than uint.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// CompareByte orders two octets the way Compare (view.go, package
// strview) needs to: <0, 0, or >0 as a is less than, equal to, or
// greater than b. Unsigned-octet comparison only; bytes are never
// treated as signed here.
func CompareByte(a, b byte) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
