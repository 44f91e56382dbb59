package twoway

// Index1 finds the first occurrence of the single byte needle in
// haystack, or len(haystack) if absent.
func Index1(haystack []byte, needle byte) int {
	for i := 0; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return len(haystack)
}

// LastIndex1 finds the last occurrence of needle in haystack, or
// len(haystack) if absent.
func LastIndex1(haystack []byte, needle byte) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		if haystack[i] == needle {
			return i
		}
	}
	return len(haystack)
}

// Index2 finds the first occurrence of a 2-byte needle by sliding a 16-bit
// window one byte at a time: window = prev<<8 | curr, compared against the
// needle packed the same way.
func Index2(haystack, needle []byte) int {
	h := len(haystack)
	if h < 2 {
		return h
	}
	want := uint16(needle[0])<<8 | uint16(needle[1])
	window := uint16(haystack[0])
	for i := 1; i < h; i++ {
		window = window<<8 | uint16(haystack[i])
		if window == want {
			return i - 1
		}
	}
	return h
}

// LastIndex2 is Index2's mirror: the window slides from the end, and the
// leading (leftmost) octet enters the high-order byte position.
func LastIndex2(haystack, needle []byte) int {
	h := len(haystack)
	if h < 2 {
		return h
	}
	want := uint16(needle[0])<<8 | uint16(needle[1])
	window := uint16(haystack[h-1]) << 8
	for i := h - 2; i >= 0; i-- {
		window = uint16(haystack[i])<<8 | window>>8
		if window == want {
			return i
		}
	}
	return h
}

// Index3 finds the first occurrence of a 3-byte needle with a 32-bit
// window holding the last three octets seen; the high byte is always
// zero.
func Index3(haystack, needle []byte) int {
	h := len(haystack)
	if h < 3 {
		return h
	}
	want := uint32(needle[0])<<16 | uint32(needle[1])<<8 | uint32(needle[2])
	window := uint32(haystack[0])<<8 | uint32(haystack[1])
	for i := 2; i < h; i++ {
		window = (window<<8 | uint32(haystack[i])) & 0xffffff
		if window == want {
			return i - 2
		}
	}
	return h
}

// LastIndex3 mirrors Index3 from the end of haystack.
func LastIndex3(haystack, needle []byte) int {
	h := len(haystack)
	if h < 3 {
		return h
	}
	want := uint32(needle[0])<<16 | uint32(needle[1])<<8 | uint32(needle[2])
	shifted := uint32(haystack[h-2])<<8 | uint32(haystack[h-1])
	for i := h - 3; i >= 0; i-- {
		window := uint32(haystack[i])<<16 | shifted
		if window == want {
			return i
		}
		shifted = window >> 8
	}
	return h
}

// Index4 finds the first occurrence of a 4-byte needle with a full 32-bit
// window.
func Index4(haystack, needle []byte) int {
	h := len(haystack)
	if h < 4 {
		return h
	}
	want := uint32(needle[0])<<24 | uint32(needle[1])<<16 | uint32(needle[2])<<8 | uint32(needle[3])
	window := uint32(haystack[0])<<16 | uint32(haystack[1])<<8 | uint32(haystack[2])
	for i := 3; i < h; i++ {
		window = window<<8 | uint32(haystack[i])
		if window == want {
			return i - 3
		}
	}
	return h
}

// LastIndex4 mirrors Index4 from the end of haystack.
func LastIndex4(haystack, needle []byte) int {
	h := len(haystack)
	if h < 4 {
		return h
	}
	want := uint32(needle[0])<<24 | uint32(needle[1])<<16 | uint32(needle[2])<<8 | uint32(needle[3])
	shifted := uint32(haystack[h-3])<<16 | uint32(haystack[h-2])<<8 | uint32(haystack[h-1])
	for i := h - 4; i >= 0; i-- {
		window := uint32(haystack[i])<<24 | shifted
		if window == want {
			return i
		}
		shifted = window >> 8
	}
	return h
}
