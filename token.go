package strview

// Tokenizer yields the non-empty fields of a view separated by runs of a
// delimiter, scanning forward. The zero value is not usable; construct
// with FromDelimiter.
//
// Unlike strings.Split, a Tokenizer never allocates a slice of all
// fields up front: each call to Next advances incrementally, which
// matters for the same reason view.go's constructors avoid copies —
// the caller may be tokenizing a borrowed buffer far larger than any
// one field.
type Tokenizer struct {
	v     View
	delim View
	pos   int
	done  bool
}

// FromDelimiter begins forward tokenization of v on runs of delim. An
// empty delim makes every octet of v its own token.
func FromDelimiter(v, delim View) Tokenizer {
	return Tokenizer{v: v, delim: delim}
}

// cyclicMatch advances two cursors cyclically through delim starting at
// pos: i counts total octets consumed, j counts octets matched in the
// delimiter copy currently in progress, reset to 0 whenever a copy
// completes. A run whose length isn't a whole multiple of delim.Len()
// leaves the scan stopped mid-copy, with j octets of that last, never-
// completed copy not actually part of the run.
func cyclicMatch(v View, delim View, pos int) (i, j int) {
	dn := delim.Len()
	i, j = pos, 0
	for i < v.Len() && v.At(i) == delim.At(j) {
		i++
		j++
		if j == dn {
			j = 0
		}
	}
	return i, j
}

// afterFind advances past a run of delim starting at pos using
// cyclicMatch rather than re-invoking Find for every delimiter octet, so
// a long run of repeated delimiter bytes costs O(run length) instead of
// O(run length * delim length). It returns i - j rather than i: a
// trailing partial copy of delim (one that never completes before the
// run breaks) is not itself a delimiter, so its octets are left
// unconsumed for the caller to treat as content.
func afterFind(v View, delim View, pos int) int {
	if delim.Len() == 0 {
		return pos
	}
	i, j := cyclicMatch(v, delim, pos)
	return i - j
}

// Next reports whether another field is available and, if so, returns
// it. A Tokenizer is exhausted (returns false) once scanning has
// reached the end of the underlying view; a trailing delimiter run does
// not produce a final empty field.
func (t *Tokenizer) Next() (View, bool) {
	if t.done {
		return View{}, false
	}
	dn := t.delim.Len()
	for {
		if t.pos >= t.v.Len() {
			t.done = true
			return View{}, false
		}
		if dn > 0 && StartsWith(Substr(t.v, t.pos, t.v.Len()-t.pos), t.delim) {
			t.pos = afterFind(t.v, t.delim, t.pos)
			continue
		}
		break
	}
	start := t.pos
	if dn == 0 {
		t.pos = start + 1
		return Substr(t.v, start, 1), true
	}
	s := Find(t.v, start, t.delim)
	if s == t.v.Len() {
		t.pos = t.v.Len()
		return Substr(t.v, start, t.v.Len()-start), true
	}
	// s is only where a delimiter copy first starts; a run of repeated
	// delimiter octets whose length isn't a whole multiple of dn can
	// leave a partial copy at its tail. cyclicMatch walks the whole run
	// and j tells us how many of those trailing octets belong to the
	// token rather than the delimiter that follows it.
	i, j := cyclicMatch(t.v, t.delim, s)
	end := s + j
	t.pos = i
	return Substr(t.v, start, end-start), true
}

// ReverseTokenizer yields the non-empty fields of a view separated by
// runs of a delimiter, scanning backward from the end. Fields are
// produced in reverse order relative to a forward Tokenizer over the
// same view and delimiter.
type ReverseTokenizer struct {
	v     View
	delim View
	pos   int
	done  bool
}

// FromDelimiterReverse begins backward tokenization of v on runs of
// delim.
func FromDelimiterReverse(v, delim View) ReverseTokenizer {
	return ReverseTokenizer{v: v, delim: delim, pos: v.Len()}
}

// beforeReverseFind walks pos back over a trailing run of delim, one
// whole delim-length copy at a time. Like afterFind, it consumes only
// complete copies: a partial copy at the head of the run is left in
// place as content.
func beforeReverseFind(v View, delim View, pos int) int {
	dn := delim.Len()
	if dn == 0 {
		return pos
	}
	i := pos
	for i >= dn && bytesEqual(v.data[i-dn:i], delim.data) {
		i -= dn
	}
	return i
}

// Next reports whether another field is available, scanning from the
// tail of the view toward its head.
func (t *ReverseTokenizer) Next() (View, bool) {
	if t.done {
		return View{}, false
	}
	dn := t.delim.Len()
	for {
		if t.pos <= 0 {
			t.done = true
			return View{}, false
		}
		if dn > 0 && EndsWith(Substr(t.v, 0, t.pos), t.delim) {
			t.pos = beforeReverseFind(t.v, t.delim, t.pos)
			continue
		}
		break
	}
	end := t.pos
	start := 0
	if dn == 0 {
		start = end - 1
	} else if k := RFind(Substr(t.v, 0, end), end-dn, t.delim); k != end {
		start = k + dn
	}
	t.pos = start
	return Substr(t.v, start, end-start), true
}
