package bitarray

// Selector picks what Ref returns: a single bit (Index), a sub-array given
// by offset and length (Span), or a sub-array given by bounds (Range).
type Selector interface {
	isSelector()
}

// Index selects a single bit. Negative values count from the end.
type Index int

// Span selects Length bits starting at Begin. A negative Begin counts from
// the end.
type Span struct {
	Begin  int
	Length int
}

// Range selects the bits between Begin and End. End is included unless
// Exclusive is set. Negative bounds count from the end.
type Range struct {
	Begin     int
	End       int
	Exclusive bool
}

func (Index) isSelector() {}
func (Span) isSelector()  {}
func (Range) isSelector() {}

// Selection is the result of Ref.
//
// It holds either a bit (Index selectors), an array (Span and Range
// selectors), or nothing when the bounds fell outside the array.
type Selection struct {
	bit   int
	arr   *BitArray
	isBit bool
	found bool
}

// Found reports whether the selector matched anything.
func (s Selection) Found() bool { return s.found }

// Bit returns the selected bit. ok is false if the selection is not a bit.
func (s Selection) Bit() (int, bool) {
	return s.bit, s.found && s.isBit
}

// Array returns the selected sub-array. ok is false if the selection is not
// an array.
func (s Selection) Array() (*BitArray, bool) {
	return s.arr, s.found && !s.isBit
}

// Slice returns a new BitArray with length bits starting at begin.
//
// A negative begin counts from the end. A length running past the end is
// truncated, so Slice(b.Len(), n) is an empty array. ok is false when length
// is negative or begin lies outside [0, Len()] after adjustment:
//
//	b := Parse("01000")
//	b.Slice(2, 1000)    // "000", true
//	b.Slice(5, 0)       // "", true
//	b.Slice(6, 1)       // nil, false
func (b *BitArray) Slice(begin, length int) (*BitArray, bool) {
	s, ok := b.s.Slice(begin, length)
	if !ok {
		return nil, false
	}
	return wrap(s), true
}

// Ref looks up a bit or a sub-array.
//
// An Index behaves like Get and returns *ErrIndexOutOfRange when it misses.
// Span and Range never fail: bounds outside the array give a Selection whose
// Found reports false. A nil selector returns *ErrInvalidArgumentKind.
func (b *BitArray) Ref(sel Selector) (Selection, error) {
	switch s := sel.(type) {
	case Index:
		v, err := b.Get(int(s))
		if err != nil {
			return Selection{}, err
		}
		return Selection{bit: v, isBit: true, found: true}, nil
	case Span:
		return b.sliceSelection(s.Begin, s.Length), nil
	case Range:
		begin, length, ok := rangeToSpan(s, b.Len())
		if !ok {
			return Selection{}, nil
		}
		return b.sliceSelection(begin, length), nil
	default:
		return Selection{}, &ErrInvalidArgumentKind{Kind: "<nil>"}
	}
}

func (b *BitArray) sliceSelection(begin, length int) Selection {
	arr, ok := b.Slice(begin, length)
	if !ok {
		return Selection{}
	}
	return Selection{arr: arr, found: true}
}

// rangeToSpan converts r to an offset and length over n bits. Negative
// bounds wrap once; a begin still negative or past n misses; the end is
// clamped to n and a crossed range has length 0.
func rangeToSpan(r Range, n int) (int, int, bool) {
	begin, end := r.Begin, r.End

	if begin < 0 {
		begin += n
		if begin < 0 {
			return 0, 0, false
		}
	}
	if end < 0 {
		end += n
	}
	if !r.Exclusive {
		end++
	}
	if begin > n {
		return 0, 0, false
	}
	if end > n {
		end = n
	}

	length := end - begin
	if length < 0 {
		length = 0
	}
	return begin, length, true
}
