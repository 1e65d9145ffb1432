package typed

import "github.com/pkg/errors"

// Range is an interval of indexes, negative bounds count from the end.
type Range struct {
	Start     int
	End       int
	Exclusive bool
}

// Between is the inclusive range [start, end].
func Between(start, end int) Range {
	return Range{Start: start, End: end}
}

// Until is the exclusive range [start, end).
func Until(start, end int) Range {
	return Range{Start: start, End: end, Exclusive: true}
}

// resolve turns r into a start and a length against an array of n items.
// The start may still be past n, callers decide what that means.
func (r Range) resolve(n int) (start, length int, ok bool) {
	start, end := r.Start, r.End
	if start < 0 {
		start += n
		if start < 0 {
			return 0, 0, false
		}
	}

	if end < 0 {
		end += n
	}

	if !r.Exclusive {
		end++
	}

	length = end - start
	if length < 0 {
		length = 0
	}

	return start, length, true
}

// bounds clamps a read of length items from start to the array.
func bounds(n, start, length int) (int, int, bool) {
	if length < 0 {
		return 0, 0, false
	}

	if start < 0 {
		start += n
		if start < 0 {
			return 0, 0, false
		}
	}

	if start > n {
		return 0, 0, false
	}

	if length > n-start {
		length = n - start
	}

	return start, length, true
}

// writeBounds resolves the start of a write, which may point past the end.
func writeBounds(n, start, length int) (int, int, error) {
	if length < 0 {
		return 0, 0, errors.Wrapf(ErrIndexOutOfRange, "typed: negative length %d", length)
	}

	if start < 0 {
		if start+n < 0 {
			return 0, 0, errors.Wrapf(ErrIndexOutOfRange, "typed: index %d too small for array of %d", start, n)
		}
		start += n
	}

	return start, length, nil
}
