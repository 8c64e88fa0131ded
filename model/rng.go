package model

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var ErrOverflow = errors.New("range: end overflows uint64")

// Range is a half-open interval [Start, End) of non-negative integers.
type Range struct {
	Start uint64
	End   uint64
}

func NewRange(start, end uint64) Range {
	if start > end {
		panic(fmt.Sprintf("range: inverted bounds [%d, %d)", start, end))
	}
	return Range{Start: start, End: end}
}

// RangeOf returns [start, start+length).
func RangeOf(start, length uint64) (Range, error) {
	if length > math.MaxUint64-start {
		return Range{}, fmt.Errorf("%w: start %d, length %d", ErrOverflow, start, length)
	}
	return Range{Start: start, End: start + length}, nil
}

func (r Range) Width() uint64 {
	return r.End - r.Start
}

func (r Range) Empty() bool {
	return r.Start >= r.End
}

func (r Range) Contains(v uint64) bool {
	return r.Start <= v && v < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Intersect returns the overlapping part of a and b. It returns false if they
// are disjoint.
func Intersect(a, b Range) (Range, bool) {
	ret := Range{
		Start: max(a.Start, b.Start),
		End:   min(a.End, b.End),
	}
	if ret.Start >= ret.End {
		return Range{}, false
	}
	return ret, true
}

func HasOverlap(a, b Range) bool {
	_, ok := Intersect(a, b)
	return ok
}

// Hull returns the smallest range covering all the given ranges. Empty ranges
// are ignored. It returns false if there is nothing to cover.
func Hull(rs []Range) (Range, bool) {
	var ret Range
	found := false
	for _, r := range rs {
		if r.Empty() {
			continue
		}
		if !found {
			ret, found = r, true
			continue
		}
		ret.Start = min(ret.Start, r.Start)
		ret.End = max(ret.End, r.End)
	}
	return ret, found
}

// Subtract returns the gaps of r which are not covered by any of the
// coverings, ordered by start.
//
// Coverings are swept in start order with a cursor starting at r.Start. Parts
// of a covering lying outside r are ignored.
func Subtract(r Range, coverings []Range) []Range {
	sorted := slices.Clone(coverings)
	slices.SortStableFunc(sorted, func(a, b Range) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})

	var ret []Range
	cursor := r.Start
	for _, c := range sorted {
		if cursor >= r.End {
			break
		}
		if c.Empty() {
			continue
		}
		if c.Start > cursor {
			ret = append(ret, Range{Start: cursor, End: min(c.Start, r.End)})
		}
		cursor = max(cursor, c.End)
	}
	if cursor < r.End {
		ret = append(ret, Range{Start: cursor, End: r.End})
	}
	return ret
}

// TotalWidth sums the widths of rs. Overlaps are counted twice.
func TotalWidth(rs []Range) uint64 {
	var ret uint64
	for _, r := range rs {
		ret += r.Width()
	}
	return ret
}
