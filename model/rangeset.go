package model

import "github.com/emirpasic/gods/v2/maps/treemap"

// Coalesce returns the union of rs as sorted ranges which neither overlap nor
// touch each other. Empty ranges are dropped.
func Coalesce(rs []Range) []Range {
	// start -> end. Every entry is disjoint from and not adjacent to its neighbours.
	set := treemap.New[uint64, uint64]()
	for _, r := range rs {
		if r.Empty() {
			continue
		}
		start, end := r.Start, r.End

		// Merge with the entry starting at or before r, if it reaches r.
		if s, e, ok := set.Floor(start); ok && e >= start {
			start = s
			end = max(end, e)
			set.Remove(s)
		}
		// Swallow every entry starting inside [start, end].
		for {
			s, e, ok := set.Ceiling(start)
			if !ok || s > end {
				break
			}
			end = max(end, e)
			set.Remove(s)
		}
		set.Put(start, end)
	}

	ret := make([]Range, 0, set.Size())
	iter := set.Iterator()
	for iter.Next() {
		ret = append(ret, Range{Start: iter.Key(), End: iter.Value()})
	}
	return ret
}
