package table

import (
	"fmt"
	"slices"
	"strings"

	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/kn1dar1an/advent-of-code-solutions/model"
)

// Table is one stage of the almanac: an insertion-ordered list of rules.
//
// Values not covered by any rule pass through unchanged. If rules overlap,
// the one added first wins.
type Table struct {
	rules []Rule

	// Source start -> index into rules. Only the first non-empty rule with a
	// given start is indexed.
	index *treemap.Map[uint64, int]
}

func NewTable() *Table {
	return &Table{
		index: treemap.New[uint64, int](),
	}
}

// AddRule appends a rule. Overlaps are not checked, but the destination
// range must fit in uint64.
func (t *Table) AddRule(source model.Range, dest uint64) error {
	if _, err := model.RangeOf(dest, source.Width()); err != nil {
		return fmt.Errorf("rule: fail to build destination range: %w", err)
	}
	t.add(NewRule(source, dest))
	return nil
}

func (t *Table) add(r Rule) {
	t.rules = append(t.rules, r)
	if r.Source.Empty() {
		return
	}
	if _, ok := t.index.Get(r.Source.Start); !ok {
		t.index.Put(r.Source.Start, len(t.rules)-1)
	}
}

func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of the rules in insertion order.
func (t *Table) Rules() []Rule {
	return slices.Clone(t.rules)
}

// MapPoint returns the destination of v using the first rule containing it,
// or v itself if no rule does.
func (t *Table) MapPoint(v uint64) uint64 {
	for _, r := range t.rules {
		if r.Source.Contains(v) {
			return r.Translate(v)
		}
	}
	return v
}

// Lookup is MapPoint for tables without overlapping rules. It finds the rule
// with the greatest start not above v instead of scanning every rule.
func (t *Table) Lookup(v uint64) uint64 {
	_, i, ok := t.index.Floor(v)
	if !ok {
		return v
	}
	if r := t.rules[i]; r.Source.Contains(v) {
		return r.Translate(v)
	}
	return v
}

// MapRanges maps every value of in and returns the results as ranges.
//
// Each input range is split against the rules in insertion order. Pieces
// claimed by a rule are translated; whatever no rule claims is returned
// unchanged. The total width of the output always equals the total width of
// the input. Output ranges are not sorted or merged.
func (t *Table) MapRanges(in []model.Range) []model.Range {
	var ret []model.Range
	for _, r := range in {
		if r.Empty() {
			continue
		}
		remaining := []model.Range{r}
		for _, rule := range t.rules {
			if len(remaining) == 0 {
				break
			}
			var next []model.Range
			for _, piece := range remaining {
				inter, ok := model.Intersect(piece, rule.Source)
				if !ok {
					next = append(next, piece)
					continue
				}
				ret = append(ret, rule.TranslateRange(inter))
				next = append(next, model.Subtract(piece, []model.Range{inter})...)
			}
			remaining = next
		}
		ret = append(ret, remaining...)
	}
	return ret
}

// Overlapping reports whether any two rules share a source value.
func (t *Table) Overlapping() bool {
	sources := make([]model.Range, 0, len(t.rules))
	for _, r := range t.rules {
		if !r.Source.Empty() {
			sources = append(sources, r.Source)
		}
	}
	slices.SortFunc(sources, func(a, b model.Range) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})
	for i := 1; i < len(sources); i++ {
		if model.HasOverlap(sources[i-1], sources[i]) {
			return true
		}
	}
	return false
}

func (t *Table) String() string {
	sb := strings.Builder{}
	for _, r := range t.rules {
		sb.WriteString("\t")
		sb.WriteString(r.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
