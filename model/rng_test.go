package model

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestRange_RangeOf(t *testing.T) {
	r, err := RangeOf(79, 14)
	if err != nil {
		t.Fatalf("Fail to build range: %v", err)
	}
	if r != NewRange(79, 93) {
		t.Errorf("Got %v, want [79,93)", r)
	}
	if r.Contains(93) {
		t.Errorf("%v should not contain its end", r)
	}
	if !r.Contains(79) {
		t.Errorf("%v should contain its start", r)
	}

	if _, err := RangeOf(math.MaxUint64, 2); !errors.Is(err, ErrOverflow) {
		t.Errorf("Got error %v, want %v", err, ErrOverflow)
	}
}

func TestRange_Intersect(t *testing.T) {
	tcs := []struct {
		name string
		a    Range
		b    Range
		want Range
		ok   bool
	}{
		{
			name: "Overlap",
			a:    NewRange(0, 10),
			b:    NewRange(5, 15),
			want: NewRange(5, 10),
			ok:   true,
		},
		{
			name: "Contained",
			a:    NewRange(0, 100),
			b:    NewRange(20, 30),
			want: NewRange(20, 30),
			ok:   true,
		},
		{
			name: "Touching",
			a:    NewRange(0, 10),
			b:    NewRange(10, 20),
			ok:   false,
		},
		{
			name: "Disjoint",
			a:    NewRange(0, 10),
			b:    NewRange(50, 60),
			ok:   false,
		},
		{
			name: "Empty",
			a:    NewRange(5, 5),
			b:    NewRange(0, 10),
			ok:   false,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Intersect(tc.a, tc.b)
			if ok != tc.ok {
				t.Fatalf("Got ok %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("Got %v, want %v", got, tc.want)
			}

			rgot, rok := Intersect(tc.b, tc.a)
			if rok != ok || rgot != got {
				t.Errorf("Intersect is not symmetric: %v/%v vs %v/%v", got, ok, rgot, rok)
			}
			if HasOverlap(tc.a, tc.b) != tc.ok {
				t.Errorf("HasOverlap got %v, want %v", !tc.ok, tc.ok)
			}
		})
	}
}

func TestRange_Hull(t *testing.T) {
	tcs := []struct {
		name   string
		ranges []Range
		want   Range
		ok     bool
	}{
		{
			name: "Empty",
		},
		{
			name:   "OneRange",
			ranges: []Range{NewRange(3, 4)},
			want:   NewRange(3, 4),
			ok:     true,
		},
		{
			name:   "ManyRanges",
			ranges: []Range{NewRange(10, 20), NewRange(0, 5), NewRange(7, 7), NewRange(15, 30)},
			want:   NewRange(0, 30),
			ok:     true,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Hull(tc.ranges)
			if ok != tc.ok {
				t.Fatalf("Got ok %v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("Got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRange_Subtract(t *testing.T) {
	tcs := []struct {
		name      string
		r         Range
		coverings []Range
		want      []Range
	}{
		{
			name: "NoCoverings",
			r:    NewRange(0, 10),
			want: []Range{NewRange(0, 10)},
		},
		{
			name:      "FullyCovered",
			r:         NewRange(0, 10),
			coverings: []Range{NewRange(0, 10)},
			want:      nil,
		},
		{
			name:      "Middle",
			r:         NewRange(0, 10),
			coverings: []Range{NewRange(3, 5)},
			want:      []Range{NewRange(0, 3), NewRange(5, 10)},
		},
		{
			name:      "Unsorted",
			r:         NewRange(0, 20),
			coverings: []Range{NewRange(12, 15), NewRange(2, 4)},
			want:      []Range{NewRange(0, 2), NewRange(4, 12), NewRange(15, 20)},
		},
		{
			name:      "Adjacent",
			r:         NewRange(0, 10),
			coverings: []Range{NewRange(0, 4), NewRange(4, 10)},
			want:      nil,
		},
		{
			name:      "OutsideCoverings",
			r:         NewRange(10, 20),
			coverings: []Range{NewRange(0, 12), NewRange(18, 40)},
			want:      []Range{NewRange(12, 18)},
		},
		{
			name:      "CoveringBeyondEnd",
			r:         NewRange(10, 20),
			coverings: []Range{NewRange(30, 40)},
			want:      []Range{NewRange(10, 20)},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Subtract(tc.r, tc.coverings)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Got %v, want %v", got, tc.want)
			}
		})
	}
}

// Gaps plus the coverings clipped to r must rebuild r exactly.
func TestRange_SubtractCoverage(t *testing.T) {
	r := NewRange(100, 200)
	coverings := []Range{NewRange(90, 110), NewRange(130, 140), NewRange(150, 151), NewRange(199, 250)}

	var pieces []Range
	pieces = append(pieces, Subtract(r, coverings)...)
	for _, c := range coverings {
		if i, ok := Intersect(r, c); ok {
			pieces = append(pieces, i)
		}
	}

	if got := TotalWidth(pieces); got != r.Width() {
		t.Errorf("Got total width %d, want %d", got, r.Width())
	}
	got := Coalesce(pieces)
	if !reflect.DeepEqual(got, []Range{r}) {
		t.Errorf("Got %v, want %v", got, []Range{r})
	}
}
