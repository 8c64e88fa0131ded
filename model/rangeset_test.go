package model

import (
	"reflect"
	"testing"
)

func TestRangeSet_Coalesce(t *testing.T) {
	tcs := []struct {
		name   string
		ranges []Range
		want   []Range
	}{
		{
			name:   "Empty",
			ranges: nil,
			want:   []Range{},
		},
		{
			name:   "DropEmpty",
			ranges: []Range{NewRange(4, 4)},
			want:   []Range{},
		},
		{
			name:   "Disjoint",
			ranges: []Range{NewRange(20, 30), NewRange(0, 10)},
			want:   []Range{NewRange(0, 10), NewRange(20, 30)},
		},
		{
			name:   "Adjacent",
			ranges: []Range{NewRange(0, 10), NewRange(10, 20)},
			want:   []Range{NewRange(0, 20)},
		},
		{
			name:   "Overlap",
			ranges: []Range{NewRange(5, 15), NewRange(0, 10)},
			want:   []Range{NewRange(0, 15)},
		},
		{
			name:   "SwallowMany",
			ranges: []Range{NewRange(1, 2), NewRange(3, 4), NewRange(6, 7), NewRange(0, 5)},
			want:   []Range{NewRange(0, 5), NewRange(6, 7)},
		},
		{
			name:   "Contained",
			ranges: []Range{NewRange(0, 100), NewRange(10, 20)},
			want:   []Range{NewRange(0, 100)},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Coalesce(tc.ranges)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Got %v, want %v", got, tc.want)
			}
		})
	}
}
