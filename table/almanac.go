package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kn1dar1an/advent-of-code-solutions/model"
	"go.uber.org/zap"
)

var (
	ErrNoSeeds      = errors.New("almanac: no seeds")
	ErrOddSeedCount = errors.New("almanac: seed ranges need an even number of values")
)

// Almanac chains the seven stage tables from seed to location.
//
// It is read-only once built, so queries can run concurrently.
type Almanac struct {
	seeds  []uint64
	stages [NumStages]*Table

	// indexed[i] is set when stage i has no overlapping rules, so points can
	// be mapped with Table.Lookup instead of a scan.
	indexed [NumStages]bool

	logger   *zap.Logger
	coalesce bool
}

// NewAlmanac builds an almanac from its seed line and one table per stage.
// A nil table is treated as an empty one. Tables must not be changed after
// this call.
func NewAlmanac(seeds []uint64, tables [NumStages]*Table, opts ...Option) *Almanac {
	config := newConfig(opts...)
	a := &Almanac{
		seeds:    slices.Clone(seeds),
		logger:   config.Logger,
		coalesce: config.Coalesce,
	}
	for i, t := range tables {
		if t == nil {
			t = NewTable()
		}
		a.stages[i] = t
		a.indexed[i] = !t.Overlapping()
	}
	return a
}

// Seeds returns the numbers on the seed line.
func (a *Almanac) Seeds() []uint64 {
	return slices.Clone(a.seeds)
}

// SeedRanges reads the seed line as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]model.Range, error) {
	if len(a.seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeedCount, len(a.seeds))
	}
	ret := make([]model.Range, 0, len(a.seeds)/2)
	for i := 0; i < len(a.seeds); i += 2 {
		r, err := model.RangeOf(a.seeds[i], a.seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("almanac: fail to build seed range %d: %w", i/2, err)
		}
		ret = append(ret, r)
	}
	return ret, nil
}

func (a *Almanac) Table(s Stage) *Table {
	return a.stages[s]
}

// Location pushes a seed through every stage.
func (a *Almanac) Location(seed uint64) uint64 {
	v := seed
	for i := range a.stages {
		v = a.mapPoint(i, v)
	}
	return v
}

func (a *Almanac) mapPoint(stage int, v uint64) uint64 {
	if a.indexed[stage] {
		return a.stages[stage].Lookup(v)
	}
	return a.stages[stage].MapPoint(v)
}

// Trace returns the value after each stage, starting with the seed itself.
func (a *Almanac) Trace(seed uint64) []uint64 {
	ret := make([]uint64, 0, NumStages+1)
	ret = append(ret, seed)
	v := seed
	for i := range a.stages {
		v = a.mapPoint(i, v)
		ret = append(ret, v)
	}
	return ret
}

// LowestLocationForPoints returns the lowest location of the given seeds.
func (a *Almanac) LowestLocationForPoints(seeds []uint64) (uint64, error) {
	if len(seeds) == 0 {
		return 0, ErrNoSeeds
	}
	lowest := a.Location(seeds[0])
	for _, s := range seeds[1:] {
		lowest = min(lowest, a.Location(s))
	}
	return lowest, nil
}

// LowestLocationForRanges returns the lowest location reachable from any seed
// in the given ranges, without enumerating the seeds.
func (a *Almanac) LowestLocationForRanges(seeds []model.Range) (uint64, error) {
	ranges := make([]model.Range, 0, len(seeds))
	for _, r := range seeds {
		if !r.Empty() {
			ranges = append(ranges, r)
		}
	}
	if len(ranges) == 0 {
		return 0, ErrNoSeeds
	}

	for i, t := range a.stages {
		ranges = t.MapRanges(ranges)
		before := len(ranges)
		if a.coalesce {
			ranges = model.Coalesce(ranges)
		}
		span, _ := model.Hull(ranges)
		a.logger.Debug("Stage mapped",
			zap.Stringer("stage", Stages[i]),
			zap.Int("ranges", before),
			zap.Int("coalesced", len(ranges)),
			zap.Stringer("span", span),
			zap.Uint64("width", model.TotalWidth(ranges)))
	}

	lowest := ranges[0].Start
	for _, r := range ranges[1:] {
		lowest = min(lowest, r.Start)
	}
	return lowest, nil
}

// Part1 is the lowest location for the seed line read as single seeds.
func (a *Almanac) Part1() (uint64, error) {
	return a.LowestLocationForPoints(a.seeds)
}

// Part2 is the lowest location for the seed line read as seed ranges.
func (a *Almanac) Part2() (uint64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	return a.LowestLocationForRanges(ranges)
}

func (a *Almanac) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Seeds: %v\n", a.seeds))
	for i, t := range a.stages {
		sb.WriteString(fmt.Sprintf("%s (%d rules):\n", Stages[i], t.Len()))
		sb.WriteString(t.String())
	}
	return sb.String()
}
