package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kn1dar1an/advent-of-code-solutions/model"
)

var ErrMalformedRule = errors.New("rule: malformed line")

// Rule maps every value of Source onto the range of the same width starting at Dest.
type Rule struct {
	Source model.Range
	Dest   uint64
}

func NewRule(source model.Range, dest uint64) Rule {
	return Rule{
		Source: source,
		Dest:   dest,
	}
}

// Translate maps v, which must be inside r.Source, into destination space.
func (r Rule) Translate(v uint64) uint64 {
	return r.Dest + (v - r.Source.Start)
}

// TranslateRange maps in, which must be inside r.Source, into destination space.
func (r Rule) TranslateRange(in model.Range) model.Range {
	return model.Range{
		Start: r.Translate(in.Start),
		End:   r.Translate(in.Start) + in.Width(),
	}
}

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %d", r.Source, r.Dest)
}

// ParseRule parses a line of three unsigned integers: destination start,
// source start and length.
func ParseRule(line string) (Rule, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Rule{}, fmt.Errorf("%w: want 3 fields, got %d in %q", ErrMalformedRule, len(fields), line)
	}
	var nums [3]uint64
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return Rule{}, fmt.Errorf("%w: %w", ErrMalformedRule, err)
		}
		nums[i] = n
	}
	dst, src, length := nums[0], nums[1], nums[2]

	source, err := model.RangeOf(src, length)
	if err != nil {
		return Rule{}, fmt.Errorf("rule: fail to build source range: %w", err)
	}
	if _, err := model.RangeOf(dst, length); err != nil {
		return Rule{}, fmt.Errorf("rule: fail to build destination range: %w", err)
	}
	return NewRule(source, dst), nil
}
