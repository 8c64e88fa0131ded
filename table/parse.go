package table

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kn1dar1an/advent-of-code-solutions/utils"
	"go.uber.org/zap"
)

var ErrMissingStage = errors.New("almanac: missing stage")

const seedsLabel = "seeds"

// Parse reads an almanac: a "seeds:" line followed by one section per stage.
//
// A section starts with a header line containing the stage's keyword, e.g.
// "seed-to-soil map:", and is followed by rule lines. Blank lines are
// ignored. Every stage header must be present. Parsing stops at the first
// malformed line.
func Parse(r io.Reader, opts ...Option) (*Almanac, error) {
	config := newConfig(opts...)

	var (
		seeds     []uint64
		seedsSeen bool
		tables    [NumStages]*Table
		current   = Stage(-1)
	)
	err := utils.ReadLines(r, func(n int, line string) error {
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		if s, ok := stageOf(line); ok {
			if tables[s] == nil {
				tables[s] = NewTable()
			}
			current = s
			return nil
		}
		if current < 0 {
			ss, err := parseSeeds(line)
			if err != nil {
				return fmt.Errorf("almanac: line %d: %w", n, err)
			}
			seeds = append(seeds, ss...)
			seedsSeen = true
			return nil
		}
		rule, err := ParseRule(line)
		if err != nil {
			return fmt.Errorf("almanac: line %d: %w", n, err)
		}
		tables[current].add(rule)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !seedsSeen || len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	var missing []string
	for _, s := range Stages {
		if tables[s] == nil {
			missing = append(missing, s.Keyword())
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingStage, strings.Join(missing, ", "))
	}

	for _, s := range Stages {
		config.Logger.Debug("Stage parsed",
			zap.Stringer("stage", s),
			zap.Int("rules", tables[s].Len()),
			zap.Bool("overlapping", tables[s].Overlapping()))
	}
	return NewAlmanac(seeds, tables, opts...), nil
}

// ParseFile parses the almanac stored at path. See utils.OpenInput for how
// the path is interpreted; standard input is read from the WithStdin reader.
func ParseFile(path string, opts ...Option) (*Almanac, error) {
	config := newConfig(opts...)
	f, err := utils.OpenInput(path, config.Stdin)
	if err != nil {
		return nil, fmt.Errorf("almanac: %w", err)
	}
	defer f.Close()
	return Parse(f, opts...)
}

func parseSeeds(line string) ([]uint64, error) {
	label, rest, ok := strings.Cut(line, ":")
	if !ok || strings.TrimSpace(label) != seedsLabel {
		return nil, fmt.Errorf("%w: want a %q line, got %q", ErrNoSeeds, seedsLabel+":", line)
	}
	var ret []uint64
	for _, f := range strings.Fields(rest) {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("fail to parse seed: %w", err)
		}
		ret = append(ret, n)
	}
	return ret, nil
}
