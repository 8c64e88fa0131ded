// Package report renders almanac results as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kn1dar1an/advent-of-code-solutions/internal/config"
	"gopkg.in/yaml.v3"
)

// Result holds the answers computed for one input. A nil part was not asked for.
type Result struct {
	Input string  `json:"input" yaml:"input"`
	Part1 *uint64 `json:"part1,omitempty" yaml:"part1,omitempty"`
	Part2 *uint64 `json:"part2,omitempty" yaml:"part2,omitempty"`
}

// Text renders the answers as "part1: <n>, part2: <n>".
func (r Result) Text() string {
	var parts []string
	if r.Part1 != nil {
		parts = append(parts, fmt.Sprintf("part1: %d", *r.Part1))
	}
	if r.Part2 != nil {
		parts = append(parts, fmt.Sprintf("part2: %d", *r.Part2))
	}
	return strings.Join(parts, ", ")
}

// Step is the value of a seed after one stage.
type Step struct {
	Stage string `json:"stage" yaml:"stage"`
	Value uint64 `json:"value" yaml:"value"`
}

// Trace follows one seed through the stages.
type Trace struct {
	Seed  uint64 `json:"seed" yaml:"seed"`
	Steps []Step `json:"steps" yaml:"steps"`
}

func (t Trace) Text() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("seed: %d", t.Seed))
	for _, s := range t.Steps {
		sb.WriteString(fmt.Sprintf("\n%s: %d", s.Stage, s.Value))
	}
	return sb.String()
}

// WriteResult writes a single result.
func WriteResult(w io.Writer, format config.OutputFormat, r Result) error {
	return write(w, format, r, r.Text())
}

// WriteResults writes one result per input. Text lines are prefixed with the
// input name.
func WriteResults(w io.Writer, format config.OutputFormat, rs []Result) error {
	lines := make([]string, 0, len(rs))
	for _, r := range rs {
		lines = append(lines, r.Input+": "+r.Text())
	}
	return write(w, format, rs, strings.Join(lines, "\n"))
}

func WriteTrace(w io.Writer, format config.OutputFormat, t Trace) error {
	return write(w, format, t, t.Text())
}

func write(w io.Writer, format config.OutputFormat, v any, text string) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report: fail to encode json: %w", err)
		}
		return nil
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report: fail to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("report: fail to encode yaml: %w", err)
		}
		return nil
	case config.OutputText, "":
		_, err := fmt.Fprintln(w, text)
		return err
	}
	return fmt.Errorf("report: unknown output format %q", format)
}
