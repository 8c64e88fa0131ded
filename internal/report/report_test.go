package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/kn1dar1an/advent-of-code-solutions/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func ptr(v uint64) *uint64 {
	return &v
}

func TestWriteResult_Text(t *testing.T) {
	var buf bytes.Buffer
	r := Result{Input: "example.txt", Part1: ptr(35), Part2: ptr(46)}
	require.NoError(t, WriteResult(&buf, config.OutputText, r))
	assert.Equal(t, "part1: 35, part2: 46\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteResult(&buf, config.OutputText, Result{Part2: ptr(46)}))
	assert.Equal(t, "part2: 46\n", buf.String())
}

func TestWriteResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := Result{Input: "example.txt", Part1: ptr(35)}
	require.NoError(t, WriteResult(&buf, config.OutputJSON, r))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "example.txt", got["input"])
	assert.EqualValues(t, 35, got["part1"])
	assert.NotContains(t, got, "part2")
}

func TestWriteResults_YAML(t *testing.T) {
	var buf bytes.Buffer
	rs := []Result{
		{Input: "a.txt", Part1: ptr(1), Part2: ptr(2)},
		{Input: "b.txt", Part1: ptr(3), Part2: ptr(4)},
	}
	require.NoError(t, WriteResults(&buf, config.OutputYAML, rs))

	var got []Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, rs, got)
}

func TestWriteResults_Text(t *testing.T) {
	var buf bytes.Buffer
	rs := []Result{
		{Input: "a.txt", Part1: ptr(1), Part2: ptr(2)},
		{Input: "b.txt", Part1: ptr(3), Part2: ptr(4)},
	}
	require.NoError(t, WriteResults(&buf, config.OutputText, rs))
	assert.Equal(t, "a.txt: part1: 1, part2: 2\nb.txt: part1: 3, part2: 4\n", buf.String())
}

func TestWriteTrace(t *testing.T) {
	tr := Trace{Seed: 79, Steps: []Step{{Stage: "seed-to-soil", Value: 81}, {Stage: "soil-to-fertilizer", Value: 81}}}

	var buf bytes.Buffer
	require.NoError(t, WriteTrace(&buf, config.OutputText, tr))
	assert.Equal(t, "seed: 79\nseed-to-soil: 81\nsoil-to-fertilizer: 81\n", buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteResult(&buf, "csv", Result{Part1: ptr(1)}))
}
