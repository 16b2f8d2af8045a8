package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{5, 1, 3, 2, 4}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(5), s.Max)
	assert.Equal(t, time.Duration(3), s.Avg)
	assert.Equal(t, time.Duration(4), s.P99)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:    time.Second,
		Shapes:      25,
		Seed:        7,
		Evaluations: 200,
		Commits:     50,
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	assert.Contains(t, buf.String(), "**Catalog Shapes:** 25")
	assert.Contains(t, buf.String(), "**Commits:** 50 (25.0%)")
	assert.NotContains(t, buf.String(), "GC Pause Durations")
}
