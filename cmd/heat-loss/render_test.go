package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayne-turner/heat-loss/internal/thermal"
)

func TestRenderResult(t *testing.T) {
	res, err := thermal.Compute(thermal.DefaultInput())
	require.NoError(t, err)

	var buf bytes.Buffer
	renderResult(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "roof")
	assert.Contains(t, out, "walls")
	assert.Contains(t, out, "windows")
	assert.Contains(t, out, "infiltration")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "cost")
	assert.Contains(t, out, "R13-R15")
}

func TestRenderSweep(t *testing.T) {
	results, err := thermal.Sweep(thermal.DefaultBaseline())
	require.NoError(t, err)

	var buf bytes.Buffer
	renderSweep(&buf, results)
	out := buf.String()

	assert.Contains(t, out, "rank")
	assert.Contains(t, out, "insulation band")
	assert.Contains(t, out, "window type")
	assert.Contains(t, out, "avg total kWh")
	assert.Contains(t, out, "avg cost")
}
