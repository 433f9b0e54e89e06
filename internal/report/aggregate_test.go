package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayne-turner/heat-loss/internal/thermal"
)

func sweepResults(t *testing.T) []thermal.Result {
	t.Helper()
	results, err := thermal.Sweep(thermal.DefaultBaseline())
	require.NoError(t, err)
	return results
}

func TestMeanTotalByInsulation(t *testing.T) {
	results := sweepResults(t)
	means := MeanTotalByInsulation(results)

	require.Len(t, means, 4)
	assert.Equal(t, thermal.AllInsulationBands[0], means[0].Band)
	assert.Equal(t, thermal.AllInsulationBands[3], means[3].Band)

	// Better insulation means lower average loss.
	for i := 1; i < len(means); i++ {
		assert.Less(t, means[i].MeanTotalKWh, means[i-1].MeanTotalKWh)
	}
}

func TestMeanCostByWindowType(t *testing.T) {
	results := sweepResults(t)
	means := MeanCostByWindowType(results)

	require.Len(t, means, 3)
	assert.Equal(t, thermal.WindowSingle, means[0].WindowType)
	assert.Equal(t, thermal.WindowDouble, means[1].WindowType)
	assert.Equal(t, thermal.WindowTriple, means[2].WindowType)

	assert.Greater(t, means[0].MeanCost, means[1].MeanCost)
	assert.Greater(t, means[1].MeanCost, means[2].MeanCost)
}

func TestMeanTotalByInsulation_OmitsAbsentBands(t *testing.T) {
	results := sweepResults(t)

	var onlyR13 []thermal.Result
	for _, res := range results {
		if res.InsulationBand == thermal.InsulationR13R15 {
			onlyR13 = append(onlyR13, res)
		}
	}

	means := MeanTotalByInsulation(onlyR13)
	require.Len(t, means, 1)
	assert.Equal(t, thermal.InsulationR13R15, means[0].Band)
}

func TestBreakdown(t *testing.T) {
	res, err := thermal.Compute(thermal.DefaultInput())
	require.NoError(t, err)

	parts := Breakdown(res)
	require.Len(t, parts, 4)
	assert.Equal(t, []string{"roof", "walls", "windows", "infiltration"},
		[]string{parts[0].Name, parts[1].Name, parts[2].Name, parts[3].Name})

	var kwh, pct float64
	for _, c := range parts {
		kwh += c.KWh
		pct += c.Pct
	}
	assert.InDelta(t, res.QTotalKWh, kwh, 1e-9)
	assert.InDelta(t, 100.0, pct, 1e-9)
}

func TestWriteCSV(t *testing.T) {
	results := sweepResults(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, results))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 49, "header plus 48 scenario rows")

	header := records[0]
	assert.Equal(t, "sqft_roof", header[0])
	assert.Contains(t, header, "Q_total_kWh")
	assert.Contains(t, header, "Q_infiltration_pct")
	assert.Equal(t, "total_cost", header[len(header)-1])

	for _, row := range records[1:] {
		assert.Len(t, row, len(header))
	}
}

func TestWriteJSON_FieldNames(t *testing.T) {
	res, err := thermal.Compute(thermal.DefaultInput())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, res))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	for _, key := range []string{
		"sqft_roof", "sqft_walls", "roof_material_type", "wall_material_type",
		"ambient_temp_F", "T_inside_F", "duration_hours", "insulation_r_value",
		"air_changes_per_hour", "window_area_sqft", "window_type",
		"electricity_cost_per_kWh",
		"Q_roof_kWh", "Q_walls_kWh", "Q_windows_kWh", "Q_infiltration_kWh",
		"Q_total_kWh", "Q_roof_pct", "Q_walls_pct", "Q_windows_pct",
		"Q_infiltration_pct", "total_cost",
	} {
		assert.Contains(t, decoded, key)
	}
}

func TestSummarize(t *testing.T) {
	results := sweepResults(t)
	summary := Summarize(results)

	assert.Len(t, summary.Scenarios, 48)
	assert.Len(t, summary.ByInsulationBand, 4)
	assert.Len(t, summary.ByWindowType, 3)

	var buf bytes.Buffer
	require.NoError(t, WriteJSONList(&buf, results))
	assert.Contains(t, buf.String(), "Q_total_kWh")
}
