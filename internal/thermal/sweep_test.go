package thermal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBaseline() Baseline {
	return Baseline{
		SqftRoof:              1800,
		SqftWalls:             1500,
		WallMaterial:          WallBrick,
		AmbientTempF:          50,
		InsideTempF:           70,
		DurationHours:         24,
		AirChangesPerHour:     0.5,
		WindowAreaSqft:        500,
		ElectricityCostPerKWh: 0.12,
	}
}

func TestSweep_Returns48SortedResults(t *testing.T) {
	results, err := Sweep(testBaseline())
	require.NoError(t, err)
	require.Len(t, results, 48)

	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].QTotalKWh, results[i].QTotalKWh,
			"results must be sorted ascending by total kWh")
	}
}

func TestSweep_CoversFullCrossProduct(t *testing.T) {
	results, err := Sweep(testBaseline())
	require.NoError(t, err)

	seen := make(map[[3]string]int)
	for _, res := range results {
		key := [3]string{string(res.RoofMaterial), string(res.WindowType), string(res.InsulationBand)}
		seen[key]++
	}

	assert.Len(t, seen, 48, "every combination appears exactly once")
	for key, count := range seen {
		assert.Equal(t, 1, count, "combination %v duplicated", key)
	}
}

func TestSweep_BaselineFieldsHeldFixed(t *testing.T) {
	base := testBaseline()
	results, err := Sweep(base)
	require.NoError(t, err)

	for _, res := range results {
		assert.Equal(t, base.SqftRoof, res.SqftRoof)
		assert.Equal(t, base.SqftWalls, res.SqftWalls)
		assert.Equal(t, base.WallMaterial, res.WallMaterial)
		assert.Equal(t, base.AirChangesPerHour, res.AirChangesPerHour)
		assert.Equal(t, base.WindowAreaSqft, res.WindowAreaSqft)
	}
}

func TestSweep_BestScenarioIsMostInsulated(t *testing.T) {
	results, err := Sweep(testBaseline())
	require.NoError(t, err)

	// With a positive differential the cheapest combination pairs the top
	// insulation band with triple glazing.
	best := results[0]
	assert.Equal(t, InsulationR34R60, best.InsulationBand)
	assert.Equal(t, WindowTriple, best.WindowType)

	worst := results[len(results)-1]
	assert.Equal(t, InsulationR13R15, worst.InsulationBand)
	assert.Equal(t, WindowSingle, worst.WindowType)
}

func TestSweep_InvalidBaselineIsContractViolation(t *testing.T) {
	base := testBaseline()
	base.SqftRoof = -1

	results, err := Sweep(base)
	assert.Nil(t, results)
	require.ErrorIs(t, err, ErrSweepContract)

	// The underlying validation detail stays inspectable.
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSweep_ZeroDifferentialKeepsEnumerationOrder(t *testing.T) {
	base := testBaseline()
	base.InsideTempF = base.AmbientTempF

	results, err := Sweep(base)
	require.NoError(t, err)
	require.Len(t, results, 48)

	// All totals tie at zero, so the stable sort preserves the fixed
	// roof × window × band enumeration order.
	idx := 0
	for _, roof := range AllRoofMaterials {
		for _, window := range AllWindowTypes {
			for _, band := range AllInsulationBands {
				assert.Equal(t, roof, results[idx].RoofMaterial)
				assert.Equal(t, window, results[idx].WindowType)
				assert.Equal(t, band, results[idx].InsulationBand)
				idx++
			}
		}
	}
}
