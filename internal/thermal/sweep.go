package thermal

import (
	"errors"
	"fmt"
	"sort"
)

// ErrSweepContract signals an internal contract violation during a scenario
// sweep. The baseline fields are validated identically on every combination,
// so a validation failure mid-sweep (or an empty result set) means the sweep
// wiring is broken, not that the user supplied bad input.
var ErrSweepContract = errors.New("scenario sweep contract violation")

// Baseline supplies every calculation parameter except the three categorical
// choices the sweep enumerates: roof material, window type and insulation
// band.
type Baseline struct {
	SqftRoof              float64
	SqftWalls             float64
	WallMaterial          WallMaterial
	AmbientTempF          float64
	InsideTempF           float64
	DurationHours         float64
	AirChangesPerHour     float64
	WindowAreaSqft        float64
	ElectricityCostPerKWh float64
}

// DefaultBaseline returns the sweep baseline matching DefaultInput.
func DefaultBaseline() Baseline {
	def := DefaultInput()
	return Baseline{
		SqftRoof:              def.SqftRoof,
		SqftWalls:             def.SqftWalls,
		WallMaterial:          def.WallMaterial,
		AmbientTempF:          def.AmbientTempF,
		InsideTempF:           def.InsideTempF,
		DurationHours:         def.DurationHours,
		AirChangesPerHour:     def.AirChangesPerHour,
		WindowAreaSqft:        def.WindowAreaSqft,
		ElectricityCostPerKWh: def.ElectricityCostPerKWh,
	}
}

// input builds the full calculation input for one sweep combination.
func (b Baseline) input(roof RoofMaterial, window WindowType, band InsulationBand) Input {
	return Input{
		SqftRoof:              b.SqftRoof,
		SqftWalls:             b.SqftWalls,
		RoofMaterial:          roof,
		WallMaterial:          b.WallMaterial,
		AmbientTempF:          b.AmbientTempF,
		InsideTempF:           b.InsideTempF,
		DurationHours:         b.DurationHours,
		InsulationBand:        band,
		AirChangesPerHour:     b.AirChangesPerHour,
		WindowAreaSqft:        b.WindowAreaSqft,
		WindowType:            window,
		ElectricityCostPerKWh: b.ElectricityCostPerKWh,
	}
}

// Sweep computes the fixed cross-product of roof material × window type ×
// insulation band (48 combinations) against the baseline and returns the
// results sorted ascending by total kWh. The sort is stable, so ties keep
// enumeration order.
func Sweep(baseline Baseline) ([]Result, error) {
	results := make([]Result, 0, len(AllRoofMaterials)*len(AllWindowTypes)*len(AllInsulationBands))

	for _, roof := range AllRoofMaterials {
		for _, window := range AllWindowTypes {
			for _, band := range AllInsulationBands {
				res, err := Compute(baseline.input(roof, window, band))
				if err != nil {
					return nil, fmt.Errorf("%w: combination %s/%s/%s: %w",
						ErrSweepContract, roof, window, band, err)
				}
				results = append(results, res)
			}
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: empty result set", ErrSweepContract)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].QTotalKWh < results[j].QTotalKWh
	})

	return results, nil
}
