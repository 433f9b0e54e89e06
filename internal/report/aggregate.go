// Package report shapes calculation results for presentation collaborators:
// grouped averages for charting, component breakdowns for single-result
// visualizers, and CSV/JSON encodings for persistence.
package report

import "github.com/wayne-turner/heat-loss/internal/thermal"

// InsulationMean is the average total energy across all scenarios sharing an
// insulation band.
type InsulationMean struct {
	Band         thermal.InsulationBand `json:"insulation_r_value"`
	MeanTotalKWh float64                `json:"Q_total_mean_kWh"`
}

// WindowMean is the average total cost across all scenarios sharing a window
// type.
type WindowMean struct {
	WindowType thermal.WindowType `json:"window_type"`
	MeanCost   float64            `json:"total_cost_mean"`
}

// Component is one slice of a single result's heat loss breakdown.
type Component struct {
	Name string  `json:"name"`
	KWh  float64 `json:"kWh"`
	Pct  float64 `json:"pct"`
}

// MeanTotalByInsulation averages total energy per insulation band, in
// canonical band order. Bands absent from the input are omitted.
func MeanTotalByInsulation(results []thermal.Result) []InsulationMean {
	sums := make(map[thermal.InsulationBand]float64)
	counts := make(map[thermal.InsulationBand]int)
	for _, res := range results {
		sums[res.InsulationBand] += res.QTotalKWh
		counts[res.InsulationBand]++
	}

	means := make([]InsulationMean, 0, len(counts))
	for _, band := range thermal.AllInsulationBands {
		if counts[band] == 0 {
			continue
		}
		means = append(means, InsulationMean{
			Band:         band,
			MeanTotalKWh: sums[band] / float64(counts[band]),
		})
	}
	return means
}

// MeanCostByWindowType averages total cost per window type, in canonical
// window order. Types absent from the input are omitted.
func MeanCostByWindowType(results []thermal.Result) []WindowMean {
	sums := make(map[thermal.WindowType]float64)
	counts := make(map[thermal.WindowType]int)
	for _, res := range results {
		sums[res.WindowType] += res.TotalCost
		counts[res.WindowType]++
	}

	means := make([]WindowMean, 0, len(counts))
	for _, window := range thermal.AllWindowTypes {
		if counts[window] == 0 {
			continue
		}
		means = append(means, WindowMean{
			WindowType: window,
			MeanCost:   sums[window] / float64(counts[window]),
		})
	}
	return means
}

// Breakdown returns the four-component split of one result in fixed display
// order: roof, walls, windows, infiltration.
func Breakdown(res thermal.Result) []Component {
	return []Component{
		{Name: "roof", KWh: res.QRoofKWh, Pct: res.QRoofPct},
		{Name: "walls", KWh: res.QWallsKWh, Pct: res.QWallsPct},
		{Name: "windows", KWh: res.QWindowsKWh, Pct: res.QWindowsPct},
		{Name: "infiltration", KWh: res.QInfiltrationKWh, Pct: res.QInfiltrationPct},
	}
}
