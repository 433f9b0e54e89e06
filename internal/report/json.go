package report

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/wayne-turner/heat-loss/internal/thermal"
)

// WriteJSON writes one result as an indented JSON object.
func WriteJSON(w io.Writer, res thermal.Result) error {
	return encode(w, res)
}

// WriteJSONList writes a scenario set as an indented JSON array.
func WriteJSONList(w io.Writer, results []thermal.Result) error {
	return encode(w, results)
}

// SweepSummary bundles a scenario set with its chart aggregates.
type SweepSummary struct {
	Scenarios        []thermal.Result `json:"scenarios"`
	ByInsulationBand []InsulationMean `json:"mean_total_by_insulation"`
	ByWindowType     []WindowMean     `json:"mean_cost_by_window_type"`
}

// Summarize builds the JSON summary for a sweep result set.
func Summarize(results []thermal.Result) SweepSummary {
	return SweepSummary{
		Scenarios:        results,
		ByInsulationBand: MeanTotalByInsulation(results),
		ByWindowType:     MeanCostByWindowType(results),
	}
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
