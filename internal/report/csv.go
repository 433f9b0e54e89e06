package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/wayne-turner/heat-loss/internal/thermal"
)

// csvHeader matches the original result column naming, inputs first, then
// computed fields.
var csvHeader = []string{
	"sqft_roof",
	"sqft_walls",
	"roof_material_type",
	"wall_material_type",
	"ambient_temp_F",
	"T_inside_F",
	"duration_hours",
	"insulation_r_value",
	"air_changes_per_hour",
	"window_area_sqft",
	"window_type",
	"electricity_cost_per_kWh",
	"Q_roof_kWh",
	"Q_walls_kWh",
	"Q_windows_kWh",
	"Q_infiltration_kWh",
	"Q_total_kWh",
	"Q_roof_pct",
	"Q_walls_pct",
	"Q_windows_pct",
	"Q_infiltration_pct",
	"total_cost",
}

// WriteCSV writes results as CSV rows with a header line.
func WriteCSV(w io.Writer, results []thermal.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, res := range results {
		row := []string{
			num(res.SqftRoof),
			num(res.SqftWalls),
			string(res.RoofMaterial),
			string(res.WallMaterial),
			num(res.AmbientTempF),
			num(res.InsideTempF),
			num(res.DurationHours),
			string(res.InsulationBand),
			num(res.AirChangesPerHour),
			num(res.WindowAreaSqft),
			string(res.WindowType),
			num(res.ElectricityCostPerKWh),
			num(res.QRoofKWh),
			num(res.QWallsKWh),
			num(res.QWindowsKWh),
			num(res.QInfiltrationKWh),
			num(res.QTotalKWh),
			num(res.QRoofPct),
			num(res.QWallsPct),
			num(res.QWindowsPct),
			num(res.QInfiltrationPct),
			num(res.TotalCost),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
