package thermal

import (
	"math"
	"strings"
)

// Unit conversion and model constants.
const (
	// SqftToSqm converts square feet to square meters.
	SqftToSqm = 0.092903

	// RImperialToSI converts an imperial R-value to m²·K/W.
	RImperialToSI = 0.176110

	// FSpanToC converts a Fahrenheit temperature span to Celsius.
	FSpanToC = 1.8

	// CeilingHeightM is the fixed interior ceiling height assumption used
	// to derive the infiltration volume.
	CeilingHeightM = 2.5

	// InfiltrationFactor is the air heat capacity factor in Wh/(m³·K).
	InfiltrationFactor = 0.33

	// JoulesToKWh converts joules to kilowatt-hours.
	JoulesToKWh = 3_600_000

	// SecondsPerHour converts hours to seconds.
	SecondsPerHour = 3600
)

// Input holds every parameter of a heat loss calculation.
// Areas are in square feet, temperatures in Fahrenheit, duration in hours.
type Input struct {
	SqftRoof              float64        `json:"sqft_roof" yaml:"sqft_roof"`
	SqftWalls             float64        `json:"sqft_walls" yaml:"sqft_walls"`
	RoofMaterial          RoofMaterial   `json:"roof_material_type" yaml:"roof_material_type"`
	WallMaterial          WallMaterial   `json:"wall_material_type" yaml:"wall_material_type"`
	AmbientTempF          float64        `json:"ambient_temp_F" yaml:"ambient_temp_F"`
	InsideTempF           float64        `json:"T_inside_F" yaml:"T_inside_F"`
	DurationHours         float64        `json:"duration_hours" yaml:"duration_hours"`
	InsulationBand        InsulationBand `json:"insulation_r_value" yaml:"insulation_r_value"`
	AirChangesPerHour     float64        `json:"air_changes_per_hour" yaml:"air_changes_per_hour"`
	WindowAreaSqft        float64        `json:"window_area_sqft" yaml:"window_area_sqft"`
	WindowType            WindowType     `json:"window_type" yaml:"window_type"`
	ElectricityCostPerKWh float64        `json:"electricity_cost_per_kWh" yaml:"electricity_cost_per_kWh"`
}

// DefaultInput returns the baseline single-family scenario used when a
// parameter is not supplied by the caller.
func DefaultInput() Input {
	return Input{
		SqftRoof:              1800,
		SqftWalls:             1500,
		RoofMaterial:          RoofAsphalt,
		WallMaterial:          WallWood,
		AmbientTempF:          50,
		InsideTempF:           70,
		DurationHours:         24,
		InsulationBand:        InsulationR13R15,
		AirChangesPerHour:     0.5,
		WindowAreaSqft:        500,
		WindowType:            WindowDouble,
		ElectricityCostPerKWh: 0.12,
	}
}

// Result echoes the input and carries the per-component energy breakdown.
// Component energies are in kWh; percentages are shares of the total.
type Result struct {
	Input

	QRoofKWh         float64 `json:"Q_roof_kWh"`
	QWallsKWh        float64 `json:"Q_walls_kWh"`
	QWindowsKWh      float64 `json:"Q_windows_kWh"`
	QInfiltrationKWh float64 `json:"Q_infiltration_kWh"`
	QTotalKWh        float64 `json:"Q_total_kWh"`

	QRoofPct         float64 `json:"Q_roof_pct"`
	QWallsPct        float64 `json:"Q_walls_pct"`
	QWindowsPct      float64 `json:"Q_windows_pct"`
	QInfiltrationPct float64 `json:"Q_infiltration_pct"`

	TotalCost float64 `json:"total_cost"`
}

// ValidationError reports every violated input constraint at once so the
// caller can display all problems together rather than one at a time.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Problems, "; ")
}

// positiveFinite reports whether v is a finite number greater than zero.
func positiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks every constraint on the input and returns a
// *ValidationError listing all violations, or nil when the input is valid.
// All checks are evaluated; nothing short-circuits.
//
// Temperatures may be any finite value, including zero and below: heat flow
// is driven by the differential, and a sub-freezing ambient reading is a
// perfectly ordinary winter input.
func (in Input) Validate() error {
	var problems []string

	if !positiveFinite(in.SqftRoof) {
		problems = append(problems, "invalid value for sqft_roof. must be a positive number.")
	}
	if !positiveFinite(in.SqftWalls) {
		problems = append(problems, "invalid value for sqft_walls. must be a positive number.")
	}
	if !in.RoofMaterial.Valid() {
		problems = append(problems, "invalid roof material type. asphalt, wood, metal, or tile.")
	}
	if !in.WallMaterial.Valid() {
		problems = append(problems, "invalid wall material type. brick, concrete, wood.")
	}
	if !in.InsulationBand.Valid() {
		problems = append(problems, "invalid insulation R-value. 'R13-R15','R16-R21','R22-R33','R34-R60'")
	}
	if !in.WindowType.Valid() {
		problems = append(problems, "invalid window type. single, double, or triple.")
	}
	if !finite(in.AmbientTempF) || !finite(in.InsideTempF) ||
		!positiveFinite(in.DurationHours) || !positiveFinite(in.AirChangesPerHour) ||
		!positiveFinite(in.WindowAreaSqft) || !positiveFinite(in.ElectricityCostPerKWh) {
		problems = append(problems, "invalid value for one or more parameters. must be numeric values or specified categories.")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// conductionKWh computes the conductive loss through one envelope surface
// over the duration, modeling the material layer and the insulation layer as
// thermal resistances in series.
func conductionKWh(areaSqft, deltaTC float64, mat MaterialProperty, insulationRSI, hours float64) float64 {
	areaM2 := areaSqft * SqftToSqm
	watts := (areaM2 * deltaTC) / (mat.Thickness/mat.Conductivity + insulationRSI)
	return watts * hours * SecondsPerHour / JoulesToKWh
}

// Compute validates the input and, when valid, produces the full heat loss
// breakdown and cost. On invalid input it returns a *ValidationError listing
// every violation; no physics runs in that case.
//
// Compute is pure: identical inputs yield identical results, nothing shared
// is mutated, and it is safe to call concurrently.
func Compute(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	deltaTC := (in.InsideTempF - in.AmbientTempF) / FSpanToC
	insulationRSI := InsulationRValues[in.InsulationBand] * RImperialToSI

	qRoof := conductionKWh(in.SqftRoof, deltaTC, RoofMaterials[in.RoofMaterial], insulationRSI, in.DurationHours)
	qWalls := conductionKWh(in.SqftWalls, deltaTC, WallMaterials[in.WallMaterial], insulationRSI, in.DurationHours)

	windowWatts := in.WindowAreaSqft * SqftToSqm * WindowUValues[in.WindowType] * deltaTC
	qWindows := windowWatts * in.DurationHours * SecondsPerHour / JoulesToKWh

	volumeM3 := (in.SqftRoof + in.SqftWalls) * SqftToSqm * CeilingHeightM
	qInfiltration := volumeM3 * in.AirChangesPerHour * deltaTC * InfiltrationFactor * in.DurationHours / 1000

	qTotal := qRoof + qWalls + qWindows + qInfiltration

	res := Result{
		Input:            in,
		QRoofKWh:         qRoof,
		QWallsKWh:        qWalls,
		QWindowsKWh:      qWindows,
		QInfiltrationKWh: qInfiltration,
		QTotalKWh:        qTotal,
		TotalCost:        qTotal * in.ElectricityCostPerKWh,
	}

	// A total at or below zero would make the shares meaningless; define
	// them as zero instead of dividing.
	if qTotal > 0 {
		res.QRoofPct = qRoof / qTotal * 100
		res.QWallsPct = qWalls / qTotal * 100
		res.QWindowsPct = qWindows / qTotal * 100
		res.QInfiltrationPct = qInfiltration / qTotal * 100
	}

	return res, nil
}
