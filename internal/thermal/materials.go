// Package thermal estimates steady-state building envelope heat loss
// (conduction through roof, walls and windows plus air infiltration) and
// converts the result to an electricity cost over a duration.
package thermal

import "fmt"

// RoofMaterial identifies a roof construction material.
type RoofMaterial string

const (
	RoofAsphalt RoofMaterial = "asphalt"
	RoofWood    RoofMaterial = "wood"
	RoofMetal   RoofMaterial = "metal"
	RoofTile    RoofMaterial = "tile"
)

// WallMaterial identifies a wall construction material.
type WallMaterial string

const (
	WallBrick    WallMaterial = "brick"
	WallConcrete WallMaterial = "concrete"
	WallWood     WallMaterial = "wood"
)

// WindowType identifies a window glazing assembly.
type WindowType string

const (
	WindowSingle WindowType = "single"
	WindowDouble WindowType = "double"
	WindowTriple WindowType = "triple"
)

// InsulationBand identifies a nominal insulation R-value range (imperial).
type InsulationBand string

const (
	InsulationR13R15 InsulationBand = "R13-R15"
	InsulationR16R21 InsulationBand = "R16-R21"
	InsulationR22R33 InsulationBand = "R22-R33"
	InsulationR34R60 InsulationBand = "R34-R60"
)

// MaterialProperty holds the thermal characteristics of an envelope layer.
type MaterialProperty struct {
	// Conductivity is the thermal conductivity in W/(m·K).
	Conductivity float64

	// Thickness is the layer thickness in meters.
	Thickness float64
}

// RoofMaterials maps roof material types to their thermal properties.
// Values are typical handbook figures for residential construction.
var RoofMaterials = map[RoofMaterial]MaterialProperty{
	RoofAsphalt: {Conductivity: 0.2, Thickness: 0.005},
	RoofWood:    {Conductivity: 0.08, Thickness: 0.01},
	RoofMetal:   {Conductivity: 50, Thickness: 0.0007},
	RoofTile:    {Conductivity: 1.1, Thickness: 0.015},
}

// WallMaterials maps wall material types to their thermal properties.
var WallMaterials = map[WallMaterial]MaterialProperty{
	WallBrick:    {Conductivity: 0.6, Thickness: 0.2},
	WallConcrete: {Conductivity: 1.0, Thickness: 0.15},
	WallWood:     {Conductivity: 0.12, Thickness: 0.1},
}

// InsulationRValues maps insulation bands to a nominal imperial R-value,
// later converted to SI via RImperialToSI.
var InsulationRValues = map[InsulationBand]float64{
	InsulationR13R15: 14,
	InsulationR16R21: 18,
	InsulationR22R33: 28,
	InsulationR34R60: 47,
}

// WindowUValues maps window types to thermal transmittance in W/(m²·K).
var WindowUValues = map[WindowType]float64{
	WindowSingle: 5.7,
	WindowDouble: 2.8,
	WindowTriple: 1.6,
}

// AllRoofMaterials lists the roof materials in canonical sweep order.
var AllRoofMaterials = []RoofMaterial{RoofAsphalt, RoofWood, RoofMetal, RoofTile}

// AllWallMaterials lists the wall materials in canonical order.
var AllWallMaterials = []WallMaterial{WallBrick, WallConcrete, WallWood}

// AllWindowTypes lists the window types in canonical sweep order.
var AllWindowTypes = []WindowType{WindowSingle, WindowDouble, WindowTriple}

// AllInsulationBands lists the insulation bands in ascending R-value order,
// which is also the canonical sweep order.
var AllInsulationBands = []InsulationBand{
	InsulationR13R15, InsulationR16R21, InsulationR22R33, InsulationR34R60,
}

func (m RoofMaterial) Valid() bool {
	_, ok := RoofMaterials[m]
	return ok
}

func (m WallMaterial) Valid() bool {
	_, ok := WallMaterials[m]
	return ok
}

func (w WindowType) Valid() bool {
	_, ok := WindowUValues[w]
	return ok
}

func (b InsulationBand) Valid() bool {
	_, ok := InsulationRValues[b]
	return ok
}

// ParseRoofMaterial is handy for CLI flags and profile files.
func ParseRoofMaterial(s string) (RoofMaterial, error) {
	m := RoofMaterial(s)
	if !m.Valid() {
		return "", fmt.Errorf("invalid roof material: %q", s)
	}
	return m, nil
}

func ParseWallMaterial(s string) (WallMaterial, error) {
	m := WallMaterial(s)
	if !m.Valid() {
		return "", fmt.Errorf("invalid wall material: %q", s)
	}
	return m, nil
}

func ParseWindowType(s string) (WindowType, error) {
	w := WindowType(s)
	if !w.Valid() {
		return "", fmt.Errorf("invalid window type: %q", s)
	}
	return w, nil
}

func ParseInsulationBand(s string) (InsulationBand, error) {
	b := InsulationBand(s)
	if !b.Valid() {
		return "", fmt.Errorf("invalid insulation band: %q", s)
	}
	return b, nil
}
