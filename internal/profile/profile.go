// Package profile defines named envelope presets that prefill the
// categorical and air-change fields of a calculation.
package profile

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/wayne-turner/heat-loss/internal/thermal"
)

// Profile prefills the construction-quality fields of an input. Geometry,
// temperatures, duration and pricing stay caller-supplied.
type Profile struct {
	RoofMaterial      thermal.RoofMaterial   `yaml:"roof_material_type"`
	WallMaterial      thermal.WallMaterial   `yaml:"wall_material_type"`
	InsulationBand    thermal.InsulationBand `yaml:"insulation_r_value"`
	AirChangesPerHour float64                `yaml:"air_changes_per_hour"`
	WindowType        thermal.WindowType     `yaml:"window_type"`
}

// builtins are the shipped presets, spanning leaky postwar construction to
// a tight modern envelope.
var builtins = map[string]Profile{
	"1950s_leaky_home": {
		RoofMaterial:      thermal.RoofAsphalt,
		WallMaterial:      thermal.WallBrick,
		InsulationBand:    thermal.InsulationR13R15,
		AirChangesPerHour: 0.9,
		WindowType:        thermal.WindowSingle,
	},
	"new_code_min": {
		RoofMaterial:      thermal.RoofWood,
		WallMaterial:      thermal.WallWood,
		InsulationBand:    thermal.InsulationR22R33,
		AirChangesPerHour: 0.5,
		WindowType:        thermal.WindowDouble,
	},
	"high_performance": {
		RoofMaterial:      thermal.RoofWood,
		WallMaterial:      thermal.WallWood,
		InsulationBand:    thermal.InsulationR34R60,
		AirChangesPerHour: 0.3,
		WindowType:        thermal.WindowTriple,
	},
}

// Names returns the built-in profile names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a built-in profile by name.
func Lookup(name string) (Profile, error) {
	p, ok := builtins[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (available: %v)", name, Names())
	}
	return p, nil
}

// Load reads user-defined profiles from a YAML file mapping profile names to
// profile fields. Each profile is validated against the reference tables.
func Load(path string) (map[string]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	var profiles map[string]Profile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}

	for name, p := range profiles {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
	}
	return profiles, nil
}

func (p Profile) validate() error {
	if !p.RoofMaterial.Valid() {
		return fmt.Errorf("invalid roof material: %q", p.RoofMaterial)
	}
	if !p.WallMaterial.Valid() {
		return fmt.Errorf("invalid wall material: %q", p.WallMaterial)
	}
	if !p.InsulationBand.Valid() {
		return fmt.Errorf("invalid insulation band: %q", p.InsulationBand)
	}
	if !p.WindowType.Valid() {
		return fmt.Errorf("invalid window type: %q", p.WindowType)
	}
	if p.AirChangesPerHour <= 0 {
		return fmt.Errorf("air_changes_per_hour must be positive, got %v", p.AirChangesPerHour)
	}
	return nil
}

// Apply overlays the profile onto an input and returns the result.
func (p Profile) Apply(in thermal.Input) thermal.Input {
	in.RoofMaterial = p.RoofMaterial
	in.WallMaterial = p.WallMaterial
	in.InsulationBand = p.InsulationBand
	in.AirChangesPerHour = p.AirChangesPerHour
	in.WindowType = p.WindowType
	return in
}
