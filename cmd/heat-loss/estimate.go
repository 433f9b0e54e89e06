package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wayne-turner/heat-loss/internal/profile"
	"github.com/wayne-turner/heat-loss/internal/report"
	"github.com/wayne-turner/heat-loss/internal/thermal"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate heat loss and cost for one building configuration",
	Example: `  heat-loss estimate --sqft-roof 1800 --sqft-walls 1500 --ambient-temp 50 --inside-temp 70
  heat-loss estimate --profile 1950s_leaky_home --duration-hours 720
  heat-loss estimate --interactive --output json`,
	RunE: runEstimate,
}

func init() {
	def := thermal.DefaultInput()

	estimateCmd.Flags().Float64("sqft-roof", def.SqftRoof, "roof area in sqft")
	estimateCmd.Flags().Float64("sqft-walls", def.SqftWalls, "wall area in sqft")
	estimateCmd.Flags().String("roof-material", string(def.RoofMaterial), "roof material (asphalt, wood, metal, tile)")
	estimateCmd.Flags().String("wall-material", string(def.WallMaterial), "wall material (brick, concrete, wood)")
	estimateCmd.Flags().Float64("ambient-temp", def.AmbientTempF, "ambient temperature in F")
	estimateCmd.Flags().Float64("inside-temp", def.InsideTempF, "inside temperature in F")
	estimateCmd.Flags().Float64("duration-hours", def.DurationHours, "duration in hours")
	estimateCmd.Flags().String("insulation", string(def.InsulationBand), "insulation band (R13-R15, R16-R21, R22-R33, R34-R60)")
	estimateCmd.Flags().Float64("ach", def.AirChangesPerHour, "air changes per hour")
	estimateCmd.Flags().Float64("window-area", def.WindowAreaSqft, "window area in sqft")
	estimateCmd.Flags().String("window-type", string(def.WindowType), "window type (single, double, triple)")
	estimateCmd.Flags().Float64("electricity-cost", def.ElectricityCostPerKWh, "electricity cost per kWh")

	estimateCmd.Flags().String("profile", "", "preset profile name (see 'heat-loss profiles')")
	estimateCmd.Flags().String("profiles-file", "", "YAML file with user-defined profiles")
	estimateCmd.Flags().BoolP("interactive", "i", false, "prompt for geometry and temperatures")
	estimateCmd.Flags().String("output", "table", "output format: table, json, csv")
	estimateCmd.Flags().String("out", "", "write output to file instead of stdout")

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	runID := uuid.New().String()
	start := time.Now()

	in, err := buildInput(cmd)
	if err != nil {
		return err
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive {
		if err := promptInput(cmd, &in); err != nil {
			return err
		}
	}

	res, err := thermal.Compute(in)
	if err != nil {
		var verr *thermal.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, "error in inputs:")
			for _, msg := range verr.Problems {
				fmt.Fprintf(os.Stderr, "  - %s\n", msg)
			}
		}
		return err
	}

	logger.Info().
		Str("run_id", runID).
		Float64("total_kwh", res.QTotalKWh).
		Float64("total_cost", res.TotalCost).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("estimate computed")

	return writeOutput(cmd, func(dst *outputTarget) error {
		switch dst.format {
		case formatJSON:
			return report.WriteJSON(dst.w, res)
		case formatCSV:
			return report.WriteCSV(dst.w, []thermal.Result{res})
		default:
			renderResult(dst.w, res)
			return nil
		}
	})
}

// buildInput assembles the calculation input from defaults, an optional
// profile, and explicit flags. Flags set on the command line win over the
// profile, which wins over defaults.
func buildInput(cmd *cobra.Command) (thermal.Input, error) {
	in := thermal.DefaultInput()

	profileName, _ := cmd.Flags().GetString("profile")
	if profileName != "" {
		p, err := resolveProfile(cmd, profileName)
		if err != nil {
			return thermal.Input{}, err
		}
		in = p.Apply(in)
	}

	flagFloat := func(name string, dst *float64) {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetFloat64(name)
		}
	}

	flagFloat("sqft-roof", &in.SqftRoof)
	flagFloat("sqft-walls", &in.SqftWalls)
	flagFloat("ambient-temp", &in.AmbientTempF)
	flagFloat("inside-temp", &in.InsideTempF)
	flagFloat("duration-hours", &in.DurationHours)
	flagFloat("ach", &in.AirChangesPerHour)
	flagFloat("window-area", &in.WindowAreaSqft)
	flagFloat("electricity-cost", &in.ElectricityCostPerKWh)

	// Enum flags pass through as-is; Compute reports invalid values with
	// the rest of the validation problems rather than failing one at a
	// time here.
	if cmd.Flags().Changed("roof-material") {
		s, _ := cmd.Flags().GetString("roof-material")
		in.RoofMaterial = thermal.RoofMaterial(s)
	}
	if cmd.Flags().Changed("wall-material") {
		s, _ := cmd.Flags().GetString("wall-material")
		in.WallMaterial = thermal.WallMaterial(s)
	}
	if cmd.Flags().Changed("insulation") {
		s, _ := cmd.Flags().GetString("insulation")
		in.InsulationBand = thermal.InsulationBand(s)
	}
	if cmd.Flags().Changed("window-type") {
		s, _ := cmd.Flags().GetString("window-type")
		in.WindowType = thermal.WindowType(s)
	}

	return in, nil
}

// resolveProfile looks the name up in the user-supplied profiles file first,
// then in the built-ins.
func resolveProfile(cmd *cobra.Command, name string) (profile.Profile, error) {
	path, _ := cmd.Flags().GetString("profiles-file")
	if path != "" {
		custom, err := profile.Load(path)
		if err != nil {
			return profile.Profile{}, err
		}
		if p, ok := custom[name]; ok {
			return p, nil
		}
	}
	return profile.Lookup(name)
}

// promptInput asks for the geometry and temperature fields, prefilled with
// the current values. Flags already set explicitly are not re-asked.
func promptInput(cmd *cobra.Command, in *thermal.Input) error {
	ask := func(flag, title string, dst *float64) error {
		if cmd.Flags().Changed(flag) {
			return nil
		}
		text := strconv.FormatFloat(*dst, 'g', -1, 64)
		err := huh.NewInput().
			Title(title).
			Value(&text).
			Validate(func(s string) error {
				_, err := strconv.ParseFloat(s, 64)
				return err
			}).
			Run()
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}

	if err := ask("sqft-roof", "Roof area (sqft)", &in.SqftRoof); err != nil {
		return err
	}
	if err := ask("sqft-walls", "Wall area (sqft)", &in.SqftWalls); err != nil {
		return err
	}
	if err := ask("ambient-temp", "Ambient temperature (F)", &in.AmbientTempF); err != nil {
		return err
	}
	return ask("inside-temp", "Inside temperature (F)", &in.InsideTempF)
}
