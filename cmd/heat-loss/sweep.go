package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wayne-turner/heat-loss/internal/report"
	"github.com/wayne-turner/heat-loss/internal/thermal"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare all roof material, window type and insulation combinations",
	Long: `Sweep computes every combination of roof material, window type and
insulation band (48 scenarios) against a fixed baseline, ordered from the
least to the most heat loss, with averages per insulation band and window
type for comparison.`,
	Example: `  heat-loss sweep --ambient-temp 30 --duration-hours 720
  heat-loss sweep --output csv --out scenarios.csv`,
	RunE: runSweep,
}

func init() {
	def := thermal.DefaultBaseline()

	sweepCmd.Flags().Float64("sqft-roof", def.SqftRoof, "roof area in sqft")
	sweepCmd.Flags().Float64("sqft-walls", def.SqftWalls, "wall area in sqft")
	sweepCmd.Flags().String("wall-material", string(def.WallMaterial), "wall material (brick, concrete, wood)")
	sweepCmd.Flags().Float64("ambient-temp", def.AmbientTempF, "ambient temperature in F")
	sweepCmd.Flags().Float64("inside-temp", def.InsideTempF, "inside temperature in F")
	sweepCmd.Flags().Float64("duration-hours", def.DurationHours, "duration in hours")
	sweepCmd.Flags().Float64("ach", def.AirChangesPerHour, "air changes per hour")
	sweepCmd.Flags().Float64("window-area", def.WindowAreaSqft, "window area in sqft")
	sweepCmd.Flags().Float64("electricity-cost", def.ElectricityCostPerKWh, "electricity cost per kWh")

	sweepCmd.Flags().String("output", "table", "output format: table, json, csv")
	sweepCmd.Flags().String("out", "", "write output to file instead of stdout")

	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, _ []string) error {
	runID := uuid.New().String()
	start := time.Now()

	base := buildBaseline(cmd)

	results, err := thermal.Sweep(base)
	if err != nil {
		return err
	}

	logger.Info().
		Str("run_id", runID).
		Int("scenarios", len(results)).
		Float64("best_kwh", results[0].QTotalKWh).
		Float64("worst_kwh", results[len(results)-1].QTotalKWh).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("sweep computed")

	return writeOutput(cmd, func(dst *outputTarget) error {
		switch dst.format {
		case formatJSON:
			return report.WriteJSONList(dst.w, results)
		case formatCSV:
			return report.WriteCSV(dst.w, results)
		default:
			renderSweep(dst.w, results)
			return nil
		}
	})
}

func buildBaseline(cmd *cobra.Command) thermal.Baseline {
	base := thermal.DefaultBaseline()

	base.SqftRoof, _ = cmd.Flags().GetFloat64("sqft-roof")
	base.SqftWalls, _ = cmd.Flags().GetFloat64("sqft-walls")
	base.AmbientTempF, _ = cmd.Flags().GetFloat64("ambient-temp")
	base.InsideTempF, _ = cmd.Flags().GetFloat64("inside-temp")
	base.DurationHours, _ = cmd.Flags().GetFloat64("duration-hours")
	base.AirChangesPerHour, _ = cmd.Flags().GetFloat64("ach")
	base.WindowAreaSqft, _ = cmd.Flags().GetFloat64("window-area")
	base.ElectricityCostPerKWh, _ = cmd.Flags().GetFloat64("electricity-cost")

	wall, _ := cmd.Flags().GetString("wall-material")
	base.WallMaterial = thermal.WallMaterial(wall)

	return base
}
