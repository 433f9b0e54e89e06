package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wayne-turner/heat-loss/internal/report"
	"github.com/wayne-turner/heat-loss/internal/thermal"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSV   = "csv"
)

type outputTarget struct {
	format string
	w      io.Writer
}

// writeOutput resolves the --output/--out flags and hands the destination to
// the render function.
func writeOutput(cmd *cobra.Command, render func(*outputTarget) error) error {
	format, _ := cmd.Flags().GetString("output")
	switch format {
	case formatTable, formatJSON, formatCSV:
	default:
		return fmt.Errorf("unknown output format %q (table, json, csv)", format)
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return render(&outputTarget{format: format, w: os.Stdout})
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := render(&outputTarget{format: format, w: f}); err != nil {
		return err
	}
	return f.Close()
}

// renderResult prints one calculation as an inputs table followed by the
// component breakdown.
func renderResult(w io.Writer, res thermal.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "roof\t%.0f sqft %s\n", res.SqftRoof, res.RoofMaterial)
	fmt.Fprintf(tw, "walls\t%.0f sqft %s\n", res.SqftWalls, res.WallMaterial)
	fmt.Fprintf(tw, "windows\t%.0f sqft %s\n", res.WindowAreaSqft, res.WindowType)
	fmt.Fprintf(tw, "insulation\t%s\n", res.InsulationBand)
	fmt.Fprintf(tw, "air changes\t%.2f /h\n", res.AirChangesPerHour)
	fmt.Fprintf(tw, "temperatures\t%.1f F inside, %.1f F ambient\n", res.InsideTempF, res.AmbientTempF)
	fmt.Fprintf(tw, "duration\t%.0f h\n", res.DurationHours)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "component\tkWh\tshare\n")
	for _, c := range report.Breakdown(res) {
		fmt.Fprintf(tw, "%s\t%.2f\t%.1f%%\n", c.Name, c.KWh, c.Pct)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "total\t%.2f kWh\n", res.QTotalKWh)
	fmt.Fprintf(tw, "cost\t$%.2f (at $%.3f/kWh)\n", res.TotalCost, res.ElectricityCostPerKWh)

	tw.Flush()
}

// renderSweep prints the ordered scenario table and the two aggregate views.
func renderSweep(w io.Writer, results []thermal.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "rank\troof\twindows\tinsulation\ttotal kWh\tcost\n")
	for i, res := range results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f\t$%.2f\n",
			i+1, res.RoofMaterial, res.WindowType, res.InsulationBand,
			res.QTotalKWh, res.TotalCost)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "insulation band\tavg total kWh\n")
	for _, m := range report.MeanTotalByInsulation(results) {
		fmt.Fprintf(tw, "%s\t%.2f\n", m.Band, m.MeanTotalKWh)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "window type\tavg cost\n")
	for _, m := range report.MeanCostByWindowType(results) {
		fmt.Fprintf(tw, "%s\t$%.2f\n", m.WindowType, m.MeanCost)
	}

	tw.Flush()
}
