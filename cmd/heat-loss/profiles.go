package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wayne-turner/heat-loss/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the preset building profiles",
	Run: func(_ *cobra.Command, _ []string) {
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "name\troof\twalls\tinsulation\twindows\tACH\n")
		for _, name := range profile.Names() {
			p, err := profile.Lookup(name)
			if err != nil {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.1f\n",
				name, p.RoofMaterial, p.WallMaterial, p.InsulationBand,
				p.WindowType, p.AirChangesPerHour)
		}
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
