package main

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayne-turner/heat-loss/internal/thermal"
)

func TestEstimateCommand_JSONOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "result.json")

	rootCmd.SetArgs([]string{
		"estimate",
		"--profile", "1950s_leaky_home",
		"--ach", "0.9",
		"--ambient-temp", "50",
		"--inside-temp", "70",
		"--duration-hours", "24",
		"--output", "json",
		"--out", out,
	})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var res thermal.Result
	require.NoError(t, json.Unmarshal(data, &res))

	assert.Equal(t, thermal.RoofAsphalt, res.RoofMaterial)
	assert.Equal(t, thermal.WindowSingle, res.WindowType)
	assert.InDelta(t, 162.491429, res.QTotalKWh, 1e-4)
	assert.InDelta(t, 19.498971, res.TotalCost, 1e-4)
}

func TestSweepCommand_CSVOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "scenarios.csv")

	rootCmd.SetArgs([]string{
		"sweep",
		"--output", "csv",
		"--out", out,
	})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Q_total_kWh")
}

func TestResolveProfile_CustomFileWinsOverBuiltin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
1950s_leaky_home:
  roof_material_type: tile
  wall_material_type: concrete
  insulation_r_value: R16-R21
  air_changes_per_hour: 1.2
  window_type: double
`), 0o644))

	cmd := estimateCmd
	require.NoError(t, cmd.Flags().Set("profiles-file", path))
	t.Cleanup(func() {
		_ = cmd.Flags().Set("profiles-file", "")
	})

	p, err := resolveProfile(cmd, "1950s_leaky_home")
	require.NoError(t, err)
	assert.Equal(t, thermal.RoofTile, p.RoofMaterial)
	assert.Equal(t, 1.2, p.AirChangesPerHour)

	// Names absent from the file fall back to the built-ins.
	p, err = resolveProfile(cmd, "high_performance")
	require.NoError(t, err)
	assert.Equal(t, thermal.WindowTriple, p.WindowType)

	_, err = resolveProfile(cmd, "no_such_profile")
	assert.Error(t, err)
}

func TestWriteOutput_RejectsUnknownFormat(t *testing.T) {
	cmd := estimateCmd
	require.NoError(t, cmd.Flags().Set("output", "xml"))
	t.Cleanup(func() {
		_ = cmd.Flags().Set("output", "table")
	})

	err := writeOutput(cmd, func(*outputTarget) error { return nil })
	assert.ErrorContains(t, err, "unknown output format")
}
