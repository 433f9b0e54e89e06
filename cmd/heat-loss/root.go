package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool

	logger zerolog.Logger
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "heat-loss",
	Short: "Steady-state building heat loss and energy cost estimator",
	Long: `heat-loss estimates steady-state building heat loss (roof, walls,
windows, air infiltration) over a time duration from geometry, material
properties and indoor/outdoor temperatures, and converts the result to an
electricity cost. Intended as an engineering estimation tool for comparing
insulation and window choices, not a certified thermal model.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.heat-loss.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// initConfig loads configuration from the config file and environment.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".heat-loss")
	}

	viper.SetEnvPrefix("HEAT_LOSS")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func setupLogging() {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
