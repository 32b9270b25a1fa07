// Package cmd provides the CLI commands for ecotrack.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ecotrack/core/engine"
	"ecotrack/core/factors"
	"ecotrack/core/offset"
	"ecotrack/core/predict"
	"ecotrack/core/suggest"
	"ecotrack/internal/config"
	"ecotrack/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ecotrack",
	Short: "Estimate personal carbon footprints",
	Long: `ecotrack estimates an individual's carbon footprint from
self-reported activity quantities.

It combines a rule-based baseline over a versioned emission factor
catalog with a refinement overlay that blends a trained energy
predictor with heuristic corrections.

Examples:
  ecotrack calc input.json
  ecotrack calc --refine --suggest input.json
  ecotrack offset 1500
  ecotrack factors`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ecotrack.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(offsetCmd)
	rootCmd.AddCommand(factorsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// buildEngine wires the engine from the active configuration
func buildEngine() (*engine.Engine, error) {
	cfg := config.Get()

	table, err := factors.LoadOrDefault(cfg.Engine.FactorsPath)
	if err != nil {
		return nil, err
	}
	rules, err := suggest.LoadOrDefault(cfg.Engine.SuggestionsPath)
	if err != nil {
		return nil, err
	}

	var predictor predict.Predictor = predict.Unavailable{}
	if cfg.Engine.Predictor.Enabled {
		predictor = predict.NewLinearModel(predict.ModelParams{
			Intercept:     cfg.Engine.Predictor.Intercept,
			HouseSizeCoef: cfg.Engine.Predictor.HouseSizeCoef,
			OccupantCoef:  cfg.Engine.Predictor.OccupantCoef,
			ACHourCoef:    cfg.Engine.Predictor.ACHourCoef,
			FloorKwh:      cfg.Engine.Predictor.FloorKwh,
		})
	}

	return engine.New(factors.NewStore(table), predictor, rules, offset.DefaultCatalog()), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ecotrack version 1.0.0")
	},
}
