// Package main - Entry point for the EcoTrack estimation server
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"ecotrack/api"
	"ecotrack/core/engine"
	"ecotrack/core/factors"
	"ecotrack/core/offset"
	"ecotrack/core/predict"
	"ecotrack/core/suggest"
	"ecotrack/internal/config"
	"ecotrack/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "server address (overrides config)")
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	eng, err := buildEngine(cfg)
	if err != nil {
		logging.Error("failed to build engine", zap.Error(err))
		os.Exit(1)
	}

	server := api.NewServer(eng, version)
	logging.Info("ecotrack server starting",
		zap.String("addr", cfg.Server.Addr),
		zap.String("version", version))

	if err := server.ListenAndServe(cfg.Server.Addr); err != nil {
		logging.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}

func buildEngine(cfg *config.Config) (*engine.Engine, error) {
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

	logging.Info("factor catalog loaded",
		zap.String("version", table.Version()),
		zap.String("source", table.Source().String()),
		zap.Int("entries", table.Len()))

	return engine.New(factors.NewStore(table), predictor, rules, offset.DefaultCatalog()), nil
}
