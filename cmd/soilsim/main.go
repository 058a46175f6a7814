//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ldor80/soil-moisture-simulation-working-new/internal/app"
	"github.com/ldor80/soil-moisture-simulation-working-new/internal/core"
	"github.com/ldor80/soil-moisture-simulation-working-new/internal/sims/soil"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	sim, err := buildSim(cfg)
	if err != nil {
		logger.Fatal("failed to build simulation", zap.Error(err))
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed, soil.ColorScheme(cfg.Scheme), logger)
	size := sim.Size()

	ebiten.SetWindowTitle("soilsim — " + sim.Name())
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	logger.Info("starting",
		zap.Int("rows", size.H), zap.Int("cols", size.W),
		zap.Int("tps", cfg.TPS), zap.Int64("seed", cfg.Seed))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func buildSim(cfg *app.Config) (core.Sim, error) {
	if cfg.ConfigPath != "" {
		c, err := soil.LoadConfig(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		return soil.NewWithConfig(c), nil
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	return factory(map[string]string{
		"rows":                     strconv.Itoa(cfg.Rows),
		"cols":                     strconv.Itoa(cfg.Cols),
		"seed":                     strconv.FormatInt(cfg.Seed, 10),
		"seed_mode":                cfg.SeedMode,
		"uniform_moisture_percent": strconv.FormatFloat(cfg.MoisturePct, 'f', -1, 64),
	}), nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
