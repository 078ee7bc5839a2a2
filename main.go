// missile-engine is a terminal firing range: pick a kit, walk up to the
// line and shoot your way through whatever stands in the field.
//
// Settings come from the environment; see internal/config.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"missile-engine/internal/config"
	"missile-engine/internal/game"
	"missile-engine/internal/logging"
	"missile-engine/internal/path"
	"missile-engine/internal/telemetry"
	"missile-engine/internal/throw"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	// The terminal belongs to tcell, so logs go to a file.
	logger, closeLog, err := logging.OpenFile(cfg.DataHome, "range.log", cfg.Level())
	if err != nil {
		config.Exitf("log file: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, telemetry.Settings{Enabled: cfg.OTelEnabled, Endpoint: cfg.OTelEndpoint})
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("tracer shutdown", "error", err)
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		config.Exitf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		config.Exitf("screen init: %v", err)
	}

	engine := throw.New(path.Grid{}, logger, telemetry.Tracer())
	game.New(screen, engine, logger, game.Options{
		Seed:        cfg.Seed,
		Class:       cfg.Class,
		Difficulty:  cfg.Difficulty,
		AutoConfirm: cfg.AutoConfirm,
		DataHome:    cfg.DataHome,
	}).Run(ctx)
}
