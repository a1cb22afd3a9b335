// Command pong is a two-player Pong for the desktop or a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/plus3/pong/config"
	"github.com/plus3/pong/display"
	"github.com/plus3/pong/pong"
	"github.com/plus3/pong/sound"
	"github.com/plus3/pong/telemetry"
	"github.com/plus3/pong/terminal"
)

const terminalLog = "pong.log"

func main() {
	if err := config.LoadEnvFiles(); err != nil {
		// Not fatal, the environment may be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(cfg config.Config) error {
	var font *display.Font
	if cfg.Frontend == config.FrontendWindow {
		var err error
		font, err = display.LoadFont(cfg.FontPath, cfg.FontSize)
		if err != nil {
			return err
		}
	} else {
		logFile, err := os.OpenFile(terminalLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		defer log.SetOutput(os.Stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	world := pong.New()

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without tracing")
		} else {
			tracer = telemetry.Tracer("match")
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}
	matches := telemetry.NewMatchTracer(ctx, tracer)
	defer matches.Close()
	world.Subscribe(matches)

	if cfg.Sound {
		sounds := sound.NewManager()
		if err := sounds.Initialize(); err != nil {
			log.Printf("Warning: sound initialization failed: %v", err)
		} else {
			defer sounds.Cleanup()
			world.Subscribe(sounds)
		}
	}

	log.Printf("Starting pong (%s frontend)", cfg.Frontend)

	if cfg.Frontend == config.FrontendTerminal {
		screen, err := terminal.Open()
		if err != nil {
			return err
		}
		defer screen.Fini()
		return terminal.New(screen, world, terminal.Options{CPU: cfg.CPU}).Run(ctx)
	}

	return display.Run(display.NewWindow(world, font, display.Options{
		CPU:   cfg.CPU,
		Debug: cfg.Debug,
		Done:  ctx.Done(),
	}))
}
