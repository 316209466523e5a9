package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/base-ten/app"
	"github.com/lixenwraith/base-ten/audio"
	"github.com/lixenwraith/base-ten/config"
	"github.com/lixenwraith/base-ten/core"
	"github.com/lixenwraith/base-ten/engine"
	"github.com/lixenwraith/base-ten/input"
	"github.com/lixenwraith/base-ten/layout"
	"github.com/lixenwraith/base-ten/render"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "base-ten: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(cfg)

	keys := input.DefaultKeyTable()
	if err := keys.Bind(cfg.Keys); err != nil {
		return fmt.Errorf("config keys: %w", err)
	}

	logger, logFile := setupLogging(cfg.LogDir, cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	core.RegisterLogger(logger)
	logger.Info("starting", "start", cfg.Start, "mode", cfg.Mode, "audio", cfg.Audio.Enabled)

	// Panic Recovery: Ensure terminal is reset even if the app crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.RegisterTerminal(screen)
	screen.EnableMouse()

	width, _ := screen.Size()
	lay := layout.New(width)
	eng := engine.New(lay, nil, cfg.Timing(), logger)
	eng.BuildNumber(cfg.Start)
	eng.SetMode(cfg.StartMode())

	// Audio is optional; run silent without a device
	sound := audio.NewSoundManager(cfg.Audio.Volume)
	sound.SetMuted(cfg.Audio.Muted)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		} else {
			defer sound.Cleanup()
		}
	}
	eng.Register(sound)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(app.Options{
		Screen:        screen,
		Engine:        eng,
		Renderer:      render.NewTerminalRenderer(screen, lay),
		Machine:       input.NewMachineWithTable(keys),
		Sound:         sound,
		Logger:        logger,
		FrameInterval: cfg.FrameInterval,
	})
	err = a.Run(ctx)
	logger.Info("stopped", "value", eng.Value())
	return err
}
