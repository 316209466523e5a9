// Package app runs the interactive loop: terminal events in, engine ticks and
// frames out, all on one goroutine
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/base-ten/constants"
	"github.com/lixenwraith/base-ten/core"
	"github.com/lixenwraith/base-ten/engine"
	"github.com/lixenwraith/base-ten/input"
	"github.com/lixenwraith/base-ten/model"
	"github.com/lixenwraith/base-ten/render"
)

// Muter is the sound control the loop needs
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// App wires terminal, engine, renderer and sound together
type App struct {
	screen   tcell.Screen
	engine   *engine.Engine
	renderer *render.TerminalRenderer
	machine  *input.Machine
	sound    Muter
	log      *slog.Logger

	frameInterval time.Duration
	field         []rune
	events        chan tcell.Event
}

// Options carries the collaborators of an App
type Options struct {
	Screen        tcell.Screen
	Engine        *engine.Engine
	Renderer      *render.TerminalRenderer
	Machine       *input.Machine
	Sound         Muter
	Logger        *slog.Logger
	FrameInterval time.Duration
}

// New creates an app; nil machine, sound and logger get defaults
func New(opts Options) *App {
	a := &App{
		screen:        opts.Screen,
		engine:        opts.Engine,
		renderer:      opts.Renderer,
		machine:       opts.Machine,
		sound:         opts.Sound,
		log:           opts.Logger,
		frameInterval: opts.FrameInterval,
		field:         make([]rune, 0, constants.InputMaxDigits),
		events:        make(chan tcell.Event, constants.EventBufferSize),
	}
	if a.machine == nil {
		a.machine = input.NewMachine()
	}
	if a.sound == nil {
		a.sound = silent{}
	}
	if a.log == nil {
		a.log = slog.New(slog.DiscardHandler)
	}
	if a.frameInterval <= 0 {
		a.frameInterval = constants.FrameUpdateInterval
	}
	a.log = a.log.With("component", "app")
	return a
}

// Run pumps events and frames until quit or ctx is done
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	core.Go(func() { a.poll(done) })

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-a.events:
			in := a.machine.Process(ev)
			if in == nil {
				continue
			}
			if !a.HandleIntent(*in) {
				a.log.Info("quit requested")
				return nil
			}
			a.Draw()

		case <-ticker.C:
			a.engine.Tick()
			a.Draw()
		}
	}
}

// poll forwards terminal events until the screen finalizes or done closes
func (a *App) poll(done <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-done:
			return
		}
	}
}

// Draw renders the current scene and HUD
func (a *App) Draw() {
	a.renderer.RenderFrame(a.engine.Scene(), render.HUD{
		Mode:   a.engine.Mode(),
		Locked: a.engine.Locked(),
		Input:  a.Field(),
		Muted:  a.sound.Muted(),
	})
}

// Field returns the number field text
func (a *App) Field() string {
	return string(a.field)
}

// HandleIntent applies one intent; false means quit
func (a *App) HandleIntent(in input.Intent) bool {
	a.log.Debug("intent", "type", in.Type.String())

	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		a.screen.Sync()
		a.renderer.UpdateDimensions(a.screen.Size())

	case input.IntentToggleMute:
		a.log.Info("mute toggled", "muted", a.sound.ToggleMute())

	case input.IntentModeCompose:
		a.engine.SetMode(engine.ModeCompose)
	case input.IntentModeDecompose:
		a.engine.SetMode(engine.ModeDecompose)
	case input.IntentModeToggle:
		a.engine.ToggleMode()

	case input.IntentDigit:
		// Number controls are disabled while a transition runs
		if !a.engine.Locked() && len(a.field) < constants.InputMaxDigits {
			a.field = append(a.field, in.Char)
		}
	case input.IntentBackspace:
		if !a.engine.Locked() && len(a.field) > 0 {
			a.field = a.field[:len(a.field)-1]
		}
	case input.IntentBuild:
		if a.engine.BuildInput(string(a.field)) {
			a.field = a.field[:0]
		}

	case input.IntentQuickOnes:
		a.engine.ComposeOnes(firstFull(a.engine.OnesFrames()))
	case input.IntentQuickTens:
		if a.engine.Mode() == engine.ModeCompose {
			a.engine.ComposeTens(firstFull(a.engine.TensFrames()))
		} else {
			a.engine.DecomposeTen(lastStick(a.engine.TensFrames()))
		}
	case input.IntentQuickHundred:
		a.engine.DecomposeHundred(lastHundred(a.engine.Hundreds()))

	case input.IntentScroll:
		if in.Page {
			a.renderer.ScrollPage(int(in.Scroll))
		} else {
			a.renderer.Scroll(int(in.Scroll))
		}

	case input.IntentClick:
		if targets := a.renderer.HitTest(in.X, in.Y); len(targets) > 0 {
			a.engine.Click(targets...)
		}
	}
	return true
}

// firstFull returns the first full frame, or 0 so the engine reports the miss
func firstFull[T any](frames [][]T) int {
	for i, f := range frames {
		if len(f) == model.Capacity {
			return i
		}
	}
	return 0
}

func lastStick(frames [][]model.TenStick) model.StickID {
	last := frames[len(frames)-1]
	if len(last) == 0 {
		return 0
	}
	return last[len(last)-1].ID
}

func lastHundred(blocks []model.HundredBlock) model.HundredID {
	if len(blocks) == 0 {
		return 0
	}
	return blocks[len(blocks)-1].ID
}

type silent struct{}

func (silent) ToggleMute() bool { return true }
func (silent) Muted() bool      { return true }
