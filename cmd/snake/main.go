package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/parameter"
	"github.com/lixenwraith/snake/render"
	"github.com/lixenwraith/snake/status"
	"github.com/lixenwraith/snake/systems"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.debug); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "snake: stdout is not a terminal")
		os.Exit(1)
	}

	screen, err := initScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetResetHook(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()

	if err := run(cfg, screen); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "new screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "screen init")
	}
	screen.HideCursor()
	return screen, nil
}

func run(cfg config, screen tcell.Screen) error {
	clock := engine.NewMonotonicTimeProvider()
	reg := status.NewRegistry()
	ctx := engine.NewGameContext(core.NewArena(cfg.width, cfg.height), reg)

	seed := cfg.resolveSeed(clock.Now())
	log.Printf("[main] start arena=%dx%d move=%v food=%v seed=%d", cfg.width, cfg.height, cfg.move, cfg.food, seed)

	controller := systems.NewEpisodeController(cfg.restart, systems.NewStartingSnake, reg)
	controller.Start(ctx)

	cs, err := engine.NewClockScheduler(ctx, clock, controller, cfg.intervals())
	if err != nil {
		return err
	}
	systems.Install(cs, ctx, systems.NewFoodSpawner(seed), controller)

	// Audio is optional, the game runs silent on failure
	if !cfg.mute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("[audio] disabled: %v", err)
		} else {
			defer sm.Cleanup()
			cs.RegisterEventHandler(sm)
		}
	}

	monochrome := !cfg.color || screen.Colors() < 8
	renderer := render.NewRenderer(screen, monochrome)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	schedTicker := time.NewTicker(parameter.SchedulerTickInterval)
	defer schedTicker.Stop()
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				kev := input.FromTcell(ev)
				if kev.IsQuit() {
					log.Printf("[main] quit eaten=%d episodes=%d", reg.Ints.Get(status.KeyEaten).Load(), reg.Ints.Get(status.KeyEpisodes).Load())
					return nil
				}
				ctx.Input.Apply(kev)
			case *tcell.EventResize:
				screen.Sync()
				renderer.Draw(ctx.Snapshot())
			}

		case <-schedTicker.C:
			cs.Update()

		case <-frameTicker.C:
			renderer.Draw(ctx.Snapshot())
		}
	}
}
