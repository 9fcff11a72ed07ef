package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tstris/audio"
	"github.com/lixenwraith/tstris/constants"
	"github.com/lixenwraith/tstris/engine"
	"github.com/lixenwraith/tstris/input"
	"github.com/lixenwraith/tstris/render"
)

var (
	muteFlag = flag.Bool("mute", false, "Disable audio cues")
	seedFlag = flag.Int64("seed", 0, "Piece randomizer seed (0 = time-based)")
)

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before printing any panic
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nTSTRIS CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	sounds := audio.NewManager()
	if err := sounds.Initialize(); err == nil {
		sounds.SetMuted(*muteFlag)
		defer sounds.Cleanup()
	}
	// Audio failure is non-fatal; the game runs silent

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := engine.NewGame(rand.New(rand.NewSource(seed)))

	machine := input.NewMachine()
	renderer := render.NewRenderer(screen)

	// Input polling feeds the single-threaded loop through a channel
	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	// Previous-frame state for audio edge detection
	lastPhase := engine.PhaseReady
	lastCountdown := 0
	lastLines := 0
	lastLocked := 0

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			intent := machine.Process(ev)
			if intent == nil {
				continue
			}
			if !route(game, *intent, time.Now()) {
				return
			}

		case <-frameTicker.C:
			now := time.Now()
			game.Advance(now)

			snap := game.Snapshot(now)

			switch {
			case snap.Phase == engine.PhaseCountdown && snap.Countdown != lastCountdown:
				sounds.CountdownTick()
			case snap.Phase == engine.PhasePlaying && lastPhase == engine.PhaseCountdown:
				sounds.CountdownGo()
			case snap.Phase == engine.PhaseFinished && lastPhase != engine.PhaseFinished:
				sounds.Finish()
			case snap.LinesCleared > lastLines:
				sounds.LineClear()
			case snap.PiecesLocked > lastLocked:
				sounds.Lock()
			}
			lastPhase = snap.Phase
			lastCountdown = snap.Countdown
			lastLines = snap.LinesCleared
			lastLocked = snap.PiecesLocked

			renderer.Frame(snap)
		}
	}
}

// route applies a parsed intent to the game. Returns false to quit.
func route(game *engine.Game, intent input.Intent, now time.Time) bool {
	if dir, ok := intent.TimedDirection(); ok {
		game.PressDirection(dir, now)
		return true
	}

	switch intent.Type {
	case input.IntentRotateCW:
		game.RotateCW()
	case input.IntentRotateCCW:
		game.RotateCCW()
	case input.IntentRotate180:
		game.Rotate180()
	case input.IntentHardDrop:
		game.HardDrop(now)
	case input.IntentStart:
		// Space starts the sprint from Ready and hard-drops while playing
		switch game.Phase() {
		case engine.PhaseReady:
			game.StartCountdown(now)
		case engine.PhasePlaying:
			game.HardDrop(now)
		}
	case input.IntentHold:
		game.Hold(now)
	case input.IntentReset:
		game.Reset(now)
	case input.IntentQuit:
		return false
	}
	return true
}
