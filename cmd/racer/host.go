package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-racer/internal/audio"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/games/racer"
)

// setupHost configures the racer package from global flags and returns the
// logger in use plus a cleanup func. Sound is only started for local play.
func setupHost(withSound bool) (*log.Logger, func()) {
	racer.SetConfigPath(flagConfig)

	closers := []func(){}
	logger := log.New(io.Discard)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Warn("could not open log file", "path", flagLogFile, "error", err)
		} else {
			logger = log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				Prefix:          "racer",
				Level:           log.DebugLevel,
			})
			closers = append(closers, func() { f.Close() })
		}
	}
	racer.SetLogger(logger)

	if withSound && !flagMute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			racer.SetSoundSink(sm)
			closers = append(closers, sm.Cleanup)
		}
	}

	return logger, func() {
		racer.SetSoundSink(nil)
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
