// cmd/deadend-term/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"go-maze-defense/internal/app"
	"go-maze-defense/internal/audio"
	"go-maze-defense/internal/config"
	"go-maze-defense/internal/debugserver"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/log"
	"go-maze-defense/internal/snapshot"
	"go-maze-defense/internal/term"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 50 * time.Millisecond
	logFile       = "deadend-term.log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "deadend-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.LoadSettings(".env")
	if err != nil {
		return err
	}

	// stderr занят экраном, пишем в файл
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	logger := log.New(f, log.LevelFromString(settings.LogLevel))

	library := defs.DefaultLibrary()
	if settings.DefsDir != "" {
		if library, err = defs.LoadLibrary(settings.DefsDir); err != nil {
			return err
		}
	}

	opts := app.DefaultOptions()
	opts.Library = library
	opts.Seed = settings.Seed
	opts.Decorations = settings.Decorations
	opts.Logger = logger
	game, err := app.NewGame(opts)
	if err != nil {
		return err
	}

	var sound *audio.SoundManager
	if settings.Audio {
		sound = audio.NewSoundManager(logger)
		if err := sound.Initialize(); err != nil {
			logger.Warnf("audio disabled: %v", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	events := snapshot.NewEventLog(config.EventLogSize)
	store := snapshot.NewStore()
	if settings.DebugAddr != "" {
		srv := debugserver.New(settings.DebugAddr, store, events, logger)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("debug server: %v", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	view := term.NewView(game)
	view.Paused = settings.StartPaused

	eventChan := make(chan tcell.Event, 100)
	go term.PollEvents(screen, eventChan)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action := view.HandleKey(ev)
				if action == term.ActionQuit {
					return nil
				}
				if action == term.ActionTogglePause && sound != nil {
					sound.SetMuted(view.Paused)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if !view.Paused {
				tick := game.Update(dt)
				view.Observe(tick)
				if sound != nil {
					sound.HandleEvents(tick)
				}
				events.Record(game.Clock(), tick)
			}
			store.Publish(snapshot.Capture(game, events))
			view.Draw(screen)
		}
	}
}
