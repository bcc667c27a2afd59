// cmd/deadend/main.go
package main

import (
	"context"
	"errors"
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
	"go-maze-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const snapshotDir = "snapshots"

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.stateMachine.Current() == nil {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings(".env")
	logger := log.New(os.Stderr, log.LevelInfo)
	if err != nil {
		logger.Errorf("settings: %v", err)
		os.Exit(1)
	}
	logger.SetLevel(log.LevelFromString(settings.LogLevel))

	library := defs.DefaultLibrary()
	if settings.DefsDir != "" {
		if library, err = defs.LoadLibrary(settings.DefsDir); err != nil {
			logger.Errorf("definitions: %v", err)
			os.Exit(1)
		}
	}

	opts := app.DefaultOptions()
	opts.Library = library
	opts.Seed = settings.Seed
	opts.Decorations = settings.Decorations
	opts.Logger = logger
	game, err := app.NewGame(opts)
	if err != nil {
		logger.Errorf("new game: %v", err)
		os.Exit(1)
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
			logger.Infof("debug server listening on %s", settings.DebugAddr)
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

	sm := state.NewStateMachine() // Создаём машину состояний
	play := func() state.State {
		return state.NewPlayState(sm, state.PlayConfig{
			Game:        game,
			Sound:       sound,
			Events:      events,
			Store:       store,
			SnapshotDir: snapshotDir,
			Logger:      logger,
		})
	}
	if settings.StartPaused {
		sm.SetState(state.NewMenuState(sm, play))
	} else {
		sm.SetState(play())
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Dead End")
	if err := ebiten.RunGame(a); err != nil {
		logger.Errorf("run: %v", err)
	}
}
