package main

import (
	"fmt"
	"log/slog"
	"time"

	"pomodoro/internal/core/settings"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/platform"
	"pomodoro/resources"
)

// pomodoro bundles the pieces every front-end drives.
type pomodoro struct {
	store  *settings.Store
	engine *timer.Engine
	close  func()
}

// newPomodoro builds the settings store, the audio cue and the engine.
// The engine loop is started; close stops it and releases the cue.
func newPomodoro(cfg runtimeConfig, log *slog.Logger) *pomodoro {
	store := settings.NewStore(cfg.Settings())

	var cue timer.AudioCue = timer.SilentCue{}
	release := func() {}
	if cfg.Sound {
		player := platform.NewCuePlayer(resources.MustBeep().Content())
		cue = player
		release = func() {
			if err := player.Close(); err != nil {
				log.Debug("close audio cue", "error", err)
			}
		}
	}

	engine := timer.New(store, cue, timer.Config{
		TickInterval: time.Second,
		Logger:       log,
	})
	engine.Start()

	return &pomodoro{
		store:  store,
		engine: engine,
		close: func() {
			engine.Stop()
			release()
		},
	}
}

// acquireLock makes sure only one timer runs per user session.
func acquireLock(log *slog.Logger) (*platform.InstanceLock, error) {
	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		return nil, fmt.Errorf("single instance: %w", err)
	}
	log.Debug("instance lock acquired", "address", lock.Address())
	return lock, nil
}
