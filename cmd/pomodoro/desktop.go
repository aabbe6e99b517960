package main

import (
	"log/slog"

	"pomodoro/internal/core/timer"
	"pomodoro/internal/ui/timerview"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

// runDesktop opens the timer window and, where supported, the tray icon.
func runDesktop(cfg runtimeConfig, log *slog.Logger) error {
	lock, err := acquireLock(log)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	core := newPomodoro(cfg, log)
	defer core.close()
	engine := core.engine

	activeIcon := resources.MustLogo(resources.LogoActive)
	pausedIcon := resources.MustLogo(resources.LogoPaused)

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(activeIcon)

	view := timerview.New(fyneApp, appName, engine, core.store)

	var trayManager *tray.Manager
	desktopApp, ok := fyneApp.(desktop.App)
	if ok {
		trayManager = tray.New(desktopApp, appName, tray.Callbacks{
			OnShow: view.Show,
			OnToggle: func() {
				engine.ToggleRunning()
			},
			OnReset: engine.Reset,
			OnQuit: func() {
				view.Close()
				fyneApp.Quit()
			},
		})
		trayManager.Update(engine.Snapshot())
		desktopApp.SetSystemTrayIcon(pausedIcon)
		view.SetCloseIntercept(view.Hide)
	} else {
		log.Info("system tray unsupported, closing the window quits")
		view.SetCloseIntercept(func() {
			view.Close()
			fyneApp.Quit()
		})
	}

	events := engine.Subscribe(16)
	go func() {
		running := false
		for event := range events {
			view.HandleEvent(event)
			if trayManager == nil {
				continue
			}
			snapshot := event.Snapshot
			iconChanged := snapshot.Running != running
			running = snapshot.Running
			fyne.Do(func() {
				trayManager.Update(snapshot)
				if iconChanged {
					desktopApp.SetSystemTrayIcon(trayIcon(snapshot, activeIcon, pausedIcon))
				}
			})
		}
	}()

	log.Info("timer ready",
		"session_minutes", core.store.SessionMinutes(),
		"break_minutes", core.store.BreakMinutes())

	view.Show()
	fyneApp.Run()
	return nil
}

func trayIcon(snapshot timer.Snapshot, active, paused fyne.Resource) fyne.Resource {
	if snapshot.Running {
		return active
	}
	return paused
}
