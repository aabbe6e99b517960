// Package timerview is the main desktop window of the timer.
package timerview

import (
	"context"
	"image/color"

	"pomodoro/internal/core/timer"
	"pomodoro/internal/ui/animation"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/ring"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var (
	sessionColor   = color.NRGBA{R: 107, G: 22, B: 187, A: 255}
	breakColor     = color.NRGBA{R: 223, G: 130, B: 34, A: 255}
	highlightColor = color.NRGBA{R: 255, G: 214, B: 102, A: 255}
)

// Timer is the engine surface the window drives.
type Timer interface {
	Snapshot() timer.Snapshot
	ToggleRunning() bool
	Reset()
}

// Window manages the timer UI.
type Window struct {
	window      fyne.Window
	timer       Timer
	headline    *canvas.Text
	progress    *ring.ProgressRing
	startStop   *widget.Button
	reset       *widget.Button
	panel       *preferences.Panel
	flash       *animation.Engine
	last        timer.Snapshot
	highlighted bool
}

// New creates the timer window. It is hidden until Show is called.
func New(app fyne.App, title string, engine Timer, store preferences.Store) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	headline := canvas.NewText("", sessionColor)
	headline.Alignment = fyne.TextAlignCenter
	headline.TextStyle = fyne.TextStyle{Bold: true}
	headline.TextSize = 24

	view := &Window{
		window:   window,
		timer:    engine,
		headline: headline,
		progress: ring.NewProgressRing(),
	}

	view.startStop = widget.NewButton("Start", func() {
		view.timer.ToggleRunning()
		view.Render(view.timer.Snapshot())
	})
	view.startStop.Importance = widget.HighImportance
	view.reset = widget.NewButton("Reset", func() {
		view.timer.Reset()
		view.Render(view.timer.Snapshot())
	})
	view.panel = preferences.New(store, func() {
		view.Render(view.timer.Snapshot())
	})
	view.flash = animation.New(animation.DefaultConfig(), func(highlighted bool) {
		fyne.Do(func() {
			view.setHighlight(highlighted)
		})
	})

	controls := container.NewHBox(layout.NewSpacer(), view.startStop, view.reset, layout.NewSpacer())
	content := container.NewVBox(
		headline,
		container.NewCenter(view.progress),
		controls,
		widget.NewSeparator(),
		view.panel.Content(),
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(380, 520))

	view.Render(engine.Snapshot())
	return view
}

// Show displays the window and brings it to front.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Hide hides the window without stopping the timer.
func (view *Window) Hide() {
	view.window.Hide()
}

// SetCloseIntercept replaces the default close behaviour.
func (view *Window) SetCloseIntercept(handler func()) {
	view.window.SetCloseIntercept(handler)
}

// Close stops animations and closes the window.
func (view *Window) Close() {
	view.flash.Stop()
	view.window.Close()
}

// HandleEvent renders an engine event on the UI goroutine.
func (view *Window) HandleEvent(event timer.Event) {
	fyne.Do(func() {
		view.Render(event.Snapshot)
	})
	if event.Type == timer.EventModeChange {
		view.flash.StartFlash(context.Background())
	}
	if event.Type == timer.EventReset || event.Type == timer.EventSettingsChange {
		view.flash.Stop()
	}
}

// Render updates every widget from snapshot. Call it on the UI goroutine.
func (view *Window) Render(snapshot timer.Snapshot) {
	view.last = snapshot

	modeColor := ModeColor(snapshot.Mode)
	view.headline.Text = snapshot.Mode.Headline()
	view.headline.Color = modeColor
	view.headline.Refresh()

	arc := color.Color(modeColor)
	if view.highlighted {
		arc = highlightColor
	}
	view.progress.SetValue(snapshot.Percentage, snapshot.Display, arc)

	if snapshot.Running {
		view.startStop.SetText("Stop")
	} else {
		view.startStop.SetText("Start")
	}
	view.panel.Refresh()
}

// ModeColor returns the theme colour of mode.
func ModeColor(mode timer.Mode) color.NRGBA {
	if mode == timer.ModeBreak {
		return breakColor
	}
	return sessionColor
}

func (view *Window) setHighlight(highlighted bool) {
	if view.highlighted == highlighted {
		return
	}
	view.highlighted = highlighted
	view.Render(view.last)
}
